package core

// Instance is the default instance object: an empty, mutable map that lives
// as long as the state that created it.
type Instance map[string]any

// instanceCell is the value stored in an instance hook's Ref. ready is false
// until an initializer has returned, so no T value (nil, false, zero) can be
// mistaken for "not yet computed".
type instanceCell[T any] struct {
	value T
	ready bool
}

// UseInstance returns an Instance that is created empty on the first build
// and returned unchanged on every later build. Mutations made to the map
// are visible on the next build and never schedule a rebuild.
//
//	func (s *playerState) Build(ctx core.BuildContext) core.Widget {
//	    inst := core.UseInstance(s)
//	    if _, ok := inst["started"]; !ok {
//	        inst["started"] = time.Now()
//	    }
//	    ...
//	}
func UseInstance(s stateBase) Instance {
	return useInstance(s, "core.UseInstance", func() Instance {
		return Instance{}
	})
}

// UseInstanceOf stores value on the first build and returns the stored value
// on every build. The value passed on later builds is ignored. Pointer, map
// and slice values keep their identity.
func UseInstanceOf[T any](s stateBase, value T) T {
	return useInstance(s, "core.UseInstanceOf", func() T {
		return value
	})
}

// UseInstanceFunc calls create on the first build and returns its result on
// every build. create runs at most once per state. If create panics the
// panic propagates to Build, nothing is stored, and the next build calls
// create again. A nil create stores the zero value of T.
//
//	conn := core.UseInstanceFunc(s, func() *session {
//	    return newSession(ctx)
//	})
func UseInstanceFunc[T any](s stateBase, create func() T) T {
	if create == nil {
		create = func() T {
			var zero T
			return zero
		}
	}
	return useInstance(s, "core.UseInstanceFunc", create)
}

// UseInstanceErr is UseInstanceFunc for initializers that can fail. A
// non-nil error is returned as is and nothing is stored, so the next build
// retries. Once create succeeds its value is returned with a nil error on
// every later build and create is not called again.
func UseInstanceErr[T any](s stateBase, create func() (T, error)) (T, error) {
	ref := useRef(s, "core.UseInstanceErr", instanceCell[T]{})
	if !ref.Current.ready {
		value, err := create()
		if err != nil {
			var zero T
			return zero, err
		}
		ref.Current = instanceCell[T]{value: value, ready: true}
	}
	return ref.Current.value, nil
}

func useInstance[T any](s stateBase, op string, create func() T) T {
	ref := useRef(s, op, instanceCell[T]{})
	if !ref.Current.ready {
		ref.Current = instanceCell[T]{value: create(), ready: true}
	}
	return ref.Current.value
}
