package core

import (
	"fmt"

	"github.com/go-drift/instance/pkg/errors"
)

// Ref is a mutable cell owned by one state. The same *Ref is returned for a
// given hook position on every build until the state is disposed.
// Assigning Current never schedules a build.
type Ref[T any] struct {
	Current T
}

// UseRef returns the persistent cell for this hook position, allocating it
// with initial on the first build. initial is ignored on later builds.
//
// UseRef must be called from Build, unconditionally and in the same order
// on every build.
//
//	func (s *myState) Build(ctx core.BuildContext) core.Widget {
//	    renders := core.UseRef(s, 0)
//	    renders.Current++
//	    ...
//	}
func UseRef[T any](s stateBase, initial T) *Ref[T] {
	return useRef(s, "core.UseRef", initial)
}

func useRef[T any](s stateBase, op string, initial T) *Ref[T] {
	base := s.state()
	index, created := base.nextHook(op)
	if created {
		ref := &Ref[T]{Current: initial}
		base.hooks[index] = ref
		return ref
	}
	ref, ok := base.hooks[index].(*Ref[T])
	if !ok {
		panic(errors.HookMisuse(op, fmt.Errorf(
			"hook slot %d holds %T, want %T; hooks must run in the same order on every build",
			index, base.hooks[index], ref)))
	}
	return ref
}
