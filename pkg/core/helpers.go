package core

// StatelessBase provides default CreateElement and Key implementations for
// stateless widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: "Hello, " + g.Name}
//	}
type StatelessBase struct{}

// CreateElement returns a new StatelessElement.
func (StatelessBase) CreateElement() Element { return NewStatelessElement() }

// Key returns nil (no key).
func (StatelessBase) Key() any { return nil }

// StatefulBase provides default CreateElement and Key implementations for
// stateful widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Counter struct {
//	    core.StatefulBase
//	}
//
//	func (Counter) CreateState() core.State { return &counterState{} }
type StatefulBase struct{}

// CreateElement returns a new StatefulElement.
func (StatefulBase) CreateElement() Element { return NewStatefulElement() }

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }

// Stateful creates an inline stateful widget using closures.
// Use this for quick, self-contained UI fragments that don't need
// lifecycle hooks or StateBase features.
//
//	widget := core.Stateful(
//	    func() int { return 0 },
//	    func(count int, ctx core.BuildContext, setState func(func(int) int)) core.Widget {
//	        return widgets.GestureDetector{
//	            OnTap: func() {
//	                setState(func(c int) int { return c + 1 })
//	            },
//	            Child: widgets.Text{Content: fmt.Sprintf("Count: %d", count)},
//	        }
//	    },
//	)
//
// For widgets that call hooks, use [HookBuilder] or embed [StateBase].
func Stateful[S any](
	init func() S,
	build func(state S, ctx BuildContext, setState func(func(S) S)) Widget,
) Widget {
	return &inlineStatefulWidget[S]{
		initFn:  init,
		buildFn: build,
	}
}

type inlineStatefulWidget[S any] struct {
	StatefulBase
	initFn  func() S
	buildFn func(state S, ctx BuildContext, setState func(func(S) S)) Widget
}

func (w *inlineStatefulWidget[S]) CreateState() State {
	return &inlineStatefulState[S]{
		initFn:  w.initFn,
		buildFn: w.buildFn,
	}
}

type inlineStatefulState[S any] struct {
	StateBase
	value   S
	initFn  func() S
	buildFn func(state S, ctx BuildContext, setState func(func(S) S)) Widget
}

func (s *inlineStatefulState[S]) InitState() {
	s.value = s.initFn()
}

func (s *inlineStatefulState[S]) Build(ctx BuildContext) Widget {
	return s.buildFn(s.value, ctx, func(update func(S) S) {
		s.SetState(func() {
			s.value = update(s.value)
		})
	})
}

// HookBuilder is an inline stateful widget whose Build function may call
// hooks such as UseRef and UseInstance. The StateBase passed to Build is
// the same on every build of one element.
//
//	core.HookBuilder{
//	    Build: func(s *core.StateBase, ctx core.BuildContext) core.Widget {
//	        clicks := core.UseInstanceOf(s, &clickLog{})
//	        return widgets.GestureDetector{OnTap: clicks.Record, ...}
//	    },
//	}
type HookBuilder struct {
	StatefulBase
	// ID is returned as the widget key. Changing it remounts the element
	// and drops its hook slots.
	ID any
	// Build is called on every build of the element.
	Build func(s *StateBase, ctx BuildContext) Widget
}

// Key returns ID.
func (h HookBuilder) Key() any { return h.ID }

// CreateState returns the state that owns the hook slots.
func (h HookBuilder) CreateState() State {
	return &hookBuilderState{}
}

type hookBuilderState struct {
	StateBase
}

func (s *hookBuilderState) Build(ctx BuildContext) Widget {
	widget, ok := s.Element().Widget().(HookBuilder)
	if !ok || widget.Build == nil {
		return nil
	}
	return widget.Build(&s.StateBase, ctx)
}
