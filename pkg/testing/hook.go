package testing

import (
	"testing"

	"github.com/go-drift/instance/pkg/core"
)

// HookResult is a hook mounted by RenderHook. It records the value the hook
// returned on the last build that completed.
type HookResult[T any] struct {
	tester  *WidgetTester
	state   *core.StateBase
	current T
	renders int
	err     error
}

// RenderHook mounts a HookBuilder that calls hook on every build and runs
// the first frame.
//
//	result := drifttest.RenderHook(t, func(s *core.StateBase) core.Instance {
//	    return core.UseInstance(s)
//	})
//	result.Current()["seen"] = true
//	result.Rerender()
func RenderHook[T any](t testing.TB, hook func(s *core.StateBase) T) *HookResult[T] {
	t.Helper()
	result := RenderHookWithProps(t, func(s *core.StateBase, _ struct{}) T {
		return hook(s)
	}, struct{}{})
	return result.HookResult
}

// Current returns the value from the last build in which the hook returned.
func (r *HookResult[T]) Current() T {
	return r.current
}

// Renders returns how many times the hook has returned.
func (r *HookResult[T]) Renders() int {
	return r.renders
}

// Err returns the error from the most recent frame, or nil.
func (r *HookResult[T]) Err() error {
	return r.err
}

// State returns the StateBase that owns the hook's slots.
func (r *HookResult[T]) State() *core.StateBase {
	return r.state
}

// Tester returns the tester driving the hook.
func (r *HookResult[T]) Tester() *WidgetTester {
	return r.tester
}

// Rerender schedules a build of the hook's element and pumps one frame.
func (r *HookResult[T]) Rerender() error {
	if r.state != nil {
		r.state.SetState(nil)
	} else if root := r.tester.RootElement(); root != nil {
		root.MarkNeedsBuild()
	}
	r.err = r.tester.Pump()
	return r.err
}

// Unmount removes the hook's element, disposing its state and hook slots.
func (r *HookResult[T]) Unmount() {
	if root := r.tester.RootElement(); root != nil {
		root.Unmount()
		r.tester.root = nil
	}
}

// PropsResult is a hook mounted with props that can change between builds.
type PropsResult[P, T any] struct {
	*HookResult[T]
	props P
}

// RenderHookWithProps is RenderHook for hooks that take an argument. The
// hook sees initial on the first build and whatever was last passed to
// RerenderWith afterwards.
func RenderHookWithProps[P, T any](t testing.TB, hook func(s *core.StateBase, props P) T, initial P) *PropsResult[P, T] {
	t.Helper()
	result := &PropsResult[P, T]{
		HookResult: &HookResult[T]{tester: NewWidgetTesterWithT(t)},
		props:      initial,
	}
	widget := core.HookBuilder{
		Build: func(s *core.StateBase, ctx core.BuildContext) core.Widget {
			result.state = s
			value := hook(s, result.props)
			result.current = value
			result.renders++
			return nil
		},
	}
	result.err = result.tester.PumpWidget(widget)
	return result
}

// RerenderWith replaces the props and rebuilds.
func (r *PropsResult[P, T]) RerenderWith(props P) error {
	r.props = props
	return r.Rerender()
}
