// Package core provides the widget and element framework and the hooks that
// hang state off an element.
//
// Widgets are immutable descriptions of UI. Elements are their mounted
// instantiations and own identity across rebuilds. Stateful widgets keep a
// State on their element; embedding StateBase gives a state disposal
// callbacks, SetState and hook slots.
//
// # Instances
//
// UseInstance keeps one mutable object per element for as long as the
// element is mounted. It is computed on the first build, returned as the
// same value on every later build, and never schedules a build by itself:
//
//	type tickerState struct {
//	    core.StateBase
//	}
//
//	func (s *tickerState) Build(ctx core.BuildContext) core.Widget {
//	    stats := core.UseInstanceFunc(s, func() *frameStats {
//	        return newFrameStats()
//	    })
//	    stats.frames++ // visible next build, no rebuild scheduled
//	    ...
//	}
//
// UseInstance takes no argument and yields an empty Instance map,
// UseInstanceOf stores a value, UseInstanceFunc runs a lazy initializer at
// most once, and UseInstanceErr does the same for initializers that return
// an error. A failed initializer is not remembered; the next build retries.
//
// All four ride on UseRef, the persistent cell primitive. Like every hook,
// they must be called from Build, unconditionally, in the same order each
// time. Slots are matched by position, and a mismatch panics with an
// *errors.DriftError of kind errors.KindHook.
//
// # Other hooks
//
// UseController ties a Disposable to the state's lifetime. Managed holds a
// value that rebuilds on every Set.
//
// # Threading
//
// Builds, SetState and hook slots are UI-thread only.
package core
