package core

import (
	"fmt"
	"sync"

	"github.com/go-drift/instance/pkg/errors"
)

// stateBase is satisfied by any struct that embeds StateBase.
// Hooks and NewManaged accept stateBase so callers can pass s directly.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// hookState is implemented by states that embed StateBase. The element
// brackets every Build with these calls so hooks can find their slots.
type hookState interface {
	beginBuild()
	finishHooks()
	endBuild()
}

// StateBase provides common functionality for stateful widget states.
// Embed this struct in your state to eliminate boilerplate.
//
// Example:
//
//	type myState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *myState) InitState() {
//	    // No need to implement SetElement, SetState, Dispose, etc.
//	}
type StateBase struct {
	element   *StatefulElement
	disposers []func()
	disposed  bool
	mu        sync.Mutex

	// Hook slots, in call order. Only touched from the UI thread during Build.
	hooks    []any
	cursor   int
	building bool
}

// SetElement stores the element reference for triggering rebuilds.
// This method is called automatically by the framework.
func (s *StateBase) SetElement(element *StatefulElement) {
	s.element = element
}

// Element returns the element associated with this state.
// Returns nil if the state has not been mounted.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// SetState executes the given function and schedules a rebuild.
// Safe to call even after disposal (becomes a no-op).
//
// SetState is NOT thread-safe. It must only be called from the UI thread.
func (s *StateBase) SetState(fn func()) {
	if s.disposed {
		return
	}
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// OnDispose registers a cleanup function to be called when the state is disposed.
// Returns an unregister function that can be called to remove the disposer.
// The cleanup function will only be called once.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		// Already disposed, run cleanup immediately
		cleanup()
		return func() {}
	}

	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// RunDisposers executes all registered disposers in reverse order and
// releases the hook slots. This is called automatically by Dispose().
func (s *StateBase) RunDisposers() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return
	}
	s.disposed = true

	for i := len(s.disposers) - 1; i >= 0; i-- {
		if s.disposers[i] != nil {
			s.disposers[i]()
		}
	}
	s.disposers = nil
	s.hooks = nil
}

// Dispose cleans up resources. Override this method if you need custom cleanup,
// but always call s.RunDisposers() or s.StateBase.Dispose() in your override.
func (s *StateBase) Dispose() {
	s.RunDisposers()
}

// InitState is a no-op default implementation.
func (s *StateBase) InitState() {}

// Build is a no-op default implementation that returns nil.
func (s *StateBase) Build(ctx BuildContext) Widget {
	return nil
}

// DidChangeDependencies is a no-op default implementation.
func (s *StateBase) DidChangeDependencies() {}

// DidUpdateWidget is a no-op default implementation.
func (s *StateBase) DidUpdateWidget(oldWidget StatefulWidget) {}

// IsDisposed returns true if this state has been disposed.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// HookCount returns the number of hook slots allocated so far.
func (s *StateBase) HookCount() int {
	return len(s.hooks)
}

func (s *StateBase) beginBuild() {
	s.cursor = 0
	s.building = true
}

func (s *StateBase) endBuild() {
	s.building = false
}

// finishHooks runs after a Build returns normally. A build that called
// fewer hooks than an earlier one skipped a slot conditionally.
func (s *StateBase) finishHooks() {
	if s.cursor < len(s.hooks) {
		panic(errors.HookMisuse("core.Build", fmt.Errorf(
			"build called %d hooks, previous builds called %d; hooks must run unconditionally",
			s.cursor, len(s.hooks))))
	}
}

// nextHook returns the index of the slot for the next hook call and
// whether the slot is new. New slots hold nil until the caller fills them.
func (s *StateBase) nextHook(op string) (int, bool) {
	if !s.building {
		panic(errors.HookMisuse(op, fmt.Errorf("called outside Build")))
	}
	index := s.cursor
	s.cursor++
	if index < len(s.hooks) {
		return index, false
	}
	s.hooks = append(s.hooks, nil)
	return index, true
}
