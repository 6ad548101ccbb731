// Package testing runs widgets and hooks without a platform.
//
// # Hooks
//
// RenderHook mounts a hook inside a real stateful element, so slot
// allocation, rebuilds and disposal behave as they do in an app:
//
//	func TestSessionHook(t *testing.T) {
//	    calls := 0
//	    result := drifttest.RenderHook(t, func(s *core.StateBase) *session {
//	        return core.UseInstanceFunc(s, func() *session {
//	            calls++
//	            return newSession()
//	        })
//	    })
//	    first := result.Current()
//
//	    result.Rerender()
//
//	    if result.Current() != first || calls != 1 {
//	        t.Error("session should be created once")
//	    }
//	}
//
// RenderHookWithProps passes an argument that can be changed with
// RerenderWith, which is how to check that later arguments are ignored.
//
// # Widgets
//
// WidgetTester mounts any widget with PumpWidget and runs frames with Pump
// and PumpAndSettle. Build errors are collected instead of logged:
// Pump returns the errors from its frame and BuildErrors returns them all.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/instance/pkg/testing"
package testing
