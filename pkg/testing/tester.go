package testing

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/instance/pkg/core"
	"github.com/go-drift/instance/pkg/errors"
)

// DefaultMaxFrames bounds PumpAndSettle when no limit is given.
const DefaultMaxFrames = 100

// ErrSettleTimeout is returned when PumpAndSettle exceeds its frame budget.
var ErrSettleTimeout = stderrors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester drives build frames for a widget tree without a platform.
// While a tester is alive it owns the global error handler so that build
// errors can be inspected; Cleanup restores the previous handler.
type WidgetTester struct {
	buildOwner  *core.BuildOwner
	root        core.Element
	dispatches  []func()
	buildErrors []*errors.BuildError
	pending     []error
	prevHandler errors.ErrorHandler
}

// NewWidgetTester creates a tester with an empty tree.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	t := &WidgetTester{
		buildOwner:  core.NewBuildOwner(),
		prevHandler: errors.Handler(),
	}
	errors.SetHandler(&recordingHandler{tester: t, next: t.prevHandler})
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t testing.TB) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the global error handler.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	errors.SetHandler(t.prevHandler)
}

// PumpWidget mounts (or remounts) a widget and runs one frame. The returned
// error joins every build error reported while mounting.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	t.root = core.MountRoot(widget, t.buildOwner)
	return t.Pump()
}

// Pump runs a single frame: queued dispatches, then a build flush. The
// returned error joins the build errors reported since the previous pump.
func (t *WidgetTester) Pump() error {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}

	t.buildOwner.FlushBuild()

	err := stderrors.Join(t.pending...)
	t.pending = nil
	return err
}

// PumpAndSettle pumps frames until nothing is dirty and no dispatch is
// queued, for at most maxFrames frames (DefaultMaxFrames when <= 0).
func (t *WidgetTester) PumpAndSettle(maxFrames int) error {
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}
	var errs []error
	for i := 0; i < maxFrames; i++ {
		errs = append(errs, t.Pump())
		if !t.needsWork() {
			return stderrors.Join(errs...)
		}
	}
	return stderrors.Join(append(errs, ErrSettleTimeout)...)
}

func (t *WidgetTester) needsWork() bool {
	return t.buildOwner.NeedsWork() || len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// BuildOwner returns the owner that schedules this tester's builds.
func (t *WidgetTester) BuildOwner() *core.BuildOwner {
	return t.buildOwner
}

// BuildErrors returns every build error reported since the tester was
// created.
func (t *WidgetTester) BuildErrors() []*errors.BuildError {
	return t.buildErrors
}

// recordingHandler keeps build errors for the tester and forwards
// everything else to the handler that was installed before it.
type recordingHandler struct {
	tester *WidgetTester
	next   errors.ErrorHandler
}

func (h *recordingHandler) HandleError(err *errors.DriftError) {
	if h.next != nil {
		h.next.HandleError(err)
	}
}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {
	if h.next != nil {
		h.next.HandlePanic(err)
	}
}

func (h *recordingHandler) HandleBuildError(err *errors.BuildError) {
	h.tester.buildErrors = append(h.tester.buildErrors, err)
	h.tester.pending = append(h.tester.pending, err)
}
