package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/instance/pkg/core"
	"github.com/go-drift/instance/pkg/errors"
)

type label struct {
	core.StatelessBase
	text string
}

func (l label) Build(ctx core.BuildContext) core.Widget { return nil }

type broken struct {
	core.StatelessBase
}

func (broken) Build(ctx core.BuildContext) core.Widget { panic("broken build") }

func TestPumpWidget_MountsTree(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	require.NoError(t, tester.PumpWidget(label{text: "hello"}))

	root := tester.RootElement()
	require.NotNil(t, root)
	assert.Equal(t, "hello", root.Widget().(label).text)
}

func TestPumpWidget_Remount(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	require.NoError(t, tester.PumpWidget(label{text: "first"}))
	first := tester.RootElement()
	require.NoError(t, tester.PumpWidget(label{text: "second"}))

	assert.NotSame(t, first, tester.RootElement())
}

func TestPumpWidget_ReturnsBuildError(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	err := tester.PumpWidget(broken{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken build")
	require.Len(t, tester.BuildErrors(), 1)
	assert.Equal(t, "testing.broken", tester.BuildErrors()[0].Widget)

	assert.NoError(t, tester.Pump(), "errors are reported by the frame that produced them")
}

func TestDispatch_RunsOnNextPump(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	ran := false
	tester.Dispatch(func() { ran = true })

	assert.False(t, ran)
	require.NoError(t, tester.Pump())
	assert.True(t, ran)
}

func TestPumpAndSettle_Settles(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	remaining := 3
	var step func()
	step = func() {
		remaining--
		if remaining > 0 {
			tester.Dispatch(step)
		}
	}
	tester.Dispatch(step)

	require.NoError(t, tester.PumpAndSettle(10))
	assert.Zero(t, remaining)
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	var forever func()
	forever = func() { tester.Dispatch(forever) }
	tester.Dispatch(forever)

	err := tester.PumpAndSettle(5)

	assert.ErrorIs(t, err, ErrSettleTimeout)
}

func TestCleanup_RestoresHandler(t *testing.T) {
	prev := errors.Handler()
	tester := NewWidgetTester()
	assert.NotSame(t, prev, errors.Handler())

	tester.Cleanup()

	assert.Equal(t, prev, errors.Handler())
}

func TestCleanup_DisposesTree(t *testing.T) {
	tester := NewWidgetTester()
	var state *core.StateBase
	require.NoError(t, tester.PumpWidget(core.HookBuilder{
		Build: func(s *core.StateBase, ctx core.BuildContext) core.Widget {
			state = s
			return nil
		},
	}))

	tester.Cleanup()

	assert.True(t, state.IsDisposed())
	assert.Nil(t, tester.RootElement())
}
