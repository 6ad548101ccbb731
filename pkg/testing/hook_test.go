package testing

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/instance/pkg/core"
	"github.com/go-drift/instance/pkg/errors"
)

func TestRenderHook_DefaultsToEmptyObject(t *testing.T) {
	result := RenderHook(t, func(s *core.StateBase) core.Instance {
		return core.UseInstance(s)
	})

	require.NoError(t, result.Err())
	assert.NotNil(t, result.Current())
	assert.Equal(t, core.Instance{}, result.Current())
}

func TestRenderHook_AcceptsValue(t *testing.T) {
	result := RenderHook(t, func(s *core.StateBase) map[string]string {
		return core.UseInstanceOf(s, map[string]string{"foo": "foo"})
	})

	assert.Equal(t, map[string]string{"foo": "foo"}, result.Current())
}

func TestRenderHook_AcceptsLazyInitializer(t *testing.T) {
	result := RenderHook(t, func(s *core.StateBase) map[string]string {
		return core.UseInstanceFunc(s, func() map[string]string {
			return map[string]string{"foo": "foo"}
		})
	})

	assert.Equal(t, map[string]string{"foo": "foo"}, result.Current())
}

func TestRenderHook_LazyInitializerCalledOnce(t *testing.T) {
	calls := 0
	fn := func() bool {
		calls++
		return false
	}
	result := RenderHook(t, func(s *core.StateBase) bool {
		return core.UseInstanceFunc(s, fn)
	})
	assert.False(t, result.Current())

	require.NoError(t, result.Rerender())

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, result.Renders())
	assert.False(t, result.Current())
}

func TestRenderHook_SameInstanceEveryRender(t *testing.T) {
	result := RenderHook(t, func(s *core.StateBase) core.Instance {
		return core.UseInstance(s)
	})
	initial := result.Current()

	require.NoError(t, result.Rerender())

	assert.Equal(t, initial, result.Current())
	initial["marker"] = 1
	assert.Equal(t, 1, result.Current()["marker"], "rerender must return the same map")
}

func TestRenderHook_SameInstanceEveryRenderWithFunc(t *testing.T) {
	type box struct{}
	result := RenderHook(t, func(s *core.StateBase) *box {
		return core.UseInstanceFunc(s, func() *box { return &box{} })
	})
	initial := result.Current()

	require.NoError(t, result.Rerender())

	assert.Same(t, initial, result.Current())
}

func TestRenderHook_MutationSurvivesRender(t *testing.T) {
	type symbol struct{ desc string }
	sym := &symbol{}
	result := RenderHook(t, func(s *core.StateBase) core.Instance {
		return core.UseInstance(s)
	})

	result.Current()["symbol"] = sym
	require.NoError(t, result.Rerender())

	assert.Equal(t, core.Instance{"symbol": sym}, result.Current())
	assert.Same(t, sym, result.Current()["symbol"])
}

func TestRenderHookWithProps_LaterArgumentsIgnored(t *testing.T) {
	result := RenderHookWithProps(t, func(s *core.StateBase, initial string) string {
		return core.UseInstanceOf(s, initial)
	}, "first")

	require.NoError(t, result.RerenderWith("second"))
	require.NoError(t, result.RerenderWith("third"))

	assert.Equal(t, "first", result.Current())
	assert.Equal(t, 3, result.Renders())
}

func TestRenderHook_FailingInitializerIsRetried(t *testing.T) {
	calls := 0
	result := RenderHook(t, func(s *core.StateBase) string {
		return core.UseInstanceFunc(s, func() string {
			calls++
			if calls == 1 {
				panic("first attempt fails")
			}
			return "ok"
		})
	})

	require.Error(t, result.Err())
	var buildErr *errors.BuildError
	require.True(t, stderrors.As(result.Err(), &buildErr))
	assert.Equal(t, "first attempt fails", buildErr.Recovered)
	assert.Equal(t, 0, result.Renders())

	require.NoError(t, result.Rerender())

	assert.Equal(t, "ok", result.Current())
	assert.Equal(t, 2, calls)
	assert.Len(t, result.Tester().BuildErrors(), 1)
}

func TestRenderHook_UseInstanceErrReturnsError(t *testing.T) {
	errOffline := stderrors.New("offline")
	fail := true
	type pair struct {
		value int
		err   error
	}
	result := RenderHook(t, func(s *core.StateBase) pair {
		v, err := core.UseInstanceErr(s, func() (int, error) {
			if fail {
				return 0, errOffline
			}
			return 7, nil
		})
		return pair{v, err}
	})
	assert.ErrorIs(t, result.Current().err, errOffline)

	fail = false
	require.NoError(t, result.Rerender())
	assert.Equal(t, pair{value: 7}, result.Current())

	fail = true
	require.NoError(t, result.Rerender())
	assert.Equal(t, pair{value: 7}, result.Current(), "success is cached, later failures never run")
}

func TestRenderHook_UnmountDisposesState(t *testing.T) {
	result := RenderHook(t, func(s *core.StateBase) core.Instance {
		return core.UseInstance(s)
	})
	state := result.State()
	require.Equal(t, 1, state.HookCount())

	result.Unmount()

	assert.True(t, state.IsDisposed())
	assert.Zero(t, state.HookCount())
	assert.Nil(t, result.Tester().RootElement())
}
