package errors

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogHandler is an ErrorHandler that writes one structured log event per
// reported error.
type LogHandler struct {
	// Verbose adds stack traces to every event.
	Verbose bool
	// Logger receives the events. Nil means the global zerolog logger.
	Logger *zerolog.Logger
}

func (h *LogHandler) logger() *zerolog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return &log.Logger
}

func (h *LogHandler) withStack(ev *zerolog.Event, stack string) *zerolog.Event {
	if h.Verbose && stack != "" {
		ev = ev.Str("stack", stack)
	}
	return ev
}

// HandleError logs a DriftError.
func (h *LogHandler) HandleError(err *DriftError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().
		Str("op", err.Op).
		Stringer("kind", err.Kind).
		AnErr("cause", err.Err)
	h.withStack(ev, err.StackTrace).Msg("drift error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().Interface("value", err.Value)
	if err.Op != "" {
		ev = ev.Str("op", err.Op)
	}
	h.withStack(ev, err.StackTrace).Msg("drift panic")
}

// HandleBuildError logs a BuildError.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().
		Str("widget", err.Widget).
		Str("element", err.Element)
	if err.Recovered != nil {
		ev = ev.Interface("recovered", err.Recovered)
	}
	if err.Err != nil {
		ev = ev.AnErr("cause", err.Err)
	}
	h.withStack(ev, err.StackTrace).Msg("drift build error")
}
