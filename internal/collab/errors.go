package collab

import (
	"github.com/rs/zerolog"

	"github.com/oisee/qureg/pkg/qerr"
)

// ErrorSink is an OnError hook backing that logs every fatal condition
// at error level before the caller's QuantumError return value reaches
// them. Panic controls whether it additionally panics, for callers that
// want the reference implementation's abort-on-fatal posture instead
// of Go's ordinary error propagation.
type ErrorSink struct {
	Log   zerolog.Logger
	Panic bool
}

// NewErrorSink returns a sink logging through log.
func NewErrorSink(log zerolog.Logger) *ErrorSink {
	return &ErrorSink{Log: log}
}

// Report is installed as a Register's Hooks.OnError field.
func (s *ErrorSink) Report(kind qerr.Kind, op, detail string) {
	s.Log.Error().Str("op", op).Str("kind", kind.String()).Str("detail", detail).
		Msg("fatal condition in simulation core")
	if s.Panic {
		panic(qerr.New(op, kind, detail))
	}
}
