package collab

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/oisee/qureg/pkg/qerr"
)

func TestErrorSinkReportDoesNotPanicByDefault(t *testing.T) {
	s := NewErrorSink(zerolog.Nop())
	s.Report(qerr.DimMismatch, "gate1", "matrix length 3 != 4")
}

func TestErrorSinkReportPanicsWhenConfigured(t *testing.T) {
	s := &ErrorSink{Log: zerolog.Nop(), Panic: true}
	defer func() {
		if recover() == nil {
			t.Error("expected Report to panic when Panic is set")
		}
	}()
	s.Report(qerr.Internal, "hash_get", "")
}
