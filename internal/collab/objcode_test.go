package collab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/oisee/qureg/pkg/qreg"
)

func TestObjectCodePutRecordsAndNeverHandles(t *testing.T) {
	oc := NewObjectCode()
	if handled := oc.Put(qreg.OpSigmaX, 0); handled {
		t.Error("Put() returned true, want false (recording never substitutes for execution)")
	}
	if handled := oc.Put(qreg.OpCNOT, 0, 1); handled {
		t.Error("Put() returned true, want false")
	}
	if oc.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", oc.Len())
	}
	calls := oc.Calls()
	if calls[0].Op != qreg.OpSigmaX || calls[1].Op != qreg.OpCNOT {
		t.Errorf("Calls() = %+v, unexpected opcodes", calls)
	}
}

func TestObjectCodeSaveLoadRoundTrip(t *testing.T) {
	oc := NewObjectCode()
	oc.Put(qreg.OpSigmaX, 3)
	oc.Put(qreg.OpCondPhaseKick, 1, 2, 0.5)

	path := filepath.Join(t.TempDir(), "trace.gob")
	if err := oc.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", loaded.Len())
	}
	calls := loaded.Calls()
	if calls[1].Op != qreg.OpCondPhaseKick || len(calls[1].Args) != 3 {
		t.Errorf("Calls()[1] = %+v, unexpected", calls[1])
	}
}

func TestReplayerHandlesCallsInOrder(t *testing.T) {
	trace := []Call{
		{Op: qreg.OpSigmaX, Args: []float64{0}},
		{Op: qreg.OpCNOT, Args: []float64{0, 1}},
	}
	r := NewReplayer(trace, zerolog.Nop())

	if !r.Put(qreg.OpSigmaX, 0) {
		t.Error("Put() = false, want true for a call within the trace")
	}
	if !r.Put(qreg.OpCNOT, 0, 1) {
		t.Error("Put() = false, want true for a call within the trace")
	}
	if r.Put(qreg.OpSigmaX, 0) {
		t.Error("Put() = true, want false once the trace is exhausted")
	}
}

func TestObjectCodeFileEnv(t *testing.T) {
	os.Unsetenv("QUOBFILE")
	if _, ok := ObjectCodeFile(); ok {
		t.Error("ObjectCodeFile() ok = true, want false when unset")
	}
	os.Setenv("QUOBFILE", "/tmp/x.gob")
	defer os.Unsetenv("QUOBFILE")
	path, ok := ObjectCodeFile()
	if !ok || path != "/tmp/x.gob" {
		t.Errorf("ObjectCodeFile() = %q, %v, want /tmp/x.gob, true", path, ok)
	}
}
