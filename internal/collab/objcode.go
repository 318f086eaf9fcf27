// Package collab implements the default collaborator hooks a Register
// can be built with: an object-code recorder/replayer, a QEC status
// source, a phase-noise decoherer, an error sink, and a memory tally.
// Nothing here is required — qreg.Hooks fields are all optional — but
// together they give a qreg.Register the same "pluggable collaborator"
// surface the reference design describes.
package collab

import (
	"encoding/gob"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/oisee/qureg/pkg/qreg"
)

// Call is one recorded gate invocation: an opcode and its float64
// argument list, in application order.
type Call struct {
	Op   qreg.Opcode
	Args []float64
}

// ObjectCode is an in-memory, gob-serialisable trace of gate calls, the
// generalisation of a search's rule table to a gate-application log.
type ObjectCode struct {
	mu    sync.Mutex
	calls []Call
}

// NewObjectCode returns an empty trace.
func NewObjectCode() *ObjectCode {
	return &ObjectCode{}
}

// Put appends a call to the trace. It always returns false ("not
// handled"): recording never substitutes for actually running the
// gate.
func (o *ObjectCode) Put(op qreg.Opcode, args ...float64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, Call{Op: op, Args: append([]float64(nil), args...)})
	return false
}

// Calls returns a copy of the recorded trace in application order.
func (o *ObjectCode) Calls() []Call {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Call, len(o.calls))
	copy(out, o.calls)
	return out
}

// Len returns the number of recorded calls.
func (o *ObjectCode) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.calls)
}

// Save writes the trace to path as gob.
func (o *ObjectCode) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	o.mu.Lock()
	defer o.mu.Unlock()
	return gob.NewEncoder(f).Encode(o.calls)
}

// Load reads a trace previously written by Save.
func Load(path string) (*ObjectCode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var calls []Call
	if err := gob.NewDecoder(f).Decode(&calls); err != nil {
		return nil, err
	}
	return &ObjectCode{calls: calls}, nil
}

// Replayer plays back a previously recorded trace instead of letting
// the core execute gates directly. Its Put hook returns true
// ("handled") for every call within range of the loaded trace, and logs
// a mismatch if the caller's opcode diverges from what was recorded.
type Replayer struct {
	trace []Call
	pos   int
	Log   zerolog.Logger
}

// NewReplayer wraps a loaded trace for sequential replay.
func NewReplayer(trace []Call, log zerolog.Logger) *Replayer {
	return &Replayer{trace: trace, Log: log}
}

// Put reports true once per call in the trace, in order, so that the
// gate call it guards is skipped; once the trace is exhausted it
// returns false and lets the core run normally.
func (r *Replayer) Put(op qreg.Opcode, args ...float64) bool {
	if r.pos >= len(r.trace) {
		return false
	}
	want := r.trace[r.pos]
	r.pos++
	if want.Op != op {
		r.Log.Warn().
			Str("expected", want.Op.String()).
			Str("got", op.String()).
			Int("position", r.pos-1).
			Msg("object code replay diverged from recorded trace")
	}
	return true
}

// objectCodeFileEnv is the environment variable a command-line entry
// point checks to decide whether to record or replay a trace.
const objectCodeFileEnv = "QUOBFILE"

// ObjectCodeFile returns the path named by QUOBFILE, and whether it was
// set at all.
func ObjectCodeFile() (string, bool) {
	v, ok := os.LookupEnv(objectCodeFileEnv)
	return v, ok
}
