package qreg

import "github.com/oisee/qureg/pkg/qerr"

// Hooks is the capability set a Register is constructed with: five
// collaborators (decohere, qec_status, objcode_put, memman, error),
// expressed as a plain struct of function fields rather than an
// interface so a caller can override a single hook by assigning one
// field of a struct literal. Every field is optional; a nil field is a
// no-op.
type Hooks struct {
	// Decohere is called once at the end of every gate. It may
	// silently perturb amplitudes to model noise.
	Decohere func(*Register)

	// QECStatus is queried at the entry of CNOT, Toffoli, sigma_x and
	// swap_leads. If enabled is true, swap_leads re-expresses itself as
	// three CNOTs per bit pair; CNOT, Toffoli and sigma_x only log the
	// active codeID and run their direct form.
	QECStatus func() (enabled bool, codeID string)

	// ObjCodePut logs a gate call before its amplitudes change. If it
	// returns true ("handled"), the calling gate must return without
	// executing — the recorder is replaying a prior run rather than
	// letting the core simulate it.
	ObjCodePut func(op Opcode, args ...float64) bool

	// MemMan receives the running change in bytes owned by entry, label
	// and hash buffers. Positive on grow, negative on shrink/free.
	MemMan func(deltaBytes int64)

	// OnError is invoked for every fatal condition before the
	// operation also returns a *qerr.QuantumError to its caller.
	OnError func(kind qerr.Kind, op, detail string)
}

func (h Hooks) fireDecohere(r *Register) {
	if h.Decohere != nil {
		h.Decohere(r)
	}
}

func (h Hooks) qecStatus() (bool, string) {
	if h.QECStatus == nil {
		return false, ""
	}
	return h.QECStatus()
}

func (h Hooks) objCodePut(op Opcode, args ...float64) bool {
	if h.ObjCodePut == nil {
		return false
	}
	return h.ObjCodePut(op, args...)
}

func (h Hooks) memMan(delta int64) {
	if h.MemMan != nil {
		h.MemMan(delta)
	}
}

func (h Hooks) onError(kind qerr.Kind, op, detail string) {
	if h.OnError != nil {
		h.OnError(kind, op, detail)
	}
}

// fail fires OnError and returns the corresponding error value, the
// pattern every fallible core operation uses in place of the reference
// implementation's longjmp.
func (h Hooks) fail(op string, kind qerr.Kind, detail string) error {
	h.onError(kind, op, detail)
	return qerr.New(op, kind, detail)
}
