package qreg

import "github.com/oisee/qureg/pkg/qerr"

// This file is the seam pkg/gate (and any other package that mutates a
// Register's entries directly) uses to reach the bits of Register that
// stay unexported within qreg itself: the label-at-dense-or-sparse
// helper, the hash-index lifecycle, and the collaborator hooks.

// LabelAt returns the basis-state label of entry i.
func (r *Register) LabelAt(i int) uint64 { return r.labelAt(i) }

// HashReconstruct rebuilds the hash index from the current entries. A
// no-op on a register with no index.
func (r *Register) HashReconstruct() { r.hashReconstruct() }

// CheckLoadFactor emits the debug-level load-factor warning if the
// table has grown crowded.
func (r *Register) CheckLoadFactor() { r.checkLoadFactor() }

// FireDecohere invokes the Decohere hook on r.
func (r *Register) FireDecohere() { r.Hooks.fireDecohere(r) }

// QECStatus queries the QECStatus hook.
func (r *Register) QECStatus() (bool, string) { return r.Hooks.qecStatus() }

// ObjCodePut invokes the ObjCodePut hook.
func (r *Register) ObjCodePut(op Opcode, args ...float64) bool {
	return r.Hooks.objCodePut(op, args...)
}

// MemMan invokes the MemMan hook.
func (r *Register) MemMan(delta int64) { r.Hooks.memMan(delta) }

// Fail invokes the OnError hook and returns the corresponding error,
// the pattern every fallible gate uses in place of a longjmp.
func (r *Register) Fail(op string, kind qerr.Kind, detail string) error {
	return r.Hooks.fail(op, kind, detail)
}

// GrowZeroed appends n zero-valued entries (label 0, amplitude 0) to r,
// for a gate kernel that knows in advance how many new basis states it
// will create. It reports the growth to MemMan.
func (r *Register) GrowZeroed(n int) {
	if n <= 0 {
		return
	}
	r.Amps = append(r.Amps, make([]complex128, n)...)
	if !r.Dense() {
		r.Labels = append(r.Labels, make([]uint64, n)...)
	}
	delta := int64(n * bytesPerAmplitude)
	if !r.Dense() {
		delta += int64(n * bytesPerLabel)
	}
	r.Hooks.memMan(delta)
}

// Shrink truncates r's entries down to the first newSize, for a gate
// kernel that has just compacted negligible amplitudes to the front of
// the arrays. It reports the freed bytes to MemMan.
func (r *Register) Shrink(newSize int) {
	old := r.Size()
	if newSize >= old {
		return
	}
	freed := int64((old - newSize) * bytesPerAmplitude)
	r.Amps = r.Amps[:newSize]
	if !r.Dense() {
		freed += int64((old - newSize) * bytesPerLabel)
		r.Labels = r.Labels[:newSize]
	}
	r.Hooks.memMan(-freed)
}
