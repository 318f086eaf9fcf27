// Package qreg implements the sparse quantum register: the ordered
// (label, amplitude) entry sequence, its optional open-addressing hash
// index, and the register-level algebra operators (Kronecker product,
// dot product, vector add, normalisation, collapse, matrix_qureg).
//
// A Register stores only basis states with non-zero amplitude.
// It is created by New, NewSize, NewSparse, FromDense or Copy, mutated in
// place by the gate kernels in pkg/gate, and released by Destroy or
// ReleaseEntriesKeepHash.
package qreg

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/oisee/qureg/pkg/qerr"
)

const (
	bytesPerAmplitude = 16 // complex128
	bytesPerLabel     = 8  // uint64
	bytesPerHashSlot  = 4  // uint32
)

// Register is a sparse state-vector of width qubits. Each field's
// meaning is documented on the field.
type Register struct {
	ID uuid.UUID

	Width int

	// Labels holds one entry per basis state with Amps; nil means the
	// register is dense and entry i's label is the literal index i,
	// used by NewSize and by matrix_qureg's scratch output.
	Labels []uint64
	Amps   []complex128

	// HashBits is h such that the hash table has 2^h slots; 0 means no
	// index is present.
	HashBits int
	hash     []uint32 // 1-based positions; 0 = empty slot

	Hooks   Hooks
	Counter *Counter
	Log     zerolog.Logger
}

// Size returns the number of (label, amplitude) entries.
func (r *Register) Size() int { return len(r.Amps) }

// Dense reports whether the register has no label array (entry i's
// label is i itself).
func (r *Register) Dense() bool { return r.Labels == nil }

func dim(width int) uint64 { return uint64(1) << uint(width) }

// New creates a single-entry register {label: initval, amplitude: 1},
// the initial-computational-basis construction.
func New(initval uint64, width int, opts ...Option) *Register {
	r := newRegister(width, opts...)
	r.Labels = []uint64{initval}
	r.Amps = []complex128{1}
	r.HashBits = width + 2
	r.allocHash()
	r.hashReconstruct()
	r.Hooks.memMan(int64(bytesPerLabel + bytesPerAmplitude + (1<<uint(r.HashBits))*bytesPerHashSlot))
	r.Hooks.objCodePut(OpInit, float64(initval))
	return r
}

// NewSize returns an empty dense register of n amplitudes and no label
// array.
func NewSize(n, width int, opts ...Option) *Register {
	r := newRegister(width, opts...)
	r.Amps = make([]complex128, n)
	r.Hooks.memMan(int64(n * bytesPerAmplitude))
	return r
}

// NewSparse returns an empty sparse register of n zeroed entries, with a
// label array but no hash index.
func NewSparse(n, width int, opts ...Option) *Register {
	r := newRegister(width, opts...)
	r.Amps = make([]complex128, n)
	r.Labels = make([]uint64, n)
	r.Hooks.memMan(int64(n * (bytesPerAmplitude + bytesPerLabel)))
	return r
}

// FromDense consumes the non-zero amplitudes of a dense column vector of
// length 2^width into a freshly-owned sparse register. It reports DimMismatch if vec's length does not match
// 2^width.
func FromDense(vec []complex128, width int, opts ...Option) (*Register, error) {
	r := newRegister(width, opts...)
	if uint64(len(vec)) != dim(width) {
		return nil, r.Hooks.fail("from_dense", qerr.DimMismatch,
			fmt.Sprintf("vector length %d != 2^%d", len(vec), width))
	}
	for i, a := range vec {
		if a != 0 {
			r.Labels = append(r.Labels, uint64(i))
			r.Amps = append(r.Amps, a)
		}
	}
	r.Hooks.memMan(int64(len(r.Amps) * (bytesPerAmplitude + bytesPerLabel)))
	return r, nil
}

// ToDense expands the register into a column vector of length 2^width.
func (r *Register) ToDense() []complex128 {
	out := make([]complex128, dim(r.Width))
	for i, a := range r.Amps {
		label := r.labelAt(i)
		out[label] = a
	}
	return out
}

// labelAt returns the basis-state label of entry i, accounting for dense
// registers where the label array is absent.
func (r *Register) labelAt(i int) uint64 {
	if r.Dense() {
		return uint64(i)
	}
	return r.Labels[i]
}

// Copy returns a freshly-owned deep copy of r.
func (r *Register) Copy() *Register {
	dst := &Register{
		ID:       uuid.New(),
		Width:    r.Width,
		HashBits: r.HashBits,
		Hooks:    r.Hooks,
		Counter:  r.Counter,
		Log:      r.Log,
	}
	dst.Amps = append([]complex128(nil), r.Amps...)
	if r.Labels != nil {
		dst.Labels = append([]uint64(nil), r.Labels...)
	}
	if r.HashBits > 0 {
		dst.allocHash()
		dst.hashReconstruct()
	}
	dst.Hooks.memMan(int64(len(dst.Amps)*bytesPerAmplitude +
		len(dst.Labels)*bytesPerLabel +
		len(dst.hash)*bytesPerHashSlot))
	return dst
}

// Destroy releases entries, labels and the hash index, and reports the
// released bytes to MemMan. A destroyed register must not be used again.
func (r *Register) Destroy() {
	r.hashDestroy()
	freed := int64(len(r.Amps)*bytesPerAmplitude + len(r.Labels)*bytesPerLabel)
	r.Amps = nil
	r.Labels = nil
	r.Hooks.memMan(-freed)
}

// ReleaseEntriesKeepHash frees the entry and label arrays but leaves the
// hash index intact, for a successor register (typically one built by
// Collapse) to adopt via AdoptHash: a hash-preserving delete.
func (r *Register) ReleaseEntriesKeepHash() {
	freed := int64(len(r.Amps)*bytesPerAmplitude + len(r.Labels)*bytesPerLabel)
	r.Amps = nil
	r.Labels = nil
	r.Hooks.memMan(-freed)
}

// AdoptHash transfers src's hash table (and HashBits) onto r without
// rebuilding it. The caller is responsible for reconstructing it before
// relying on lookups if r's entries differ from src's.
func (r *Register) AdoptHash(src *Register) {
	r.HashBits = src.HashBits
	r.hash = src.hash
	src.HashBits = 0
	src.hash = nil
}

// String renders the register the way the reference source's
// quantum_print_qureg does, as amplitude|label> (probability) triples,
// one per line.
func (r *Register) String() string {
	var b strings.Builder
	for i, a := range r.Amps {
		label := r.labelAt(i)
		fmt.Fprintf(&b, "% f %+fi|%0*b> (%e)\n", real(a), imag(a), r.Width, label, real(a)*real(a)+imag(a)*imag(a))
	}
	return b.String()
}

func newRegister(width int, opts ...Option) *Register {
	r := &Register{ID: uuid.New(), Width: width, Counter: DefaultCounter}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Option configures a Register at construction time.
type Option func(*Register)

// WithHooks installs the given capability set on a new register.
func WithHooks(h Hooks) Option {
	return func(r *Register) { r.Hooks = h }
}

// WithCounter installs a non-default gate counter on a new register.
func WithCounter(c *Counter) Option {
	return func(r *Register) { r.Counter = c }
}

// WithLogger installs a logger on a new register.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Register) { r.Log = log }
}
