// Package verify checks the properties a correct gate-application kernel
// must hold: that its matrix is unitary, that two registers describe the
// same state within tolerance, and that composed gates obey the algebraic
// identities (involution, commutation) the reference source relies on but
// never checks at runtime.
//
// The shape is the same one the reference repository's instruction-level
// equivalence checker uses — fixed-vector quick checks backed by an
// exhaustive sweep, plus a mismatch count standing in for a cost score —
// generalised from finite CPU register state to the sparse state vector.
package verify

import (
	"math"

	"github.com/oisee/qureg/pkg/gate"
	"github.com/oisee/qureg/pkg/qcomplex"
	"github.com/oisee/qureg/pkg/qreg"
)

// DefaultTolerance is the comparison slack used when no caller-specified
// tolerance is given, large enough to absorb the floating point error a
// handful of gate applications accumulate, and far below qcomplex.Epsilon
// (1e-6).
const DefaultTolerance = 1e-9

// Snapshot returns every (label, amplitude) pair of reg as a map, the
// representation every comparison in this package normalises to before
// comparing, since two registers describing the same state can differ in
// entry order or in which labels are materialised as explicit zeros.
func Snapshot(reg *qreg.Register) map[uint64]complex128 {
	out := make(map[uint64]complex128, reg.Size())
	dense := reg.ToDense()
	for label, amp := range dense {
		if amp != 0 {
			out[uint64(label)] = amp
		}
	}
	return out
}

// Equivalent reports whether r1 and r2 describe the same state within tol:
// every label present in either snapshot has matching amplitude in the
// other (absent entries compare as zero).
func Equivalent(r1, r2 *qreg.Register, tol float64) bool {
	if r1.Width != r2.Width {
		return false
	}
	a := Snapshot(r1)
	b := Snapshot(r2)
	seen := make(map[uint64]bool, len(a))
	for label, av := range a {
		seen[label] = true
		if !closeEnough(av, b[label], tol) {
			return false
		}
	}
	for label, bv := range b {
		if seen[label] {
			continue
		}
		if !closeEnough(0, bv, tol) {
			return false
		}
	}
	return true
}

func closeEnough(a, b complex128, tol float64) bool {
	d := a - b
	return real(d)*real(d)+imag(d)*imag(d) <= tol*tol
}

// Normalized reports whether reg's total probability mass is 1 within tol.
func Normalized(reg *qreg.Register, tol float64) bool {
	var sum float64
	for _, a := range reg.Amps {
		sum += qcomplex.Prob(a)
	}
	return math.Abs(sum-1) <= tol
}

// HashSound reports whether reg's hash index (if any) agrees with its
// entry array, delegating to the register's own self-check.
func HashSound(reg *qreg.Register) bool {
	return reg.HashSound()
}

// Involution applies op to a copy of reg twice and reports whether the
// result matches reg within tol, the property every self-inverse gate
// (SigmaX, SigmaY, SigmaZ, CNOT, Toffoli, Hadamard, SwapLeads) must hold.
func Involution(reg *qreg.Register, op func(*qreg.Register) error, tol float64) (bool, error) {
	r := reg.Copy()
	defer r.Destroy()
	if err := op(r); err != nil {
		return false, err
	}
	if err := op(r); err != nil {
		return false, err
	}
	return Equivalent(reg, r, tol), nil
}

// Commute applies a then b, and b then a, to independent copies of reg and
// reports whether the two results agree within tol. Gates acting on
// disjoint qubits, and diagonal gates sharing a target, are expected to
// commute; this is the generic check, not a claim that held for every
// pair of gates.
func Commute(reg *qreg.Register, a, b func(*qreg.Register) error, tol float64) (bool, error) {
	ab := reg.Copy()
	defer ab.Destroy()
	if err := a(ab); err != nil {
		return false, err
	}
	if err := b(ab); err != nil {
		return false, err
	}

	ba := reg.Copy()
	defer ba.Destroy()
	if err := b(ba); err != nil {
		return false, err
	}
	if err := a(ba); err != nil {
		return false, err
	}

	return Equivalent(ab, ba, tol), nil
}

// Mismatches runs a set of fixed sample registers through target and
// candidate gate sequences and returns how many of them disagree, the
// quantum analogue of the reference checker's test-vector mismatch count:
// a nonzero result proves non-equivalence outright, a zero result is
// necessary but not sufficient (Equivalent on every reachable state would
// be sufficient, and is infeasible to enumerate once width grows).
func Mismatches(samples []*qreg.Register, target, candidate func(*qreg.Register) error, tol float64) (int, error) {
	mismatches := 0
	for _, s := range samples {
		t := s.Copy()
		c := s.Copy()
		if err := target(t); err != nil {
			t.Destroy()
			c.Destroy()
			return mismatches, err
		}
		if err := candidate(c); err != nil {
			t.Destroy()
			c.Destroy()
			return mismatches, err
		}
		if !Equivalent(t, c, tol) {
			mismatches++
		}
		t.Destroy()
		c.Destroy()
	}
	return mismatches, nil
}

// ComputationalBasisSamples returns one register per basis state of the
// given width, the fixed sample set Mismatches sweeps when no
// application-specific set is available: small enough to be cheap, and
// wide enough to catch any single-basis-state disagreement.
func ComputationalBasisSamples(width int, opts ...qreg.Option) []*qreg.Register {
	n := 1 << uint(width)
	out := make([]*qreg.Register, n)
	for i := 0; i < n; i++ {
		out[i] = qreg.New(uint64(i), width, opts...)
	}
	return out
}

// Unitary2 reports whether m is unitary within tol, i.e. m * m^dagger = I.
func Unitary2(m gate.Matrix2, tol float64) bool {
	prod := mul2(m, dagger2(m))
	return closeEnough(prod[0], 1, tol) && closeEnough(prod[1], 0, tol) &&
		closeEnough(prod[2], 0, tol) && closeEnough(prod[3], 1, tol)
}

func dagger2(m gate.Matrix2) gate.Matrix2 {
	return gate.Matrix2{
		qcomplex.Conj(m[0]), qcomplex.Conj(m[2]),
		qcomplex.Conj(m[1]), qcomplex.Conj(m[3]),
	}
}

func mul2(a, b gate.Matrix2) gate.Matrix2 {
	return gate.Matrix2{
		a[0]*b[0] + a[1]*b[2], a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2], a[2]*b[1] + a[3]*b[3],
	}
}

// Unitary4 reports whether m is unitary within tol, i.e. m * m^dagger = I.
func Unitary4(m gate.Matrix4, tol float64) bool {
	prod := mul4(m, dagger4(m))
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := complex128(0)
			if row == col {
				want = 1
			}
			if !closeEnough(prod[row*4+col], want, tol) {
				return false
			}
		}
	}
	return true
}

func dagger4(m gate.Matrix4) gate.Matrix4 {
	var out gate.Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = qcomplex.Conj(m[row*4+col])
		}
	}
	return out
}

func mul4(a, b gate.Matrix4) gate.Matrix4 {
	var out gate.Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum complex128
			for k := 0; k < 4; k++ {
				sum += a[row*4+k] * b[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}
