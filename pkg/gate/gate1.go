// Package gate implements the gate-application kernels that evolve a
// qreg.Register: the general one- and two-qubit unitaries (gate1,
// gate2), the specialised permutation/diagonal gates that never need the
// hash index, and the rotations and swap-leads built on top of them.
package gate

import (
	"github.com/oisee/qureg/pkg/qcomplex"
	"github.com/oisee/qureg/pkg/qreg"
)

// Matrix2 is a row-major 2x2 unitary: {M00, M01, M10, M11}.
type Matrix2 [4]complex128

// Gate1 applies the 2x2 unitary m to target bit t of reg in place. For every pair of basis states |x> and |x XOR 2^t>, the
// amplitudes transform as (a0, a1)^T <- M * (a0, a1)^T, where a0 is the
// amplitude of the state with bit t clear.
//
// t >= reg.Width is a programming error and is not checked. A non-2x2 matrix is impossible by
// construction in Go (Matrix2 is a fixed-size array), so DimMismatch as
// described by the reference source cannot occur through this entry
// point; qreg.FromDense is the one path that takes a caller-supplied
// length and can still report it.
//
// reg must carry a hash index (built by New, Kronecker and Copy of an
// indexed register; NewSize, NewSparse and FromDense build none): Gate1 needs it to find each basis state's XOR
// partner and to know how many new entries to allocate before writing
// them.
func Gate1(reg *qreg.Register, t int, m Matrix2) error {
	origSize := reg.Size()
	if reg.HashBits > 0 {
		reg.HashReconstruct()
		growForPartners(reg, t)
	}

	bit := uint64(1) << uint(t)
	done := make([]bool, reg.Size())
	k := origSize

	for i := 0; i < origSize; i++ {
		if done[i] {
			continue
		}
		label := reg.LabelAt(i)
		iset := label&bit != 0
		j := reg.HashGet(label ^ bit)

		var tnot complex128
		if j >= 0 {
			tnot = reg.Amps[j]
		}
		a := reg.Amps[i]

		if iset {
			reg.Amps[i] = m[2]*tnot + m[3]*a
		} else {
			reg.Amps[i] = m[0]*a + m[1]*tnot
		}

		if j >= 0 {
			if iset {
				reg.Amps[j] = m[0]*tnot + m[1]*a
			} else {
				reg.Amps[j] = m[2]*a + m[3]*tnot
			}
			done[j] = true
		} else {
			// A partner basis state needs creating, unless the
			// relevant off-diagonal entry is zero.
			if (iset && m[1] == 0) || (!iset && m[2] == 0) {
				continue
			}
			reg.Labels[k] = label ^ bit
			if iset {
				reg.Amps[k] = m[1] * a
			} else {
				reg.Amps[k] = m[2] * a
			}
			k++
		}
	}

	if reg.HashBits > 0 {
		compact(reg)
	}

	reg.FireDecohere()
	return nil
}

// growCount returns how many partner basis states Gate1 must allocate
// for target bit t: entries whose XOR-partner does not already exist.
func growCount(reg *qreg.Register, t int) int {
	bit := uint64(1) << uint(t)
	n := 0
	for i := 0; i < reg.Size(); i++ {
		if reg.HashGet(reg.LabelAt(i)^bit) == -1 {
			n++
		}
	}
	return n
}

func growForPartners(reg *qreg.Register, t int) {
	n := growCount(reg, t)
	if n == 0 {
		return
	}
	reg.GrowZeroed(n)
}

// compact removes entries whose squared amplitude has fallen below the
// unified coalescing threshold.
func compact(reg *qreg.Register) {
	limit := qcomplex.Threshold(reg.Width)
	j := 0
	kept := 0
	for i := 0; i < reg.Size(); i++ {
		if qcomplex.Prob(reg.Amps[i]) < limit {
			j++
			continue
		}
		if j > 0 {
			reg.Labels[i-j] = reg.Labels[i]
			reg.Amps[i-j] = reg.Amps[i]
		}
		kept++
	}
	if j > 0 {
		reg.Shrink(kept)
	}
	reg.HashReconstruct()
	reg.CheckLoadFactor()
}
