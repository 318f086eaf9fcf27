package gate

import (
	"github.com/oisee/qureg/pkg/qreg"
)

// Matrix4 is a row-major 4x4 unitary acting on the joint two-qubit
// subspace, indexed by the group index Bitmask(x, 2, []int{t1, t2}):
// bit 0 of a row/column index is target1's bit and bit 1 is target2's.
type Matrix4 [16]complex128

func (m Matrix4) at(row, col int) complex128 { return m[row*4+col] }

// Gate2 applies the 4x4 unitary m to the joint subspace of target1 and
// target2 in place: new_amp[j] = sum_k M[j][k] * old_amp[base[k]],
// where base[k] is the entry occupying basis-group index k (Bitmask
// order over {target1, target2}) relative to the group the entry at i
// belongs to.
func Gate2(reg *qreg.Register, target1, target2 int, m Matrix4) error {
	reg.HashReconstruct()

	bits := []int{target1, target2}
	bit1 := uint64(1) << uint(target1)
	bit2 := uint64(1) << uint(target2)

	addSize := 0
	for i := 0; i < reg.Size(); i++ {
		label := reg.LabelAt(i)
		if reg.HashGet(label^bit1) == -1 {
			addSize++
		}
		if reg.HashGet(label^bit2) == -1 {
			addSize++
		}
		if reg.HashGet(label^bit1^bit2) == -1 {
			addSize++
		}
	}

	origSize := reg.Size()
	reg.GrowZeroed(addSize)

	done := make([]bool, reg.Size())
	l := origSize

	var base [4]int
	var psi [4]complex128

	for i := 0; i < origSize; i++ {
		if done[i] {
			continue
		}
		label := reg.LabelAt(i)
		j := qreg.Bitmask(label, 2, bits)
		base[j] = i
		base[j^1] = reg.HashGet(label ^ bit1)
		base[j^2] = reg.HashGet(label ^ bit2)
		base[j^3] = reg.HashGet(label ^ bit1 ^ bit2)

		for k := 0; k < 4; k++ {
			if base[k] == -1 {
				base[k] = l
				reg.Labels[l] = labelForSlot(label, j, k, target1, target2)
				l++
			}
			psi[k] = reg.Amps[base[k]]
		}

		for k := 0; k < 4; k++ {
			var sum complex128
			for n := 0; n < 4; n++ {
				sum += m.at(k, n) * psi[n]
			}
			reg.Amps[base[k]] = sum
			done[base[k]] = true
		}
	}

	compact(reg)
	reg.FireDecohere()
	return nil
}

// labelForSlot returns the basis label reached from label (which
// occupies group index j over bit1/bit2) by moving to group index k.
// Bitmask's i-th result bit tracks bits[i], so bit 0 of the group index
// tracks target1 and bit 1 tracks target2.
func labelForSlot(label uint64, j, k, target1, target2 int) uint64 {
	diff := j ^ k
	out := label
	if diff&1 != 0 {
		out ^= uint64(1) << uint(target1)
	}
	if diff&2 != 0 {
		out ^= uint64(1) << uint(target2)
	}
	return out
}
