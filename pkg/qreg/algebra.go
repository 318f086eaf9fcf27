package qreg

import (
	"math"

	"github.com/oisee/qureg/internal/workpool"
	"github.com/oisee/qureg/pkg/qcomplex"
)

// Kronecker computes the tensor product r1 (x) r2: a freshly-owned
// register of width w1+w2 whose entries are every pairing of r1's and
// r2's entries, new label = (r1.label[i] << w2) | r2.label[j] and new
// amplitude = r1.amp[i] * r2.amp[j]. A fresh hash at
// width+2 is built, matching every other fresh-construction path.
func Kronecker(r1, r2 *Register) *Register {
	w2 := r2.Width
	out := newRegister(r1.Width+r2.Width, WithHooks(r1.Hooks), WithCounter(r1.Counter), WithLogger(r1.Log))
	size := r1.Size() * r2.Size()
	out.Labels = make([]uint64, size)
	out.Amps = make([]complex128, size)

	k := 0
	for i := 0; i < r1.Size(); i++ {
		l1 := r1.labelAt(i)
		a1 := r1.Amps[i]
		for j := 0; j < r2.Size(); j++ {
			out.Labels[k] = (l1 << uint(w2)) | r2.labelAt(j)
			out.Amps[k] = a1 * r2.Amps[j]
			k++
		}
	}

	out.HashBits = out.Width + 2
	out.allocHash()
	out.hashReconstruct()
	out.Hooks.memMan(int64(size*(bytesPerLabel+bytesPerAmplitude) + (1<<uint(out.HashBits))*bytesPerHashSlot))
	return out
}

// DotProduct returns sum_x conj(r1[x]) * r2[x] over labels present in
// both registers. r2's hash is reconstructed first.
func DotProduct(r1, r2 *Register) complex128 {
	return dotProduct(r1, r2, true)
}

// DotProductNoConj is DotProduct without the conjugate on r1's
// amplitudes.
func DotProductNoConj(r1, r2 *Register) complex128 {
	return dotProduct(r1, r2, false)
}

func dotProduct(r1, r2 *Register, conj bool) complex128 {
	r2.hashReconstruct()
	return dotProductIndexed(r1, r2, conj)
}

// dotProductIndexed is dotProduct without the rebuild of r2's hash, for
// callers that have already reconstructed it.
func dotProductIndexed(r1, r2 *Register, conj bool) complex128 {
	var f complex128
	for i := 0; i < r1.Size(); i++ {
		var j int
		if r2.Dense() {
			j = int(r1.labelAt(i))
		} else {
			j = r2.HashGet(r1.labelAt(i))
		}
		if j < 0 || j >= r2.Size() {
			continue
		}
		a1 := r1.Amps[i]
		if conj {
			a1 = qcomplex.Conj(a1)
		}
		f += a1 * r2.Amps[j]
	}
	return f
}

// VectorAdd returns a freshly-owned register equal to r1 + r2,
// entry-wise on matching labels and appended for labels only r2 has.
// This is a purely mathematical operation with no physical meaning
// (the result is not renormalised).
func VectorAdd(r1, r2 *Register) *Register {
	out := r1.Copy()
	vectorAddInto(out, r2)
	return out
}

// VectorAddInPlace adds r2 into r1.
func VectorAddInPlace(r1, r2 *Register) {
	vectorAddInto(r1, r2)
}

func vectorAddInto(dst, src *Register) {
	dst.hashReconstruct()

	addSize := 0
	for i := 0; i < src.Size(); i++ {
		if dst.HashGet(src.labelAt(i)) == -1 {
			addSize++
		}
	}

	if addSize > 0 {
		dst.Labels = append(dst.Labels, make([]uint64, addSize)...)
		dst.Amps = append(dst.Amps, make([]complex128, addSize)...)
		dst.Hooks.memMan(int64(addSize * (bytesPerLabel + bytesPerAmplitude)))
	}

	k := dst.Size() - addSize
	if src.Dense() {
		for i := 0; i < src.Size(); i++ {
			dst.Amps[i] += src.Amps[i]
		}
		return
	}
	for i := 0; i < src.Size(); i++ {
		label := src.labelAt(i)
		if j := dst.HashGet(label); j >= 0 {
			dst.Amps[j] += src.Amps[i]
		} else {
			dst.Labels[k] = label
			dst.Amps[k] = src.Amps[i]
			k++
		}
	}
}

// ScalarMul multiplies every amplitude of r by s in place.
func ScalarMul(s complex128, r *Register) {
	for i := range r.Amps {
		r.Amps[i] *= s
	}
}

// Normalize rescales r so that the sum of squared amplitude moduli is 1.
func Normalize(r *Register) {
	var sum float64
	for _, a := range r.Amps {
		sum += qcomplex.Prob(a)
	}
	ScalarMul(complex(1/math.Sqrt(sum), 0), r)
}

// Collapse returns a new register of width w-1 containing the entries
// whose label has bit pos equal to value, relabelled by extracting that
// bit and renormalised by the pre-collapse probability mass of the kept
// subspace. The returned register's HashBits is copied
// verbatim from reg — it is stale the moment entries are relabelled, and
// callers needing a hash must reconstruct it.
func Collapse(pos int, value int, reg *Register) *Register {
	posBit := uint64(1) << uint(pos)
	want := value != 0

	var mass float64
	size := 0
	for i := 0; i < reg.Size(); i++ {
		if (reg.labelAt(i)&posBit != 0) == want {
			mass += qcomplex.Prob(reg.Amps[i])
			size++
		}
	}

	out := newRegister(reg.Width-1, WithHooks(reg.Hooks), WithCounter(reg.Counter), WithLogger(reg.Log))
	out.Labels = make([]uint64, size)
	out.Amps = make([]complex128, size)
	out.HashBits = reg.HashBits
	if out.HashBits > 0 {
		out.allocHash()
	}

	norm := complex(1/math.Sqrt(mass), 0)
	lowMask := posBit - 1

	j := 0
	for i := 0; i < reg.Size(); i++ {
		label := reg.labelAt(i)
		if (label&posBit != 0) != want {
			continue
		}
		lpat := label &^ (lowMask | posBit)
		rpat := label & lowMask
		out.Labels[j] = (lpat >> 1) | rpat
		out.Amps[j] = reg.Amps[i] * norm
		j++
	}

	out.Hooks.memMan(int64(size*(bytesPerLabel+bytesPerAmplitude) + len(out.hash)*bytesPerHashSlot))
	return out
}

// RowFunc computes the row of a linear operator acting on basis state
// label at time t, for use with MatrixQureg.
type RowFunc func(label uint64, t float64) *Register

// MatrixQureg applies a function-defined linear operator A to reg: the
// output at position i is DotProductNoConj(A(i, t), reg).
// Row evaluation runs over a bounded worker pool when reg is large
// enough to make that worthwhile; keepRows controls whether each row register A(i,t) is
// released (flags&1 in the reference source) or left for the caller to
// manage.
func MatrixQureg(a RowFunc, t float64, reg *Register, keepRows bool) *Register {
	out := newRegister(reg.Width, WithHooks(reg.Hooks), WithCounter(reg.Counter), WithLogger(reg.Log))
	out.Amps = make([]complex128, reg.Size())
	if !reg.Dense() {
		out.Labels = make([]uint64, reg.Size())
	}

	reg.hashReconstruct()
	workpool.ForRange(reg.Size(), func(lo, hi int) {
		matrixQuregRange(a, t, reg, out, keepRows, lo, hi)
	})

	out.Hooks.memMan(int64(len(out.Amps)*bytesPerAmplitude + len(out.Labels)*bytesPerLabel))
	return out
}

func matrixQuregRange(a RowFunc, t float64, reg, out *Register, keepRows bool, lo, hi int) {
	for i := lo; i < hi; i++ {
		if !out.Dense() {
			out.Labels[i] = uint64(i)
		}
		row := a(uint64(i), t)
		out.Amps[i] = dotProductIndexed(row, reg, false)
		if !keepRows {
			row.Destroy()
		}
	}
}

// AddScratch widens reg by the given number of low-order bits,
// initialised to zero, by shifting every label up. Useful scratch space for algorithms that need
// extra qubits below the existing register.
func AddScratch(bits int, reg *Register) {
	reg.Width += bits
	for i := range reg.Labels {
		reg.Labels[i] <<= uint(bits)
	}
	if reg.HashBits > 0 {
		reg.hashReconstruct()
	}
}
