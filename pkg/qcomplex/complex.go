// Package qcomplex is the complex arithmetic surface used throughout the
// register and gate kernels: squared modulus, complex exponentiation, and
// conjugation, plus the coalescing threshold shared by gate1 and gate2.
package qcomplex

import "math"

// Epsilon is the single coalescing threshold used by every kernel that
// compacts near-zero amplitudes. The reference source used two different
// magic constants (epsilon/2^width in gate1, 1e-6/2^width in gate2); this
// unifies on one.
const Epsilon = 1e-6

// Threshold returns the minimum squared amplitude a basis state may carry
// before it is compacted out of a width-qubit register.
func Threshold(width int) float64 {
	return Epsilon / float64(uint64(1)<<uint(width))
}

// Prob returns the squared modulus of z, i.e. the probability mass it
// contributes to a normalised state.
func Prob(z complex128) float64 {
	r, i := real(z), imag(z)
	return r*r + i*i
}

// Cexp returns e^{i*phi} = cos(phi) + i*sin(phi).
func Cexp(phi float64) complex128 {
	s, c := math.Sincos(phi)
	return complex(c, s)
}

// Conj returns the complex conjugate of z.
func Conj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
