package gate

import (
	"math"

	"github.com/oisee/qureg/pkg/qreg"
)

func cosHalf(gamma float64) float64 { return math.Cos(gamma / 2) }
func sinHalf(gamma float64) float64 { return math.Sin(gamma / 2) }

// Hadamard applies the Hadamard transform to target via Gate1.
func Hadamard(reg *qreg.Register, target int) error {
	if reg.ObjCodePut(qreg.OpHadamard, float64(target)) {
		return nil
	}
	c := complex(invSqrt2, 0)
	return Gate1(reg, target, Matrix2{c, c, c, -c})
}

const invSqrt2 = 0.7071067811865476

// Walsh applies a Hadamard to every one of the register's width qubits,
// the Walsh-Hadamard transform.
func Walsh(reg *qreg.Register, width int) error {
	for i := 0; i < width; i++ {
		if err := Hadamard(reg, i); err != nil {
			return err
		}
	}
	return nil
}

// RX rotates target about the x-axis by gamma, via Gate1.
func RX(reg *qreg.Register, target int, gamma float64) error {
	if reg.ObjCodePut(qreg.OpRotX, float64(target), gamma) {
		return nil
	}
	c := complex(cosHalf(gamma), 0)
	s := complex(0, -sinHalf(gamma))
	return Gate1(reg, target, Matrix2{c, s, s, c})
}

// RY rotates target about the y-axis by gamma, via Gate1.
func RY(reg *qreg.Register, target int, gamma float64) error {
	if reg.ObjCodePut(qreg.OpRotY, float64(target), gamma) {
		return nil
	}
	c := complex(cosHalf(gamma), 0)
	s := complex(sinHalf(gamma), 0)
	return Gate1(reg, target, Matrix2{c, -s, s, c})
}
