package gate

import (
	"math"

	"github.com/oisee/qureg/internal/workpool"
	"github.com/oisee/qureg/pkg/qcomplex"
	"github.com/oisee/qureg/pkg/qreg"
)

// CNOT flips target's bit on every basis state whose control bit is
// set. It never grows or shrinks the entry set, so it runs without
// touching the hash index.
func CNOT(reg *qreg.Register, control, target int) error {
	qecNote(reg, "cnot")
	if reg.ObjCodePut(qreg.OpCNOT, float64(control), float64(target)) {
		return nil
	}
	controlBit := uint64(1) << uint(control)
	targetBit := uint64(1) << uint(target)
	workpool.ForRange(reg.Size(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if reg.Labels[i]&controlBit != 0 {
				reg.Labels[i] ^= targetBit
			}
		}
	})
	reg.FireDecohere()
	return nil
}

// Toffoli flips target's bit on every basis state where both control
// bits are set.
func Toffoli(reg *qreg.Register, control1, control2, target int) error {
	qecNote(reg, "toffoli")
	if reg.ObjCodePut(qreg.OpToffoli, float64(control1), float64(control2), float64(target)) {
		return nil
	}
	c1 := uint64(1) << uint(control1)
	c2 := uint64(1) << uint(control2)
	t := uint64(1) << uint(target)
	workpool.ForRange(reg.Size(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if reg.Labels[i]&c1 != 0 && reg.Labels[i]&c2 != 0 {
				reg.Labels[i] ^= t
			}
		}
	})
	reg.FireDecohere()
	return nil
}

// UnboundedToffoli flips target's bit on every basis state where every
// control bit in controls is set. It is not considered an elementary
// gate and has no fault-tolerant expansion.
func UnboundedToffoli(reg *qreg.Register, controls []int, target int) error {
	args := make([]float64, 0, len(controls)+1)
	for _, c := range controls {
		args = append(args, float64(c))
	}
	args = append(args, float64(target))
	if reg.ObjCodePut(qreg.OpToffoliN, args...) {
		return nil
	}
	t := uint64(1) << uint(target)
	workpool.ForRange(reg.Size(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			all := true
			for _, c := range controls {
				if reg.Labels[i]&(uint64(1)<<uint(c)) == 0 {
					all = false
					break
				}
			}
			if all {
				reg.Labels[i] ^= t
			}
		}
	})
	reg.FireDecohere()
	return nil
}

// SigmaX flips target's bit on every basis state.
func SigmaX(reg *qreg.Register, target int) error {
	qecNote(reg, "sigma_x")
	if reg.ObjCodePut(qreg.OpSigmaX, float64(target)) {
		return nil
	}
	bit := uint64(1) << uint(target)
	workpool.ForRange(reg.Size(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			reg.Labels[i] ^= bit
		}
	})
	reg.FireDecohere()
	return nil
}

// SigmaY flips target's bit and multiplies the amplitude by +i if the
// bit ends up set, -i otherwise.
func SigmaY(reg *qreg.Register, target int) error {
	if reg.ObjCodePut(qreg.OpSigmaY, float64(target)) {
		return nil
	}
	bit := uint64(1) << uint(target)
	workpool.ForRange(reg.Size(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			reg.Labels[i] ^= bit
			if reg.Labels[i]&bit != 0 {
				reg.Amps[i] *= complex(0, 1)
			} else {
				reg.Amps[i] *= complex(0, -1)
			}
		}
	})
	reg.FireDecohere()
	return nil
}

// SigmaZ multiplies the amplitude by -1 wherever target's bit is set.
func SigmaZ(reg *qreg.Register, target int) error {
	if reg.ObjCodePut(qreg.OpSigmaZ, float64(target)) {
		return nil
	}
	bit := uint64(1) << uint(target)
	workpool.ForRange(reg.Size(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if reg.Labels[i]&bit != 0 {
				reg.Amps[i] *= -1
			}
		}
	})
	reg.FireDecohere()
	return nil
}

// RZ rotates the phase of target by gamma about the z-axis: amplitudes
// with the bit set are multiplied by exp(i*gamma/2), amplitudes with
// the bit clear are divided by it.
func RZ(reg *qreg.Register, target int, gamma float64) error {
	if reg.ObjCodePut(qreg.OpRotZ, float64(target), gamma) {
		return nil
	}
	z := qcomplex.Cexp(gamma / 2)
	bit := uint64(1) << uint(target)
	workpool.ForRange(reg.Size(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if reg.LabelAt(i)&bit != 0 {
				reg.Amps[i] *= z
			} else {
				reg.Amps[i] /= z
			}
		}
	})
	reg.FireDecohere()
	return nil
}

// PhaseScale multiplies every amplitude in the register by
// exp(i*gamma), a global phase that has no observable effect on its
// own but is useful as a building block for controlled phase gates.
func PhaseScale(reg *qreg.Register, target int, gamma float64) error {
	if reg.ObjCodePut(qreg.OpPhaseScale, float64(target), gamma) {
		return nil
	}
	z := qcomplex.Cexp(gamma)
	workpool.ForRange(reg.Size(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			reg.Amps[i] *= z
		}
	})
	reg.FireDecohere()
	return nil
}

// PhaseKick multiplies the amplitude by exp(i*gamma) wherever target's
// bit is set.
func PhaseKick(reg *qreg.Register, target int, gamma float64) error {
	if reg.ObjCodePut(qreg.OpPhaseKick, float64(target), gamma) {
		return nil
	}
	z := qcomplex.Cexp(gamma)
	bit := uint64(1) << uint(target)
	workpool.ForRange(reg.Size(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if reg.LabelAt(i)&bit != 0 {
				reg.Amps[i] *= z
			}
		}
	})
	reg.FireDecohere()
	return nil
}

// CondPhase multiplies the amplitude by exp(i*pi/2^(control-target))
// wherever both control and target bits are set. control must be greater
// than target, the QFT usage this gate is built for; control <= target
// makes the exponent shift amount undefined.
func CondPhase(reg *qreg.Register, control, target int) error {
	if reg.ObjCodePut(qreg.OpCondPhase, float64(control), float64(target)) {
		return nil
	}
	z := qcomplex.Cexp(math.Pi / float64(uint64(1)<<uint(control-target)))
	applyCondPhase(reg, control, target, z)
	reg.FireDecohere()
	return nil
}

// CondPhaseInv is the inverse rotation of CondPhase, multiplying by
// exp(-i*pi/2^(control-target)) instead.
func CondPhaseInv(reg *qreg.Register, control, target int) error {
	if reg.ObjCodePut(qreg.OpCondPhaseInv, float64(control), float64(target)) {
		return nil
	}
	z := qcomplex.Cexp(-math.Pi / float64(uint64(1)<<uint(control-target)))
	applyCondPhase(reg, control, target, z)
	reg.FireDecohere()
	return nil
}

// CondPhaseKick multiplies the amplitude by exp(i*gamma) wherever both
// control and target bits are set, for an arbitrary caller-chosen
// angle rather than CondPhase's fixed pi/2^k family.
func CondPhaseKick(reg *qreg.Register, control, target int, gamma float64) error {
	if reg.ObjCodePut(qreg.OpCondPhaseKick, float64(control), float64(target), gamma) {
		return nil
	}
	applyCondPhase(reg, control, target, qcomplex.Cexp(gamma))
	reg.FireDecohere()
	return nil
}

// CondPhaseShift multiplies the amplitude by exp(i*gamma/2) wherever
// both control and target bits are set, and divides by it wherever the
// control bit is set but the target bit is clear.
func CondPhaseShift(reg *qreg.Register, control, target int, gamma float64) error {
	if reg.ObjCodePut(qreg.OpCondPhaseShift, float64(control), float64(target), gamma) {
		return nil
	}
	z := qcomplex.Cexp(gamma / 2)
	controlBit := uint64(1) << uint(control)
	targetBit := uint64(1) << uint(target)
	for i := range reg.Amps {
		label := reg.LabelAt(i)
		if label&controlBit == 0 {
			continue
		}
		if label&targetBit != 0 {
			reg.Amps[i] *= z
		} else {
			reg.Amps[i] /= z
		}
	}
	reg.FireDecohere()
	return nil
}

func applyCondPhase(reg *qreg.Register, control, target int, z complex128) {
	controlBit := uint64(1) << uint(control)
	targetBit := uint64(1) << uint(target)
	workpool.ForRange(reg.Size(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			label := reg.LabelAt(i)
			if label&controlBit != 0 && label&targetBit != 0 {
				reg.Amps[i] *= z
			}
		}
	})
}

// qecNote logs at debug level when a gate with a fault-tolerant
// alternative runs while an error-correcting code is active. Only
// SwapLeads actually re-expresses itself under QEC (as three CNOTs);
// the others have no fault-tolerant circuit grounded in this package
// and run their direct form regardless, so this is purely observability.
func qecNote(reg *qreg.Register, gateName string) {
	if enabled, codeID := reg.QECStatus(); enabled {
		reg.Log.Debug().Str("gate", gateName).Str("code", codeID).
			Msg("gate has no fault-tolerant expansion, running direct form under active code")
	}
}
