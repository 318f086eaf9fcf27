package verify

import (
	"testing"

	"github.com/oisee/qureg/pkg/gate"
	"github.com/oisee/qureg/pkg/qreg"
)

func TestEquivalentSameRegister(t *testing.T) {
	r := qreg.New(3, 2)
	defer r.Destroy()
	c := r.Copy()
	defer c.Destroy()
	if !Equivalent(r, c, DefaultTolerance) {
		t.Error("Equivalent(r, copy of r) = false")
	}
}

func TestEquivalentDetectsDifference(t *testing.T) {
	r1 := qreg.New(0, 2)
	defer r1.Destroy()
	r2 := qreg.New(1, 2)
	defer r2.Destroy()
	if Equivalent(r1, r2, DefaultTolerance) {
		t.Error("Equivalent(|00>, |01>) = true, want false")
	}
}

func TestNormalizedFreshRegister(t *testing.T) {
	r := qreg.New(0, 2)
	defer r.Destroy()
	if !Normalized(r, 1e-9) {
		t.Error("Normalized(New(...)) = false")
	}
}

func TestInvolutionSigmaX(t *testing.T) {
	r := qreg.New(2, 3)
	defer r.Destroy()
	ok, err := Involution(r, func(reg *qreg.Register) error { return gate.SigmaX(reg, 0) }, DefaultTolerance)
	if err != nil {
		t.Fatalf("Involution: %v", err)
	}
	if !ok {
		t.Error("sigma_x should be its own inverse")
	}
}

func TestInvolutionRXIsNotGenerallySelfInverse(t *testing.T) {
	r := qreg.New(0, 1)
	defer r.Destroy()
	ok, err := Involution(r, func(reg *qreg.Register) error { return gate.RX(reg, 0, 1.0) }, DefaultTolerance)
	if err != nil {
		t.Fatalf("Involution: %v", err)
	}
	if ok {
		t.Error("RX(1.0) applied twice should not return to the start state")
	}
}

func TestCommuteDisjointTargets(t *testing.T) {
	r := qreg.New(0, 2)
	defer r.Destroy()
	ok, err := Commute(r,
		func(reg *qreg.Register) error { return gate.SigmaX(reg, 0) },
		func(reg *qreg.Register) error { return gate.SigmaZ(reg, 1) },
		DefaultTolerance)
	if err != nil {
		t.Fatalf("Commute: %v", err)
	}
	if !ok {
		t.Error("gates on disjoint qubits should commute")
	}
}

func TestMismatchesZeroForIdenticalSequences(t *testing.T) {
	samples := ComputationalBasisSamples(2)
	defer func() {
		for _, s := range samples {
			s.Destroy()
		}
	}()
	op := func(reg *qreg.Register) error { return gate.CNOT(reg, 0, 1) }
	n, err := Mismatches(samples, op, op, DefaultTolerance)
	if err != nil {
		t.Fatalf("Mismatches: %v", err)
	}
	if n != 0 {
		t.Errorf("Mismatches(op, op) = %d, want 0", n)
	}
}

func TestMismatchesNonZeroForDifferentSequences(t *testing.T) {
	samples := ComputationalBasisSamples(2)
	defer func() {
		for _, s := range samples {
			s.Destroy()
		}
	}()
	target := func(reg *qreg.Register) error { return gate.CNOT(reg, 0, 1) }
	candidate := func(reg *qreg.Register) error { return gate.CNOT(reg, 1, 0) }
	n, err := Mismatches(samples, target, candidate, DefaultTolerance)
	if err != nil {
		t.Fatalf("Mismatches: %v", err)
	}
	if n == 0 {
		t.Error("Mismatches(CNOT(0,1), CNOT(1,0)) = 0, want > 0")
	}
}

func TestUnitary2Hadamard(t *testing.T) {
	c := complex(0.7071067811865476, 0)
	if !Unitary2(gate.Matrix2{c, c, c, -c}, DefaultTolerance) {
		t.Error("Hadamard matrix should be unitary")
	}
}

func TestUnitary2RejectsNonUnitary(t *testing.T) {
	if Unitary2(gate.Matrix2{1, 1, 0, 1}, DefaultTolerance) {
		t.Error("a shear matrix should not be reported unitary")
	}
}

func TestUnitary4Swap(t *testing.T) {
	swap := gate.Matrix4{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}
	if !Unitary4(swap, DefaultTolerance) {
		t.Error("SWAP matrix should be unitary")
	}
}
