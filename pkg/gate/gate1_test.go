package gate

import (
	"math"
	"testing"

	"github.com/oisee/qureg/pkg/qreg"
)

const invSqrt2Test = 0.7071067811865476

func TestGate1HadamardOnZeroGivesEqualSuperposition(t *testing.T) {
	r := qreg.New(0, 1)
	defer r.Destroy()

	c := complex(invSqrt2Test, 0)
	if err := Gate1(r, 0, Matrix2{c, c, c, -c}); err != nil {
		t.Fatalf("Gate1: %v", err)
	}
	if r.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", r.Size())
	}
	if !r.HashSound() {
		t.Error("HashSound() = false after Gate1")
	}

	dense := r.ToDense()
	for i, a := range dense {
		want := complex(invSqrt2Test, 0)
		if math.Abs(real(a)-real(want)) > 1e-9 {
			t.Errorf("dense[%d] = %v, want %v", i, a, want)
		}
	}
}

func TestGate1HadamardTwiceIsIdentity(t *testing.T) {
	r := qreg.New(1, 2)
	defer r.Destroy()

	c := complex(invSqrt2Test, 0)
	h := Matrix2{c, c, c, -c}
	if err := Gate1(r, 0, h); err != nil {
		t.Fatalf("Gate1: %v", err)
	}
	if err := Gate1(r, 0, h); err != nil {
		t.Fatalf("Gate1: %v", err)
	}

	if r.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 after H*H = I", r.Size())
	}
	if r.LabelAt(0) != 1 {
		t.Errorf("label = %d, want 1", r.LabelAt(0))
	}
	if math.Abs(real(r.Amps[0])-1) > 1e-9 || math.Abs(imag(r.Amps[0])) > 1e-9 {
		t.Errorf("amplitude = %v, want 1", r.Amps[0])
	}
}

func TestGate1IdentityIsNoop(t *testing.T) {
	r := qreg.New(2, 2)
	defer r.Destroy()
	if err := Gate1(r, 1, Matrix2{1, 0, 0, 1}); err != nil {
		t.Fatalf("Gate1: %v", err)
	}
	if r.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", r.Size())
	}
	if r.LabelAt(0) != 2 {
		t.Errorf("label = %d, want 2", r.LabelAt(0))
	}
}
