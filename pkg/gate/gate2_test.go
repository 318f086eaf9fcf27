package gate

import (
	"math"
	"testing"

	"github.com/oisee/qureg/pkg/qreg"
)

func TestGate2IdentityIsNoop(t *testing.T) {
	r := qreg.New(0b11, 2)
	defer r.Destroy()

	identity := Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	if err := Gate2(r, 0, 1, identity); err != nil {
		t.Fatalf("Gate2: %v", err)
	}
	if r.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", r.Size())
	}
	if r.LabelAt(0) != 0b11 {
		t.Errorf("label = %d, want 3", r.LabelAt(0))
	}
}

func TestGate2SwapPermutesBasisStates(t *testing.T) {
	// The 4x4 SWAP matrix exchanges |01> and |10>, leaving |00>, |11> fixed.
	swap := Matrix4{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}
	r := qreg.New(0b01, 2)
	defer r.Destroy()
	if err := Gate2(r, 0, 1, swap); err != nil {
		t.Fatalf("Gate2: %v", err)
	}
	if r.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", r.Size())
	}
	if r.LabelAt(0) != 0b10 {
		t.Errorf("label = %d, want 2 (swapped)", r.LabelAt(0))
	}
	if math.Abs(real(r.Amps[0])-1) > 1e-9 {
		t.Errorf("amplitude = %v, want 1", r.Amps[0])
	}
}
