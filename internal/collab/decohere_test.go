package collab

import (
	"testing"

	"github.com/oisee/qureg/pkg/qreg"
)

func TestDecohererZeroRateIsNoop(t *testing.T) {
	r := qreg.New(0, 2)
	defer r.Destroy()
	before := r.Amps[0]

	d := NewDecoherer(0, 1, 2)
	d.Perturb(r)

	if r.Amps[0] != before {
		t.Errorf("amplitude changed with Rate=0: %v -> %v", before, r.Amps[0])
	}
}

func TestDecohererPreservesAmplitudeModulus(t *testing.T) {
	r := qreg.New(0, 2)
	defer r.Destroy()

	d := NewDecoherer(1, 7, 11) // rate 1: always perturbs
	d.Perturb(r)

	mod := real(r.Amps[0])*real(r.Amps[0]) + imag(r.Amps[0])*imag(r.Amps[0])
	if diff := mod - 1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("|amplitude|^2 = %v, want 1 (a pure phase rotation preserves modulus)", mod)
	}
}
