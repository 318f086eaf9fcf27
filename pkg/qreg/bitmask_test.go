package qreg

import "testing"

func TestBitmask(t *testing.T) {
	cases := []struct {
		x    uint64
		bits []int
		want int
	}{
		{0b0000, []int{0, 1}, 0b00},
		{0b0001, []int{0, 1}, 0b01},
		{0b0010, []int{0, 1}, 0b10},
		{0b0011, []int{0, 1}, 0b11},
		{0b0110, []int{1, 2}, 0b11},
		{0b0100, []int{1, 2}, 0b10},
	}
	for _, c := range cases {
		if got := Bitmask(c.x, len(c.bits), c.bits); got != c.want {
			t.Errorf("Bitmask(%b, %v) = %b, want %b", c.x, c.bits, got, c.want)
		}
	}
}
