package qreg

import "testing"

func TestCounterAddAndReset(t *testing.T) {
	c := &Counter{}
	if got := c.Add(3); got != 3 {
		t.Errorf("Add(3) = %d, want 3", got)
	}
	if got := c.Add(4); got != 7 {
		t.Errorf("Add(4) = %d, want 7", got)
	}
	if got := c.Value(); got != 7 {
		t.Errorf("Value() = %d, want 7", got)
	}
	if got := c.Add(-1); got != 0 {
		t.Errorf("Add(-1) = %d, want 0 (reset)", got)
	}
	if got := c.Value(); got != 0 {
		t.Errorf("Value() after reset = %d, want 0", got)
	}
}
