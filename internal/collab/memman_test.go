package collab

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestMemTallyTracksCurrentAndPeak(t *testing.T) {
	m := NewMemTally(zerolog.Nop())
	m.Track(100)
	m.Track(50)
	if got := m.Current(); got != 150 {
		t.Errorf("Current() = %d, want 150", got)
	}
	if got := m.Peak(); got != 150 {
		t.Errorf("Peak() = %d, want 150", got)
	}
	m.Track(-70)
	if got := m.Current(); got != 80 {
		t.Errorf("Current() = %d, want 80", got)
	}
	if got := m.Peak(); got != 150 {
		t.Errorf("Peak() = %d, want 150 (unchanged by a shrink)", got)
	}
}
