package collab

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// MemTally is a MemMan hook backing: an atomic running byte count with
// a high-water mark, logged when it grows past the previous peak.
type MemTally struct {
	current atomic.Int64
	peak    atomic.Int64
	Log     zerolog.Logger
}

// NewMemTally returns a zeroed tally logging through log.
func NewMemTally(log zerolog.Logger) *MemTally {
	return &MemTally{Log: log}
}

// Track is installed as a Register's Hooks.MemMan field.
func (m *MemTally) Track(delta int64) {
	cur := m.current.Add(delta)
	for {
		peak := m.peak.Load()
		if cur <= peak {
			return
		}
		if m.peak.CompareAndSwap(peak, cur) {
			m.Log.Debug().Int64("bytes", cur).Msg("new memory high-water mark")
			return
		}
	}
}

// Current returns the running byte count.
func (m *MemTally) Current() int64 { return m.current.Load() }

// Peak returns the highest byte count observed.
func (m *MemTally) Peak() int64 { return m.peak.Load() }
