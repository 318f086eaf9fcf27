package qreg

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// Fixed process-wide key pair for the hash index's seed mixer.
// SipHash-2-4 with a fixed key is a permutation-like mixer of all label
// bits, real and well-studied rather than a hand-rolled xor-rotate
// (grounded on SnellerInc-sneller's use of github.com/dchest/siphash
// for its own hash-join keying).
const (
	hashKey0 uint64 = 0x5b6f4a1c9d3e2f71
	hashKey1 uint64 = 0x1f0e2d3c4b5a6978
)

// seed mixes a basis-state label into a 64-bit value suitable for
// reduction mod 2^h.
func seed(label uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], label)
	return siphash.Hash(hashKey0, hashKey1, buf[:])
}

func (r *Register) allocHash() {
	r.hash = make([]uint32, uint64(1)<<uint(r.HashBits))
}

// hashDestroy frees the hash table and marks it absent.
func (r *Register) hashDestroy() {
	if r.HashBits == 0 {
		return
	}
	r.Hooks.memMan(-int64(len(r.hash) * bytesPerHashSlot))
	r.hash = nil
	r.HashBits = 0
}

// hashAdd inserts label at position pos (0-based) by linear probing from
// seed(label) mod 2^h, wrapping at the table end. Undefined behaviour if
// label already exists or the table is full.
func (r *Register) hashAdd(label uint64, pos int) {
	mask := uint64(len(r.hash)) - 1
	i := seed(label) & mask
	for r.hash[i] != 0 {
		i = (i + 1) & mask
	}
	r.hash[i] = uint32(pos + 1)
}

// HashGet returns the entry position holding label, or -1 if the probe
// reaches an empty slot first. If the register carries
// no hash index, HashGet falls back to a linear scan instead of the
// reference implementation's undefined behaviour; that path is O(size).
func (r *Register) HashGet(label uint64) int {
	if r.HashBits == 0 {
		for i := 0; i < r.Size(); i++ {
			if r.labelAt(i) == label {
				return i
			}
		}
		return -1
	}
	mask := uint64(len(r.hash)) - 1
	i := seed(label) & mask
	for {
		p := r.hash[i]
		if p == 0 {
			return -1
		}
		if r.labelAt(int(p-1)) == label {
			return int(p - 1)
		}
		i = (i + 1) & mask
	}
}

// hashReconstruct zeroes the table and re-adds every current entry in
// order, an O(size) rebuild. It is a no-op on
// a register with no hash index.
func (r *Register) hashReconstruct() {
	if r.HashBits == 0 {
		return
	}
	for i := range r.hash {
		r.hash[i] = 0
	}
	for i := 0; i < r.Size(); i++ {
		r.hashAdd(r.labelAt(i), i)
	}
}

// checkLoadFactor emits a debug-channel warning if size exceeds half the
// hash table capacity. It never grows the table itself.
func (r *Register) checkLoadFactor() {
	if r.HashBits == 0 {
		return
	}
	if r.Size() > 1<<uint(r.HashBits-1) {
		r.Log.Debug().
			Str("register", r.ID.String()).
			Int("size", r.Size()).
			Int("hash_slots", 1<<uint(r.HashBits)).
			Msg("inefficient hash table load factor")
	}
}

// HashSound reports whether HashGet(label[p]) == p for every entry p,
// the invariant that must hold after any hash-using gate runs.
func (r *Register) HashSound() bool {
	if r.HashBits == 0 {
		return true
	}
	for p := 0; p < r.Size(); p++ {
		if r.HashGet(r.labelAt(p)) != p {
			return false
		}
	}
	return true
}
