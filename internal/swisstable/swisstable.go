// Package swisstable implements the SWAR, group-of-4 Swiss hash table from
// demoz ds/swissmap.c: a control-byte array packed four per probe group,
// H1/H2 hash splitting, and insert-or-get / find / tombstone-delete
// semantics over caller-owned fixed-size buckets.
package swisstable

import "demozcrypt/demozerr"

const (
	empty     uint8 = 0x80 // 0b1000_0000
	tombstone uint8 = 0xfe // 0b1111_1110
)

// Hash computes the 64-bit hash of a key.
type Hash func(key []byte) uint64

// Equal reports whether the bucket at p holds key.
type Equal func(bucket []byte, key []byte) bool

// Table is a fixed-capacity Swiss hash table over caller-owned buckets.
// Capacity must be a multiple of 4; the caller rebuilds into a larger
// instance when the load factor exceeds its threshold.
type Table struct {
	ctrl     []uint8
	array    []byte
	wsize    int // bytes per bucket
	size     int
	capacity int // bucket count, multiple of 4
	hash     Hash
	equal    Equal
}

// New creates a table over array (capacity*wsize bytes), with capacity
// rounded by the caller to a multiple of 4.
func New(array []byte, wsize, capacity int, hash Hash, equal Equal) *Table {
	t := &Table{
		array:    array,
		wsize:    wsize,
		capacity: capacity,
		hash:     hash,
		equal:    equal,
		ctrl:     make([]uint8, capacity),
	}
	for i := range t.ctrl {
		t.ctrl[i] = empty
	}
	return t
}

// Len returns the number of live entries.
func (t *Table) Len() int { return t.size }

// LoadFactor returns size/capacity * 1000, per spec's observable metric.
func (t *Table) LoadFactor() int { return (t.size * 1000) / t.capacity }

func (t *Table) bucket(pos int) []byte {
	off := pos * t.wsize
	return t.array[off : off+t.wsize]
}

// groupWord returns the group of 4 control bytes starting at pos packed
// into a uint32 (little-endian byte order across the 4 lanes).
func (t *Table) groupWord(pos int) uint32 {
	return uint32(t.ctrl[pos]) | uint32(t.ctrl[pos+1])<<8 |
		uint32(t.ctrl[pos+2])<<16 | uint32(t.ctrl[pos+3])<<24
}

// hasZeroByteMask is the classical SWAR "does any lane equal zero" test,
// applied after XORing the group with a repeated H2 so matching lanes
// become zero bytes.
func hasZeroByteMask(x uint32) uint32 {
	return (x - 0x01010101) & ^x & 0x80808080
}

// Insert returns the bucket for key: an existing match if found (get), or
// a freshly claimed empty/tombstone slot for the caller to populate. It
// returns a demozerr.Capacity error if no home could be found (100% load, not required to
// happen for a well-sized table).
func (t *Table) Insert(key []byte) ([]byte, error) {
	h := t.hash(key)
	h1 := h >> 7
	h2 := uint8(h & 0x7f)
	mask := uint32(h2) * 0x01010101

	n := t.capacity
	m := int(h1%uint64(n)) &^ 3

	for i := 0; i < n; i += 4 {
		pos := ((m + i) % n) &^ 3
		x := t.groupWord(pos)

		cand := hasZeroByteMask(x ^ mask)
		if cand != 0 {
			for j := 0; j < 4; j++ {
				if t.ctrl[pos+j] == h2 {
					b := t.bucket(pos + j)
					if t.equal(b, key) {
						return b, nil
					}
				}
			}
		}

		if x&0x80808080 != 0 {
			// group has a free (empty or tombstone) slot and no match: this
			// is where the key belongs.
			for j := 0; j < 4; j++ {
				if t.ctrl[pos+j]&0x80 != 0 {
					t.ctrl[pos+j] = h2
					t.size++
					return t.bucket(pos + j), nil
				}
			}
		}
	}

	return nil, demozerr.New(demozerr.Capacity, "swisstable.Insert", "no free slot")
}

// Find returns the bucket matching key, or nil.
func (t *Table) Find(key []byte) []byte {
	h := t.hash(key)
	h1 := h >> 7
	h2 := uint8(h & 0x7f)
	mask := uint32(h2) * 0x01010101

	n := t.capacity
	m := int(h1%uint64(n)) &^ 3

	for i := 0; i < n; i += 4 {
		pos := ((m + i) % n) &^ 3
		x := t.groupWord(pos)

		cand := hasZeroByteMask(x ^ mask)
		if cand != 0 {
			for j := 0; j < 4; j++ {
				if t.ctrl[pos+j] == h2 {
					b := t.bucket(pos + j)
					if t.equal(b, key) {
						return b
					}
				}
			}
		}

		if hasZeroByteMask(x^uint32(empty)*0x01010101) != 0 {
			// an empty slot in this group terminates the probe chain.
			return nil
		}
	}

	return nil
}

// Delete marks key's bucket as a tombstone and returns it, or nil if key
// was not present.
func (t *Table) Delete(key []byte) []byte {
	h := t.hash(key)
	h1 := h >> 7
	h2 := uint8(h & 0x7f)
	mask := uint32(h2) * 0x01010101

	n := t.capacity
	m := int(h1%uint64(n)) &^ 3

	for i := 0; i < n; i += 4 {
		pos := ((m + i) % n) &^ 3
		x := t.groupWord(pos)

		cand := hasZeroByteMask(x ^ mask)
		if cand != 0 {
			for j := 0; j < 4; j++ {
				if t.ctrl[pos+j] == h2 {
					b := t.bucket(pos + j)
					if t.equal(b, key) {
						t.ctrl[pos+j] = tombstone
						t.size--
						return b
					}
				}
			}
		}

		if hasZeroByteMask(x^uint32(empty)*0x01010101) != 0 {
			return nil
		}
	}

	return nil
}
