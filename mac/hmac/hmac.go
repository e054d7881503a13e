// Package hmac implements HMAC (RFC 2104) generically over any block hash
// in this module, ported from demoz's per-hash hmac_*.c files (hmac_sha1.c,
// hmac_md5.c, and siblings for sha2/sha3/blake2): an ipad/opad-keyed
// instance of the inner hash, streamed the same way the underlying hash
// is.
//
// Where the original C exposes one hmac_<hash> pair per algorithm, this
// package exposes one streaming HMAC type parameterized by a Hasher
// factory, since Go interfaces make that consolidation natural without
// losing any of the per-hash behavior.
package hmac

import "demozcrypt/demozerr"

// Hasher is the minimal streaming contract an inner hash must satisfy to
// back an HMAC instance.
type Hasher interface {
	Process(p []byte)
	Finish()
	Sum() []byte
	BlockSize() int
}

// HMAC is the caller-owned streaming HMAC state.
type HMAC struct {
	newHasher func() Hasher
	ipad      Hasher
	opad      []byte
	done      bool
}

// New constructs an HMAC instance over newHasher with the given key. A key
// longer than the hash's block size is hashed down first, per RFC 2104.
func New(newHasher func() Hasher, key []byte) *HMAC {
	probe := newHasher()
	block := probe.BlockSize()

	if len(key) > block {
		probe.Process(key)
		probe.Finish()
		key = probe.Sum()
	}

	ipad := make([]byte, block)
	opad := make([]byte, block)
	for i := range ipad {
		ipad[i] = 0x36
		opad[i] = 0x5c
	}
	for i := 0; i < len(key); i++ {
		ipad[i] ^= key[i]
		opad[i] ^= key[i]
	}

	inner := newHasher()
	inner.Process(ipad)

	return &HMAC{newHasher: newHasher, ipad: inner, opad: opad}
}

// Write feeds more message bytes into the inner hash.
func (m *HMAC) Write(p []byte) error {
	if m.done {
		return demozerr.New(demozerr.Misuse, "hmac.Write", "already finalized")
	}
	m.ipad.Process(p)
	return nil
}

// Sum finalizes the inner hash, then hashes opad||inner to produce the tag.
func (m *HMAC) Sum() []byte {
	if m.done {
		return nil
	}
	m.ipad.Finish()
	inner := m.ipad.Sum()

	outer := m.newHasher()
	outer.Process(m.opad)
	outer.Process(inner)
	outer.Finish()

	m.done = true
	return outer.Sum()
}

// Sum1 computes HMAC(newHasher, key, s) in one call.
func Sum1(newHasher func() Hasher, key, s []byte) []byte {
	m := New(newHasher, key)
	m.Write(s)
	return m.Sum()
}
