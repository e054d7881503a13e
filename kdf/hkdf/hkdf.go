// Package hkdf implements HKDF (RFC 5869) generically over any hmac.Hasher,
// ported from demoz's per-hash hkdf_*.c files (hkdf_sha1.c and siblings for
// md5/sha2/sha3/blake2): extract a pseudorandom key from ikm and salt, then
// expand it into len bytes of output keying material.
package hkdf

import "demozcrypt/demozerr"

// Hasher matches mac/hmac.Hasher; duplicated here to avoid a needless
// dependency edge from kdf onto mac for type identity alone (hmac.Hasher
// values still satisfy this interface structurally).
type Hasher interface {
	Process(p []byte)
	Finish()
	Sum() []byte
	BlockSize() int
}

func hmacOnce(newHasher func() Hasher, key []byte, parts ...[]byte) []byte {
	probe := newHasher()
	block := probe.BlockSize()

	k := key
	if len(k) > block {
		probe.Process(k)
		probe.Finish()
		k = probe.Sum()
	}

	ipad := make([]byte, block)
	opad := make([]byte, block)
	for i := range ipad {
		ipad[i] = 0x36
		opad[i] = 0x5c
	}
	for i := 0; i < len(k); i++ {
		ipad[i] ^= k[i]
		opad[i] ^= k[i]
	}

	inner := newHasher()
	inner.Process(ipad)
	for _, p := range parts {
		inner.Process(p)
	}
	inner.Finish()
	innerSum := inner.Sum()

	outer := newHasher()
	outer.Process(opad)
	outer.Process(innerSum)
	outer.Finish()
	return outer.Sum()
}

// Derive computes HKDF-Extract-then-Expand, producing n bytes of output
// keying material. hashLen is the underlying hash's digest size in bytes.
func Derive(newHasher func() Hasher, hashLen int, ikm, salt, info []byte, n int) ([]byte, error) {
	if n < 1 || n > 255*hashLen {
		return nil, demozerr.New(demozerr.ParamRange, "hkdf.Derive", "output length out of range")
	}

	if salt == nil {
		salt = make([]byte, hashLen)
	}
	prk := hmacOnce(newHasher, salt, ikm)

	okm := make([]byte, 0, n)
	var prev []byte
	for i := 1; len(okm) < n; i++ {
		t := hmacOnce(newHasher, prk, prev, info, []byte{byte(i)})
		okm = append(okm, t...)
		prev = t
	}

	return okm[:n], nil
}
