// Package pbkdf2 implements PBKDF2-HMAC (RFC 8018) generically over any
// hmac.Hasher, ported from demoz's per-hash pbkdf2_*.c files (pbkdf2_sha1.c
// and siblings): an F(pass, salt, k, i) block function iterated k times per
// output block, XOR-accumulated into the derived key.
package pbkdf2

import "demozcrypt/demozerr"

// Hasher matches mac/hmac.Hasher.
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

// Derive computes PBKDF2-HMAC, producing dklen bytes of derived key
// material over iter iterations. hashLen is the underlying hash's digest
// size in bytes.
func Derive(newHasher func() Hasher, hashLen int, pass, salt []byte, iter, dklen int) ([]byte, error) {
	if iter < 1 {
		return nil, demozerr.New(demozerr.ParamRange, "pbkdf2.Derive", "iteration count must be positive")
	}
	if dklen < 1 {
		return nil, demozerr.New(demozerr.ParamRange, "pbkdf2.Derive", "derived key length must be positive")
	}

	n := (dklen + hashLen - 1) / hashLen
	dk := make([]byte, 0, n*hashLen)

	for i := 1; i <= n; i++ {
		count := []byte{byte(i >> 24), byte(i >> 16), byte(i >> 8), byte(i)}

		u := hmacOnce(newHasher, pass, salt, count)
		tmp := append([]byte(nil), u...)

		for j := 1; j < iter; j++ {
			u = hmacOnce(newHasher, pass, u)
			for l := range tmp {
				tmp[l] ^= u[l]
			}
		}

		dk = append(dk, tmp...)
	}

	return dk[:dklen], nil
}
