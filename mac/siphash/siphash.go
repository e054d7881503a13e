// Package siphash implements SipHash-2-4 and its 128-bit siphashx24
// extension, ported directly from demoz lib/siphash24.c: a one-shot,
// keyed pseudorandom function over short inputs, used as a hash-flooding
// resistant table hash rather than a general MAC.
package siphash

import "demozcrypt/demozerr"

// KeyLen is the required key length in bytes.
const KeyLen = 16

func rotl(x uint64, n uint) uint64 { return (x << n) | (x >> (64 - n)) }

func round(v0, v1, v2, v3 *uint64) {
	*v0 += *v1
	*v1 = rotl(*v1, 13)
	*v1 ^= *v0
	*v0 = rotl(*v0, 32)
	*v2 += *v3
	*v3 = rotl(*v3, 16)
	*v3 ^= *v2
	*v0 += *v3
	*v3 = rotl(*v3, 21)
	*v3 ^= *v0
	*v2 += *v1
	*v1 = rotl(*v1, 17)
	*v1 ^= *v2
	*v2 = rotl(*v2, 32)
}

func pack8(s []byte) uint64 {
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

func lastBlock(s []byte, total int) uint64 {
	m := uint64(total) << 56
	n := len(s)
	if n > 7 {
		n = 7
	}
	for i := n - 1; i >= 0; i-- {
		m |= uint64(s[i]) << (8 * uint(i))
	}
	return m
}

// Sum64 computes SipHash-2-4 of s with the given 16-byte key.
func Sum64(s, key []byte) (uint64, error) {
	if len(key) != KeyLen {
		return 0, demozerr.New(demozerr.ParamRange, "siphash.Sum64", "key must be 16 bytes")
	}

	v0 := uint64(0x736f6d6570736575)
	v1 := uint64(0x646f72616e646f6d)
	v2 := uint64(0x6c7967656e657261)
	v3 := uint64(0x7465646279746573)
	k0 := pack8(key)
	k1 := pack8(key[8:])

	v0 ^= k0
	v1 ^= k1
	v2 ^= k0
	v3 ^= k1

	total := len(s)
	for len(s) >= 8 {
		m := pack8(s)
		v3 ^= m
		round(&v0, &v1, &v2, &v3)
		round(&v0, &v1, &v2, &v3)
		v0 ^= m
		s = s[8:]
	}

	m := lastBlock(s, total)
	v3 ^= m
	round(&v0, &v1, &v2, &v3)
	round(&v0, &v1, &v2, &v3)
	v0 ^= m

	v2 ^= 0xff
	round(&v0, &v1, &v2, &v3)
	round(&v0, &v1, &v2, &v3)
	round(&v0, &v1, &v2, &v3)
	round(&v0, &v1, &v2, &v3)

	return v0 ^ v1 ^ v2 ^ v3, nil
}

// Sum128 computes the 128-bit siphashx24 extension of s with the given
// 16-byte key, returning the low and high 64-bit halves.
func Sum128(s, key []byte) (lo, hi uint64, err error) {
	if len(key) != KeyLen {
		return 0, 0, demozerr.New(demozerr.ParamRange, "siphash.Sum128", "key must be 16 bytes")
	}

	v0 := uint64(0x736f6d6570736575)
	v1 := uint64(0x646f72616e646f6d)
	v2 := uint64(0x6c7967656e657261)
	v3 := uint64(0x7465646279746573)
	k0 := pack8(key)
	k1 := pack8(key[8:])

	v0 ^= k0
	v1 ^= k1
	v2 ^= k0
	v3 ^= k1

	total := len(s)
	for len(s) >= 8 {
		m := pack8(s)
		v3 ^= m
		round(&v0, &v1, &v2, &v3)
		round(&v0, &v1, &v2, &v3)
		v0 ^= m
		s = s[8:]
	}

	m := lastBlock(s, total)
	v3 ^= m
	round(&v0, &v1, &v2, &v3)
	round(&v0, &v1, &v2, &v3)
	v0 ^= m

	v2 ^= 0xee
	round(&v0, &v1, &v2, &v3)
	round(&v0, &v1, &v2, &v3)
	round(&v0, &v1, &v2, &v3)
	round(&v0, &v1, &v2, &v3)
	lo = v0 ^ v1 ^ v2 ^ v3

	v2 ^= 0xdd
	round(&v0, &v1, &v2, &v3)
	round(&v0, &v1, &v2, &v3)
	round(&v0, &v1, &v2, &v3)
	round(&v0, &v1, &v2, &v3)
	hi = v0 ^ v1 ^ v2 ^ v3

	return lo, hi, nil
}
