// Package bcrypt implements the bcrypt password hash, ported from demoz
// lib/bcrypt.c: an expensive Blowfish key schedule (salt-and-password
// folded in via cipher/blowfish.Ekskey, then 2^cost rounds alternating the
// password and salt back in) used to encrypt the fixed "OrpheanBeholder-
// ScryDoubt" constant 64 times.
package bcrypt

import (
	"demozcrypt/cipher/blowfish"
	"demozcrypt/demozerr"
	"demozcrypt/internal/ctutil"
)

// HashLen is the length of a bcrypt hashpass output in bytes.
const HashLen = 24

var magic = [6]uint32{
	0x4f727068, 0x65616e42, 0x65686f6c, 0x64657253, 0x63727944, 0x6f756274,
}

func encryptPair(ctx *blowfish.Context, a, b uint32) (uint32, uint32) {
	var block [8]byte
	block[0], block[1], block[2], block[3] = byte(a>>24), byte(a>>16), byte(a>>8), byte(a)
	block[4], block[5], block[6], block[7] = byte(b>>24), byte(b>>16), byte(b>>8), byte(b)

	var out [8]byte
	ctx.Encrypt(out[:], block[:])

	ra := uint32(out[0])<<24 | uint32(out[1])<<16 | uint32(out[2])<<8 | uint32(out[3])
	rb := uint32(out[4])<<24 | uint32(out[5])<<16 | uint32(out[6])<<8 | uint32(out[7])
	return ra, rb
}

// HashPass computes the 24-byte bcrypt hashpass for pass under salt, with
// cost 2^k rounds of key-schedule expansion.
func HashPass(pass, salt []byte, k uint32) ([HashLen]byte, error) {
	var out [HashLen]byte
	if k > 31 {
		return out, demozerr.New(demozerr.ParamRange, "bcrypt.HashPass", "cost too large")
	}

	var ctx blowfish.Context
	if err := ctx.Init(nil); err != nil {
		return out, err
	}
	if err := ctx.Ekskey(salt, pass); err != nil {
		return out, err
	}

	n := uint32(1) << k
	for i := uint32(0); i < n; i++ {
		ctx.Setkey(pass)
		ctx.Setkey(salt)
	}

	cdata := magic
	for i := 0; i < 64; i++ {
		cdata[0], cdata[1] = encryptPair(&ctx, cdata[0], cdata[1])
		cdata[2], cdata[3] = encryptPair(&ctx, cdata[2], cdata[3])
		cdata[4], cdata[5] = encryptPair(&ctx, cdata[4], cdata[5])
	}

	for i := 0; i < 6; i++ {
		out[4*i] = byte(cdata[i] >> 24)
		out[4*i+1] = byte(cdata[i] >> 16)
		out[4*i+2] = byte(cdata[i] >> 8)
		out[4*i+3] = byte(cdata[i])
	}

	return out, nil
}

// Auth reports whether two bcrypt hashpass outputs are equal, in constant
// time.
func Auth(a, b [HashLen]byte) bool {
	return ctutil.Equal(a[:], b[:])
}
