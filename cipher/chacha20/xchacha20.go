package chacha20

import "demozcrypt/demozerr"

// XNonceLen is the extended 24-byte nonce XChaCha20 accepts.
const XNonceLen = 24

// hchacha20 runs the ChaCha20 core over key and a 16-byte nonce without the
// final feed-forward addition, returning the first and last state rows as a fresh 32-byte subkey. This
// is the HChaCha20 reduction ported from xchacha20.c's _hchacha20_keygen,
// used to stretch ChaCha20's 8-byte nonce into 24 bytes.
func hchacha20(key, nonce []byte) [32]byte {
	var state [16]uint32
	loadConstant(&state)
	loadKey(&state, key)

	state[12] = pack4(nonce[0:4])
	state[13] = pack4(nonce[4:8])
	state[14] = pack4(nonce[8:12])
	state[15] = pack4(nonce[12:16])

	for i := 0; i < rounds; i += 2 {
		qr(&state, 0, 4, 8, 12)
		qr(&state, 1, 5, 9, 13)
		qr(&state, 2, 6, 10, 14)
		qr(&state, 3, 7, 11, 15)

		qr(&state, 0, 5, 10, 15)
		qr(&state, 1, 6, 11, 12)
		qr(&state, 2, 7, 8, 13)
		qr(&state, 3, 4, 9, 14)
	}

	var out [32]byte
	words := [8]uint32{state[0], state[1], state[2], state[3], state[12], state[13], state[14], state[15]}
	for i, w := range words {
		out[4*i] = byte(w)
		out[4*i+1] = byte(w >> 8)
		out[4*i+2] = byte(w >> 16)
		out[4*i+3] = byte(w >> 24)
	}
	return out
}

// InitX initializes an XChaCha20 stream from a 32-byte key, a 24-byte
// nonce, and an 8-byte little-endian counter: the first 16 nonce bytes
// derive a one-time subkey via HChaCha20; the counter fills state words
// 12-13 and the remaining 8 nonce bytes fill words 14-15 as the whole
// inner 64-bit ChaCha20 nonce.
func (c *Context) InitX(key, nonce, ctr []byte) error {
	if len(key) != KeyLen {
		return demozerr.New(demozerr.ParamRange, "chacha20.InitX", "key must be 32 bytes")
	}
	if len(nonce) != XNonceLen {
		return demozerr.New(demozerr.ParamRange, "chacha20.InitX", "nonce must be 24 bytes")
	}
	if len(ctr) != CounterLen {
		return demozerr.New(demozerr.ParamRange, "chacha20.InitX", "counter must be 8 bytes")
	}

	subkey := hchacha20(key, nonce[0:16])

	loadConstant(&c.state)
	loadKey(&c.state, subkey[:])

	c.state[12] = pack4(ctr[0:4])
	c.state[13] = pack4(ctr[4:8])
	c.state[14] = pack4(nonce[16:20])
	c.state[15] = pack4(nonce[20:24])

	c.ietf = false
	c.off = BlockSize
	return nil
}
