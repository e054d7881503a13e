package salsa20

import "demozcrypt/demozerr"

// XNonceLen is the extended 24-byte nonce XSalsa20 accepts.
const XNonceLen = 24

// hsalsa20 runs the Salsa20 core over key and a 16-byte nonce without the
// final feed-forward addition, extracting words 0, 5, 10, 15 (the constant
// positions) and 6..9 (the nonce positions) as a fresh 32-byte subkey. This
// is the DJB HSalsa20 reduction XSalsa20 uses to stretch Salsa20's 8-byte
// nonce into 24 bytes without weakening the core permutation.
func hsalsa20(key, nonce []byte) [32]byte {
	var x [16]uint32
	x[0] = pack4(constant[0:4])
	x[5] = pack4(constant[4:8])
	x[10] = pack4(constant[8:12])
	x[15] = pack4(constant[12:16])

	x[1] = pack4(key[0:4])
	x[2] = pack4(key[4:8])
	x[3] = pack4(key[8:12])
	x[4] = pack4(key[12:16])
	x[11] = pack4(key[16:20])
	x[12] = pack4(key[20:24])
	x[13] = pack4(key[24:28])
	x[14] = pack4(key[28:32])

	x[6] = pack4(nonce[0:4])
	x[7] = pack4(nonce[4:8])
	x[8] = pack4(nonce[8:12])
	x[9] = pack4(nonce[12:16])

	for i := 0; i < rounds; i += 2 {
		qr(&x, 0, 4, 8, 12)
		qr(&x, 5, 9, 13, 1)
		qr(&x, 10, 14, 2, 6)
		qr(&x, 15, 3, 7, 11)

		qr(&x, 0, 1, 2, 3)
		qr(&x, 5, 6, 7, 4)
		qr(&x, 10, 11, 8, 9)
		qr(&x, 15, 12, 13, 14)
	}

	var out [32]byte
	words := [8]uint32{x[0], x[5], x[10], x[15], x[6], x[7], x[8], x[9]}
	for i, w := range words {
		out[4*i] = byte(w)
		out[4*i+1] = byte(w >> 8)
		out[4*i+2] = byte(w >> 16)
		out[4*i+3] = byte(w >> 24)
	}
	return out
}

// InitX initializes an XSalsa20 stream from a 32-byte key and a 24-byte
// nonce: the first 16 nonce bytes derive a one-time subkey via HSalsa20,
// and the remaining 8 bytes become the inner Salsa20 nonce.
func (c *Context) InitX(key, nonce []byte, counter uint64) error {
	if len(key) != KeyLen {
		return demozerr.New(demozerr.ParamRange, "salsa20.InitX", "key must be 32 bytes")
	}
	if len(nonce) != XNonceLen {
		return demozerr.New(demozerr.ParamRange, "salsa20.InitX", "nonce must be 24 bytes")
	}

	subkey := hsalsa20(key, nonce[0:16])
	return c.Init(subkey[:], nonce[16:24], counter)
}
