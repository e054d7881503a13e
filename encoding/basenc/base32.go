package basenc

// base32 has no demoz source to port (lib/base16.c and lib/base64.c exist,
// but no base32.c does) — this follows RFC 4648's standard alphabet and
// the same caller-owned-buffer shape as Encode16/Decode16 and
// Encode64/Decode64 above.

var b32Enc = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567")

var b32Dec [256]byte

const (
	invalid32 = 0xff
	pad32     = 0xfe
)

func init() {
	for i := range b32Dec {
		b32Dec[i] = invalid32
	}
	for i, c := range b32Enc {
		b32Dec[c] = byte(i)
	}
	b32Dec['='] = pad32
}

// EncodedLen32 returns the base32 encoded length of n source bytes,
// including padding.
func EncodedLen32(n int) int { return (n + 4) / 5 * 8 }

// DecodedLen32 returns the maximum decoded length of n base32 bytes.
func DecodedLen32(n int) int { return n / 8 * 5 }

// Encode32 encodes s into t, which must be at least EncodedLen32(len(s))
// bytes, returning the number of bytes written.
func Encode32(t, s []byte) (int, error) {
	if len(t) < EncodedLen32(len(s)) {
		return 0, demozerrBufferSmall("basenc.Encode32")
	}

	n := 0
	for len(s) > 0 {
		var in [5]byte
		k := copy(in[:], s)
		if len(s) > 5 {
			s = s[5:]
		} else {
			s = nil
		}

		out := [8]byte{'=', '=', '=', '=', '=', '=', '=', '='}
		out[0] = b32Enc[in[0]>>3]
		out[1] = b32Enc[(in[0]<<2|in[1]>>6)&0x1f]
		if k > 1 {
			out[2] = b32Enc[(in[1]>>1)&0x1f]
			out[3] = b32Enc[(in[1]<<4|in[2]>>4)&0x1f]
		}
		if k > 2 {
			out[4] = b32Enc[(in[2]<<1|in[3]>>7)&0x1f]
		}
		if k > 3 {
			out[5] = b32Enc[(in[3]>>2)&0x1f]
			out[6] = b32Enc[(in[3]<<3|in[4]>>5)&0x1f]
		}
		if k > 4 {
			out[7] = b32Enc[in[4]&0x1f]
		}

		copy(t[n:n+8], out[:])
		n += 8
	}
	return n, nil
}

// Decode32 decodes s into t, which must be at least DecodedLen32(len(s))
// bytes, returning the number of bytes written.
func Decode32(t, s []byte) (int, error) {
	if len(s)%8 != 0 {
		return 0, demozerrMalformed("basenc.Decode32", "input length must be a multiple of 8")
	}
	if len(t) < DecodedLen32(len(s)) {
		return 0, demozerrBufferSmall("basenc.Decode32")
	}

	n := 0
	for base := 0; base < len(s); base += 8 {
		var c [8]byte
		npad := 0
		for i := 0; i < 8; i++ {
			v := b32Dec[s[base+i]]
			if v == invalid32 {
				return 0, demozerrAtPosition("basenc.Decode32", base+i+1)
			}
			if v == pad32 {
				npad++
				c[i] = 0
				continue
			}
			c[i] = v
		}

		t[n] = (c[0] << 3) | (c[1] >> 2)
		n++
		if npad >= 6 {
			continue
		}
		t[n] = (c[1] << 6) | (c[2] << 1) | (c[3] >> 4)
		n++
		if npad >= 4 {
			continue
		}
		t[n] = (c[3] << 4) | (c[4] >> 1)
		n++
		if npad >= 3 {
			continue
		}
		t[n] = (c[4] << 7) | (c[5] << 2) | (c[6] >> 3)
		n++
		if npad >= 1 {
			continue
		}
		t[n] = (c[6] << 5) | c[7]
		n++
	}
	return n, nil
}
