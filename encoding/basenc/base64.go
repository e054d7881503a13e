package basenc

var b64Enc = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")

var b64Dec [256]byte

const (
	invalid64 = 0xff
	pad64     = 0xfe
)

func init() {
	for i := range b64Dec {
		b64Dec[i] = invalid64
	}
	for i, c := range b64Enc {
		b64Dec[c] = byte(i)
	}
	b64Dec['='] = pad64
}

// EncodedLen64 returns the base64 encoded length of n source bytes,
// including padding.
func EncodedLen64(n int) int { return (n + 2) / 3 * 4 }

// DecodedLen64 returns the maximum decoded length of n base64 bytes.
func DecodedLen64(n int) int { return n / 4 * 3 }

// Encode64 encodes s into t, which must be at least EncodedLen64(len(s))
// bytes, returning the number of bytes written.
func Encode64(t, s []byte) (int, error) {
	if len(t) < EncodedLen64(len(s)) {
		return 0, demozerrBufferSmall("basenc.Encode64")
	}

	n := 0
	for len(s) > 0 {
		var b0, b1, b2 byte
		b0 = s[0]
		switch {
		case len(s) >= 3:
			b1, b2 = s[1], s[2]
		case len(s) == 2:
			b1 = s[1]
		}

		t[n] = b64Enc[b0>>2]
		t[n+1] = b64Enc[((b0<<4)|(b1>>4))&0x3f]
		switch {
		case len(s) >= 3:
			t[n+2] = b64Enc[((b1<<2)|(b2>>6))&0x3f]
			t[n+3] = b64Enc[b2&0x3f]
		case len(s) == 2:
			t[n+2] = b64Enc[(b1<<2)&0x3f]
			t[n+3] = '='
		default:
			t[n+2] = '='
			t[n+3] = '='
		}
		n += 4

		if len(s) >= 3 {
			s = s[3:]
		} else {
			s = nil
		}
	}
	return n, nil
}

// Decode64 decodes s into t, which must be at least DecodedLen64(len(s))
// bytes, returning the number of bytes written.
func Decode64(t, s []byte) (int, error) {
	if len(s)%4 != 0 {
		return 0, demozerrMalformed("basenc.Decode64", "input length must be a multiple of 4")
	}
	if len(t) < DecodedLen64(len(s)) {
		return 0, demozerrBufferSmall("basenc.Decode64")
	}

	n := 0
	for i := 0; i < len(s); i += 4 {
		c0, c1, c2, c3 := b64Dec[s[i]], b64Dec[s[i+1]], b64Dec[s[i+2]], b64Dec[s[i+3]]
		switch {
		case c0 == invalid64 || c0 == pad64:
			return 0, demozerrAtPosition("basenc.Decode64", i+1)
		case c1 == invalid64 || c1 == pad64:
			return 0, demozerrAtPosition("basenc.Decode64", i+2)
		}

		t[n] = (c0 << 2) | (c1 >> 4)
		n++

		if c2 == pad64 {
			if c3 != pad64 {
				return 0, demozerrAtPosition("basenc.Decode64", i+4)
			}
			continue
		}
		if c2 == invalid64 {
			return 0, demozerrAtPosition("basenc.Decode64", i+3)
		}

		t[n] = ((c1 << 4) & 0xf0) | (c2 >> 2)
		n++

		if c3 == pad64 {
			continue
		}
		if c3 == invalid64 {
			return 0, demozerrAtPosition("basenc.Decode64", i+4)
		}

		t[n] = ((c2 << 6) & 0xc0) | c3
		n++
	}
	return n, nil
}
