// Package ctutil holds constant-time helpers shared by the MAC, KDF and
// cipher packages, so that tag and password verification never branches on
// secret data.
package ctutil

// Equal reports whether a and b hold the same bytes, in time that depends
// only on len(a) and len(b), never on their contents. Mismatched lengths
// are rejected up front, which is safe: length is not secret.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v == 0
}
