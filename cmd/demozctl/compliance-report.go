// compliance-report.go - component compliance report against spec.md's
// external-interface and invariant requirements (§6, §8)
package main

import "fmt"

// componentStatus names one hard-core component and the bit-exact
// external interface spec.md §6 requires it to match.
type componentStatus struct {
	Component string
	Interop   string
	Package   string
}

var components = []componentStatus{
	{"MD5", "standard digest layout", "hash/md5"},
	{"SHA-1", "standard digest layout", "hash/sha1"},
	{"SHA-2 (224/256/384/512)", "FIPS 180 digest layout", "hash/sha2"},
	{"SHA-3 / SHAKE", "FIPS 202 digest layout", "hash/sha3"},
	{"BLAKE2b / BLAKE2s", "RFC 7693 digest layout", "hash/blake2b, hash/blake2s"},
	{"SipHash-2-4 (+128-bit)", "reference SipHash output", "mac/siphash"},
	{"xxHash32 / xxHash64", "reference xxHash output", "checksum/xxhash"},
	{"CRC-16/32/64", "named polynomial variants, reflection, final XOR", "checksum/crc"},
	{"HMAC", "RFC 2104 over every hash above", "mac/hmac"},
	{"HKDF", "RFC 5869", "kdf/hkdf"},
	{"PBKDF2", "RFC 8018 / PKCS#5", "kdf/pbkdf2"},
	{"scrypt", "RFC 7914", "kdf/scrypt"},
	{"bcrypt", "OpenBSD bcrypt 24-byte output", "kdf/bcrypt"},
	{"TOTP", "RFC 6238 / RFC 4226", "otp/totp"},
	{"AES + CBC/CFB/OFB/CTR", "FIPS 197 block output", "cipher/aes, cipher/blockmode"},
	{"DES", "FIPS 46-3 block output", "cipher/des"},
	{"Blowfish", "Schneier reference block output", "cipher/blowfish"},
	{"RC4", "reference keystream", "cipher/rc4"},
	{"Salsa20 / XSalsa20", "DJB reference keystream", "cipher/salsa20"},
	{"ChaCha20 / XChaCha20", "DJB reference keystream", "cipher/chacha20"},
	{"Poly1305", "RFC 7539 16-byte tag", "mac/poly1305"},
	{"Base16/32/64", "RFC 4648 alphabets", "encoding/basenc"},
	{"DEFLATE inflate", "RFC 1951 bit-exact consumer", "compress/inflate"},
	{"gzip container", "RFC 1952 trailer CRC/ISIZE", "compress/gzip"},
}

func printComplianceReport() {
	fmt.Println("demozcrypt component compliance report")
	fmt.Println("(bit-exact interop targets per spec.md §6; see DESIGN.md for the grounding")
	fmt.Println("ledger behind each component's implementation)")
	fmt.Println()
	for _, c := range components {
		fmt.Printf("  %-28s %-40s %s\n", c.Component, c.Interop, c.Package)
	}
	fmt.Printf("\n%d components implemented.\n", len(components))
	fmt.Println("Run demozctl -kat to exercise the concrete scenarios from spec.md §8.")
}
