// kat-tests.go - known-answer tests against spec.md §8's concrete scenarios
package main

import (
	"encoding/hex"
	"fmt"

	"demozcrypt/encoding/basenc"
	"demozcrypt/hash/sha1"
	"demozcrypt/kdf/pbkdf2"
	"demozcrypt/kdf/scrypt"
	"demozcrypt/mac/hmac"
)

type katResult struct {
	name string
	ok   bool
	want string
	got  string
}

func runKAT() {
	results := []katResult{
		katSHA1Empty(),
		katHMACSHA1(),
		katPBKDF2SHA1(),
		katScrypt(),
		katBase64(),
	}

	passed := 0
	for _, r := range results {
		status := "FAIL"
		if r.ok {
			status = "PASS"
			passed++
		}
		fmt.Printf("[%s] %s\n", status, r.name)
		if !r.ok {
			fmt.Printf("       want: %s\n       got:  %s\n", r.want, r.got)
		}
	}
	fmt.Printf("\n%d/%d known-answer tests passed\n", passed, len(results))
}

func katSHA1Empty() katResult {
	const want = "da39a3ee5e6b4b0d3255bfef95601890afd80709"
	got := sha1.Sum(nil)
	return katResult{"SHA-1 empty string", hex.EncodeToString(got[:]) == want, want, hex.EncodeToString(got[:])}
}

func katHMACSHA1() katResult {
	const want = "b617318655057264e28bc0b6fb378c8ef146be00"
	key := make([]byte, 20)
	for i := range key {
		key[i] = 0x0b
	}
	h := hmac.New(hmac.NewSHA1, key)
	h.Write([]byte("Hi There"))
	got := h.Sum()
	return katResult{"HMAC-SHA-1(key=0x0b*20, \"Hi There\")", hex.EncodeToString(got) == want, want, hex.EncodeToString(got)}
}

func katPBKDF2SHA1() katResult {
	const want = "4b007901b765489abead49d926f721d065a429c1"
	dk, err := pbkdf2.Derive(func() pbkdf2.Hasher { return hmac.NewSHA1() }, 20, []byte("password"), []byte("salt"), 4096, 20)
	if err != nil {
		return katResult{"PBKDF2-SHA-1(password, salt, 4096, 20)", false, want, err.Error()}
	}
	got := hex.EncodeToString(dk)
	return katResult{"PBKDF2-SHA-1(password, salt, 4096, 20)", got == want, want, got}
}

func katScrypt() katResult {
	const want = "fdbabe1c9d3472007856e7190d01e9fe7c6ad7cbc8237830e77376634b3731622eaf30d92e22a3886ff109279d9830dac727afb94a83ee6d8360cbdfa2cc0640"
	dk, err := scrypt.Key([]byte("password"), []byte("NaCl"), 1024, 8, 16, 64)
	if err != nil {
		return katResult{"scrypt(password, NaCl, N=1024, r=8, p=16, 64)", false, want, err.Error()}
	}
	got := hex.EncodeToString(dk)
	return katResult{"scrypt(password, NaCl, N=1024, r=8, p=16, 64)", got == want, want, got}
}

func katBase64() katResult {
	const want = "SGVsbG8="
	src := []byte("Hello")
	enc := make([]byte, basenc.EncodedLen64(len(src)))
	n, err := basenc.Encode64(enc, src)
	if err != nil {
		return katResult{"base64 encode(\"Hello\")", false, want, err.Error()}
	}
	got := string(enc[:n])
	if got != want {
		return katResult{"base64 encode(\"Hello\")", false, want, got}
	}

	dec := make([]byte, basenc.DecodedLen64(n))
	m, err := basenc.Decode64(dec, enc[:n])
	if err != nil || string(dec[:m]) != "Hello" {
		return katResult{"base64 round-trip", false, "Hello", string(dec[:m])}
	}
	return katResult{"base64 encode/decode round-trip(\"Hello\")", true, want, got}
}
