package salsa20_test

import (
	"bytes"
	"testing"

	"demozcrypt/cipher/salsa20"
)

func TestCryptoIsInvolutive(t *testing.T) {
	key := make([]byte, salsa20.KeyLen)
	nonce := make([]byte, salsa20.NonceLen)
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(i + 1)
	}

	var enc, dec salsa20.Context
	if err := enc.Init(key, nonce, 0); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := dec.Init(key, nonce, 0); err != nil {
		t.Fatalf("Init: %v", err)
	}

	plain := bytes.Repeat([]byte("0123456789abcdef"), 5)
	buf := append([]byte(nil), plain...)
	enc.Crypto(buf)
	if bytes.Equal(buf, plain) {
		t.Fatalf("Crypto left the buffer unchanged")
	}
	dec.Crypto(buf)
	if !bytes.Equal(buf, plain) {
		t.Errorf("Crypto(Crypto(x)) = %q, want %q", buf, plain)
	}
}

func TestXSalsa20CryptoIsInvolutive(t *testing.T) {
	key := make([]byte, salsa20.KeyLen)
	nonce := make([]byte, salsa20.XNonceLen)
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(i + 3)
	}

	var enc, dec salsa20.Context
	if err := enc.InitX(key, nonce, 0); err != nil {
		t.Fatalf("InitX: %v", err)
	}
	if err := dec.InitX(key, nonce, 0); err != nil {
		t.Fatalf("InitX: %v", err)
	}

	plain := []byte("extended-nonce Salsa20 round trip")
	buf := append([]byte(nil), plain...)
	enc.Crypto(buf)
	dec.Crypto(buf)
	if !bytes.Equal(buf, plain) {
		t.Errorf("Crypto(Crypto(x)) = %q, want %q", buf, plain)
	}
}
