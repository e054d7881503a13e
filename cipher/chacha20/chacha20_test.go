package chacha20_test

import (
	"bytes"
	"testing"

	"demozcrypt/cipher/chacha20"
)

func TestCryptoIsInvolutive(t *testing.T) {
	key := make([]byte, chacha20.KeyLen)
	nonce := make([]byte, chacha20.NonceLen)
	ctr := make([]byte, chacha20.CounterLen)
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(i + 1)
	}

	var enc, dec chacha20.Context
	if err := enc.Init(key, nonce, ctr); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := dec.Init(key, nonce, ctr); err != nil {
		t.Fatalf("Init: %v", err)
	}

	plain := bytes.Repeat([]byte("0123456789abcdef"), 5) // spans multiple 64B blocks
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

func TestIETFCryptoIsInvolutive(t *testing.T) {
	key := make([]byte, chacha20.KeyLen)
	nonce := make([]byte, 12)
	for i := range key {
		key[i] = byte(i * 3)
	}
	for i := range nonce {
		nonce[i] = byte(i)
	}

	var enc, dec chacha20.Context
	if err := enc.InitIETF(key, nonce, 1); err != nil {
		t.Fatalf("InitIETF: %v", err)
	}
	if err := dec.InitIETF(key, nonce, 1); err != nil {
		t.Fatalf("InitIETF: %v", err)
	}

	plain := []byte("Ladies and Gentlemen of the class of '99")
	buf := append([]byte(nil), plain...)
	enc.Crypto(buf)
	dec.Crypto(buf)
	if !bytes.Equal(buf, plain) {
		t.Errorf("Crypto(Crypto(x)) = %q, want %q", buf, plain)
	}
}

func TestXChaCha20CryptoIsInvolutive(t *testing.T) {
	key := make([]byte, chacha20.KeyLen)
	nonce := make([]byte, chacha20.XNonceLen)
	ctr := make([]byte, chacha20.CounterLen)
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(i + 7)
	}

	var enc, dec chacha20.Context
	if err := enc.InitX(key, nonce, ctr); err != nil {
		t.Fatalf("InitX: %v", err)
	}
	if err := dec.InitX(key, nonce, ctr); err != nil {
		t.Fatalf("InitX: %v", err)
	}

	plain := []byte("extended-nonce ChaCha20 round trip")
	buf := append([]byte(nil), plain...)
	enc.Crypto(buf)
	dec.Crypto(buf)
	if !bytes.Equal(buf, plain) {
		t.Errorf("Crypto(Crypto(x)) = %q, want %q", buf, plain)
	}
}
