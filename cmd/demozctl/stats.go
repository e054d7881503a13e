// stats.go - throughput benchmarks over a fixed-size payload
package main

import (
	"crypto/rand"
	"fmt"
	"time"

	"demozcrypt/cipher/aes"
	"demozcrypt/cipher/blockmode"
	"demozcrypt/hash/sha2"
	"demozcrypt/hash/sha3"
	"demozcrypt/internal/cpufeatures"
)

const benchPayload = 1 << 20 // 1 MiB

func runBenchmarks() {
	report := cpufeatures.Probe()
	fmt.Printf("host: arch=%s aes-ni=%v avx2=%v sha-ni=%v\n", report.Arch, report.AESNI, report.AVX2, report.SHA)
	fmt.Println("(the hashes/ciphers below never dispatch on this; spec.md §1 requires a")
	fmt.Println("straight portable implementation regardless of host capability)")
	fmt.Println()

	data := make([]byte, benchPayload)
	rand.Read(data)

	benchThroughput("SHA-256", func() {
		var c sha2.Context256
		c.Init()
		c.Process(data)
		c.Finish(uint64(len(data)))
		c.Sum()
	})

	benchThroughput("SHA3-256", func() {
		var c sha3.Context
		c.Init(sha3.Type256, 0)
		c.Process(data)
		c.Finish()
		c.Sum()
	})

	key := make([]byte, 32)
	rand.Read(key)
	var ac aes.Context
	if err := ac.Init(key, aes.Type256); err != nil {
		fmt.Println("aes init failed:", err)
		return
	}
	iv := make([]byte, aes.BlockSize)
	rand.Read(iv)
	buf := append([]byte(nil), data...)

	benchThroughput("AES-256-CBC encrypt", func() {
		copy(buf, data)
		ivCopy := append([]byte(nil), iv...)
		for off := 0; off+aes.BlockSize <= len(buf); off += aes.BlockSize {
			blockmode.EncryptCBC(&ac, ivCopy, buf[off:off+aes.BlockSize])
		}
	})
}

func benchThroughput(name string, run func()) {
	start := time.Now()
	run()
	elapsed := time.Since(start)

	mbps := float64(benchPayload) / elapsed.Seconds() / (1 << 20)
	fmt.Printf("%-20s %8.2f MiB/s  (%v for %d bytes)\n", name, mbps, elapsed, benchPayload)
}
