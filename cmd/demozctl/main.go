// main.go - CLI Interface and Entry Point
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	kat := flag.Bool("kat", false, "Run known-answer tests against spec.md §8 vectors")
	compliance := flag.Bool("compliance", false, "Print a component compliance report")
	bench := flag.Bool("bench", false, "Benchmark hash/cipher throughput")
	summary := flag.Bool("summary", false, "Print module summary")

	flag.Parse()

	switch {
	case *kat:
		runKAT()
	case *compliance:
		printComplianceReport()
	case *bench:
		runBenchmarks()
	case *summary:
		printSummary()
	default:
		printHelp()
		if flag.NFlag() == 0 && len(os.Args) > 1 {
			os.Exit(2)
		}
	}
}

func printSummary() {
	fmt.Println(`demozcrypt - freestanding hash/cipher/codec primitive suite

Tiers:
  1  byte/bit primitives     internal/bitio
  2  containers              internal/ringbuf, internal/swisstable, internal/heap, internal/list
  3  hash/MAC cores           hash/{md5,sha1,sha2,sha3,blake2b,blake2s}, mac/siphash, checksum/{crc,xxhash}
  4  ciphers & stream cores   cipher/{aes,des,blowfish,rc4,salsa20,chacha20,blockmode}, mac/poly1305
  5  constructions            mac/hmac, kdf/{hkdf,pbkdf2,scrypt,bcrypt}, otp/totp, encoding/basenc, compress/{inflate,gzip}

Run with -kat, -compliance, -bench, or -summary.`)
}

func printHelp() {
	fmt.Println(`demozctl - KAT runner, compliance report and benchmarks for demozcrypt

Usage:
  demozctl -kat          Run known-answer tests
  demozctl -compliance   Print component compliance report
  demozctl -bench        Benchmark primitive throughput
  demozctl -summary      Print module summary`)
}
