// Package cpufeatures reports host instruction-set capabilities for
// benchmarking and compliance-reporting purposes only. spec.md §1 forbids
// hardware-acceleration dispatch — every hash/cipher body here is the
// straight portable implementation regardless of what this package
// reports — so nothing in the primitive tiers imports it; only
// cmd/demozctl's stats (-bench) command does, to annotate a report
// with "ran on a host that has AES-NI" the way golang.org/x/crypto and
// its siblings use golang.org/x/sys/cpu for real dispatch decisions.
package cpufeatures

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Report is a snapshot of the instruction-set extensions this process
// could have used for a hardware-accelerated path, had one existed.
type Report struct {
	AESNI   bool
	AVX2    bool
	SHA     bool // dedicated SHA-1/SHA-256 round instructions
	PCLMULQDQ bool
	Arch    string
}

// Probe reads the current host's capabilities via golang.org/x/sys/cpu.
// Unknown architectures report every field false.
func Probe() Report {
	r := Report{Arch: archName()}
	if cpu.X86.HasAES {
		r.AESNI = true
	}
	if cpu.X86.HasAVX2 {
		r.AVX2 = true
	}
	if cpu.X86.HasSHA {
		r.SHA = true
	}
	if cpu.X86.HasPCLMULQDQ {
		r.PCLMULQDQ = true
	}
	return r
}

func archName() string { return runtime.GOARCH }
