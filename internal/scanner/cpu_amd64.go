//go:build amd64

package scanner

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// hasAVX2/hasSSE42 probe feature availability via golang.org/x/sys/cpu.
// The SWAR classifier itself is architecture-independent, so these
// flags are reported for diagnostics only; they do not select a
// different code path.
func hasAVX2() bool {
	return cpu.X86.HasAVX2
}

func hasSSE42() bool {
	return cpu.X86.HasSSE42
}

// backendString reports the CPU backend name plus the feature flags and
// cache-line size klauspost/cpuid/v2 exposes, richer than golang.org/x/
// sys/cpu alone and used for the alignment sizing in alignment.go.
func backendString() string {
	return fmt.Sprintf("cpu-swar(%s, avx2=%t, sse4.2=%t, cacheline=%d)",
		cpuid.CPU.BrandName, hasAVX2(), hasSSE42(), cpuid.CPU.CacheLine)
}
