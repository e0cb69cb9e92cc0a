//go:build arm64

package scanner

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// hasNEON reports NEON availability; kept for diagnostics only, since
// the classifier itself is architecture-independent.
func hasNEON() bool {
	return cpu.ARM64.HasASIMD
}

func backendString() string {
	return fmt.Sprintf("cpu-swar(%s, neon=%t, cacheline=%d)",
		cpuid.CPU.BrandName, hasNEON(), cpuid.CPU.CacheLine)
}
