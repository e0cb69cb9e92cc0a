//go:build !amd64 && !arm64

package scanner

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"
)

func backendString() string {
	return fmt.Sprintf("cpu-swar(%s, cacheline=%d)", cpuid.CPU.BrandName, cpuid.CPU.CacheLine)
}
