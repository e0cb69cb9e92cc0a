package scanner

import "github.com/klauspost/cpuid/v2"

// cpuidCacheLine wraps klauspost/cpuid/v2's cache-line probe; it is
// architecture-independent, unlike the feature flags in cpu_amd64.go/
// cpu_arm64.go, so it lives outside their build tags.
func cpuidCacheLine() int {
	return cpuid.CPU.CacheLine
}
