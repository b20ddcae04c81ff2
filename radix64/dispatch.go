package radix64

import (
	"os"
	"strconv"
)

// DispatchLevel represents the instruction-set tier the block engines were
// dispatched for at startup.
type DispatchLevel int

const (
	// DispatchScalar indicates the table-driven scalar block engine.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2-era 64-bit lane processing (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2-era lane processing (256-bit SIMD).
	DispatchAVX2

	// DispatchNEON indicates ARM NEON lane processing (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected dispatch level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName is the human-readable name of the current dispatch level.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the dispatch level selected for this process.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current dispatch level.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the RADIX64_NO_SIMD environment variable is set.
// When set, the block engines use the scalar path regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("RADIX64_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
