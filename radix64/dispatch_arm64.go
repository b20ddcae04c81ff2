//go:build arm64

package radix64

import "golang.org/x/sys/cpu"

func init() {
	// Check for RADIX64_NO_SIMD environment variable first
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentName = "scalar"
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available; it is part of the
	// ARMv8-A base architecture. We still consult the cpu package for
	// consistency with the amd64 probe.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentName = "neon"
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		currentLevel = DispatchScalar
		currentName = "scalar"
	}
}
