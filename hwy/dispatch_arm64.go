//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

// ARM64 (AArch64) always has NEON (ASIMD) available. It's part of the
// ARMv8-A base architecture, but the cpu package is still consulted for
// consistency.
func detectLevel() DispatchLevel {
	if cpu.ARM64.HasASIMD {
		return DispatchNEON
	}
	return DispatchScalar
}

// NEON has a fused multiply-add (FMLA) and shifts a full register at once,
// so both capabilities are present whenever ASIMD is.
func detectFeatures() Features {
	if !cpu.ARM64.HasASIMD {
		return ScalarFeatures
	}
	return FullFeatures
}
