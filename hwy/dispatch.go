package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel represents the instruction set detected on the running CPU.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX indicates 256-bit float instructions without 256-bit
	// integer shifts (Sandy Bridge, Ivy Bridge).
	DispatchAVX

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX:
		return "avx"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
var currentLevel DispatchLevel

// currentFeatures is the capability set kernels use unless told otherwise.
var currentFeatures Features

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentFeatures = ScalarFeatures
		return
	}
	currentLevel = detectLevel()
	currentFeatures = detectFeatures().withEnv()
}

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// CurrentFeatures returns the capability flags detected at startup, narrowed
// by the HWY_NO_* environment variables.
func CurrentFeatures() Features {
	return currentFeatures
}

// EnvFlag reports whether the environment variable name is set to a true
// value. Any non-empty value that does not parse as a bool counts as true.
func EnvFlag(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, every kernel takes the scalar paths regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	return EnvFlag("HWY_NO_SIMD")
}
