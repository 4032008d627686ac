package hwy

import (
	"os"
	"strconv"
	"strings"
	"unsafe"
)

// DispatchLevel identifies a target: the instruction set a kernel is
// specialized for. DispatchScalar is the catch-all target the generic
// fallback kernels are registered under.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	DispatchSVE

	// DispatchSME indicates ARM SME instructions (scalable matrix).
	DispatchSME
)

// AllLevels lists every dispatch level in declaration order.
var AllLevels = []DispatchLevel{
	DispatchScalar, DispatchSSE2, DispatchAVX2, DispatchAVX512,
	DispatchNEON, DispatchSVE, DispatchSME,
}

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	case DispatchSME:
		return "sme"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes used for the level.
// Scalar mode still uses 16-byte vectors so lane counts stay consistent.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512, DispatchSME:
		return 64
	default:
		return 16
	}
}

// ParseDispatchLevel parses a level name as printed by String.
// Matching is case-insensitive and ignores surrounding spaces.
func ParseDispatchLevel(s string) (DispatchLevel, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "generic" || name == "fallback" {
		return DispatchScalar, true
	}
	for _, level := range AllLevels {
		if level.String() == name {
			return level, true
		}
	}
	return DispatchScalar, false
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
var currentWidth = 16

// detectedLevel is the best level the CPU supports, before overrides.
var detectedLevel DispatchLevel

// hasFMA reports a single-rounding fused multiply-add instruction.
var hasFMA bool

// hasRound reports a hardware round-to-integral instruction.
var hasRound bool

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// DetectedLevel returns the best level the CPU supports, ignoring
// HWY_NO_SIMD and HWY_TARGET.
func DetectedLevel() DispatchLevel {
	return detectedLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentLevel.String()
}

// HasFMA returns true if the CPU has a fused multiply-add instruction.
func HasFMA() bool {
	return hasFMA
}

// HasRound returns true if the CPU can round to an integral value in one
// instruction (SSE4.1 ROUNDPS/ROUNDPD, ARM FRINT*).
func HasRound() bool {
	return hasRound
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar target is used regardless of CPU capabilities,
// so every operation resolves to its generic fallback kernel.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// TargetEnv returns the level requested through HWY_TARGET, if any.
func TargetEnv() (DispatchLevel, bool) {
	val := os.Getenv("HWY_TARGET")
	if val == "" {
		return DispatchScalar, false
	}
	return ParseDispatchLevel(val)
}

// selectLevel applies the environment overrides on top of the detected
// level. supported reports which levels the CPU can run.
func selectLevel(detected DispatchLevel, supported func(DispatchLevel) bool) DispatchLevel {
	if NoSimdEnv() {
		return DispatchScalar
	}
	if want, ok := TargetEnv(); ok && supported(want) {
		return want
	}
	return detected
}

func setLevel(level DispatchLevel) {
	currentLevel = level
	currentWidth = level.Width()
}

// MaxLanes returns the maximum number of lanes for type T with the current SIMD width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
