//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	// Note: cpu.ARM64.HasASIMD is always true for ARMv8+
	detectedLevel = DispatchScalar
	if cpu.ARM64.HasASIMD {
		detectedLevel = DispatchNEON
	}

	// FMADD and FRINTN/FRINTZ are in the ARMv8-A base FP instruction set.
	hasFMA = cpu.ARM64.HasFP
	hasRound = cpu.ARM64.HasFP

	setLevel(selectLevel(detectedLevel, supportedARM64))
}

func supportedARM64(level DispatchLevel) bool {
	switch level {
	case DispatchScalar:
		return true
	case DispatchNEON:
		return cpu.ARM64.HasASIMD
	case DispatchSVE:
		return cpu.ARM64.HasSVE
	default:
		return false
	}
}
