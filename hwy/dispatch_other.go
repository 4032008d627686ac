//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures have no detected targets, so every operation
	// resolves to its generic fallback kernel.
	detectedLevel = DispatchScalar
	setLevel(selectLevel(detectedLevel, func(level DispatchLevel) bool {
		return level == DispatchScalar
	}))
}
