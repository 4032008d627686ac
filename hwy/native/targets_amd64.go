//go:build amd64

package native

import "github.com/ajroetker/hwy-fallback/hwy"

// VFMADD and VROUNDPS/PD are available on every AVX2 and AVX-512 part that
// also reports FMA and SSE4.1.
func targets() []hwy.DispatchLevel {
	return []hwy.DispatchLevel{hwy.DispatchAVX2, hwy.DispatchAVX512}
}
