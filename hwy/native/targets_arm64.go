//go:build arm64

package native

import "github.com/ajroetker/hwy-fallback/hwy"

func targets() []hwy.DispatchLevel {
	return []hwy.DispatchLevel{hwy.DispatchNEON, hwy.DispatchSVE}
}
