//go:build !amd64 && !arm64

package native

import "github.com/ajroetker/hwy-fallback/hwy"

func targets() []hwy.DispatchLevel {
	return nil
}
