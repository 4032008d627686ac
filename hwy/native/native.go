package native

import "github.com/ajroetker/hwy-fallback/hwy"

// FMA computes x*y + z with a single rounding.
func FMA[T hwy.Floats](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return hwy.FMA(x, y, z)
}

// FMS computes x*y - z with a single rounding.
func FMS[T hwy.Floats](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return hwy.FMA(x, y, hwy.Neg(z))
}

// FNMA computes -x*y + z with a single rounding.
func FNMA[T hwy.Floats](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return hwy.FMA(hwy.Neg(x), y, z)
}

// FNMS computes -x*y - z with a single rounding.
func FNMS[T hwy.Floats](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return hwy.FMA(hwy.Neg(x), y, hwy.Neg(z))
}

// NearbyInt rounds to nearest, ties to even.
func NearbyInt[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.RoundToEven(x)
}

// Trunc rounds toward zero. Unlike the generic kernel it keeps the sign
// of negative inputs that truncate to zero.
func Trunc[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.TruncNative(x)
}
