package generic

import "github.com/ajroetker/hwy-fallback/hwy"

// Clip clamps each lane of x to [lo, hi] as min(hi, max(x, lo)).
//
// Lanes where lo > hi are not validated; they take whatever the Min/Max
// tie-break yields, which is hi. NaN lanes in x take lo.
func Clip[T hwy.Lanes](x, lo, hi hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Min(hi, hwy.Max(x, lo))
}

// Fdim returns the positive difference max(0, x - y).
// NaN differences propagate.
func Fdim[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Max(hwy.ZeroLike(x), hwy.Sub(x, y))
}

// FMA computes x*y + z with two roundings.
func FMA[T hwy.Lanes](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Add(hwy.Mul(x, y), z)
}

// FMS computes x*y - z with two roundings.
func FMS[T hwy.Lanes](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Sub(hwy.Mul(x, y), z)
}

// FNMA computes -x*y + z with two roundings.
func FNMA[T hwy.Lanes](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Add(hwy.Mul(hwy.Neg(x), y), z)
}

// FNMS computes -x*y - z with two roundings.
func FNMS[T hwy.Lanes](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Sub(hwy.Mul(hwy.Neg(x), y), z)
}
