package generic

import "github.com/ajroetker/hwy-fallback/hwy"

// NextAfter returns, per lane, the representable value adjacent to from in
// the direction of to.
//
// Lanes are reinterpreted as the paired signed integer (int32 for float32,
// int64 for float64). Within one sign, adding one to that pattern moves one
// ULP away from zero and subtracting one moves one ULP toward it, so the
// direction is picked from the sign of from:
//   - from == to returns from
//   - ±0 steps to the smallest subnormal carrying the sign of to
//   - ±Inf is clamped and returned unchanged
//   - a NaN from is returned as is; otherwise a NaN to is returned
//
// Finite results match math.Nextafter.
func NextAfter[T hwy.Floats](from, to hwy.Vec[T]) hwy.Vec[T] {
	if hwy.PairedIntBits[T]() == 32 {
		return nextAfter[T, int32](from, to)
	}
	return nextAfter[T, int64](from, to)
}

func nextAfter[T hwy.Floats, I hwy.SignedInts](from, to hwy.Vec[T]) hwy.Vec[T] {
	bits := hwy.BitCastToInt[T, I](from)
	one := hwy.SetLike(bits, I(1))
	up := hwy.BitCastFromInt[I, T](hwy.Add(bits, one))
	down := hwy.BitCastFromInt[I, T](hwy.Sub(bits, one))

	zero := hwy.ZeroLike(from)
	away := hwy.MaskXor(hwy.GreaterThan(to, from), hwy.LessThan(from, zero))
	result := hwy.IfThenElse(away, up, down)

	tiny := hwy.Or(hwy.SetLike(from, hwy.SmallestSubnormal[T]()), BitOfSign(to))
	result = hwy.IfThenElse(hwy.Equal(from, zero), tiny, result)

	result = hwy.IfThenElse(IsInf(from), from, result)
	result = hwy.IfThenElse(hwy.Equal(from, to), from, result)
	result = hwy.IfThenElse(IsNaN(to), to, result)
	return hwy.IfThenElse(IsNaN(from), from, result)
}

// NextAfterInt is NextAfter for integer lanes. Every integer is its own
// nearest representable value, so from is returned unchanged.
func NextAfterInt[T hwy.Integers](from, to hwy.Vec[T]) hwy.Vec[T] {
	return from
}
