package generic

import "github.com/ajroetker/hwy-fallback/hwy"

// BitOfSign isolates the sign bit of each lane: the result lane is -0.0 where
// x has its sign bit set (negative numbers, -0, negative NaN) and +0 elsewhere.
func BitOfSign[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.And(x, hwy.SetLike(x, hwy.MinusZero[T]()))
}

// IsInf reports lanes holding +Inf or -Inf. NaN lanes are false.
func IsInf[T hwy.Floats](x hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Equal(hwy.Abs(x), hwy.SetLike(x, hwy.Infinity[T]()))
}

// IsFinite reports lanes where x - x == 0. Infinities and NaN produce NaN
// under self-subtraction and fail; subnormals pass.
func IsFinite[T hwy.Floats](x hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Equal(hwy.Sub(x, x), hwy.ZeroLike(x))
}

// IsNaN reports lanes that compare unequal to themselves.
func IsNaN[T hwy.Floats](x hwy.Vec[T]) hwy.Mask[T] {
	return hwy.NotEqual(x, x)
}
