package generic

import "github.com/ajroetker/hwy-fallback/hwy"

// NearbyInt rounds each lane to the nearest integer, ties to even.
//
// The sign is split off with BitOfSign and the magnitude v is added to
// 2^(mantissa bits). At that magnitude the spacing of representable values
// is exactly 1, so the addition itself rounds v to an integer using the
// current (ties-to-even) rounding of Add; subtracting the constant again
// recovers it. Lanes with v >= 2^(mantissa bits) are already integral and
// are returned unchanged, as are infinities and NaN. The sign is restored
// last, so -0.4 rounds to -0.
func NearbyInt[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	sign := BitOfSign(x)
	v := hwy.Xor(x, sign)
	t2n := hwy.SetLike(x, hwy.TwoToNMB[T]())
	d0 := hwy.Add(v, t2n)
	rounded := hwy.IfThenElse(hwy.LessThan(v, t2n), hwy.Sub(d0, t2n), v)
	return hwy.Xor(rounded, sign)
}

// Trunc rounds each lane toward zero.
//
// Lanes with |x| below MaxFlint go through the paired integer type, whose
// conversion truncates; larger lanes, infinities and NaN are already
// integral (or not numbers) and pass through unchanged.
func Trunc[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	var truncated hwy.Vec[T]
	if hwy.PairedIntBits[T]() == 32 {
		truncated = hwy.ConvertFromInt[int32, T](hwy.ConvertToInt[T, int32](x))
	} else {
		truncated = hwy.ConvertFromInt[int64, T](hwy.ConvertToInt[T, int64](x))
	}
	inRange := hwy.LessThan(hwy.Abs(x), hwy.SetLike(x, hwy.MaxFlint[T]()))
	return hwy.IfThenElse(inRange, truncated, x)
}

// Remainder returns the IEEE-style remainder x - n*y, where n is x/y
// rounded to nearest, ties to even.
func Remainder[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	return FNMA(NearbyInt(hwy.Div(x, y)), y, x)
}

// Fmod returns x - n*y, where n is x/y truncated toward zero. While x/y is
// exactly representable the result has the sign of x and a magnitude below
// |y|; a rounded quotient can leave a result of the other sign within a
// few ULP of zero. A zero y yields NaN.
func Fmod[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	return FNMA(Trunc(hwy.Div(x, y)), y, x)
}
