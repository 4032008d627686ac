package hwy

import "fmt"

// This file provides the conversion and reinterpretation primitives, plus
// the static pairing of each float lane type with its same-width signed
// integer (float32 <-> int32, float64 <-> int64).

// PairedIntBits returns the width in bits of the signed integer type paired
// with float lane type T: 32 for float32, 64 for float64.
// The pairing is keyed on lane width and cannot be extended at runtime.
func PairedIntBits[T Floats]() int {
	switch LaneBytes[T]() {
	case 4:
		return 32
	case 8:
		return 64
	default:
		panic(fmt.Sprintf("hwy: no paired integer for %d-byte float lane", LaneBytes[T]()))
	}
}

func checkPaired[F Floats, I SignedInts]() {
	if LaneBytes[F]() != LaneBytes[I]() {
		panic(fmt.Sprintf("hwy: %d-byte float lane paired with %d-byte integer lane",
			LaneBytes[F](), LaneBytes[I]()))
	}
}

// ConvertToInt converts each float lane to its paired integer type,
// truncating toward zero. Lanes outside the integer range produce an
// implementation-specific value; callers guard with MaxFlint.
func ConvertToInt[F Floats, I SignedInts](v Vec[F]) Vec[I] {
	checkPaired[F, I]()
	result := make([]I, len(v.data))
	for i, x := range v.data {
		result[i] = I(x)
	}
	return Vec[I]{data: result}
}

// ConvertFromInt converts each integer lane to its paired float type,
// rounding to nearest when the integer is not exactly representable.
func ConvertFromInt[I SignedInts, F Floats](v Vec[I]) Vec[F] {
	checkPaired[F, I]()
	result := make([]F, len(v.data))
	for i, x := range v.data {
		result[i] = F(x)
	}
	return Vec[F]{data: result}
}

// BitCastToInt reinterprets float bits as the paired signed integer without
// conversion. It panics if F and I differ in width.
func BitCastToInt[F Floats, I SignedInts](v Vec[F]) Vec[I] {
	checkPaired[F, I]()
	result := make([]I, len(v.data))
	for i, x := range v.data {
		result[i] = fromBits[I](toBits(x))
	}
	return Vec[I]{data: result}
}

// BitCastFromInt reinterprets signed integer bits as the paired float type
// without conversion. It panics if I and F differ in width.
func BitCastFromInt[I SignedInts, F Floats](v Vec[I]) Vec[F] {
	checkPaired[F, I]()
	result := make([]F, len(v.data))
	for i, x := range v.data {
		result[i] = fromBits[F](toBits(x))
	}
	return Vec[F]{data: result}
}
