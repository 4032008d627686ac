// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "math"

// This file provides the primitive lane operations every generic kernel is
// built from. Each one is a plain per-lane loop; binary operations use the
// shorter of their operands' lane counts.

// Load creates a vector by loading data from a slice.
// The vector has MaxLanes[T]() lanes, or fewer if src is shorter.
func Load[T Lanes](src []T) Vec[T] {
	return LoadN(src, MaxLanes[T]())
}

// LoadN creates a vector of at most n lanes from the head of src.
func LoadN[T Lanes](src []T, n int) Vec[T] {
	n = max(0, min(len(src), n))
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	return broadcast(value, MaxLanes[T]())
}

// SetLike creates a vector with the lane count of v and all lanes set to value.
// Kernels use it to broadcast constants to the width of their arguments.
func SetLike[T Lanes](v Vec[T], value T) Vec[T] {
	return broadcast(value, len(v.data))
}

func broadcast[T Lanes](value T, n int) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// ZeroLike creates an all-zero vector with the lane count of v.
func ZeroLike[T Lanes](v Vec[T]) Vec[T] {
	return Vec[T]{data: make([]T, len(v.data))}
}

func unary[T Lanes](v Vec[T], fn func(T) T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = fn(x)
	}
	return Vec[T]{data: result}
}

func binary[T Lanes](a, b Vec[T], fn func(T, T) T) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = fn(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func compare[T Lanes](a, b Vec[T], fn func(T, T) bool) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = fn(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// Add performs element-wise addition.
// Integer lanes wrap around on overflow.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
// Each lane product is rounded to T before it is returned; the explicit
// conversion keeps the compiler from fusing it into a following add.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return T(x * y) })
}

// Div performs element-wise division.
// Division by zero yields ±Inf or NaN per IEEE-754.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x / y })
}

// Neg negates all lanes. Float lanes flip their sign bit, so Neg(0) is -0.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return -x })
}

// Abs computes absolute value.
// Float lanes have their sign bit cleared, which maps -0 to +0 and keeps
// NaN a NaN. Signed integer lanes wrap for the minimum value.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	if IsFloatLane[T]() {
		sign := getSignBit[T]()
		return unary(v, func(x T) T { return bitwiseAndNot(sign, x) })
	}
	return unary(v, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Min returns element-wise minimum.
// A lane takes a when a < b and b otherwise, so a NaN in either operand
// selects b.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if x < y {
			return x
		}
		return y
	})
}

// Max returns element-wise maximum.
// A lane takes a when a > b and b otherwise, so a NaN in either operand
// selects b.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if x > y {
			return x
		}
		return y
	})
}

// FMA performs a fused multiply-add a*b + c with a single rounding.
// This is the native primitive; the generic kernels provide the unfused form.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(c.data), min(len(b.data), len(a.data)))
	result := make([]T, n)
	for i := range n {
		result[i] = fmaLane(a.data[i], b.data[i], c.data[i])
	}
	return Vec[T]{data: result}
}

func fmaLane[T Floats](a, b, c T) T {
	// float32 lanes are widened; their product is exact in float64.
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// RoundToEven rounds each lane to the nearest integer, ties to even.
func RoundToEven[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.RoundToEven(float64(x))) })
}

// TruncNative truncates each lane toward zero using math.Trunc.
func TruncNative[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.Trunc(float64(x))) })
}

// Equal performs element-wise equality comparison.
// NaN lanes compare unequal to everything, themselves included.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// IfThenElse performs conditional selection: lanes from a where mask is
// true, from b otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

func combine[T Lanes](a, b Mask[T], fn func(bool, bool) bool) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = fn(a.bits[i], b.bits[i])
	}
	return Mask[T]{bits: bits}
}

// MaskAnd returns the lane-wise conjunction of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	return combine(a, b, func(x, y bool) bool { return x && y })
}

// MaskOr returns the lane-wise disjunction of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	return combine(a, b, func(x, y bool) bool { return x || y })
}

// MaskXor returns lanes where exactly one of the masks is active.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	return combine(a, b, func(x, y bool) bool { return x != y })
}

// MaskNot inverts every lane of a mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	bits := make([]bool, len(m.bits))
	for i, b := range m.bits {
		bits[i] = !b
	}
	return Mask[T]{bits: bits}
}

// And performs element-wise bitwise AND on the lanes' bit patterns.
func And[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, bitwiseAnd[T])
}

// Or performs element-wise bitwise OR.
func Or[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, bitwiseOr[T])
}

// Xor performs element-wise bitwise XOR.
func Xor[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, bitwiseXor[T])
}

// AndNot performs element-wise bitwise AND NOT (~a & b).
func AndNot[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, bitwiseAndNot[T])
}
