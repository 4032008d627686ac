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

// Scalar constants for float lanes. They are derived on every call and
// broadcast with SetLike; nothing here is cached.

// MinusZero returns -0.0, the bit pattern with only the sign bit set.
func MinusZero[T Floats]() T {
	return getSignBit[T]()
}

// TwoToNMB returns 2^(mantissa bits): 2^23 for float32, 2^52 for float64.
// Adding it to a non-negative value below it rounds the value to an integer.
func TwoToNMB[T Floats]() T {
	if LaneBytes[T]() == 4 {
		return T(1 << 23)
	}
	return T(1 << 52)
}

// MaxFlint returns the magnitude from which every representable value is an
// integer: 2^24 for float32, 2^53 for float64.
func MaxFlint[T Floats]() T {
	if LaneBytes[T]() == 4 {
		return T(1 << 24)
	}
	return T(1 << 53)
}

// Infinity returns positive infinity.
func Infinity[T Floats]() T {
	return T(math.Inf(1))
}

// MinusInfinity returns negative infinity.
func MinusInfinity[T Floats]() T {
	return T(math.Inf(-1))
}

// SmallestSubnormal returns the smallest positive representable value.
func SmallestSubnormal[T Floats]() T {
	return fromBits[T](1)
}
