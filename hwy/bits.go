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

import (
	"reflect"
	"unsafe"
)

// LaneBytes returns the size in bytes of one lane of type T.
func LaneBytes[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// IsFloatLane reports whether T is a floating-point lane type.
func IsFloatLane[T Lanes]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsSignedLane reports whether T is a signed lane type (floats included).
func IsSignedLane[T Lanes]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return false
	default:
		return true
	}
}

// toBits returns the raw bit pattern of x, zero-extended to 64 bits.
// The pattern is read from memory so float lanes keep NaN payloads and
// the sign of zero.
func toBits[T Lanes](x T) uint64 {
	switch unsafe.Sizeof(x) {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&x)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&x)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&x)))
	default:
		return *(*uint64)(unsafe.Pointer(&x))
	}
}

// fromBits builds a lane of type T from the low bits of b.
func fromBits[T Lanes](b uint64) T {
	var x T
	switch unsafe.Sizeof(x) {
	case 1:
		*(*uint8)(unsafe.Pointer(&x)) = uint8(b)
	case 2:
		*(*uint16)(unsafe.Pointer(&x)) = uint16(b)
	case 4:
		*(*uint32)(unsafe.Pointer(&x)) = uint32(b)
	default:
		*(*uint64)(unsafe.Pointer(&x)) = b
	}
	return x
}

func bitwiseAnd[T Lanes](a, b T) T {
	return fromBits[T](toBits(a) & toBits(b))
}

func bitwiseOr[T Lanes](a, b T) T {
	return fromBits[T](toBits(a) | toBits(b))
}

func bitwiseXor[T Lanes](a, b T) T {
	return fromBits[T](toBits(a) ^ toBits(b))
}

// bitwiseAndNot computes ^a & b.
func bitwiseAndNot[T Lanes](a, b T) T {
	return fromBits[T](^toBits(a) & toBits(b))
}

func getSignBit[T Lanes]() T {
	return fromBits[T](uint64(1) << (8*LaneBytes[T]() - 1))
}
