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

// Package kernels is the dispatching entry point for the kernel library.
//
// Each function looks up the best implementation for its element type on
// the current dispatch level in registry.Default and calls it. Importing
// the package registers the generic kernels and, where the CPU supports
// them, the native ones:
//
//	x := hwy.Load(data)
//	r := kernels.NearbyInt(x) // native on AVX2/NEON, generic elsewhere
//
// Set HWY_NO_SIMD=1 to force every call onto the generic fallback.
package kernels

import (
	"fmt"

	"github.com/ajroetker/hwy-fallback/hwy"
	"github.com/ajroetker/hwy-fallback/hwy/generic"
	"github.com/ajroetker/hwy-fallback/hwy/native"
	"github.com/ajroetker/hwy-fallback/hwy/registry"
)

func init() {
	if err := generic.Register(registry.Default); err != nil {
		panic(fmt.Sprintf("kernels: %v", err))
	}
	if err := native.Register(registry.Default, native.Detected()); err != nil {
		panic(fmt.Sprintf("kernels: %v", err))
	}
}

// Selected returns the registry entry a call to op on lane type elem
// resolves to on the current dispatch level. Remainder and Fmod are
// composites; the entries that decide them are those of NearbyInt, Trunc
// and FNMA.
func Selected(op registry.Op, elem registry.ElemType) (registry.Entry, error) {
	return registry.Default.Lookup(op, elem, hwy.CurrentLevel())
}

// Float is a floating-point lane type with registered kernels.
// Named types such as `type celsius float64` are not registered; call
// hwy/generic for those.
type Float interface {
	float32 | float64
}

// Lane is any lane type with registered kernels.
type Lane interface {
	Float | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// resolve panics when nothing is registered for (op, T), which init rules
// out for every operation and Lane type below.
func resolve[K any, T Lane](op registry.Op) K {
	k, err := registry.Resolve[K](registry.Default, op, registry.ElemTypeOf[T](), hwy.CurrentLevel())
	if err != nil {
		panic(fmt.Sprintf("kernels: %v", err))
	}
	return k
}

// BitOfSign returns the sign bit of each lane.
func BitOfSign[T Float](x hwy.Vec[T]) hwy.Vec[T] {
	return resolve[registry.Unary[T], T](registry.OpBitOfSign)(x)
}

// IsInf reports infinite lanes.
func IsInf[T Float](x hwy.Vec[T]) hwy.Mask[T] {
	return resolve[registry.Predicate[T], T](registry.OpIsInf)(x)
}

// IsFinite reports lanes that are neither infinite nor NaN.
func IsFinite[T Float](x hwy.Vec[T]) hwy.Mask[T] {
	return resolve[registry.Predicate[T], T](registry.OpIsFinite)(x)
}

// IsNaN reports NaN lanes.
func IsNaN[T Float](x hwy.Vec[T]) hwy.Mask[T] {
	return resolve[registry.Predicate[T], T](registry.OpIsNaN)(x)
}

// Clip clamps x to [lo, hi].
func Clip[T Lane](x, lo, hi hwy.Vec[T]) hwy.Vec[T] {
	return resolve[registry.Ternary[T], T](registry.OpClip)(x, lo, hi)
}

// Fdim returns max(0, x - y).
func Fdim[T Float](x, y hwy.Vec[T]) hwy.Vec[T] {
	return resolve[registry.Binary[T], T](registry.OpFdim)(x, y)
}

// FMA returns x*y + z. Whether it rounds once or twice depends on the
// selected implementation.
func FMA[T Lane](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return resolve[registry.Ternary[T], T](registry.OpFMA)(x, y, z)
}

// FMS returns x*y - z.
func FMS[T Lane](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return resolve[registry.Ternary[T], T](registry.OpFMS)(x, y, z)
}

// FNMA returns -x*y + z.
func FNMA[T Lane](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return resolve[registry.Ternary[T], T](registry.OpFNMA)(x, y, z)
}

// FNMS returns -x*y - z.
func FNMS[T Lane](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return resolve[registry.Ternary[T], T](registry.OpFNMS)(x, y, z)
}

// NearbyInt rounds to nearest, ties to even.
func NearbyInt[T Float](x hwy.Vec[T]) hwy.Vec[T] {
	return resolve[registry.Unary[T], T](registry.OpNearbyInt)(x)
}

// Trunc rounds toward zero.
func Trunc[T Float](x hwy.Vec[T]) hwy.Vec[T] {
	return resolve[registry.Unary[T], T](registry.OpTrunc)(x)
}

// Remainder returns x - n*y with n = x/y rounded to nearest even. It is
// composed from the dispatched NearbyInt and FNMA, so it rounds the way
// those do on the current target.
func Remainder[T Float](x, y hwy.Vec[T]) hwy.Vec[T] {
	return FNMA(NearbyInt(hwy.Div(x, y)), y, x)
}

// Fmod returns x - n*y with n = x/y truncated, composed from the
// dispatched Trunc and FNMA.
func Fmod[T Float](x, y hwy.Vec[T]) hwy.Vec[T] {
	return FNMA(Trunc(hwy.Div(x, y)), y, x)
}

// NextAfter steps from one representable value toward to. Integer lanes
// are returned unchanged.
func NextAfter[T Lane](from, to hwy.Vec[T]) hwy.Vec[T] {
	return resolve[registry.Binary[T], T](registry.OpNextAfter)(from, to)
}
