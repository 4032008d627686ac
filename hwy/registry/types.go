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

package registry

import (
	"reflect"
	"strings"

	"github.com/ajroetker/hwy-fallback/hwy"
)

// Op names a kernel operation.
type Op string

const (
	OpBitOfSign Op = "bitofsign"
	OpIsInf     Op = "isinf"
	OpIsFinite  Op = "isfinite"
	OpIsNaN     Op = "isnan"
	OpClip      Op = "clip"
	OpFdim      Op = "fdim"
	OpFMA       Op = "fma"
	OpFMS       Op = "fms"
	OpFNMA      Op = "fnma"
	OpFNMS      Op = "fnms"
	OpNearbyInt Op = "nearbyint"
	OpTrunc     Op = "trunc"
	OpRemainder Op = "remainder"
	OpFmod      Op = "fmod"
	OpNextAfter Op = "nextafter"
)

// Arity describes the Go signature a kernel for an Op must have.
type Arity int

const (
	// ArityUnary is func(Vec[T]) Vec[T].
	ArityUnary Arity = iota + 1
	// ArityBinary is func(Vec[T], Vec[T]) Vec[T].
	ArityBinary
	// ArityTernary is func(Vec[T], Vec[T], Vec[T]) Vec[T].
	ArityTernary
	// ArityPredicate is func(Vec[T]) Mask[T].
	ArityPredicate
)

var opArity = map[Op]Arity{
	OpBitOfSign: ArityUnary,
	OpIsInf:     ArityPredicate,
	OpIsFinite:  ArityPredicate,
	OpIsNaN:     ArityPredicate,
	OpClip:      ArityTernary,
	OpFdim:      ArityBinary,
	OpFMA:       ArityTernary,
	OpFMS:       ArityTernary,
	OpFNMA:      ArityTernary,
	OpFNMS:      ArityTernary,
	OpNearbyInt: ArityUnary,
	OpTrunc:     ArityUnary,
	OpRemainder: ArityBinary,
	OpFmod:      ArityBinary,
	OpNextAfter: ArityBinary,
}

// Arity returns the signature kind of op, and false for unknown ops.
func (o Op) Arity() (Arity, bool) {
	a, ok := opArity[o]
	return a, ok
}

// ParseOp parses an operation name, case-insensitively.
func ParseOp(s string) (Op, bool) {
	op := Op(strings.ToLower(strings.TrimSpace(s)))
	_, ok := opArity[op]
	return op, ok
}

// ElemType identifies the lane type of a kernel.
type ElemType int

const (
	Float32 ElemType = iota
	Float64
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

// AllElemTypes lists every lane type in declaration order.
var AllElemTypes = []ElemType{
	Float32, Float64, Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64,
}

var elemNames = [...]string{
	Float32: "float32",
	Float64: "float64",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
}

func (e ElemType) String() string {
	if e < 0 || int(e) >= len(elemNames) {
		return "unknown"
	}
	return elemNames[e]
}

// IsFloat reports whether e is a floating-point lane type.
func (e ElemType) IsFloat() bool {
	return e == Float32 || e == Float64
}

// ParseElemType parses a lane type name such as "float64".
func ParseElemType(s string) (ElemType, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range elemNames {
		if n == name {
			return ElemType(i), true
		}
	}
	return Float32, false
}

// ElemTypeOf returns the ElemType of lane type T.
// Named types map to their underlying kind.
func ElemTypeOf[T hwy.Lanes]() ElemType {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	default:
		return Uint64
	}
}

// Kernel signatures, one per Arity.
type (
	Unary[T hwy.Lanes]     func(x hwy.Vec[T]) hwy.Vec[T]
	Binary[T hwy.Lanes]    func(x, y hwy.Vec[T]) hwy.Vec[T]
	Ternary[T hwy.Lanes]   func(x, y, z hwy.Vec[T]) hwy.Vec[T]
	Predicate[T hwy.Lanes] func(x hwy.Vec[T]) hwy.Mask[T]
)

type laneTypes struct {
	vec, mask reflect.Type
}

var elemReflect = map[ElemType]laneTypes{
	Float32: {reflect.TypeFor[hwy.Vec[float32]](), reflect.TypeFor[hwy.Mask[float32]]()},
	Float64: {reflect.TypeFor[hwy.Vec[float64]](), reflect.TypeFor[hwy.Mask[float64]]()},
	Int8:    {reflect.TypeFor[hwy.Vec[int8]](), reflect.TypeFor[hwy.Mask[int8]]()},
	Int16:   {reflect.TypeFor[hwy.Vec[int16]](), reflect.TypeFor[hwy.Mask[int16]]()},
	Int32:   {reflect.TypeFor[hwy.Vec[int32]](), reflect.TypeFor[hwy.Mask[int32]]()},
	Int64:   {reflect.TypeFor[hwy.Vec[int64]](), reflect.TypeFor[hwy.Mask[int64]]()},
	Uint8:   {reflect.TypeFor[hwy.Vec[uint8]](), reflect.TypeFor[hwy.Mask[uint8]]()},
	Uint16:  {reflect.TypeFor[hwy.Vec[uint16]](), reflect.TypeFor[hwy.Mask[uint16]]()},
	Uint32:  {reflect.TypeFor[hwy.Vec[uint32]](), reflect.TypeFor[hwy.Mask[uint32]]()},
	Uint64:  {reflect.TypeFor[hwy.Vec[uint64]](), reflect.TypeFor[hwy.Mask[uint64]]()},
}

// signature returns the func type a kernel for (arity, elem) must have.
func signature(arity Arity, elem ElemType) (reflect.Type, bool) {
	lt, ok := elemReflect[elem]
	if !ok {
		return nil, false
	}
	switch arity {
	case ArityUnary:
		return reflect.FuncOf([]reflect.Type{lt.vec}, []reflect.Type{lt.vec}, false), true
	case ArityBinary:
		return reflect.FuncOf([]reflect.Type{lt.vec, lt.vec}, []reflect.Type{lt.vec}, false), true
	case ArityTernary:
		return reflect.FuncOf([]reflect.Type{lt.vec, lt.vec, lt.vec}, []reflect.Type{lt.vec}, false), true
	case ArityPredicate:
		return reflect.FuncOf([]reflect.Type{lt.vec}, []reflect.Type{lt.mask}, false), true
	default:
		return nil, false
	}
}
