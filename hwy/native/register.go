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

package native

import (
	"errors"

	"github.com/ajroetker/hwy-fallback/hwy"
	"github.com/ajroetker/hwy-fallback/hwy/registry"
)

// Name identifies the native kernels in a registry.
const Name = "native"

// Features is the subset of CPU capabilities that gates registration.
type Features struct {
	FMA   bool
	Round bool
}

// Detected returns the features of the running CPU.
func Detected() Features {
	return Features{FMA: hwy.HasFMA(), Round: hwy.HasRound()}
}

// Register adds the native kernels for the targets of this architecture
// that f allows. It registers nothing when f is empty.
func Register(r *registry.Registry, f Features) error {
	var errs []error
	for _, target := range targets() {
		errs = append(errs, registerFor[float32](r, target, f)...)
		errs = append(errs, registerFor[float64](r, target, f)...)
	}
	return errors.Join(errs...)
}

func registerFor[T hwy.Floats](r *registry.Registry, target hwy.DispatchLevel, f Features) []error {
	var entries []registry.Entry
	add := func(op registry.Op, kernel any) {
		entries = append(entries, registry.Entry{
			Op:       op,
			Elem:     registry.ElemTypeOf[T](),
			Target:   target,
			Priority: registry.PriorityNative,
			Name:     Name,
			Kernel:   kernel,
		})
	}
	if f.FMA {
		add(registry.OpFMA, registry.Ternary[T](FMA[T]))
		add(registry.OpFMS, registry.Ternary[T](FMS[T]))
		add(registry.OpFNMA, registry.Ternary[T](FNMA[T]))
		add(registry.OpFNMS, registry.Ternary[T](FNMS[T]))
	}
	if f.Round {
		add(registry.OpNearbyInt, registry.Unary[T](NearbyInt[T]))
		add(registry.OpTrunc, registry.Unary[T](Trunc[T]))
	}

	var errs []error
	for _, e := range entries {
		if err := r.Register(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
