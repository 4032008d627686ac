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

// Package generic provides the architecture-agnostic fallback kernels.
//
// Every kernel is built only from the primitive set in package hwy
// (arithmetic, comparison to mask, bitwise ops, IfThenElse, int/float
// conversion and bit casts) and the constants it provides. No kernel uses
// a hardware rounding or fused instruction, so the results here are the
// baseline every specialized implementation must reproduce.
//
// # Kernels
//
// Sign and classification:
//   - BitOfSign(x) - the sign bit of each lane, zero elsewhere
//   - IsInf(x), IsFinite(x), IsNaN(x) - mutually exclusive, exhaustive
//
// Combining and clamping:
//   - Clip(x, lo, hi) = min(hi, max(x, lo))
//   - Fdim(x, y) = max(0, x - y)
//   - FMA, FMS, FNMA, FNMS - x*y ± z and -x*y ± z, unfused
//
// Rounding:
//   - NearbyInt(x) - round half to even via the 2^mantissa-bits trick
//   - Trunc(x) - round toward zero through the paired integer type
//   - Remainder(x, y), Fmod(x, y)
//
// Adjacent values:
//   - NextAfter(from, to) - one ULP step; NextAfterInt is the identity
//
// # Precision
//
// FMA and friends round twice, once after the multiply and once after the
// add, so they may differ from a single-rounding fused instruction in the
// last bit. Trunc returns +0 for negative inputs in (-1, 0).
//
// Kernels never report errors; division by zero and invalid operations
// produce ±Inf or NaN lanes that propagate through later kernels.
//
// # Concurrency
//
// All kernels are pure functions of their by-value arguments and may be
// called from any number of goroutines.
package generic
