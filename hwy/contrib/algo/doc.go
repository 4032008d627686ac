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

// Package algo applies vector kernels to whole slices.
//
// The Apply family walks a slice one vector at a time and handles the tail
// by copying it into a zero-padded buffer, so kernels always see full
// vectors and no scalar fallback is needed:
//
//	out := make([]float64, len(in))
//	algo.Apply(in, out, kernels.NearbyInt[float64])
//
//	// Binary and ternary kernels take one input slice per operand.
//	algo.Apply2(x, y, out, generic.Fmod[float64])
//	algo.Apply3(x, lo, hi, out, generic.Clip[float64])
//
//	// Predicates fill a []bool.
//	nan := make([]bool, len(in))
//	algo.ApplyMask(in, nan, generic.IsNaN[float64])
//
// ParallelApply splits large slices across a workerpool.Pool on lane
// boundaries.
//
// All functions process min(len(inputs...), len(out)) elements.
package algo
