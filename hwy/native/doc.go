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

// Package native provides specialized kernels that rely on the Go compiler
// lowering math.FMA, math.RoundToEven and math.Trunc to single hardware
// instructions.
//
// They are registered at registry.PriorityNative, and only for the targets
// whose CPU features guarantee the instruction, so dispatch prefers them
// over the generic fallback there and never elsewhere.
//
// The fused kernels round once. On float32 lanes the fused result is
// computed in float64 and rounded back, which may differ from a native
// float32 fused instruction in rare double-rounding cases.
package native
