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

// Command hwykernels inspects kernel dispatch on the running machine.
//
// Usage:
//
//	hwykernels targets                              # detected CPU features and dispatch level
//	hwykernels table --op fma                       # registered implementations
//	hwykernels table --target avx2                  # what each op resolves to on avx2
//	hwykernels eval nearbyint --lanes=1.5,-1.5,2.5  # run a kernel on literal lanes
//	hwykernels eval clip --type int32 --lanes=5,-5,0 --y=-1 --z=1
//
// HWY_NO_SIMD=1 and HWY_TARGET=<level> change the dispatch level as they
// do for any program using hwy.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
