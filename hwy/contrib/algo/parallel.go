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

package algo

import (
	"github.com/ajroetker/hwy-fallback/hwy"
	"github.com/ajroetker/hwy-fallback/hwy/contrib/workerpool"
)

// minParallelElems is the slice length below which ParallelApply runs on
// the calling goroutine.
const minParallelElems = 4096

// ParallelApply is Apply split across pool. Chunks start on vector
// boundaries, so only the last chunk takes the buffered tail path.
// A nil pool runs sequentially.
func ParallelApply[T hwy.Lanes](pool *workerpool.Pool, in, out []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(in), len(out))
	if pool == nil || n < minParallelElems {
		Apply(in[:n], out[:n], fn)
		return
	}
	pool.ParallelForAligned(n, hwy.MaxLanes[T](), func(start, end int) {
		Apply(in[start:end], out[start:end], fn)
	})
}

// ParallelApply2 is Apply2 split across pool.
func ParallelApply2[T hwy.Lanes](pool *workerpool.Pool, a, b, out []T, fn func(x, y hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(a), len(b), len(out))
	if pool == nil || n < minParallelElems {
		Apply2(a[:n], b[:n], out[:n], fn)
		return
	}
	pool.ParallelForAligned(n, hwy.MaxLanes[T](), func(start, end int) {
		Apply2(a[start:end], b[start:end], out[start:end], fn)
	})
}
