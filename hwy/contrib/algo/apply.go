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

import "github.com/ajroetker/hwy-fallback/hwy"

// Apply writes fn(in) to out, one vector at a time.
func Apply[T hwy.Lanes](in, out []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(in), len(out))
	hwy.ProcessWithTail[T](n,
		func(i int) {
			hwy.Store(fn(hwy.Load(in[i:])), out[i:])
		},
		func(i, count int) {
			buf := tailBuf(in[i : i+count])
			hwy.Store(fn(hwy.Load(buf)), buf)
			copy(out[i:i+count], buf)
		},
	)
}

// Apply2 writes fn(a, b) to out.
func Apply2[T hwy.Lanes](a, b, out []T, fn func(x, y hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(a), len(b), len(out))
	hwy.ProcessWithTail[T](n,
		func(i int) {
			hwy.Store(fn(hwy.Load(a[i:]), hwy.Load(b[i:])), out[i:])
		},
		func(i, count int) {
			bufA := tailBuf(a[i : i+count])
			bufB := tailBuf(b[i : i+count])
			hwy.Store(fn(hwy.Load(bufA), hwy.Load(bufB)), bufA)
			copy(out[i:i+count], bufA)
		},
	)
}

// Apply3 writes fn(a, b, c) to out.
func Apply3[T hwy.Lanes](a, b, c, out []T, fn func(x, y, z hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(a), len(b), len(c), len(out))
	hwy.ProcessWithTail[T](n,
		func(i int) {
			hwy.Store(fn(hwy.Load(a[i:]), hwy.Load(b[i:]), hwy.Load(c[i:])), out[i:])
		},
		func(i, count int) {
			bufA := tailBuf(a[i : i+count])
			bufB := tailBuf(b[i : i+count])
			bufC := tailBuf(c[i : i+count])
			hwy.Store(fn(hwy.Load(bufA), hwy.Load(bufB), hwy.Load(bufC)), bufA)
			copy(out[i:i+count], bufA)
		},
	)
}

// ApplyMask writes the lanes of fn(in) to out as booleans.
func ApplyMask[T hwy.Lanes](in []T, out []bool, fn func(hwy.Vec[T]) hwy.Mask[T]) {
	n := min(len(in), len(out))
	hwy.ProcessWithTail[T](n,
		func(i int) {
			copy(out[i:], fn(hwy.Load(in[i:])).Bits())
		},
		func(i, count int) {
			copy(out[i:i+count], fn(hwy.Load(tailBuf(in[i:i+count]))).Bits())
		},
	)
}

// tailBuf copies a partial vector into a zero-padded buffer one vector
// long.
func tailBuf[T hwy.Lanes](src []T) []T {
	buf := make([]T, hwy.AlignedSize[T](len(src)))
	copy(buf, src)
	return buf
}
