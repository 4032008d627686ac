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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	detectedLevel = detectAMD64()

	// FMA3 ships with AVX2 on every Intel/AMD part, but it has its own CPUID bit.
	hasFMA = cpu.X86.HasFMA
	hasRound = cpu.X86.HasSSE41

	setLevel(selectLevel(detectedLevel, supportedAMD64))
}

func detectAMD64() DispatchLevel {
	switch {
	case supportedAMD64(DispatchAVX512):
		return DispatchAVX512
	case supportedAMD64(DispatchAVX2):
		return DispatchAVX2
	default:
		// SSE2 is part of the x86-64 baseline.
		return DispatchSSE2
	}
}

func supportedAMD64(level DispatchLevel) bool {
	switch level {
	case DispatchScalar, DispatchSSE2:
		return true
	case DispatchAVX2:
		return cpu.X86.HasAVX2
	case DispatchAVX512:
		return cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ
	default:
		return false
	}
}
