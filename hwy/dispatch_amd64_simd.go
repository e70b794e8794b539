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

//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

func detectLevel() DispatchLevel {
	switch {
	case archsimd.X86.AVX512():
		return DispatchAVX512
	case archsimd.X86.AVX2():
		return DispatchAVX2
	case archsimd.X86.AVX():
		return DispatchAVX
	default:
		// SSE2 is baseline for amd64
		return DispatchSSE2
	}
}
