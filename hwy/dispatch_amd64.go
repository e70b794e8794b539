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

// detectFeatures reads the optional capabilities from CPUID. FMA3 is only
// usable when the OS saves the YMM state, which HasAVX already checks.
func detectFeatures() Features {
	return Features{
		FMA:       cpu.X86.HasAVX && cpu.X86.HasFMA,
		WideShift: cpu.X86.HasAVX2,
	}
}
