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

package hwy

// TailMask32 returns a mask with the first count lanes active.
// Counts outside [0, Lanes32] are clamped.
func TailMask32(count int) Mask32x8 {
	count = max(0, min(count, Lanes32))
	var m Mask32x8
	for i := range count {
		m.bits[i] = laneTrue32
	}
	return m
}

// ProcessWithTail is a helper for processing arrays a vector at a time that
// handles both full vectors and the tail (remainder).
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of
//     the vector width
//
// Example:
//
//	hwy.ProcessWithTail[float32](len(data),
//	    func(offset int) {
//	        v := hwy.LoadFloat32x8Slice(data[offset:])
//	        v.Add(v).StoreSlice(output[offset:])
//	    },
//	    func(offset, count int) {
//	        v := hwy.LoadFloat32x8Partial(data[offset:offset+count], 0)
//	        v.Add(v).StorePartial(output[offset : offset+count])
//	    },
//	)
func ProcessWithTail[T Floats](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := LanesFor[T]()

	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of the vector width.
// This is useful for allocating buffers and splitting work into blocks of
// whole vectors.
func AlignedSize[T Floats](size int) int {
	lanes := LanesFor[T]()
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of the vector width.
func IsAligned[T Floats](size int) bool {
	return size%LanesFor[T]() == 0
}
