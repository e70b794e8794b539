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

// Package math provides packet transcendental functions over hwy vectors.
// This package corresponds to Eigen's packet math for 256-bit registers.
//
// # Functions
//
// Float32x8 (eight float32 lanes):
//   - Sin(x) - sin(x), range reduced by Pi
//   - Log(x) - ln(x)
//   - Exp(x) - e^x, saturating instead of overflowing
//   - Sqrt(x) - sqrt(x)
//   - RSqrt(x) - 1/sqrt(x)
//
// Float64x4 (four float64 lanes):
//   - Sqrt64(x) - sqrt(x), always correctly rounded
//   - RSqrt64(x) - 1/sqrt(x), always 1 divided by the exact sqrt
//
// Every function evaluates all lanes through the same sequence of
// operations; per-lane special cases are handled with masks. None of them
// returns an error: NaN and the infinities are produced in-band, matching
// the scalar math library.
//
// # Kernels
//
// The package-level functions use Default(), a Kernel configured from the
// detected CPU features. Build a Kernel with New to pin a configuration:
//
//	k := math.New(math.Options{Features: hwy.ScalarFeatures, FastMath: true})
//	y := k.Exp(x)
//
// Two kernels with the same Options give bit-identical results on every
// platform.
//
// # Accuracy
//
// Measured against float64 references:
//   - Sin: absolute error below 3e-7 for |x| <= 100
//   - Log: error below 1e-7 relative to max(1, |ln x|)
//   - Exp: relative error below 4e-7 on [-87, 88.3]
//   - Sqrt, RSqrt (FastMath): relative error below 3e-7 for normal inputs
//
// # Slices
//
// Transform32 and Transform64 apply any vector function to whole slices,
// padding the final partial vector; SinTransform, ExpTransform and the
// others are shorthands. ParallelTransform32 and ParallelTransform64 split
// large slices across a workerpool.Pool.
package math
