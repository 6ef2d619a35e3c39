// Copyright 2025 go-libm Authors
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

package softmath

import stdmath "math"

// float32 variants compute through float64. A float64 intermediate holds
// every float32 exactly, and the final conversion rounds once and carries
// overflow to the float32 infinity, which matches the C single-precision
// result conventions for these functions.

// Acosf computes arccos(x) for float32.
func Acosf(x float32) float32 { return float32(stdmath.Acos(float64(x))) }

// Asinf computes arcsin(x) for float32.
func Asinf(x float32) float32 { return float32(stdmath.Asin(float64(x))) }

// Atanf computes arctan(x) for float32.
func Atanf(x float32) float32 { return float32(stdmath.Atan(float64(x))) }

// Atan2f computes the angle of the vector (x, y) for float32.
func Atan2f(y, x float32) float32 { return float32(stdmath.Atan2(float64(y), float64(x))) }

// Cbrtf computes the cube root of x for float32.
func Cbrtf(x float32) float32 { return float32(stdmath.Cbrt(float64(x))) }

// Ceilf rounds x up to the nearest integer for float32.
func Ceilf(x float32) float32 { return float32(stdmath.Ceil(float64(x))) }

// Cosf computes cos(x) for float32.
func Cosf(x float32) float32 { return float32(stdmath.Cos(float64(x))) }

// Coshf computes the hyperbolic cosine of x for float32.
func Coshf(x float32) float32 { return float32(stdmath.Cosh(float64(x))) }

// Expf computes e**x for float32.
func Expf(x float32) float32 { return float32(stdmath.Exp(float64(x))) }

// Exp2f computes 2**x for float32.
func Exp2f(x float32) float32 { return float32(stdmath.Exp2(float64(x))) }

// Expm1f computes e**x - 1 for float32.
func Expm1f(x float32) float32 { return float32(stdmath.Expm1(float64(x))) }

// Fdimf computes the positive difference for float32.
func Fdimf(x, y float32) float32 { return float32(Fdim(float64(x), float64(y))) }

// Floorf rounds x down to the nearest integer for float32.
func Floorf(x float32) float32 { return float32(stdmath.Floor(float64(x))) }

// Fmaf computes x*y + z for float32. The float64 product and sum are
// exact for float32 operands, so the single rounding happens at the
// final conversion.
func Fmaf(x, y, z float32) float32 {
	return float32(stdmath.FMA(float64(x), float64(y), float64(z)))
}

// Fmaxf returns the larger of x and y for float32, avoiding NaN.
func Fmaxf(x, y float32) float32 { return float32(Fmax(float64(x), float64(y))) }

// Fminf returns the smaller of x and y for float32, avoiding NaN.
func Fminf(x, y float32) float32 { return float32(Fmin(float64(x), float64(y))) }

// Fmodf computes the floating-point remainder of x/y for float32.
func Fmodf(x, y float32) float32 { return float32(stdmath.Mod(float64(x), float64(y))) }

// Hypotf computes sqrt(x*x + y*y) for float32.
func Hypotf(x, y float32) float32 { return float32(stdmath.Hypot(float64(x), float64(y))) }

// Ldexpf computes frac * 2**exp for float32. The float64 scale is exact;
// the conversion rounds to float32 range, overflowing to an infinity and
// flushing below-denormal results to zero.
func Ldexpf(frac float32, exp int32) float32 {
	return float32(stdmath.Ldexp(float64(frac), int(exp)))
}

// Logf computes the natural logarithm of x for float32.
func Logf(x float32) float32 { return float32(stdmath.Log(float64(x))) }

// Log10f computes the base-10 logarithm of x for float32.
func Log10f(x float32) float32 { return float32(stdmath.Log10(float64(x))) }

// Log1pf computes log(1 + x) for float32.
func Log1pf(x float32) float32 { return float32(stdmath.Log1p(float64(x))) }

// Log2f computes the base-2 logarithm of x for float32.
func Log2f(x float32) float32 { return float32(stdmath.Log2(float64(x))) }

// Powf computes x**y for float32.
func Powf(x, y float32) float32 { return float32(stdmath.Pow(float64(x), float64(y))) }

// Rintf rounds x to the nearest integer for float32, ties to even.
func Rintf(x float32) float32 { return float32(stdmath.RoundToEven(float64(x))) }

// Roundf rounds x to the nearest integer for float32, ties away from zero.
func Roundf(x float32) float32 { return float32(stdmath.Round(float64(x))) }

// Sinf computes sin(x) for float32.
func Sinf(x float32) float32 { return float32(stdmath.Sin(float64(x))) }

// Sinhf computes the hyperbolic sine of x for float32.
func Sinhf(x float32) float32 { return float32(stdmath.Sinh(float64(x))) }

// Sqrtf computes the square root of x for float32.
func Sqrtf(x float32) float32 { return float32(stdmath.Sqrt(float64(x))) }

// Tanf computes tan(x) for float32.
func Tanf(x float32) float32 { return float32(stdmath.Tan(float64(x))) }

// Tanhf computes the hyperbolic tangent of x for float32.
func Tanhf(x float32) float32 { return float32(stdmath.Tanh(float64(x))) }

// Tgammaf computes the Gamma function of x for float32.
func Tgammaf(x float32) float32 { return float32(stdmath.Gamma(float64(x))) }

// Truncf rounds x toward zero for float32.
func Truncf(x float32) float32 { return float32(stdmath.Trunc(float64(x))) }
