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

// Acos computes arccos(x). Returns NaN for |x| > 1.
func Acos(x float64) float64 { return stdmath.Acos(x) }

// Asin computes arcsin(x). Returns NaN for |x| > 1.
func Asin(x float64) float64 { return stdmath.Asin(x) }

// Atan computes arctan(x).
func Atan(x float64) float64 { return stdmath.Atan(x) }

// Atan2 computes the angle of the vector (x, y) in the range (-Pi, Pi].
func Atan2(y, x float64) float64 { return stdmath.Atan2(y, x) }

// Cbrt computes the cube root of x.
func Cbrt(x float64) float64 { return stdmath.Cbrt(x) }

// Ceil rounds x up to the nearest integer.
func Ceil(x float64) float64 { return stdmath.Ceil(x) }

// Cos computes cos(x).
func Cos(x float64) float64 { return stdmath.Cos(x) }

// Cosh computes the hyperbolic cosine of x.
func Cosh(x float64) float64 { return stdmath.Cosh(x) }

// Exp computes e**x.
func Exp(x float64) float64 { return stdmath.Exp(x) }

// Exp2 computes 2**x.
func Exp2(x float64) float64 { return stdmath.Exp2(x) }

// Expm1 computes e**x - 1 accurately for x near zero.
func Expm1(x float64) float64 { return stdmath.Expm1(x) }

// Fdim computes the positive difference: x - y if x > y, +0 otherwise.
// NaN inputs produce NaN.
func Fdim(x, y float64) float64 {
	if stdmath.IsNaN(x) || stdmath.IsNaN(y) {
		return stdmath.NaN()
	}
	if x > y {
		return x - y
	}
	return 0
}

// Floor rounds x down to the nearest integer.
func Floor(x float64) float64 { return stdmath.Floor(x) }

// Fma computes x*y + z with a single rounding.
func Fma(x, y, z float64) float64 { return stdmath.FMA(x, y, z) }

// Fmax returns the larger of x and y. Unlike Go's math.Max, a single NaN
// operand is avoided: fmax(NaN, y) == y.
func Fmax(x, y float64) float64 {
	if stdmath.IsNaN(x) {
		return y
	}
	if stdmath.IsNaN(y) {
		return x
	}
	if x < y {
		return y
	}
	return x
}

// Fmin returns the smaller of x and y. Unlike Go's math.Min, a single NaN
// operand is avoided: fmin(NaN, y) == y.
func Fmin(x, y float64) float64 {
	if stdmath.IsNaN(x) {
		return y
	}
	if stdmath.IsNaN(y) {
		return x
	}
	if y < x {
		return y
	}
	return x
}

// Fmod computes the floating-point remainder of x/y with the sign of x.
// fmod(x, 0) is NaN.
func Fmod(x, y float64) float64 { return stdmath.Mod(x, y) }

// Hypot computes sqrt(x*x + y*y) without undue overflow or underflow.
func Hypot(x, y float64) float64 { return stdmath.Hypot(x, y) }

// Ldexp computes frac * 2**exp.
func Ldexp(frac float64, exp int32) float64 { return stdmath.Ldexp(frac, int(exp)) }

// Log computes the natural logarithm of x. Returns NaN for x < 0 and
// -Inf for x == 0.
func Log(x float64) float64 { return stdmath.Log(x) }

// Log10 computes the base-10 logarithm of x.
func Log10(x float64) float64 { return stdmath.Log10(x) }

// Log1p computes log(1 + x) accurately for x near zero.
func Log1p(x float64) float64 { return stdmath.Log1p(x) }

// Log2 computes the base-2 logarithm of x.
func Log2(x float64) float64 { return stdmath.Log2(x) }

// Pow computes x**y.
func Pow(x, y float64) float64 { return stdmath.Pow(x, y) }

// Rint rounds x to the nearest integer, ties to even.
func Rint(x float64) float64 { return stdmath.RoundToEven(x) }

// Round rounds x to the nearest integer, ties away from zero.
func Round(x float64) float64 { return stdmath.Round(x) }

// Sin computes sin(x).
func Sin(x float64) float64 { return stdmath.Sin(x) }

// Sinh computes the hyperbolic sine of x.
func Sinh(x float64) float64 { return stdmath.Sinh(x) }

// Sqrt computes the square root of x. Returns NaN for x < 0.
func Sqrt(x float64) float64 { return stdmath.Sqrt(x) }

// Tan computes tan(x).
func Tan(x float64) float64 { return stdmath.Tan(x) }

// Tanh computes the hyperbolic tangent of x.
func Tanh(x float64) float64 { return stdmath.Tanh(x) }

// Tgamma computes the Gamma function of x.
func Tgamma(x float64) float64 { return stdmath.Gamma(x) }

// Trunc rounds x toward zero.
func Trunc(x float64) float64 { return stdmath.Trunc(x) }
