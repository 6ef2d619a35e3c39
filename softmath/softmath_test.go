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

import (
	"math"
	"testing"
)

func TestFminFmax_NaNAvoiding(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"fmin(NaN, 2)", Fmin(nan, 2.0), 2.0},
		{"fmin(2, NaN)", Fmin(2.0, nan), 2.0},
		{"fmax(NaN, 2)", Fmax(nan, 2.0), 2.0},
		{"fmax(2, NaN)", Fmax(2.0, nan), 2.0},
		{"fmin(1, 2)", Fmin(1.0, 2.0), 1.0},
		{"fmin(2, 1)", Fmin(2.0, 1.0), 1.0},
		{"fmax(1, 2)", Fmax(1.0, 2.0), 2.0},
		{"fmax(2, 1)", Fmax(2.0, 1.0), 2.0},
		{"fmin(-Inf, 0)", Fmin(math.Inf(-1), 0), math.Inf(-1)},
		{"fmax(+Inf, 0)", Fmax(math.Inf(1), 0), math.Inf(1)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if !math.IsNaN(Fmin(nan, nan)) {
		t.Errorf("fmin(NaN, NaN) = %v, want NaN", Fmin(nan, nan))
	}
	if !math.IsNaN(Fmax(nan, nan)) {
		t.Errorf("fmax(NaN, NaN) = %v, want NaN", Fmax(nan, nan))
	}
	if got := Fminf(float32(math.NaN()), 2.0); got != 2.0 {
		t.Errorf("fminf(NaN, 2) = %v, want 2", got)
	}
}

func TestFdim(t *testing.T) {
	if got := Fdim(5.0, 3.0); got != 2.0 {
		t.Errorf("fdim(5, 3) = %v, want 2", got)
	}
	if got := Fdim(3.0, 5.0); got != 0 || math.Signbit(got) {
		t.Errorf("fdim(3, 5) = %v, want +0", got)
	}
	if got := Fdim(3.0, 3.0); got != 0 || math.Signbit(got) {
		t.Errorf("fdim(3, 3) = %v, want +0", got)
	}
	if !math.IsNaN(Fdim(math.NaN(), 1.0)) {
		t.Error("fdim(NaN, 1) should be NaN")
	}
	if !math.IsNaN(Fdim(1.0, math.NaN())) {
		t.Error("fdim(1, NaN) should be NaN")
	}
	if got := Fdimf(5.5, 2.0); got != 3.5 {
		t.Errorf("fdimf(5.5, 2) = %v, want 3.5", got)
	}
}

func TestRintVsRound(t *testing.T) {
	tests := []struct {
		x     float64
		rint  float64
		round float64
	}{
		{0.5, 0, 1},
		{1.5, 2, 2},
		{2.5, 2, 3},
		{-0.5, 0, -1}, // rint keeps the even neighbor, round moves away from zero
		{-2.5, -2, -3},
		{2.4, 2, 2},
		{2.6, 3, 3},
	}
	for _, tt := range tests {
		if got := Rint(tt.x); got != tt.rint {
			t.Errorf("rint(%v) = %v, want %v", tt.x, got, tt.rint)
		}
		if got := Round(tt.x); got != tt.round {
			t.Errorf("round(%v) = %v, want %v", tt.x, got, tt.round)
		}
	}
}

func TestFmod(t *testing.T) {
	if got := Fmod(5.5, 2.0); got != 1.5 {
		t.Errorf("fmod(5.5, 2.0) = %v, want 1.5", got)
	}
	if got := Fmodf(5.5, 2.0); got != 1.5 {
		t.Errorf("fmodf(5.5, 2.0) = %v, want 1.5", got)
	}
	if !math.IsNaN(Fmod(1.0, 0.0)) {
		t.Error("fmod(1, 0) should be NaN")
	}
	if got := Fmod(-5.5, 2.0); got != -1.5 {
		t.Errorf("fmod(-5.5, 2.0) = %v, want -1.5 (sign of x)", got)
	}
}

func TestLdexp(t *testing.T) {
	if got := Ldexp(1.0, 3); got != 8.0 {
		t.Errorf("ldexp(1, 3) = %v, want 8", got)
	}
	if got := Ldexpf(1.0, 3); got != 8.0 {
		t.Errorf("ldexpf(1, 3) = %v, want 8", got)
	}
	if got := Ldexp(1.5, -1); got != 0.75 {
		t.Errorf("ldexp(1.5, -1) = %v, want 0.75", got)
	}
	// float32 range handling: 2**200 overflows to +Inf, 2**-200 flushes to 0.
	if got := Ldexpf(1.0, 200); !math.IsInf(float64(got), 1) {
		t.Errorf("ldexpf(1, 200) = %v, want +Inf", got)
	}
	if got := Ldexpf(1.0, -200); got != 0 {
		t.Errorf("ldexpf(1, -200) = %v, want 0", got)
	}
}

func TestLgammaR(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		sign int32
	}{
		{"positive", 2.5, 1},
		{"negative non-integer", -0.5, -1},
		{"zero", 0, 1},
	}
	for _, tt := range tests {
		v, sign := LgammaR(tt.x)
		if sign != tt.sign {
			t.Errorf("%s: lgamma_r(%v) sign = %d, want %d", tt.name, tt.x, sign, tt.sign)
		}
		want, wantSign := math.Lgamma(tt.x)
		if math.Float64bits(v) != math.Float64bits(want) || sign != int32(wantSign) {
			t.Errorf("%s: lgamma_r(%v) = (%v, %d), backing gives (%v, %d)", tt.name, tt.x, v, sign, want, wantSign)
		}
	}
	v, sign := LgammaR(math.NaN())
	if !math.IsNaN(v) || sign != 1 {
		t.Errorf("lgamma_r(NaN) = (%v, %d), want (NaN, 1)", v, sign)
	}
	if _, sign := LgammafR(-0.5); sign != -1 {
		t.Errorf("lgammaf_r(-0.5) sign = %d, want -1", sign)
	}
}

func TestIdempotence(t *testing.T) {
	// Bit-for-bit identical results across repeated calls, including NaN
	// inputs, verifying no hidden state.
	inputs := []float64{0, 1, -1, 0.5, math.Pi, 1e300, -1e-300, math.Inf(1), math.Inf(-1), math.NaN()}
	fns := map[string]func(float64) float64{
		"sin":    Sin,
		"exp":    Exp,
		"log":    Log,
		"sqrt":   Sqrt,
		"tgamma": Tgamma,
		"cbrt":   Cbrt,
	}
	for name, fn := range fns {
		for _, x := range inputs {
			a, b := fn(x), fn(x)
			if math.Float64bits(a) != math.Float64bits(b) {
				t.Errorf("%s(%v) not reproducible: %x vs %x", name, x, math.Float64bits(a), math.Float64bits(b))
			}
		}
	}
	for _, x := range inputs {
		a, b := Fmod(x, 2.0), Fmod(x, 2.0)
		if math.Float64bits(a) != math.Float64bits(b) {
			t.Errorf("fmod(%v, 2) not reproducible", x)
		}
	}
}

func TestDomainErrorsAreResults(t *testing.T) {
	// Domain errors surface as NaN/Inf results, never panics.
	if !math.IsNaN(Log(-1.0)) {
		t.Error("log(-1) should be NaN")
	}
	if !math.IsInf(Log(0), -1) {
		t.Error("log(0) should be -Inf")
	}
	if !math.IsNaN(Sqrt(-1.0)) {
		t.Error("sqrt(-1) should be NaN")
	}
	if !math.IsNaN(Acos(2.0)) {
		t.Error("acos(2) should be NaN")
	}
	if !math.IsNaN(float64(Sqrtf(-1.0))) {
		t.Error("sqrtf(-1) should be NaN")
	}
	if !math.IsInf(Tgamma(0), 0) {
		t.Error("tgamma(0) should be infinite")
	}
}

func TestFloat32Variants(t *testing.T) {
	// Each f-variant matches the float64 computation rounded once. Bit
	// comparison keeps NaN cases (sqrtf of the negative input) meaningful.
	inputs := []float32{0, 0.5, 1, 2, -1, 3.75, 100}
	for _, x := range inputs {
		if got, want := Sinf(x), float32(math.Sin(float64(x))); math.Float32bits(got) != math.Float32bits(want) {
			t.Errorf("sinf(%v) = %v, want %v", x, got, want)
		}
		if got, want := Expf(x), float32(math.Exp(float64(x))); math.Float32bits(got) != math.Float32bits(want) {
			t.Errorf("expf(%v) = %v, want %v", x, got, want)
		}
		if got, want := Sqrtf(x), float32(math.Sqrt(float64(x))); math.Float32bits(got) != math.Float32bits(want) {
			t.Errorf("sqrtf(%v) = %v, want %v", x, got, want)
		}
	}
	if got := Fmaf(2, 3, 1); got != 7 {
		t.Errorf("fmaf(2, 3, 1) = %v, want 7", got)
	}
	if got := Fma(2, 3, 1); got != 7 {
		t.Errorf("fma(2, 3, 1) = %v, want 7", got)
	}
}
