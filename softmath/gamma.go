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

// LgammaR computes log(|Gamma(x)|) and returns it together with the sign
// of Gamma(x). The pair maps onto the C lgamma_r contract, where the sign
// travels through an int* out-parameter. The sign is -1 when Gamma(x) is
// negative, 1 otherwise (including NaN inputs, matching lgamma_r).
func LgammaR(x float64) (float64, int32) {
	v, sign := stdmath.Lgamma(x)
	return v, int32(sign)
}

// LgammafR is the float32 variant of LgammaR.
func LgammafR(x float32) (float32, int32) {
	v, sign := stdmath.Lgamma(float64(x))
	return float32(v), int32(sign)
}
