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

// Package softmath is the software math library backing the exported C
// symbols. Every function is a pure function of its inputs with C libm
// edge-case semantics: domain errors surface as NaN or infinity results,
// never as Go errors or panics. Nothing here touches an OS math library
// or requires floating-point hardware beyond what the Go toolchain
// already softens for the target.
//
// Where Go's standard semantics differ from C's, the C behavior wins:
// Fmin and Fmax avoid NaN rather than propagate it, Fdim returns +0 for
// x <= y, Rint rounds half to even while Round rounds half away from
// zero. float32 variants carry an "f" suffix mirroring the C names and
// compute through float64 unless single-precision range handling is
// required.
package softmath
