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

// Package cabi holds the exported forwarding wrappers: one function per
// active math symbol, carrying the exact C name and an //export directive
// so TinyGo-class freestanding and wasm toolchains link it under the
// conventional C ABI. Every wrapper is a stateless pass-through into
// softmath; the only write anywhere in the package is the lgamma_r sign
// slot.
//
// The z_*.go files are libmgen output, one per predicate group. Each is
// gated by the Go translation of its group predicate where one exists
// (js && wasm for the wasm-unknown targets) OR-ed with an opt-in tag for
// toolchains the big Go toolchain cannot target:
//
//	libm_nolibm    full no-hosted-libm surface (Xous, UEFI, Xtensa, SGX)
//	libm_softsqrt  sqrt/sqrtf
//	libm_softround ceil/floor/trunc
//	libm_softfp    fmin/fmax/fmod for FPU-less targets
//
// A freestanding build passes exactly the tags its target's predicates
// resolve to (libmgen list --target <name> prints them). Forcing two
// groups that both claim a symbol, such as libm_nolibm with libm_softfp,
// fails at compile time with a duplicate definition; that conflict is
// meant to surface at build time, never at run time.
package cabi
