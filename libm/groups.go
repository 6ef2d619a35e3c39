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

package libm

import "github.com/samber/lo"

// Clause is an AND over target attributes. Empty string fields match any
// value; NotEnv excludes a single environment; SoftFloatOnly requires the
// target to lack hardware floating point.
type Clause struct {
	Family        string
	Arch          string
	OS            string
	Vendor        string
	Env           string
	NotEnv        string
	SoftFloatOnly bool
}

// Matches reports whether the clause holds for t.
func (c Clause) Matches(t Target) bool {
	if c.Family != "" && t.Family() != c.Family {
		return false
	}
	if c.Arch != "" && t.Arch != c.Arch {
		return false
	}
	if c.OS != "" && t.OS != c.OS {
		return false
	}
	if c.Vendor != "" && t.Vendor != c.Vendor {
		return false
	}
	if c.Env != "" && t.Env != c.Env {
		return false
	}
	if c.NotEnv != "" && t.Env == c.NotEnv {
		return false
	}
	if c.SoftFloatOnly && t.HasHardFloat {
		return false
	}
	return true
}

// Group gates a block of symbol specifications on an OR of clauses. Tag
// is the Go build-constraint expression libmgen stamps on the group's
// generated file: the native translation of the predicate where the Go
// toolchain can express it, OR-ed with an opt-in tag freestanding
// toolchains pass with -tags.
type Group struct {
	Name    string
	Doc     string
	Tag     string
	Clauses []Clause
	Symbols []Symbol
}

// Matches reports whether any clause holds for t.
func (g Group) Matches(t Target) bool {
	return lo.SomeBy(g.Clauses, func(c Clause) bool { return c.Matches(t) })
}

// The no-hosted-libm clause set is shared by the nolibm and gamma groups;
// the gamma group extends it with Windows.
func noLibmClauses() []Clause {
	return []Clause{
		{Family: "wasm", OS: "unknown", NotEnv: "wasi"},
		{OS: "xous"},
		{Arch: "x86_64", OS: "uefi"},
		{Arch: "xtensa", OS: "none"},
		{Vendor: "fortanix", Env: "sgx"},
	}
}

// NoLibmGroup covers targets with no hosted C library at all: the full
// transcendental and helper surface is exported.
func NoLibmGroup() Group {
	return Group{
		Name:    "nolibm",
		Doc:     "no hosted libm: wasm32-unknown, Xous, x86_64 UEFI, bare-metal Xtensa, and Fortanix SGX",
		Tag:     "(js && wasm) || libm_nolibm",
		Clauses: noLibmClauses(),
		Symbols: noLibmSymbols(),
	}
}

// GammaGroup exports the reentrant log-gamma pair. Windows joins the
// no-libm targets here because its CRT lacks lgamma_r.
func GammaGroup() Group {
	return Group{
		Name:    "gamma",
		Doc:     "reentrant log-gamma: the no-libm targets plus Windows, whose CRT lacks lgamma_r",
		Tag:     "(js && wasm) || windows || libm_nolibm",
		Clauses: append(noLibmClauses(), Clause{OS: "windows"}),
		Symbols: gammaSymbols(),
	}
}

// SqrtGroup exports sqrt on targets whose compiler runtime cannot lower
// it to an instruction or a hosted call.
func SqrtGroup() Group {
	return Group{
		Name: "softsqrt",
		Doc:  "software sqrt for Xous, UEFI, and bare-metal Xtensa",
		Tag:  "libm_softsqrt",
		Clauses: []Clause{
			{OS: "xous"},
			{OS: "uefi"},
			{Arch: "xtensa", OS: "none"},
		},
		Symbols: sqrtSymbols(),
	}
}

// RoundingGroup exports the directed rounding helpers where no hosted or
// hardware implementation exists.
func RoundingGroup() Group {
	return Group{
		Name: "softround",
		Doc:  "ceil/floor/trunc for SGX, bare-metal Xtensa, Xous, and UEFI",
		Tag:  "libm_softround",
		Clauses: []Clause{
			{Vendor: "fortanix", Env: "sgx"},
			{Arch: "xtensa", OS: "none"},
			{OS: "xous"},
			{OS: "uefi"},
		},
		Symbols: roundingSymbols(),
	}
}

// SoftFloatGroup exports fmin/fmax/fmod on bare-metal architectures that
// lack a floating-point instruction set. Its membership overlaps the
// nolibm group; the clause sets are disjoint per target, which
// VerifyExclusive checks rather than assumes.
func SoftFloatGroup() Group {
	return Group{
		Name: "softfp",
		Doc:  "min/max/mod for bare-metal ARM, RV32 without F, x86_64, and MIPS with no float hardware",
		Tag:  "libm_softfp",
		Clauses: []Clause{
			{Family: "arm", OS: "none"},
			{Arch: "riscv32", OS: "none", SoftFloatOnly: true},
			{Arch: "x86_64", OS: "none"},
			{Arch: "mips", OS: "none"},
		},
		Symbols: softFloatSymbols(),
	}
}

// Groups returns the predicate groups in generation order.
func Groups() []Group {
	return []Group{
		NoLibmGroup(),
		GammaGroup(),
		SqrtGroup(),
		RoundingGroup(),
		SoftFloatGroup(),
	}
}

// ActiveGroups returns the groups whose predicates hold for t.
func ActiveGroups(t Target) []Group {
	return lo.Filter(Groups(), func(g Group, _ int) bool { return g.Matches(t) })
}

// GroupByName finds a group by its generation name.
func GroupByName(name string) (Group, bool) {
	return lo.Find(Groups(), func(g Group) bool { return g.Name == name })
}
