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

import (
	"fmt"

	"github.com/samber/lo"
)

// Sig identifies a C calling signature. D and F are 64- and 32-bit
// floats, I is a 32-bit integer argument, and the Sign kinds take an
// int32 out-parameter the wrapper writes through.
type Sig int

const (
	SigDD Sig = iota // func(float64) float64
	SigFF            // func(float32) float32
	SigDDD           // func(float64, float64) float64
	SigFFF           // func(float32, float32) float32
	SigDDDD          // func(float64, float64, float64) float64
	SigFFFF          // func(float32, float32, float32) float32
	SigDID           // func(float64, int32) float64
	SigFIF           // func(float32, int32) float32
	SigDSign         // func(float64, *int32) float64
	SigFSign         // func(float32, *int32) float32
)

// String names the signature in C terms.
func (s Sig) String() string {
	switch s {
	case SigDD:
		return "double(double)"
	case SigFF:
		return "float(float)"
	case SigDDD:
		return "double(double, double)"
	case SigFFF:
		return "float(float, float)"
	case SigDDDD:
		return "double(double, double, double)"
	case SigFFFF:
		return "float(float, float, float)"
	case SigDID:
		return "double(double, int)"
	case SigFIF:
		return "float(float, int)"
	case SigDSign:
		return "double(double, int*)"
	case SigFSign:
		return "float(float, int*)"
	}
	return fmt.Sprintf("Sig(%d)", int(s))
}

// NumArgs returns the number of floating-point value arguments.
func (s Sig) NumArgs() int {
	switch s {
	case SigDDD, SigFFF:
		return 2
	case SigDDDD, SigFFFF:
		return 3
	}
	return 1
}

// Symbol is one exported symbol specification: the external C-ABI name,
// its calling signature, and the softmath operation backing it.
type Symbol struct {
	Name    string
	Sig     Sig
	Backing string
}

func d1(name, backing string) Symbol { return Symbol{Name: name, Sig: SigDD, Backing: backing} }
func f1(name, backing string) Symbol { return Symbol{Name: name, Sig: SigFF, Backing: backing} }
func d2(name, backing string) Symbol { return Symbol{Name: name, Sig: SigDDD, Backing: backing} }
func f2(name, backing string) Symbol { return Symbol{Name: name, Sig: SigFFF, Backing: backing} }
func d3(name, backing string) Symbol { return Symbol{Name: name, Sig: SigDDDD, Backing: backing} }
func f3(name, backing string) Symbol { return Symbol{Name: name, Sig: SigFFFF, Backing: backing} }
func dxi(name, backing string) Symbol { return Symbol{Name: name, Sig: SigDID, Backing: backing} }
func fxi(name, backing string) Symbol { return Symbol{Name: name, Sig: SigFIF, Backing: backing} }

// noLibmSymbols is the full surface exported where no hosted libm exists.
func noLibmSymbols() []Symbol {
	return []Symbol{
		d1("acos", "Acos"), f1("acosf", "Acosf"),
		d1("asin", "Asin"), f1("asinf", "Asinf"),
		d1("atan", "Atan"), f1("atanf", "Atanf"),
		d2("atan2", "Atan2"), f2("atan2f", "Atan2f"),
		d1("cbrt", "Cbrt"), f1("cbrtf", "Cbrtf"),
		d1("cos", "Cos"), f1("cosf", "Cosf"),
		d1("cosh", "Cosh"), f1("coshf", "Coshf"),
		d1("exp", "Exp"), f1("expf", "Expf"),
		d1("exp2", "Exp2"), f1("exp2f", "Exp2f"),
		d1("expm1", "Expm1"), f1("expm1f", "Expm1f"),
		d2("fdim", "Fdim"), f2("fdimf", "Fdimf"),
		d3("fma", "Fma"), f3("fmaf", "Fmaf"),
		d2("fmax", "Fmax"), f2("fmaxf", "Fmaxf"),
		d2("fmin", "Fmin"), f2("fminf", "Fminf"),
		d2("fmod", "Fmod"), f2("fmodf", "Fmodf"),
		d2("hypot", "Hypot"), f2("hypotf", "Hypotf"),
		dxi("ldexp", "Ldexp"), fxi("ldexpf", "Ldexpf"),
		d1("log", "Log"), f1("logf", "Logf"),
		d1("log10", "Log10"), f1("log10f", "Log10f"),
		d1("log1p", "Log1p"), f1("log1pf", "Log1pf"),
		d1("log2", "Log2"), f1("log2f", "Log2f"),
		d2("pow", "Pow"), f2("powf", "Powf"),
		d1("rint", "Rint"), f1("rintf", "Rintf"),
		d1("round", "Round"), f1("roundf", "Roundf"),
		d1("sin", "Sin"), f1("sinf", "Sinf"),
		d1("sinh", "Sinh"), f1("sinhf", "Sinhf"),
		d1("tan", "Tan"), f1("tanf", "Tanf"),
		d1("tanh", "Tanh"), f1("tanhf", "Tanhf"),
		d1("tgamma", "Tgamma"), f1("tgammaf", "Tgammaf"),
	}
}

func gammaSymbols() []Symbol {
	return []Symbol{
		{Name: "lgamma_r", Sig: SigDSign, Backing: "LgammaR"},
		{Name: "lgammaf_r", Sig: SigFSign, Backing: "LgammafR"},
	}
}

func sqrtSymbols() []Symbol {
	return []Symbol{
		d1("sqrt", "Sqrt"), f1("sqrtf", "Sqrtf"),
	}
}

func roundingSymbols() []Symbol {
	return []Symbol{
		d1("ceil", "Ceil"), f1("ceilf", "Ceilf"),
		d1("floor", "Floor"), f1("floorf", "Floorf"),
		d1("trunc", "Trunc"), f1("truncf", "Truncf"),
	}
}

func softFloatSymbols() []Symbol {
	return []Symbol{
		d2("fmin", "Fmin"), f2("fminf", "Fminf"),
		d2("fmax", "Fmax"), f2("fmaxf", "Fmaxf"),
		d2("fmod", "Fmod"), f2("fmodf", "Fmodf"),
	}
}

// ActiveSymbols resolves the full export set for t: the union of every
// matching group's symbols. A duplicate name means two groups claimed the
// same symbol for one build, which would be a link-time duplicate-symbol
// conflict, so it is reported as an error here.
func ActiveSymbols(t Target) ([]Symbol, error) {
	syms := lo.FlatMap(ActiveGroups(t), func(g Group, _ int) []Symbol { return g.Symbols })
	if dups := lo.FindDuplicatesBy(syms, func(s Symbol) string { return s.Name }); len(dups) > 0 {
		return nil, fmt.Errorf("target %s: symbol %q activated by more than one group", t.Triple(), dups[0].Name)
	}
	return syms, nil
}

// LookupSymbol finds a symbol specification by its C name anywhere in the
// table, regardless of target.
func LookupSymbol(name string) (Symbol, bool) {
	all := lo.FlatMap(Groups(), func(g Group, _ int) []Symbol { return g.Symbols })
	return lo.Find(all, func(s Symbol) bool { return s.Name == name })
}
