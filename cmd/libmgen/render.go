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

package main

import (
	"bytes"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-libm/libm"
)

const softmathPath = "github.com/ajroetker/go-libm/softmath"

const licenseHeader = `// Copyright 2025 go-libm Authors
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
`

// GroupFileName returns the output filename for a group's wrappers.
// The z_ prefix marks libmgen output.
func GroupFileName(g libm.Group) string {
	return "z_" + g.Name + ".go"
}

// RenderGroup renders the cabi source file for one predicate group: the
// build constraint translating the group predicate, then one forwarding
// wrapper per symbol under its exact C name. Output is gofmt-formatted.
func RenderGroup(g libm.Group) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(licenseHeader)
	buf.WriteString("\n// Code generated by libmgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "//go:build %s\n\n", g.Tag)
	buf.WriteString("package cabi\n\n")

	title := cases.Title(language.English).String(g.Name)
	fmt.Fprintf(&buf, "// %s group: %s.\n\n", title, g.Doc)
	fmt.Fprintf(&buf, "import %q\n", softmathPath)

	for _, s := range g.Symbols {
		buf.WriteByte('\n')
		if err := renderWrapper(&buf, s); err != nil {
			return nil, fmt.Errorf("group %s: %w", g.Name, err)
		}
	}

	out, err := imports.Process(GroupFileName(g), buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("group %s: formatting rendered source: %w", g.Name, err)
	}
	return out, nil
}

func renderWrapper(buf *bytes.Buffer, s libm.Symbol) error {
	fmt.Fprintf(buf, "//export %s\n", s.Name)
	switch s.Sig {
	case libm.SigDD:
		fmt.Fprintf(buf, "func %s(x float64) float64 { return softmath.%s(x) }\n", s.Name, s.Backing)
	case libm.SigFF:
		fmt.Fprintf(buf, "func %s(x float32) float32 { return softmath.%s(x) }\n", s.Name, s.Backing)
	case libm.SigDDD:
		fmt.Fprintf(buf, "func %s(x, y float64) float64 { return softmath.%s(x, y) }\n", s.Name, s.Backing)
	case libm.SigFFF:
		fmt.Fprintf(buf, "func %s(x, y float32) float32 { return softmath.%s(x, y) }\n", s.Name, s.Backing)
	case libm.SigDDDD:
		fmt.Fprintf(buf, "func %s(x, y, z float64) float64 { return softmath.%s(x, y, z) }\n", s.Name, s.Backing)
	case libm.SigFFFF:
		fmt.Fprintf(buf, "func %s(x, y, z float32) float32 { return softmath.%s(x, y, z) }\n", s.Name, s.Backing)
	case libm.SigDID:
		fmt.Fprintf(buf, "func %s(x float64, n int32) float64 { return softmath.%s(x, n) }\n", s.Name, s.Backing)
	case libm.SigFIF:
		fmt.Fprintf(buf, "func %s(x float32, n int32) float32 { return softmath.%s(x, n) }\n", s.Name, s.Backing)
	case libm.SigDSign:
		fmt.Fprintf(buf, "func %s(x float64, signgamp *int32) float64 {\n\tv, sign := softmath.%s(x)\n\t*signgamp = sign\n\treturn v\n}\n", s.Name, s.Backing)
	case libm.SigFSign:
		fmt.Fprintf(buf, "func %s(x float32, signgamp *int32) float32 {\n\tv, sign := softmath.%s(x)\n\t*signgamp = sign\n\treturn v\n}\n", s.Name, s.Backing)
	default:
		return fmt.Errorf("symbol %s: unhandled signature %s", s.Name, s.Sig)
	}
	return nil
}
