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
	"runtime"
)

// Target describes a build configuration the symbol table is resolved
// against: the processor architecture, operating system, vendor, and
// environment fields of the target triple, plus whether the target has
// hardware floating point.
//
// Targets are plain values; resolution never mutates them.
type Target struct {
	Arch         string // "wasm32", "x86_64", "xtensa", "arm", ...
	OS           string // "none" for bare metal, "unknown" when unhosted
	Vendor       string // usually "unknown"
	Env          string // environment/ABI: "sgx", "wasi", "" when unused
	HasHardFloat bool   // hardware FPU (or equivalent instructions) present
}

// Family returns the coarse architecture family used by predicates that
// span pointer widths, e.g. "wasm" for both wasm32 and wasm64.
func (t Target) Family() string {
	switch t.Arch {
	case "wasm32", "wasm64":
		return "wasm"
	case "thumb":
		return "arm"
	}
	return t.Arch
}

// Triple renders the target in the conventional arch-vendor-os[-env] form.
func (t Target) Triple() string {
	s := t.Arch + "-" + t.Vendor + "-" + t.OS
	if t.Env != "" {
		s += "-" + t.Env
	}
	return s
}

// WasmUnknown is WebAssembly without a hosting OS or WASI layer; nothing
// beneath the module provides libm.
func WasmUnknown() Target {
	return Target{Arch: "wasm32", OS: "unknown", Vendor: "unknown", HasHardFloat: true}
}

// WasmWASI is WebAssembly with a WASI environment. wasi-libc supplies the
// math symbols, so no group activates here.
func WasmWASI() Target {
	return Target{Arch: "wasm32", OS: "wasi", Vendor: "unknown", Env: "wasi", HasHardFloat: true}
}

// Xous is the Xous microkernel, which ships no C library.
func Xous() Target {
	return Target{Arch: "riscv32", OS: "xous", Vendor: "unknown", HasHardFloat: false}
}

// UEFIx8664 is x86_64 UEFI firmware: hosted by firmware, not by an OS
// with a libm.
func UEFIx8664() Target {
	return Target{Arch: "x86_64", OS: "uefi", Vendor: "unknown", HasHardFloat: true}
}

// XtensaBare is bare-metal Xtensa, which has no hosted libraries and, on
// the common LX6/LX7 cores, no double-precision hardware.
func XtensaBare() Target {
	return Target{Arch: "xtensa", OS: "none", Vendor: "unknown", HasHardFloat: false}
}

// FortanixSGX is the Fortanix secure-enclave environment; enclave code
// cannot call out to the host libm.
func FortanixSGX() Target {
	return Target{Arch: "x86_64", OS: "unknown", Vendor: "fortanix", Env: "sgx", HasHardFloat: true}
}

// Windows is a hosted target whose CRT dropped lgamma_r, so only the
// gamma group activates.
func Windows() Target {
	return Target{Arch: "x86_64", OS: "windows", Vendor: "pc", Env: "msvc", HasHardFloat: true}
}

// ThumbBare is a Cortex-M class bare-metal ARM target without an FPU.
func ThumbBare() Target {
	return Target{Arch: "thumb", OS: "none", Vendor: "unknown", Env: "eabi", HasHardFloat: false}
}

// RISCV32BareNoF is bare-metal RV32 without the F extension.
func RISCV32BareNoF() Target {
	return Target{Arch: "riscv32", OS: "none", Vendor: "unknown", Env: "elf", HasHardFloat: false}
}

// RISCV32BareF is bare-metal RV32 with the F extension; the soft-float
// group must not activate here.
func RISCV32BareF() Target {
	return Target{Arch: "riscv32", OS: "none", Vendor: "unknown", Env: "elf", HasHardFloat: true}
}

// X8664Bare is a freestanding x86_64 kernel-style target built without
// SSE, hence no usable float hardware.
func X8664Bare() Target {
	return Target{Arch: "x86_64", OS: "none", Vendor: "unknown", HasHardFloat: false}
}

// MIPSBare is bare-metal MIPS without an FPU.
func MIPSBare() Target {
	return Target{Arch: "mips", OS: "none", Vendor: "unknown", HasHardFloat: false}
}

// LinuxX8664 is an ordinary hosted target; no group activates, the
// system libm serves every symbol.
func LinuxX8664() Target {
	return Target{Arch: "x86_64", OS: "linux", Vendor: "unknown", Env: "gnu", HasHardFloat: true}
}

// RegisteredTargets returns every target the table is maintained for,
// including hosted ones that must resolve to an empty set. This is the
// matrix VerifyExclusive runs over.
func RegisteredTargets() []Target {
	return []Target{
		WasmUnknown(),
		WasmWASI(),
		Xous(),
		UEFIx8664(),
		XtensaBare(),
		FortanixSGX(),
		Windows(),
		ThumbBare(),
		RISCV32BareNoF(),
		RISCV32BareF(),
		X8664Bare(),
		MIPSBare(),
		LinuxX8664(),
	}
}

// TargetByName resolves the names accepted by the libmgen CLI.
func TargetByName(name string) (Target, error) {
	switch name {
	case "wasm-unknown":
		return WasmUnknown(), nil
	case "wasm-wasi":
		return WasmWASI(), nil
	case "xous":
		return Xous(), nil
	case "uefi-x86_64":
		return UEFIx8664(), nil
	case "xtensa-none":
		return XtensaBare(), nil
	case "fortanix-sgx":
		return FortanixSGX(), nil
	case "windows":
		return Windows(), nil
	case "thumb-none":
		return ThumbBare(), nil
	case "riscv32-none":
		return RISCV32BareNoF(), nil
	case "x86_64-none":
		return X8664Bare(), nil
	case "mips-none":
		return MIPSBare(), nil
	case "host":
		return Host(), nil
	default:
		return Target{}, fmt.Errorf("unknown target: %s (see libmgen list for valid names)", name)
	}
}

// Host derives a Target from the running toolchain's GOOS/GOARCH. It
// exists for diagnostics only; activation is decided at build time, not
// by runtime inspection.
func Host() Target {
	t := Target{Vendor: "unknown", HasHardFloat: true}
	switch runtime.GOARCH {
	case "amd64":
		t.Arch = "x86_64"
	case "386":
		t.Arch = "x86"
	case "arm64":
		t.Arch = "aarch64"
	case "wasm":
		t.Arch = "wasm32"
	default:
		t.Arch = runtime.GOARCH
	}
	switch runtime.GOOS {
	case "js":
		t.OS = "unknown"
	case "wasip1":
		t.OS = "wasi"
		t.Env = "wasi"
	case "windows":
		t.OS = "windows"
		t.Vendor = "pc"
	default:
		t.OS = runtime.GOOS
	}
	return t
}
