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

// Package main provides a diagnostic tool that prints the host's target
// facts, its floating-point hardware features, and the symbol set the
// export table would resolve for it. It reports only; activation is
// always a build-time decision.
package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-libm/libm"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
	fmt.Println()

	host := libm.Host()
	fmt.Printf("Target triple: %s\n", host.Triple())
	fmt.Printf("Architecture family: %s\n", host.Family())

	syms, err := libm.ActiveSymbols(host)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	groups := libm.ActiveGroups(host)
	if len(groups) == 0 {
		fmt.Println("Active groups: none (hosted target, system libm serves every symbol)")
		return
	}
	for _, g := range groups {
		fmt.Printf("Active group: %s (//go:build %s)\n", g.Name, g.Tag)
	}
	fmt.Printf("Exported symbols: %d\n", len(syms))
	for _, s := range syms {
		fmt.Printf("  %-10s %s\n", s.Name, s.Sig)
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasFP:      %v (floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasFPHP:    %v (FP16 scalar)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:    %v (amd64 float baseline)\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:   %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
}
