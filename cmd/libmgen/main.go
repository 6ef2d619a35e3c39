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

// Package main provides libmgen, the generator for the cabi forwarding
// wrappers. It renders one build-tag-gated source file per predicate
// group from the libm symbol table, verifies the table's per-target
// exclusivity, and prints symbol sets for inspection.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-libm/libm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "libmgen:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "libmgen",
		Short:         "Generate and inspect the platform-conditional math symbol exports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenCmd(), newVerifyCmd(), newListCmd())
	return root
}

func newGenCmd() *cobra.Command {
	var (
		groupName string
		outDir    string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Render the cabi wrapper files from the symbol table",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Never write wrappers for a table that resolves ambiguously.
			if err := libm.VerifyExclusive(libm.RegisteredTargets()); err != nil {
				return err
			}
			groups := libm.Groups()
			if groupName != "all" {
				g, ok := libm.GroupByName(groupName)
				if !ok {
					return fmt.Errorf("unknown group: %s", groupName)
				}
				groups = []libm.Group{g}
			}
			for _, g := range groups {
				src, err := RenderGroup(g)
				if err != nil {
					return err
				}
				path := filepath.Join(outDir, GroupFileName(g))
				if err := os.WriteFile(path, src, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d symbols)\n", path, len(g.Symbols))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&groupName, "group", "all", "predicate group to render, or \"all\"")
	cmd.Flags().StringVarP(&outDir, "out", "o", "cabi", "output directory")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that no target activates a symbol through two groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := libm.RegisteredTargets()
			if err := libm.VerifyExclusive(targets); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d targets, no duplicate exports\n", len(targets))
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var (
		targetName string
		dump       bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the symbol table, or one target's active export set",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if targetName == "" {
				for _, g := range libm.Groups() {
					fmt.Fprintf(out, "%-10s %3d symbols  //go:build %s\n", g.Name, len(g.Symbols), g.Tag)
					if dump {
						fmt.Fprint(out, spew.Sdump(g.Symbols))
					}
				}
				return nil
			}
			t, err := libm.TargetByName(targetName)
			if err != nil {
				return err
			}
			syms, err := libm.ActiveSymbols(t)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "target %s: %d exported symbols\n", t.Triple(), len(syms))
			for _, g := range libm.ActiveGroups(t) {
				fmt.Fprintf(out, "  group %-10s //go:build %s\n", g.Name, g.Tag)
			}
			if dump {
				fmt.Fprint(out, spew.Sdump(syms))
				return nil
			}
			for _, s := range syms {
				fmt.Fprintf(out, "  %-10s %d-ary %-30s -> softmath.%s\n", s.Name, s.Sig.NumArgs(), s.Sig, s.Backing)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&targetName, "target", "", "resolve a named target (e.g. wasm-unknown, xous, thumb-none)")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump full symbol specifications")
	return cmd
}
