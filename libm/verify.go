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
	"errors"
	"fmt"
)

// VerifyExclusive proves that no target in the given matrix activates the
// same symbol name through two different groups. Group memberships may
// overlap (fmin lives in both the nolibm and softfp groups), which is
// safe only while the predicates stay disjoint per symbol; this check
// keeps that a maintained property instead of an assumption.
func VerifyExclusive(targets []Target) error {
	var errs []error
	for _, t := range targets {
		owners := map[string]string{}
		for _, g := range ActiveGroups(t) {
			for _, s := range g.Symbols {
				if prev, claimed := owners[s.Name]; claimed {
					errs = append(errs, fmt.Errorf(
						"target %s: symbol %q claimed by groups %q and %q",
						t.Triple(), s.Name, prev, g.Name))
					continue
				}
				owners[s.Name] = g.Name
			}
		}
	}
	return errors.Join(errs...)
}
