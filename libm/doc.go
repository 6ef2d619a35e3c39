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

// Package libm holds the platform-conditional math symbol table: which C
// math symbols a given build target must export, with what signatures,
// and which softmath operation backs each one.
//
// Activation is a pure function of static target facts. A Target
// describes a build configuration; predicate Groups gate blocks of
// symbols on boolean conditions over those facts. Resolving a target
// yields an immutable set of symbol specifications with no duplicates;
// VerifyExclusive proves the no-duplicates property over the whole
// registered target matrix rather than assuming it.
//
// The table itself emits nothing. The libmgen tool consumes it to render
// the forwarding wrappers in the cabi package, one build-tag-gated file
// per group.
package libm
