// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	. "fillmore-labs.com/subanalyzers/analyzer"
	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/hosttest"
)

const nonVirtual = "Member %s can not be intercepted. Only interface members and virtual, overriding, and abstract members can be intercepted."

// fixture is a compilation referencing the substitution library.
type fixture struct {
	c   *hosttest.Compilation
	lib *hosttest.Library
}

func newFixture(language string, referenced bool) fixture {
	c := hosttest.NewCompilation(language)

	lib := hosttest.AddLibrary(hosttest.NewCompilation(language))
	if referenced {
		lib = hosttest.AddLibrary(c)
	}

	return fixture{c: c, lib: lib}
}

// file adds a source file.
func (f fixture) file(unit *hosttest.Node) {
	f.c.AddFile(fmt.Sprintf("Test%d", len(f.c.Files())), unit)
}

// run analyzes the fixture and describes the diagnostics.
func (f fixture) run(t *testing.T, a *Analyzer) ([]host.Diagnostic, []string) {
	t.Helper()

	ds, err := hosttest.Run(t.Context(), a, f.c)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := make([]string, 0, len(ds))
	for _, d := range ds {
		got = append(got, fmt.Sprintf("%s %q: %s", d.Category, f.c.Text(d.Pos, d.End), d.Message))
	}

	return ds, got
}

// fixes applies each suggested fix of d and returns the changed files.
func (f fixture) fixes(t *testing.T, d host.Diagnostic) []string {
	t.Helper()

	fixed := make([]string, 0, len(d.SuggestedFixes))

	for _, sf := range d.SuggestedFixes {
		out, err := f.c.ApplyFix(sf)
		if err != nil {
			t.Fatalf("ApplyFix(%q) failed: %v", sf.Message, err)
		}

		fixed = append(fixed, out)
	}

	return fixed
}

type testCase struct {
	name  string
	opts  Options
	bare  bool // library not referenced
	build func(f fixture)
	want  []string
	fixed []string // sources after applying the fixes of the first diagnostic, nil to skip
}

func runTests(t *testing.T, language string, tests []testCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(language, !tt.bare)
			tt.build(f)

			a, err := New(language, tt.opts)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			ds, got := f.run(t, a)

			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}

			if tt.fixed == nil || len(ds) == 0 {
				return
			}

			if diff := cmp.Diff(tt.fixed, f.fixes(t, ds[0])); diff != "" {
				t.Errorf("fixes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
