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
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/subanalyzers/analyzer"
	"fillmore-labs.com/subanalyzers/host"
)

func ruleIDs(rules []*host.Rule) []string {
	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID)
	}

	return ids
}

func TestFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "Default",
			want: []string{"NS1000", "NS1001", "NS1002", "NS1003", "NS2000", "NS2004", "NS5000"},
		},
		{
			name: "Disable",
			args: []string{"-NS1000=false", "-NS5000=off"},
			want: []string{"NS1001", "NS1002", "NS1003", "NS2000", "NS2004"},
		},
		{
			name: "Reenable",
			args: []string{"-NS1003=false", "-NS1003"},
			want: []string{"NS1000", "NS1001", "NS1002", "NS1003", "NS2000", "NS2004", "NS5000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := CSharp()
			a.Flags.Init("test", flag.ContinueOnError)

			if err := a.Flags.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if diff := cmp.Diff(tt.want, ruleIDs(a.Rules())); diff != "" {
				t.Errorf("Rules() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlagValue(t *testing.T) {
	t.Parallel()

	a := VisualBasic(WithFixes(false))
	a.Flags.Init("test", flag.ContinueOnError)
	a.Flags.SetOutput(new(strings.Builder))

	fix := a.Flags.Lookup("fix")
	if fix == nil {
		t.Fatal("flag -fix not defined")
	}

	if got := fix.Value.String(); got != "false" {
		t.Errorf("-fix = %s, want false", got)
	}

	if err := a.Flags.Parse([]string{"-fix=True", "-ignore-settings=1"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for _, name := range []string{"fix", "ignore-settings"} {
		if got := a.Flags.Lookup(name).Value.(flag.Getter).Get(); got != true {
			t.Errorf("-%s = %v, want true", name, got)
		}
	}

	err := a.Flags.Parse([]string{"-NS2000=maybe"})
	if err == nil {
		t.Fatal("Parse(-NS2000=maybe) succeeded, want error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	a := CSharp()
	a.Flags.Init("test", flag.ContinueOnError)

	const expectedUsage = `
  -ignore-settings
    	ignore the nsubstitute.json suppression file
`

	var out strings.Builder
	a.Flags.SetOutput(&out)
	a.Flags.PrintDefaults()

	if got, want := out.String(), expectedUsage; !strings.Contains(got, want) {
		t.Errorf("Usage() = %q, want %q", got, want)
	}

	if got, want := out.String(), "enable NS1000: Non-virtual setup specification. (default true)"; !strings.Contains(got, want) {
		t.Errorf("Usage() = %q, want %q", got, want)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	if _, err := New("F#"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("New(F#) error = %v, want %v", err, ErrUnknownLanguage)
	}

	a := CSharp()
	if a.Name() != "subanalyzers" || a.Language != "C#" || a.Doc == "" || a.URL == "" {
		t.Errorf("CSharp() = %q %q, want subanalyzers C#", a.Name(), a.Language)
	}
}
