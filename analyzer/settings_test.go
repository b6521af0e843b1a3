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
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/subanalyzers/analyzer"
	"fillmore-labs.com/subanalyzers/csharp"
	"fillmore-labs.com/subanalyzers/internal/hosttest"
)

func TestDecodeSettings(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"rules":           map[string]any{"NS1000": false, "NS5000": true},
		"fixes":           false,
		"shared-settings": true,
	}

	s, err := DecodeSettings(raw)
	if err != nil {
		t.Fatalf("DecodeSettings failed: %v", err)
	}

	a := CSharp(s.Options()...)

	want := []string{"NS1001", "NS1002", "NS1003", "NS2000", "NS2004", "NS5000"}
	if diff := cmp.Diff(want, ruleIDs(a.Rules())); diff != "" {
		t.Errorf("Rules() mismatch (-want +got):\n%s", diff)
	}

	if got := a.Flags.Lookup("fix").Value.String(); got != "false" {
		t.Errorf("-fix = %s, want false", got)
	}

	if _, err := DecodeSettings(map[string]any{"unknown": true}); err == nil {
		t.Error("DecodeSettings with unknown field succeeded")
	}

	if s, err := DecodeSettings(nil); err != nil || len(s.Options()) != 0 {
		t.Errorf("DecodeSettings(nil) = %v, %v, want no options", s, err)
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithRule("NS1000", false),
		Options{WithFixes(true), nil},
		WithIgnoreSettings(false),
	}

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("configured", opts.LogAttr())

	got := buf.String()
	for _, want := range []string{"options.NS1000=false", "options.fixes=true", "options.nil=<nil>", "options.ignore-settings=false"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output %q does not contain %q", got, want)
		}
	}
}

func TestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f := newFixture(csharp.Language, true)
	f.c.AddAdditionalFile("/src/nsubstitute.json", "not json")

	bar := hosttest.NewClass("MyNamespace.Foo").Method("Bar")
	f.file(cs.Unit(cs.Stmt(f.setup("Returns", f.call(cs.Ident("sub"), bar)))))

	if _, got := f.run(t, CSharp(WithLogger(logger))); len(got) != 1 {
		t.Errorf("got diagnostics %q, want one", got)
	}

	if got, want := buf.String(), "Ignoring malformed settings file"; !strings.Contains(got, want) {
		t.Errorf("log output %q does not contain %q", got, want)
	}
}
