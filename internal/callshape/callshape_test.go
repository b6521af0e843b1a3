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

package callshape_test

import (
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/subanalyzers/csharp"
	"fillmore-labs.com/subanalyzers/host"
	. "fillmore-labs.com/subanalyzers/internal/callshape"
	"fillmore-labs.com/subanalyzers/internal/hosttest"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	ext := hosttest.NewClass("MyNamespace.Extensions").Method("Returns").Extension()

	tests := []struct {
		name string
		m    host.Method
		want Shape
	}{
		{"ordinary", ext, Ordinary},
		{"reduced", ext.Reduced(), ReducedExtension},
		{"constructor", hosttest.NewClass("A").Method(".ctor").WithKind(host.MethodConstructor), Ordinary},
		{"accessor", hosttest.NewClass("A").Method("get_P").WithKind(host.MethodPropertyGet), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Classify(tt.m); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubject(t *testing.T) {
	t.Parallel()

	cs := hosttest.CS

	tests := []struct {
		name  string
		call  *hosttest.Node
		shape Shape
		want  string
		ok    bool
	}{
		{
			name:  "reduced",
			call:  cs.Call(cs.Member(cs.Call(cs.Member(cs.Ident("sub"), "Bar")), "Returns"), cs.Num("1")),
			shape: ReducedExtension,
			want:  "sub.Bar()",
			ok:    true,
		},
		{
			name:  "ordinary",
			call:  cs.Call(cs.Member(cs.Ident("SubstituteExtensions"), "Returns"), cs.Member(cs.Ident("sub"), "Prop"), cs.Num("1")),
			shape: Ordinary,
			want:  "sub.Prop",
			ok:    true,
		},
		{
			name:  "ordinary without arguments",
			call:  cs.Call(cs.Ident("Returns")),
			shape: Ordinary,
		},
		{
			name:  "reduced without member access",
			call:  cs.Call(cs.Ident("Returns"), cs.Num("1")),
			shape: ReducedExtension,
		},
		{
			name:  "unknown",
			call:  cs.Call(cs.Member(cs.Ident("sub"), "Returns"), cs.Num("1")),
			shape: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hosttest.NewFile(token.NewFileSet(), "test.cs", tt.call)

			got, ok := Subject(csharp.Facts{}, tt.call, tt.shape)
			if ok != tt.ok {
				t.Fatalf("Subject() ok = %t, want %t", ok, tt.ok)
			}

			if ok && got.Text() != tt.want {
				t.Errorf("Subject() = %q, want %q", got.Text(), tt.want)
			}
		})
	}
}

func TestArguments(t *testing.T) {
	t.Parallel()

	cs := hosttest.CS
	when := hosttest.NewClass("NSubstitute.SubstituteExtensions").Method("When").Extension()
	lambda := cs.Lambda("x", cs.Call(cs.Member(cs.Ident("x"), "Bar")))

	tests := []struct {
		name  string
		call  *hosttest.Node
		m     host.Method
		shape Shape
		want  []string
	}{
		{
			name:  "reduced",
			call:  cs.Call(cs.Member(cs.Ident("sub"), "When"), lambda),
			m:     when.Reduced(),
			shape: ReducedExtension,
			want:  []string{"x => x.Bar()"},
		},
		{
			name:  "ordinary extension",
			call:  cs.Call(cs.Member(cs.Ident("SubstituteExtensions"), "When"), cs.Ident("sub"), cs.Lambda("y", cs.Ident("y"))),
			m:     when,
			shape: Ordinary,
			want:  []string{"y => y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			for _, arg := range Arguments(csharp.Facts{}, tt.call, tt.m, tt.shape) {
				got = append(got, arg.Text())
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Arguments() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
