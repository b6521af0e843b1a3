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

package csharp_test

import (
	"errors"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/subanalyzers/csharp"
	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/hosttest"
	"fillmore-labs.com/subanalyzers/internal/syntaxfacts"
)

var cs = hosttest.CS

func texts(nodes []host.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Text())
	}

	return out
}

func TestArrayElements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr *hosttest.Node
		want []string
		ok   bool
	}{
		{"explicit", cs.NewArray("object", cs.Num("1"), cs.Null()), []string{"1", "null"}, true},
		{"implicit", cs.ImplicitArray(cs.Num("1")), []string{"1"}, true},
		{"collection", cs.Collection(cs.Num("1"), cs.Num("2")), []string{"1", "2"}, true},
		{"empty", cs.NewArray("object"), []string{}, true},
		{"parenthesized", cs.Paren(cs.ImplicitArray(cs.Num("3"))), []string{"3"}, true},
		{"sized", hosttest.N(ArrayCreationExpression, "new ", hosttest.N(ArrayType, "object[2]")), nil, false},
		{"spread", hosttest.N(CollectionExpression, "[..", cs.Ident("xs"), "]"), nil, false},
		{"not an array", cs.Ident("args"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Facts{}.ArrayElements(tt.expr)
			if ok != tt.ok {
				t.Fatalf("ArrayElements() ok = %t, want %t", ok, tt.ok)
			}

			if !ok {
				return
			}

			if diff := cmp.Diff(tt.want, texts(got)); diff != "" {
				t.Errorf("ArrayElements() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNameToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr *hosttest.Node
		want string
	}{
		{"invocation", cs.Call(cs.Member(cs.Ident("sub"), "Bar"), cs.Num("1")), "Bar"},
		{"property", cs.Member(cs.Ident("sub"), "Prop"), "Prop"},
		{"generic", cs.Call(cs.Member(cs.Ident("Substitute"), cs.Generic("For", cs.Ident("IFoo")))), "For"},
		{"parenthesized", cs.Paren(cs.Member(cs.Ident("sub"), "Prop")), "Prop"},
		{"simple call", cs.Call(cs.Ident("Bar")), "Bar"},
		{"indexer", cs.Index(cs.Ident("sub"), cs.Num("1")), "sub[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Facts{}.NameToken(tt.expr)
			if got.Text() != tt.want {
				t.Errorf("NameToken() = %q, want %q", got.Text(), tt.want)
			}
		})
	}
}

func TestLambdaExpressions(t *testing.T) {
	t.Parallel()

	call := func(name string) *hosttest.Node { return cs.Call(cs.Member(cs.Ident("x"), name)) }

	tests := []struct {
		name string
		expr *hosttest.Node
		want []string
		ok   bool
	}{
		{"expression body", cs.Lambda("x", call("Bar")), []string{"x.Bar()"}, true},
		{"block body", cs.Lambda("x", cs.Block(cs.Stmt(call("Bar")), cs.Stmt(call("Baz")))), []string{"x.Bar()", "x.Baz()"}, true},
		{"parenthesized", cs.Paren(cs.Lambda("x", call("Bar"))), []string{"x.Bar()"}, true},
		{"not a lambda", cs.Ident("action"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Facts{}.LambdaExpressions(tt.expr)
			if ok != tt.ok {
				t.Fatalf("LambdaExpressions() ok = %t, want %t", ok, tt.ok)
			}

			if !ok {
				return
			}

			if diff := cmp.Diff(tt.want, texts(got)); diff != "" {
				t.Errorf("LambdaExpressions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAccessedMember(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() (root, expr *hosttest.Node)
		want  string
		ok    bool
	}{
		{
			name: "member",
			build: func() (*hosttest.Node, *hosttest.Node) {
				received := cs.Call(cs.Member(cs.Ident("sub"), "Received"))

				return cs.Call(cs.Member(received, "Bar")), received
			},
			want: "sub.Received().Bar",
			ok:   true,
		},
		{
			name: "indexer",
			build: func() (*hosttest.Node, *hosttest.Node) {
				received := cs.Call(cs.Member(cs.Ident("sub"), "Received"))

				return cs.Index(received, cs.Num("1")), received
			},
			want: "sub.Received()[1]",
			ok:   true,
		},
		{
			name: "parenthesized",
			build: func() (*hosttest.Node, *hosttest.Node) {
				received := cs.Call(cs.Member(cs.Ident("sub"), "Received"))

				return cs.Member(cs.Paren(received), "Prop"), received
			},
			want: "(sub.Received()).Prop",
			ok:   true,
		},
		{
			name: "argument",
			build: func() (*hosttest.Node, *hosttest.Node) {
				received := cs.Call(cs.Member(cs.Ident("sub"), "Received"))

				return cs.Call(cs.Ident("Use"), received), received
			},
		},
		{
			name: "standalone",
			build: func() (*hosttest.Node, *hosttest.Node) {
				received := cs.Call(cs.Member(cs.Ident("sub"), "Received"))

				return cs.Stmt(received), received
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, expr := tt.build()
			hosttest.NewFile(token.NewFileSet(), "test.cs", root)

			got, ok := Facts{}.AccessedMember(expr)
			if ok != tt.ok {
				t.Fatalf("AccessedMember() ok = %t, want %t", ok, tt.ok)
			}

			if ok && got.Text() != tt.want {
				t.Errorf("AccessedMember() = %q, want %q", got.Text(), tt.want)
			}

			if got, want := (Facts{}).IsStandalone(expr), tt.name == "standalone"; got != want {
				t.Errorf("IsStandalone() = %t, want %t", got, want)
			}
		})
	}
}

func TestArgumentsAndOperands(t *testing.T) {
	t.Parallel()

	f := Facts{}

	typeOf := cs.TypeOf(cs.Ident("IFoo"))
	call := cs.Call(cs.Member(cs.Ident("factory"), "Create"), cs.NewArray("Type", typeOf), cs.Paren(cs.Null()))
	hosttest.NewFile(token.NewFileSet(), "test.cs", call)

	args := f.Arguments(call)
	if diff := cmp.Diff([]string{"new Type[] { typeof(IFoo) }", "(null)"}, texts(args)); diff != "" {
		t.Fatalf("Arguments() mismatch (-want +got):\n%s", diff)
	}

	if !f.IsNullLiteral(args[1]) {
		t.Errorf("IsNullLiteral(%q) = false, want true", args[1].Text())
	}

	if f.IsNullLiteral(args[0]) {
		t.Errorf("IsNullLiteral(%q) = true, want false", args[0].Text())
	}

	if !f.IsLiteral(args[1]) || !f.IsLiteral(cs.Num("1")) {
		t.Errorf("IsLiteral(%q) = false, want true", args[1].Text())
	}

	if f.IsLiteral(args[0]) || f.IsLiteral(cs.Ident("args")) {
		t.Errorf("IsLiteral(%q) = true, want false", args[0].Text())
	}

	if operand, ok := f.TypeOfOperand(typeOf); !ok || operand.Text() != "IFoo" {
		t.Errorf("TypeOfOperand() = %v, %t, want IFoo", operand, ok)
	}

	ma, ok := f.MemberAccess(call)
	if !ok {
		t.Fatal("MemberAccess() failed")
	}

	if recv, ok := f.Receiver(ma); !ok || recv.Text() != "factory" {
		t.Errorf("Receiver() = %v, %t, want factory", recv, ok)
	}

	if _, ok := f.MemberAccess(cs.Call(cs.Ident("Create"))); ok {
		t.Error("MemberAccess() of simple call succeeded")
	}
}

func TestAccessibilityText(t *testing.T) {
	t.Parallel()

	want := map[host.Accessibility]string{
		host.Private:              "private",
		host.ProtectedAndInternal: "private protected",
		host.Protected:            "protected",
		host.Internal:             "internal",
		host.ProtectedOrInternal:  "protected internal",
		host.Public:               "public",
	}

	for a, w := range want {
		if got, err := (Facts{}).AccessibilityText(a); err != nil || got != w {
			t.Errorf("AccessibilityText(%v) = %q, %v, want %q", a, got, err, w)
		}

		if a.String() != w {
			t.Errorf("Accessibility.String() = %q, want %q", a.String(), w)
		}
	}

	if _, err := (Facts{}).AccessibilityText(host.NotApplicable); !errors.Is(err, syntaxfacts.ErrUnsupported) {
		t.Errorf("AccessibilityText(NotApplicable) error = %v, want %v", err, syntaxfacts.ErrUnsupported)
	}
}
