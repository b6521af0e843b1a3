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

package symbols_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/hosttest"
	. "fillmore-labs.com/subanalyzers/internal/symbols"
)

func TestEligibility(t *testing.T) {
	t.Parallel()

	iface := hosttest.NewInterface("MyNamespace.IFoo")
	ifaceBar := iface.Method("Bar")
	iface.Method("Generic")
	iface.Property("Name")

	foo := hosttest.NewClass("MyNamespace.Foo").Implements(iface)
	bar := foo.Method("Bar")
	generic := foo.Method("Generic")
	name := foo.Property("Name")
	baz := foo.Method("Baz")
	virtual := foo.Method("Virtual", hosttest.Virtual())
	abstract := foo.Method("Abstract", hosttest.Abstract())
	override := foo.Method("Override", hosttest.Override())
	sealed := foo.Method("Sealed", hosttest.Override(), hosttest.Sealed())
	indexer := foo.Indexer()
	virtualIndexer := hosttest.NewClass("MyNamespace.Bar").Indexer(hosttest.Virtual())

	explicit := hosttest.NewClass("MyNamespace.Explicit").Implements(iface)
	explicitBar := explicit.Method("MyNamespace.IFoo.Bar", hosttest.Access(host.Private))
	otherBar := explicit.Method("Bar")
	explicit.Implement(ifaceBar, explicitBar)

	derived := hosttest.NewInterface("MyNamespace.IDerived").Implements(iface)
	indirect := hosttest.NewClass("MyNamespace.Indirect").Implements(derived)
	indirectBar := indirect.Method("Bar")

	tests := []struct {
		name string
		sym  host.Symbol
		want Verdict
	}{
		{"interface member", ifaceBar, Eligible},
		{"implementation", bar, Eligible},
		{"property implementation", name, Eligible},
		{"constructed generic implementation", generic.Construct(hosttest.NewClass("System.Int32")), Eligible},
		{"explicit implementation", explicitBar, Eligible},
		{"hidden by explicit implementation", otherBar, NonVirtual},
		{"inherited interface", indirectBar, Eligible},
		{"non-virtual", baz, NonVirtual},
		{"virtual", virtual, Eligible},
		{"abstract", abstract, Eligible},
		{"override", override, Eligible},
		{"sealed override", sealed, NonVirtual},
		{"non-virtual indexer", indexer, NonVirtual},
		{"virtual indexer", virtualIndexer, Eligible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Eligibility(tt.sym); got != tt.want {
				t.Errorf("Eligibility(%s) = %v, want %v", tt.sym.ID(), got, tt.want)
			}
		})
	}
}

func TestSameDefinition(t *testing.T) {
	t.Parallel()

	foo := hosttest.NewClass("MyNamespace.Foo")
	bar := foo.Method("Bar")
	intType := hosttest.NewClass("System.Int32")
	stringType := hosttest.NewClass("System.String")

	tests := []struct {
		name string
		a, b host.Symbol
		want bool
	}{
		{"identical", bar, bar, true},
		{"instantiations", bar.Construct(intType), bar.Construct(stringType), true},
		{"open and constructed", bar, bar.Construct(intType), true},
		{"different", bar, foo.Method("Baz"), false},
		{"nil", bar, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SameDefinition(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDefinition() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestVisibleToProxy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		access host.Accessibility
		grant  bool
		want   bool
	}{
		{"public", host.Public, false, true},
		{"protected internal", host.ProtectedOrInternal, false, true},
		{"internal", host.Internal, false, false},
		{"private protected", host.ProtectedAndInternal, false, false},
		{"internal granted", host.Internal, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := hosttest.NewCompilation("C#")
			if tt.grant {
				c.GrantInternalsTo(ProxyAssembly)
			}

			m := hosttest.NewClass("MyNamespace.Foo").Method("Bar", hosttest.Virtual(), hosttest.Access(tt.access))

			if got := VisibleToProxy(c, m); got != tt.want {
				t.Errorf("VisibleToProxy(%v) = %t, want %t", tt.access, got, tt.want)
			}
		})
	}
}

func TestSuppressionTargets(t *testing.T) {
	t.Parallel()

	outer := hosttest.NewClass("MyNamespace.Outer")
	bar := outer.Method("Bar")
	constructed := bar.Construct(hosttest.NewClass("System.Int32")).WithID("M:MyNamespace.Outer.Bar``1(System.Int32)")

	got := SuppressionTargets(constructed)
	want := []string{"M:MyNamespace.Outer.Bar``1(System.Int32)", "M:MyNamespace.Outer.Bar", "T:MyNamespace.Outer"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SuppressionTargets() mismatch (-want +got):\n%s", diff)
	}
}
