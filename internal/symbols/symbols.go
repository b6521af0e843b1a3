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

// Package symbols decides whether members can be intercepted by a substitute.
//
// The decision depends only on semantic symbols, never on syntax: a member
// is eligible iff it is virtual, abstract, a non-sealed override, or
// implements an interface member.
package symbols

import "fillmore-labs.com/subanalyzers/host"

// Verdict is the eligibility classification of a member.
type Verdict uint8

//go:generate go tool stringer -type Verdict -linecomment
const (
	// Eligible members can be intercepted.
	Eligible Verdict = iota // eligible

	// NonVirtual members can not be intercepted.
	NonVirtual // non-virtual

	// Suppressed members can not be intercepted, but diagnostics are suppressed by settings.
	Suppressed // suppressed
)

// Eligibility classifies a configured member.
func Eligibility(sym host.Symbol) Verdict {
	if CanBeIntercepted(sym) {
		return Eligible
	}

	return NonVirtual
}

// CanBeIntercepted reports whether a proxy can intercept calls to sym.
func CanBeIntercepted(sym host.Symbol) bool {
	if t := sym.ContainingType(); t != nil && t.TypeKind() == host.TypeInterface {
		return true // interface members are implicitly abstract
	}

	if sym.IsVirtual() || sym.IsAbstract() || sym.IsOverride() && !sym.IsSealed() {
		return true
	}

	return IsInterfaceImplementation(sym)
}

// IsInterfaceImplementation reports whether sym implements a member of
// any interface of its containing type.
func IsInterfaceImplementation(sym host.Symbol) bool {
	t := sym.ContainingType()
	if t == nil {
		return false
	}

	def := Definition(sym)

	for _, iface := range t.AllInterfaces() {
		for _, member := range iface.Members() {
			if member.Kind() != sym.Kind() {
				continue
			}

			impl := t.FindImplementationForInterfaceMember(member)
			if impl != nil && Definition(impl) == def {
				return true
			}
		}
	}

	return false
}

// Definition returns the canonical form of sym: the open generic method
// for constructed methods, and the original definition for members of
// constructed types.
func Definition(sym host.Symbol) host.Symbol {
	if m, ok := sym.(host.Method); ok {
		if c := m.ConstructedFrom(); c != nil {
			sym = c
		}
	}

	if d := sym.OriginalDefinition(); d != nil {
		return d
	}

	return sym
}

// SameDefinition reports whether a and b have the same canonical form.
func SameDefinition(a, b host.Symbol) bool {
	if a == nil || b == nil {
		return a == b
	}

	return Definition(a) == Definition(b)
}
