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

package analyze

import (
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/config"
	"fillmore-labs.com/subanalyzers/internal/fix"
	"fillmore-labs.com/subanalyzers/internal/rules"
	"fillmore-labs.com/subanalyzers/internal/wellknown"
)

// creationCall describes a substitute creation: the substituted types and
// the constructor arguments.
type creationCall struct {
	types []host.Type

	// args are the constructor argument expressions as written; for the
	// array form a single array or null expression.
	args []host.Node

	// count is the number of constructor arguments, -1 when unknown.
	count int

	// arrayForm is true for calls passing types and arguments as arrays.
	arrayForm bool
}

// creation analyzes a substitute creation call.
func (a *pass) creation(p *host.NodePass, m host.Method, family wellknown.Family) {
	call, ok := a.creationCall(p, m)
	if !ok || len(call.types) == 0 {
		return
	}

	name := a.facts.NameToken(p.Node)
	subject := call.types[0]

	switch family {
	case wellknown.PartialSubstitute:
		rule := rules.PartsOfInterface
		if !a.enabled(config.PartsOfInterface) || !noClasses(call.types, host.TypeDelegate) ||
			a.settings().Suppresses(subject, rule.ID) {
			return
		}

		full, _ := wellknown.FullSubstituteName(m.Name())

		d := a.diagnostic(rule, name, subject, m.Name(), full)
		if a.fixes() && name != p.Node {
			d.SuggestedFixes = []analysis.SuggestedFix{fix.Rename(name, full)}
		}

		p.Report(d)

	case wellknown.Substitute:
		rule := rules.ConstructorArguments
		if !a.enabled(config.ConstructorArguments) || call.count <= 0 || !noClasses(call.types) ||
			a.settings().Suppresses(subject, rule.ID) {
			return
		}

		d := a.diagnostic(rule, p.Node, subject, subject.Name())

		if a.fixes() {
			if call.arrayForm {
				d.SuggestedFixes = []analysis.SuggestedFix{fix.ReplaceWithNull(a.facts, call.args[0])}
			} else if f, err := fix.RemoveArguments(call.args); err == nil {
				d.SuggestedFixes = []analysis.SuggestedFix{f}
			} else {
				d.Disabled = append(d.Disabled, host.DisabledFix{Message: "Remove constructor arguments", Err: err})
			}
		}

		p.Report(d)
	}
}

// creationCall extracts the substituted types and constructor arguments.
//
// Generic forms take the types as type arguments and the constructor
// arguments as parameter array. Array forms take a Type array and an
// object array. Unresolvable types skip the call. A non-literal array, or
// a lone non-literal argument that may be the array itself, leaves the
// argument count unknown.
func (a *pass) creationCall(p *host.NodePass, m host.Method) (creationCall, bool) {
	args := a.facts.Arguments(p.Node)

	if typeArgs := m.TypeArguments(); len(typeArgs) > 0 {
		call := creationCall{types: typeArgs, args: args, count: len(args)}

		if len(args) == 1 {
			switch elems, ok := a.facts.ArrayElements(args[0]); {
			case ok:
				call.count = len(elems)

			case a.facts.IsNullLiteral(args[0]):
				call.count = 0

			case !a.facts.IsLiteral(args[0]):
				call.count = -1
			}
		}

		return call, true
	}

	if len(args) == 0 {
		return creationCall{}, false
	}

	types, ok := a.typeOfElements(p, args[0])
	if !ok {
		return creationCall{}, false
	}

	call := creationCall{types: types, arrayForm: true, count: 0}

	if len(args) > 1 {
		call.args = args[1:2]

		switch elems, ok := a.facts.ArrayElements(args[1]); {
		case ok:
			call.count = len(elems)

		case a.facts.IsNullLiteral(args[1]):
			call.count = 0

		default:
			call.count = -1 // not a literal, can't tell
		}
	}

	return call, true
}

// typeOfElements resolves the types of an array literal of typeof expressions.
func (a *pass) typeOfElements(p *host.NodePass, expr host.Node) ([]host.Type, bool) {
	elems, ok := a.facts.ArrayElements(expr)
	if !ok {
		return nil, false
	}

	types := make([]host.Type, 0, len(elems))

	for _, elem := range elems {
		operand, ok := a.facts.TypeOfOperand(elem)
		if !ok {
			return nil, false
		}

		t, ok := p.Model.SymbolInfo(operand).Symbol.(host.Type)
		if !ok || t == nil {
			return nil, false
		}

		types = append(types, t)
	}

	return types, true
}

// noClasses reports whether all substituted types are interfaces or one of
// the additionally allowed kinds.
func noClasses(types []host.Type, allowed ...host.TypeKind) bool {
	for _, t := range types {
		if k := t.TypeKind(); k != host.TypeInterface && !slices.Contains(allowed, k) {
			return false
		}
	}

	return true
}
