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
	"runtime/trace"

	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/callshape"
	"fillmore-labs.com/subanalyzers/internal/config"
	"fillmore-labs.com/subanalyzers/internal/rules"
	"fillmore-labs.com/subanalyzers/internal/wellknown"
)

// invocation analyzes one invocation candidate.
func (a *pass) invocation(p *host.NodePass) {
	m, ok := p.Model.SymbolInfo(p.Node).Symbol.(host.Method)
	if !ok || m == nil {
		return // unresolved, e.g. on overload resolution failure
	}

	family := a.api.Family(m)
	if family == wellknown.None {
		return
	}

	shape := callshape.Classify(m)
	if shape == callshape.Unknown {
		return
	}

	defer trace.StartRegion(p.Context, family.String()).End()

	switch family {
	case wellknown.Setup:
		if !a.enabled(config.NonVirtualSetup | config.InternalSetup) {
			return
		}

		subject, ok := a.subject(p, shape)
		if !ok {
			return
		}

		a.checkMember(p, subject, rules.NonVirtualSetup, config.NonVirtualSetup)

	case wellknown.When:
		if !a.enabled(config.NonVirtualWhen | config.InternalSetup) {
			return
		}

		a.when(p, m, shape)

	case wellknown.Received:
		a.received(p, m)

	case wellknown.Substitute, wellknown.PartialSubstitute:
		if !a.enabled(config.PartsOfInterface | config.ConstructorArguments) {
			return
		}

		a.creation(p, m, family)
	}
}

// subject returns the expression configured by a library call.
func (a *pass) subject(p *host.NodePass, shape callshape.Shape) (host.Node, bool) {
	subject, ok := callshape.Subject(a.facts, p.Node, shape)
	if !ok && shape == callshape.ReducedExtension {
		reportInternalError(p, p.Node, "Reduced extension method call without receiver: %s", p.Node.Text())
	}

	return subject, ok
}

// when analyzes the members invoked in the lambda of a When-like call.
func (a *pass) when(p *host.NodePass, m host.Method, shape callshape.Shape) {
	for _, arg := range callshape.Arguments(a.facts, p.Node, m, shape) {
		exprs, ok := a.facts.LambdaExpressions(arg)
		if !ok {
			continue
		}

		for _, expr := range exprs {
			a.checkMember(p, expr, rules.NonVirtualWhen, config.NonVirtualWhen)
		}
	}
}

// received analyzes the member checked after a Received-like call.
func (a *pass) received(p *host.NodePass, m host.Method) {
	if a.facts.IsStandalone(p.Node) {
		if a.enabled(config.UnusedReceived) {
			name := a.facts.NameToken(p.Node)
			p.Report(a.diagnostic(rules.UnusedReceived, name, nil, m.Name()))
		}

		return
	}

	if !a.enabled(config.NonVirtualReceived | config.InternalSetup) {
		return
	}

	if member, ok := a.facts.AccessedMember(p.Node); ok {
		a.checkMember(p, member, rules.NonVirtualReceived, config.NonVirtualReceived)
	}
}
