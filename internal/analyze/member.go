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
	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/config"
	"fillmore-labs.com/subanalyzers/internal/fix"
	"fillmore-labs.com/subanalyzers/internal/rules"
	"fillmore-labs.com/subanalyzers/internal/symbols"
)

// checkMember reports a configured member that can not be intercepted.
//
// Only methods, properties and indexers are configurable members; other
// expressions are skipped.
func (a *pass) checkMember(p *host.NodePass, expr host.Node, rule *host.Rule, flag config.Rules) {
	sym := p.Model.SymbolInfo(expr).Symbol

	switch sym.(type) {
	case host.Method, host.Property:
	default:
		return
	}

	switch a.verdict(sym, rule) {
	case symbols.Eligible:
		a.checkInternal(p, expr, sym)

	case symbols.NonVirtual:
		if !a.enabled(flag) {
			return
		}

		anchor := a.facts.NameToken(expr)
		p.Report(a.diagnostic(rule, anchor, sym, sym.Name()))

	case symbols.Suppressed:
	}
}

// verdict classifies a member, taking suppression settings for rule into account.
func (a *pass) verdict(sym host.Symbol, rule *host.Rule) symbols.Verdict {
	v := symbols.Eligibility(sym)
	if v == symbols.NonVirtual && a.settings().Suppresses(sym, rule.ID) {
		return symbols.Suppressed
	}

	return v
}

// checkInternal reports an eligible member the proxy generator can not override.
func (a *pass) checkInternal(p *host.NodePass, expr host.Node, sym host.Symbol) {
	if !a.enabled(config.InternalSetup) || symbols.VisibleToProxy(p.Compilation, sym) {
		return
	}

	rule := rules.InternalSetup
	if a.settings().Suppresses(sym, rule.ID) {
		return
	}

	d := a.diagnostic(rule, a.facts.NameToken(expr), sym, sym.Name())

	if a.fixes() {
		for _, decl := range sym.DeclaringSyntax() {
			for _, to := range [...]host.Accessibility{host.ProtectedOrInternal, host.Public} {
				f, err := fix.ChangeAccessibility(a.facts, decl, to)
				if err != nil {
					d.Disabled = append(d.Disabled, host.DisabledFix{Message: "Make " + to.String(), Err: err})

					continue
				}

				d.SuggestedFixes = append(d.SuggestedFixes, f)
			}
		}
	}

	p.Report(d)
}

// diagnostic creates a diagnostic about target, anchored at anchor.
func (a *pass) diagnostic(rule *host.Rule, anchor host.Node, target host.Symbol, args ...any) host.Diagnostic {
	d := host.NewDiagnostic(rule, anchor, args...)
	if target != nil {
		d.Target = target.ID()
	}

	return d
}
