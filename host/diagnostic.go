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

package host

import (
	"fmt"

	"golang.org/x/tools/go/analysis"
)

// Severity is the default severity of a [Rule].
type Severity uint8

//go:generate go tool stringer -type Severity
const (
	Hidden Severity = iota
	Info
	Warning
	Error
)

// Rule describes a diagnostic: its stable identifier, texts and default severity.
type Rule struct {
	ID       string
	Title    string
	Format   string // message format, fmt verbs
	Category string
	Severity Severity
	HelpURL  string
}

// Diagnostic is a diagnostic record produced by an analyzer.
//
// The embedded [analysis.Diagnostic] carries the source span, the message,
// the rule identifier as Category, the help URL and the applicable fixes.
type Diagnostic struct {
	analysis.Diagnostic

	Rule *Rule

	// Target is the stable identifier of the symbol the diagnostic is
	// about, empty when there is none. It is the key to suppress this
	// diagnostic in the settings file.
	Target string

	// Disabled lists fixes that are offered but cannot be applied.
	Disabled []DisabledFix
}

// DisabledFix is a fix that is shown, but can not be applied to this diagnostic.
type DisabledFix struct {
	Message string
	Err     error
}

// NewDiagnostic creates a [Diagnostic] for a rule anchored at a node.
func NewDiagnostic(rule *Rule, rng analysis.Range, args ...any) Diagnostic {
	return Diagnostic{
		Diagnostic: analysis.Diagnostic{
			Pos:      rng.Pos(),
			End:      rng.End(),
			Category: rule.ID,
			Message:  fmt.Sprintf(rule.Format, args...),
			URL:      rule.HelpURL,
		},
		Rule: rule,
	}
}
