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

// Package fix builds the code fixes offered for substitution diagnostics.
//
// Fixes are expressed as [analysis.SuggestedFix] text edits over the host's
// file set. Rewrites a syntax can not express fail with [ErrUnsupported].
package fix

import (
	"fmt"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/syntaxfacts"
)

// ErrUnsupported is returned for rewrites a syntax can not express.
var ErrUnsupported = syntaxfacts.ErrUnsupported

// Rename replaces a name token, e.g. "ForPartsOf" with "For".
func Rename(name host.Node, newName string) analysis.SuggestedFix {
	return analysis.SuggestedFix{
		Message: fmt.Sprintf("Use %s", newName),
		TextEdits: []analysis.TextEdit{{
			Pos:     name.Pos(),
			End:     name.End(),
			NewText: []byte(newName),
		}},
	}
}

// ReplaceWithNull replaces an argument expression with a null literal.
func ReplaceWithNull(facts syntaxfacts.Facts, arg host.Node) analysis.SuggestedFix {
	null := facts.NullLiteral()

	return analysis.SuggestedFix{
		Message: fmt.Sprintf("Replace constructor arguments with %s", null),
		TextEdits: []analysis.TextEdit{{
			Pos:     arg.Pos(),
			End:     arg.End(),
			NewText: []byte(null),
		}},
	}
}

// RemoveArguments removes a contiguous range of argument expressions,
// including the separators between them.
func RemoveArguments(args []host.Node) (analysis.SuggestedFix, error) {
	if len(args) == 0 {
		return analysis.SuggestedFix{}, fmt.Errorf("no arguments to remove: %w", ErrUnsupported)
	}

	return analysis.SuggestedFix{
		Message: "Remove constructor arguments",
		TextEdits: []analysis.TextEdit{{
			Pos: args[0].Pos(),
			End: args[len(args)-1].End(),
		}},
	}, nil
}

// ChangeAccessibility replaces the accessibility modifiers of a member
// declaration.
func ChangeAccessibility(facts syntaxfacts.Facts, decl host.Node, to host.Accessibility) (analysis.SuggestedFix, error) {
	text, err := facts.AccessibilityText(to)
	if err != nil {
		return analysis.SuggestedFix{}, fmt.Errorf("accessibility %q: %w", to, err)
	}

	mods := facts.AccessibilityModifiers(decl)
	if len(mods) == 0 {
		return analysis.SuggestedFix{}, fmt.Errorf("declaration without accessibility modifiers: %w", ErrUnsupported)
	}

	return analysis.SuggestedFix{
		Message: fmt.Sprintf("Make %s", to),
		TextEdits: []analysis.TextEdit{{
			Pos:     mods[0].Pos(),
			End:     mods[len(mods)-1].End(),
			NewText: []byte(text),
		}},
	}, nil
}
