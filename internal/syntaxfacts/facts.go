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

// Package syntaxfacts defines the capability interface isolating the
// syntax-specific steps of the substitution analyzers.
//
// Analyzer algorithms depend on [Facts] and on semantic symbols only. Each
// concrete syntax provides one implementation.
package syntaxfacts

import (
	"errors"

	"fillmore-labs.com/subanalyzers/host"
)

// ErrUnsupported is returned for inputs a syntax can not express.
var ErrUnsupported = errors.New("unsupported operation")

// Facts answers syntax questions for one concrete syntax.
type Facts interface {
	// Language returns the language name, as reported by [host.Compilation.Language].
	Language() string

	// InvocationKinds returns the node kinds of invocation expressions.
	InvocationKinds() []host.Kind

	// MemberAccess returns the member access expression an invocation is
	// invoked on ("x.M" in "x.M()"), or false for other invocations.
	MemberAccess(invocation host.Node) (host.Node, bool)

	// Receiver returns the expression a member access is applied to
	// ("x" in "x.M").
	Receiver(memberAccess host.Node) (host.Node, bool)

	// Arguments returns the argument expressions of an invocation, in order.
	Arguments(invocation host.Node) []host.Node

	// ArrayElements returns the elements of an array literal expression,
	// or false when the expression is not an array literal.
	ArrayElements(expr host.Node) ([]host.Node, bool)

	// NameToken returns the simple name token of a member reference, used
	// to anchor diagnostics. Expressions without a name return themselves.
	NameToken(expr host.Node) host.Node

	// TypeOfOperand returns the type syntax of a typeof / GetType expression.
	TypeOfOperand(expr host.Node) (host.Node, bool)

	// IsNullLiteral reports whether the expression is a null literal.
	IsNullLiteral(expr host.Node) bool

	// IsLiteral reports whether the expression is a literal constant,
	// including the null literal.
	IsLiteral(expr host.Node) bool

	// NullLiteral returns the text of a null literal.
	NullLiteral() string

	// LambdaExpressions returns the expressions evaluated by a lambda body:
	// the expression body, or the expressions of expression statements of
	// a block body. It returns false for non-lambda arguments.
	LambdaExpressions(expr host.Node) ([]host.Node, bool)

	// AccessedMember returns the member access, element access or
	// invocation consuming the value of expr ("x.M" in "expr.M()").
	AccessedMember(expr host.Node) (host.Node, bool)

	// IsStandalone reports whether expr is evaluated as a statement and its
	// value is discarded.
	IsStandalone(expr host.Node) bool

	// AccessibilityModifiers returns the accessibility modifier tokens of a
	// member declaration.
	AccessibilityModifiers(decl host.Node) []host.Node

	// AccessibilityText returns the modifier text for an accessibility,
	// or [ErrUnsupported].
	AccessibilityText(a host.Accessibility) (string, error)
}
