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

package csharp

import (
	"fmt"

	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/syntaxfacts"
)

// Facts implements the syntax capabilities for C#.
type Facts struct{}

var _ syntaxfacts.Facts = Facts{}

// Language implements [syntaxfacts.Facts].
func (Facts) Language() string { return Language }

// InvocationKinds implements [syntaxfacts.Facts].
func (Facts) InvocationKinds() []host.Kind { return []host.Kind{InvocationExpression} }

// MemberAccess implements [syntaxfacts.Facts].
func (Facts) MemberAccess(invocation host.Node) (host.Node, bool) {
	if !host.Is(invocation, InvocationExpression) {
		return nil, false
	}

	expr := first(invocation)

	return expr, host.Is(expr, SimpleMemberAccessExpression)
}

// Receiver implements [syntaxfacts.Facts].
func (Facts) Receiver(memberAccess host.Node) (host.Node, bool) {
	if !host.Is(memberAccess, SimpleMemberAccessExpression) {
		return nil, false
	}

	recv := first(memberAccess)

	return recv, recv != nil
}

// Arguments implements [syntaxfacts.Facts].
func (Facts) Arguments(invocation host.Node) []host.Node {
	list := host.FirstChild(invocation, ArgumentList, BracketedArgumentList)

	args := host.ChildrenOf(list, Argument)
	exprs := make([]host.Node, 0, len(args))

	for _, arg := range args {
		if expr := last(arg); expr != nil { // skips "name:" and "ref" prefixes
			exprs = append(exprs, expr)
		}
	}

	return exprs
}

// ArrayElements implements [syntaxfacts.Facts].
//
// Recognized are "new T[] { ... }", "new[] { ... }" and collection
// expressions "[ ... ]" without spread elements.
func (Facts) ArrayElements(expr host.Node) ([]host.Node, bool) {
	expr = skipParens(expr)

	switch {
	case host.Is(expr, ArrayCreationExpression, ImplicitArrayCreationExpression):
		init := host.FirstChild(expr, ArrayInitializerExpression)
		if init == nil {
			return nil, false // sized array without initializer
		}

		return init.Children(), true

	case host.Is(expr, CollectionExpression):
		elems := expr.Children()
		exprs := make([]host.Node, 0, len(elems))

		for _, elem := range elems {
			if !host.Is(elem, ExpressionElement) {
				return nil, false
			}

			exprs = append(exprs, first(elem))
		}

		return exprs, true

	default:
		return nil, false
	}
}

// NameToken implements [syntaxfacts.Facts].
func (f Facts) NameToken(expr host.Node) host.Node {
	switch {
	case host.Is(expr, InvocationExpression, ParenthesizedExpression):
		if inner := first(expr); inner != nil {
			return f.NameToken(inner)
		}

	case host.Is(expr, SimpleMemberAccessExpression):
		if name := last(expr); name != nil {
			return f.NameToken(name)
		}

	case host.Is(expr, IdentifierName, GenericName):
		if token := host.FirstChild(expr, IdentifierToken); token != nil {
			return token
		}
	}

	return expr
}

// TypeOfOperand implements [syntaxfacts.Facts].
func (Facts) TypeOfOperand(expr host.Node) (host.Node, bool) {
	expr = skipParens(expr)
	if !host.Is(expr, TypeOfExpression) {
		return nil, false
	}

	operand := first(expr)

	return operand, operand != nil
}

// IsNullLiteral implements [syntaxfacts.Facts].
func (Facts) IsNullLiteral(expr host.Node) bool {
	return host.Is(skipParens(expr), NullLiteralExpression)
}

// IsLiteral implements [syntaxfacts.Facts].
func (Facts) IsLiteral(expr host.Node) bool {
	return host.Is(skipParens(expr), NullLiteralExpression, NumericLiteralExpression, StringLiteralExpression,
		CharacterLiteralExpression, TrueLiteralExpression, FalseLiteralExpression)
}

// NullLiteral implements [syntaxfacts.Facts].
func (Facts) NullLiteral() string { return "null" }

// LambdaExpressions implements [syntaxfacts.Facts].
func (Facts) LambdaExpressions(expr host.Node) ([]host.Node, bool) {
	expr = skipParens(expr)
	if !host.Is(expr, SimpleLambdaExpression, ParenthesizedLambdaExpression, AnonymousMethodExpression) {
		return nil, false
	}

	body := last(expr)
	if body == nil {
		return nil, true
	}

	if !host.Is(body, Block) {
		return []host.Node{body}, true
	}

	var exprs []host.Node

	for _, stmt := range host.ChildrenOf(body, ExpressionStatement) {
		if e := first(stmt); e != nil {
			exprs = append(exprs, e)
		}
	}

	return exprs, true
}

// AccessedMember implements [syntaxfacts.Facts].
func (Facts) AccessedMember(expr host.Node) (host.Node, bool) {
	for host.Is(expr.Parent(), ParenthesizedExpression) {
		expr = expr.Parent()
	}

	parent := expr.Parent()
	if !host.Is(parent, SimpleMemberAccessExpression, ElementAccessExpression) || first(parent) != expr {
		return nil, false
	}

	return parent, true
}

// IsStandalone implements [syntaxfacts.Facts].
func (Facts) IsStandalone(expr host.Node) bool {
	return host.Is(expr.Parent(), ExpressionStatement)
}

// AccessibilityModifiers implements [syntaxfacts.Facts].
func (Facts) AccessibilityModifiers(decl host.Node) []host.Node {
	return host.ChildrenOf(decl, PublicKeyword, PrivateKeyword, ProtectedKeyword, InternalKeyword)
}

// AccessibilityText implements [syntaxfacts.Facts].
func (Facts) AccessibilityText(a host.Accessibility) (string, error) {
	switch a {
	case host.Private:
		return "private", nil

	case host.ProtectedAndInternal:
		return "private protected", nil

	case host.Protected:
		return "protected", nil

	case host.Internal:
		return "internal", nil

	case host.ProtectedOrInternal:
		return "protected internal", nil

	case host.Public:
		return "public", nil

	default:
		return "", fmt.Errorf("accessibility %q in C#: %w", a, syntaxfacts.ErrUnsupported)
	}
}

func first(n host.Node) host.Node {
	if n == nil {
		return nil
	}

	if children := n.Children(); len(children) > 0 {
		return children[0]
	}

	return nil
}

func last(n host.Node) host.Node {
	if n == nil {
		return nil
	}

	if children := n.Children(); len(children) > 0 {
		return children[len(children)-1]
	}

	return nil
}

func skipParens(expr host.Node) host.Node {
	for host.Is(expr, ParenthesizedExpression) {
		expr = first(expr)
	}

	return expr
}
