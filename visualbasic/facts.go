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

package visualbasic

import (
	"fmt"

	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/syntaxfacts"
)

// Facts implements the syntax capabilities for Visual Basic.
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
//
// Member accesses inside a With block (".Name") have no receiver.
func (Facts) Receiver(memberAccess host.Node) (host.Node, bool) {
	if !host.Is(memberAccess, SimpleMemberAccessExpression) {
		return nil, false
	}

	children := memberAccess.Children()
	if len(children) < 2 {
		return nil, false
	}

	return children[0], true
}

// Arguments implements [syntaxfacts.Facts].
func (Facts) Arguments(invocation host.Node) []host.Node {
	list := host.FirstChild(invocation, ArgumentList)

	args := host.ChildrenOf(list, SimpleArgument)
	exprs := make([]host.Node, 0, len(args))

	for _, arg := range args {
		if expr := last(arg); expr != nil { // skips "name:=" prefixes
			exprs = append(exprs, expr)
		}
	}

	return exprs
}

// ArrayElements implements [syntaxfacts.Facts].
//
// Recognized are "New T() { ... }" and array literals "{ ... }".
func (Facts) ArrayElements(expr host.Node) ([]host.Node, bool) {
	expr = skipParens(expr)

	switch {
	case host.Is(expr, ArrayCreationExpression):
		init := host.FirstChild(expr, CollectionInitializer)
		if init == nil {
			return nil, false
		}

		return init.Children(), true

	case host.Is(expr, CollectionInitializer):
		return expr.Children(), true

	default:
		return nil, false
	}
}

// NameToken implements [syntaxfacts.Facts].
//
// Invocations of a value, as in "sub.Received()(1)", have no name.
func (f Facts) NameToken(expr host.Node) host.Node {
	switch {
	case host.Is(expr, InvocationExpression) && host.Is(first(expr), InvocationExpression):
		return expr

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
	if !host.Is(expr, GetTypeExpression) {
		return nil, false
	}

	operand := first(expr)

	return operand, operand != nil
}

// IsNullLiteral implements [syntaxfacts.Facts].
func (Facts) IsNullLiteral(expr host.Node) bool {
	return host.Is(skipParens(expr), NothingLiteralExpression)
}

// IsLiteral implements [syntaxfacts.Facts].
func (Facts) IsLiteral(expr host.Node) bool {
	return host.Is(skipParens(expr), NothingLiteralExpression, NumericLiteralExpression, StringLiteralExpression,
		CharacterLiteralExpression, TrueLiteralExpression, FalseLiteralExpression, DateLiteralExpression)
}

// NullLiteral implements [syntaxfacts.Facts].
func (Facts) NullLiteral() string { return "Nothing" }

// LambdaExpressions implements [syntaxfacts.Facts].
func (Facts) LambdaExpressions(expr host.Node) ([]host.Node, bool) {
	expr = skipParens(expr)

	switch {
	case host.Is(expr, SingleLineFunctionLambdaExpression):
		if body := last(expr); body != nil && !host.Is(body, LambdaHeader) {
			return []host.Node{body}, true
		}

		return nil, true

	case host.Is(expr, SingleLineSubLambdaExpression, MultiLineFunctionLambdaExpression, MultiLineSubLambdaExpression):
		var exprs []host.Node

		for _, stmt := range host.ChildrenOf(expr, ExpressionStatement, CallStatement) {
			if e := last(stmt); e != nil { // skips "Call" keyword
				exprs = append(exprs, e)
			}
		}

		return exprs, true

	default:
		return nil, false
	}
}

// AccessedMember implements [syntaxfacts.Facts].
//
// Besides member accesses, an invocation of the value is an access of its
// default property, as in "sub.Received()(1)".
func (Facts) AccessedMember(expr host.Node) (host.Node, bool) {
	for host.Is(expr.Parent(), ParenthesizedExpression) {
		expr = expr.Parent()
	}

	parent := expr.Parent()
	if !host.Is(parent, SimpleMemberAccessExpression, InvocationExpression) || first(parent) != expr {
		return nil, false
	}

	return parent, true
}

// IsStandalone implements [syntaxfacts.Facts].
func (Facts) IsStandalone(expr host.Node) bool {
	return host.Is(expr.Parent(), ExpressionStatement, CallStatement)
}

// AccessibilityModifiers implements [syntaxfacts.Facts].
//
// The modifiers of a declaration block are those of its header statement.
func (Facts) AccessibilityModifiers(decl host.Node) []host.Node {
	if host.Is(decl, FunctionBlock, SubBlock, PropertyBlock) {
		decl = host.FirstChild(decl, FunctionStatement, SubStatement, PropertyStatement)
	}

	return host.ChildrenOf(decl, PublicKeyword, PrivateKeyword, ProtectedKeyword, FriendKeyword)
}

// AccessibilityText implements [syntaxfacts.Facts].
func (Facts) AccessibilityText(a host.Accessibility) (string, error) {
	switch a {
	case host.Private:
		return "Private", nil

	case host.ProtectedAndInternal:
		return "Private Protected", nil

	case host.Protected:
		return "Protected", nil

	case host.Internal:
		return "Friend", nil

	case host.ProtectedOrInternal:
		return "Protected Friend", nil

	case host.Public:
		return "Public", nil

	default:
		return "", fmt.Errorf("accessibility %q in Visual Basic: %w", a, syntaxfacts.ErrUnsupported)
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
