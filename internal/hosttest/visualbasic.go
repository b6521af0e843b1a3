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

package hosttest

import (
	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/visualbasic"
)

// VB builds Visual Basic syntax trees.
var VB VisualBasic

// VisualBasic builds Visual Basic syntax trees. The zero value is ready to use.
type VisualBasic struct{}

// Ident builds a simple name.
func (VisualBasic) Ident(name string) *Node {
	return N(visualbasic.IdentifierName, N(visualbasic.IdentifierToken, name))
}

// Generic builds a generic name, e.g. "[For](Of IFoo)".
func (VisualBasic) Generic(name string, typeArgs ...*Node) *Node {
	return N(visualbasic.GenericName,
		N(visualbasic.IdentifierToken, name),
		N(visualbasic.TypeArgumentList, join("(Of ", ", ", ")", typeArgs, nil)...))
}

// Member builds a member access "recv.name", name is a string or a *[Node].
func (v VisualBasic) Member(recv *Node, name any) *Node {
	var n *Node

	switch name := name.(type) {
	case string:
		n = v.Ident(name)

	case *Node:
		n = name

	default:
		panic("hosttest: name must be string or *Node")
	}

	return N(visualbasic.SimpleMemberAccessExpression, recv, ".", n)
}

// Call builds an invocation "expr(args)".
func (VisualBasic) Call(expr *Node, args ...*Node) *Node {
	return N(visualbasic.InvocationExpression, expr,
		N(visualbasic.ArgumentList, join("(", ", ", ")", args, func(n *Node) *Node {
			return N(visualbasic.SimpleArgument, n)
		})...))
}

// Paren builds a parenthesized expression.
func (VisualBasic) Paren(expr *Node) *Node {
	return N(visualbasic.ParenthesizedExpression, "(", expr, ")")
}

// Nothing builds a Nothing literal.
func (VisualBasic) Nothing() *Node { return N(visualbasic.NothingLiteralExpression, "Nothing") }

// Num builds a numeric literal.
func (VisualBasic) Num(text string) *Node { return N(visualbasic.NumericLiteralExpression, text) }

// GetType builds "GetType(t)".
func (VisualBasic) GetType(t *Node) *Node {
	return N(visualbasic.GetTypeExpression, "GetType(", t, ")")
}

// NewArray builds "New T() {elems}".
func (VisualBasic) NewArray(elemType string, elems ...*Node) *Node {
	return N(visualbasic.ArrayCreationExpression, "New "+elemType, N(visualbasic.ArrayRankSpecifier, "()"), " ",
		N(visualbasic.CollectionInitializer, join("{", ", ", "}", elems, nil)...))
}

// ArrayLiteral builds "{elems}".
func (VisualBasic) ArrayLiteral(elems ...*Node) *Node {
	return N(visualbasic.CollectionInitializer, join("{", ", ", "}", elems, nil)...)
}

// FunctionLambda builds "Function(param) body".
func (VisualBasic) FunctionLambda(param string, body *Node) *Node {
	return N(visualbasic.SingleLineFunctionLambdaExpression,
		N(visualbasic.LambdaHeader, "Function(", N(visualbasic.IdentifierToken, param), ")"), " ", body)
}

// SubLambda builds "Sub(param) stmt".
func (VisualBasic) SubLambda(param string, stmt *Node) *Node {
	return N(visualbasic.SingleLineSubLambdaExpression,
		N(visualbasic.LambdaHeader, "Sub(", N(visualbasic.IdentifierToken, param), ")"), " ", stmt)
}

// Stmt builds an expression statement.
func (VisualBasic) Stmt(expr *Node) *Node { return N(visualbasic.ExpressionStatement, expr) }

// CallStmt builds "Call expr".
func (VisualBasic) CallStmt(expr *Node) *Node { return N(visualbasic.CallStatement, "Call ", expr) }

// Function builds a function block, e.g. Function("Friend Overridable", "Bar").
func (VisualBasic) Function(modifiers, name string) *Node {
	parts := keywords(visualbasicKeywords, visualbasic.PredefinedTypeKeyword, modifiers)
	parts = append(parts, "Function ", N(visualbasic.IdentifierToken, name), "() As Integer")

	return N(visualbasic.FunctionBlock, N(visualbasic.FunctionStatement, parts...), "\nEnd Function")
}

// Property builds an auto property statement.
func (VisualBasic) Property(modifiers, name string) *Node {
	parts := keywords(visualbasicKeywords, visualbasic.PredefinedTypeKeyword, modifiers)
	parts = append(parts, "Property ", N(visualbasic.IdentifierToken, name), " As Integer")

	return N(visualbasic.PropertyStatement, parts...)
}

// Unit builds a compilation unit with one line per member.
func (VisualBasic) Unit(members ...*Node) *Node {
	return N(visualbasic.CompilationUnit, join("", "\n", "\n", members, nil)...)
}

var visualbasicKeywords = map[string]host.Kind{
	"Public":      visualbasic.PublicKeyword,
	"Private":     visualbasic.PrivateKeyword,
	"Protected":   visualbasic.ProtectedKeyword,
	"Friend":      visualbasic.FriendKeyword,
	"Overridable": visualbasic.OverridableKeyword,
}
