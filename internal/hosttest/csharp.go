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
	"strings"

	"fillmore-labs.com/subanalyzers/csharp"
	"fillmore-labs.com/subanalyzers/host"
)

// CS builds C# syntax trees.
var CS CSharp

// CSharp builds C# syntax trees. The zero value is ready to use.
type CSharp struct{}

// Ident builds a simple name.
func (CSharp) Ident(name string) *Node {
	return N(csharp.IdentifierName, N(csharp.IdentifierToken, name))
}

// Generic builds a generic name, e.g. "For<IFoo>".
func (CSharp) Generic(name string, typeArgs ...*Node) *Node {
	return N(csharp.GenericName,
		N(csharp.IdentifierToken, name),
		N(csharp.TypeArgumentList, join("<", ", ", ">", typeArgs, nil)...))
}

// Member builds a member access "recv.name", name is a string or a *[Node].
func (c CSharp) Member(recv *Node, name any) *Node {
	return N(csharp.SimpleMemberAccessExpression, recv, ".", c.name(name))
}

// Call builds an invocation "expr(args)".
func (CSharp) Call(expr *Node, args ...*Node) *Node {
	return N(csharp.InvocationExpression, expr,
		N(csharp.ArgumentList, join("(", ", ", ")", args, csharpArgument)...))
}

// Index builds an element access "expr[args]".
func (CSharp) Index(expr *Node, args ...*Node) *Node {
	return N(csharp.ElementAccessExpression, expr,
		N(csharp.BracketedArgumentList, join("[", ", ", "]", args, csharpArgument)...))
}

// Paren builds a parenthesized expression.
func (CSharp) Paren(expr *Node) *Node {
	return N(csharp.ParenthesizedExpression, "(", expr, ")")
}

// Null builds a null literal.
func (CSharp) Null() *Node { return N(csharp.NullLiteralExpression, "null") }

// Num builds a numeric literal.
func (CSharp) Num(text string) *Node { return N(csharp.NumericLiteralExpression, text) }

// TypeOf builds "typeof(t)".
func (CSharp) TypeOf(t *Node) *Node { return N(csharp.TypeOfExpression, "typeof(", t, ")") }

// NewArray builds "new T[] { elems }".
func (CSharp) NewArray(elemType string, elems ...*Node) *Node {
	return N(csharp.ArrayCreationExpression, "new ", N(csharp.ArrayType, elemType+"[]"), " ",
		N(csharp.ArrayInitializerExpression, join("{ ", ", ", " }", elems, nil)...))
}

// ImplicitArray builds "new[] { elems }".
func (CSharp) ImplicitArray(elems ...*Node) *Node {
	return N(csharp.ImplicitArrayCreationExpression, "new[] ",
		N(csharp.ArrayInitializerExpression, join("{ ", ", ", " }", elems, nil)...))
}

// Collection builds a collection expression "[elems]".
func (CSharp) Collection(elems ...*Node) *Node {
	return N(csharp.CollectionExpression, join("[", ", ", "]", elems, func(n *Node) *Node {
		return N(csharp.ExpressionElement, n)
	})...)
}

// Lambda builds "param => body".
func (CSharp) Lambda(param string, body *Node) *Node {
	return N(csharp.SimpleLambdaExpression, N(csharp.Parameter, N(csharp.IdentifierToken, param)), " => ", body)
}

// Block builds a block of statements.
func (CSharp) Block(stmts ...*Node) *Node {
	return N(csharp.Block, join("{ ", " ", " }", stmts, nil)...)
}

// Stmt builds an expression statement "expr;".
func (CSharp) Stmt(expr *Node) *Node { return N(csharp.ExpressionStatement, expr, ";") }

// Method builds a method declaration, e.g. Method("internal virtual", "Bar").
func (CSharp) Method(modifiers, name string) *Node {
	parts := csharpModifiers(modifiers)
	parts = append(parts, "int ", N(csharp.IdentifierToken, name), "() => 0;")

	return N(csharp.MethodDeclaration, parts...)
}

// Property builds an auto property declaration.
func (CSharp) Property(modifiers, name string) *Node {
	parts := csharpModifiers(modifiers)
	parts = append(parts, "int ", N(csharp.IdentifierToken, name), " { get; set; }")

	return N(csharp.PropertyDeclaration, parts...)
}

// Unit builds a compilation unit with one line per member.
func (CSharp) Unit(members ...*Node) *Node {
	return N(csharp.CompilationUnit, join("", "\n", "\n", members, nil)...)
}

func (c CSharp) name(name any) *Node {
	switch n := name.(type) {
	case string:
		return c.Ident(n)

	case *Node:
		return n

	default:
		panic("hosttest: name must be string or *Node")
	}
}

func csharpArgument(n *Node) *Node { return N(csharp.Argument, n) }

var csharpKeywords = map[string]host.Kind{
	"public":    csharp.PublicKeyword,
	"private":   csharp.PrivateKeyword,
	"protected": csharp.ProtectedKeyword,
	"internal":  csharp.InternalKeyword,
	"virtual":   csharp.VirtualKeyword,
}

func csharpModifiers(modifiers string) []any {
	return keywords(csharpKeywords, csharp.PredefinedKeyword, modifiers)
}

// keywords builds keyword tokens, each followed by a space.
func keywords(known map[string]host.Kind, other host.Kind, text string) []any {
	var parts []any

	for _, word := range strings.Fields(text) {
		kind, ok := known[word]
		if !ok {
			kind = other
		}

		parts = append(parts, N(kind, word), " ")
	}

	return parts
}

// join builds node parts from open, the wrapped nodes separated by sep, and end.
func join(open, sep, end string, nodes []*Node, wrap func(*Node) *Node) []any {
	parts := make([]any, 0, 2*len(nodes)+1)
	parts = append(parts, open)

	for i, n := range nodes {
		if i > 0 {
			parts = append(parts, sep)
		}

		if wrap != nil {
			n = wrap(n)
		}

		parts = append(parts, n)
	}

	return append(parts, end)
}
