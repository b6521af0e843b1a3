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

import "fillmore-labs.com/subanalyzers/host"

// Language is the name of the C# language, as reported by the host.
const Language = "C#"

// Node kinds of C# syntax trees recognized by the analyzers.
const (
	CompilationUnit                 host.Kind = "CompilationUnit"
	InvocationExpression            host.Kind = "InvocationExpression"
	SimpleMemberAccessExpression    host.Kind = "SimpleMemberAccessExpression"
	ElementAccessExpression         host.Kind = "ElementAccessExpression"
	ParenthesizedExpression         host.Kind = "ParenthesizedExpression"
	IdentifierName                  host.Kind = "IdentifierName"
	GenericName                     host.Kind = "GenericName"
	TypeArgumentList                host.Kind = "TypeArgumentList"
	ArgumentList                    host.Kind = "ArgumentList"
	BracketedArgumentList           host.Kind = "BracketedArgumentList"
	Argument                        host.Kind = "Argument"
	ArrayCreationExpression         host.Kind = "ArrayCreationExpression"
	ImplicitArrayCreationExpression host.Kind = "ImplicitArrayCreationExpression"
	ArrayType                       host.Kind = "ArrayType"
	ArrayInitializerExpression      host.Kind = "ArrayInitializerExpression"
	CollectionExpression            host.Kind = "CollectionExpression"
	ExpressionElement               host.Kind = "ExpressionElement"
	NullLiteralExpression           host.Kind = "NullLiteralExpression"
	NumericLiteralExpression        host.Kind = "NumericLiteralExpression"
	StringLiteralExpression         host.Kind = "StringLiteralExpression"
	CharacterLiteralExpression      host.Kind = "CharacterLiteralExpression"
	TrueLiteralExpression           host.Kind = "TrueLiteralExpression"
	FalseLiteralExpression          host.Kind = "FalseLiteralExpression"
	TypeOfExpression                host.Kind = "TypeOfExpression"
	PredefinedType                  host.Kind = "PredefinedType"
	SimpleLambdaExpression          host.Kind = "SimpleLambdaExpression"
	ParenthesizedLambdaExpression   host.Kind = "ParenthesizedLambdaExpression"
	AnonymousMethodExpression       host.Kind = "AnonymousMethodExpression"
	Parameter                       host.Kind = "Parameter"
	ParameterList                   host.Kind = "ParameterList"
	Block                           host.Kind = "Block"
	ExpressionStatement             host.Kind = "ExpressionStatement"
	MethodDeclaration               host.Kind = "MethodDeclaration"
	PropertyDeclaration             host.Kind = "PropertyDeclaration"
	IndexerDeclaration              host.Kind = "IndexerDeclaration"

	IdentifierToken   host.Kind = "IdentifierToken"
	PublicKeyword     host.Kind = "PublicKeyword"
	PrivateKeyword    host.Kind = "PrivateKeyword"
	ProtectedKeyword  host.Kind = "ProtectedKeyword"
	InternalKeyword   host.Kind = "InternalKeyword"
	VirtualKeyword    host.Kind = "VirtualKeyword"
	PredefinedKeyword host.Kind = "PredefinedKeyword"
)
