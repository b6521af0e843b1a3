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

import "fillmore-labs.com/subanalyzers/host"

// Language is the name of the Visual Basic language, as reported by the host.
const Language = "Visual Basic"

// Node kinds of Visual Basic syntax trees recognized by the analyzers.
const (
	CompilationUnit                    host.Kind = "CompilationUnit"
	InvocationExpression               host.Kind = "InvocationExpression"
	SimpleMemberAccessExpression       host.Kind = "SimpleMemberAccessExpression"
	ParenthesizedExpression            host.Kind = "ParenthesizedExpression"
	IdentifierName                     host.Kind = "IdentifierName"
	GenericName                        host.Kind = "GenericName"
	TypeArgumentList                   host.Kind = "TypeArgumentList"
	ArgumentList                       host.Kind = "ArgumentList"
	SimpleArgument                     host.Kind = "SimpleArgument"
	OmittedArgument                    host.Kind = "OmittedArgument"
	ArrayCreationExpression            host.Kind = "ArrayCreationExpression"
	ArrayRankSpecifier                 host.Kind = "ArrayRankSpecifier"
	CollectionInitializer              host.Kind = "CollectionInitializer"
	NothingLiteralExpression           host.Kind = "NothingLiteralExpression"
	NumericLiteralExpression           host.Kind = "NumericLiteralExpression"
	StringLiteralExpression            host.Kind = "StringLiteralExpression"
	CharacterLiteralExpression         host.Kind = "CharacterLiteralExpression"
	TrueLiteralExpression              host.Kind = "TrueLiteralExpression"
	FalseLiteralExpression             host.Kind = "FalseLiteralExpression"
	DateLiteralExpression              host.Kind = "DateLiteralExpression"
	GetTypeExpression                  host.Kind = "GetTypeExpression"
	PredefinedType                     host.Kind = "PredefinedType"
	SingleLineFunctionLambdaExpression host.Kind = "SingleLineFunctionLambdaExpression"
	SingleLineSubLambdaExpression      host.Kind = "SingleLineSubLambdaExpression"
	MultiLineFunctionLambdaExpression  host.Kind = "MultiLineFunctionLambdaExpression"
	MultiLineSubLambdaExpression       host.Kind = "MultiLineSubLambdaExpression"
	LambdaHeader                       host.Kind = "LambdaHeader"
	ExpressionStatement                host.Kind = "ExpressionStatement"
	CallStatement                      host.Kind = "CallStatement"
	FunctionBlock                      host.Kind = "FunctionBlock"
	SubBlock                           host.Kind = "SubBlock"
	PropertyBlock                      host.Kind = "PropertyBlock"
	FunctionStatement                  host.Kind = "FunctionStatement"
	SubStatement                       host.Kind = "SubStatement"
	PropertyStatement                  host.Kind = "PropertyStatement"

	IdentifierToken       host.Kind = "IdentifierToken"
	PublicKeyword         host.Kind = "PublicKeyword"
	PrivateKeyword        host.Kind = "PrivateKeyword"
	ProtectedKeyword      host.Kind = "ProtectedKeyword"
	FriendKeyword         host.Kind = "FriendKeyword"
	OverridableKeyword    host.Kind = "OverridableKeyword"
	PredefinedTypeKeyword host.Kind = "PredefinedTypeKeyword"
)
