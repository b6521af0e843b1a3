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

// SymbolKind classifies a [Symbol].
type SymbolKind uint8

const (
	SymbolOther SymbolKind = iota
	SymbolMethod
	SymbolProperty
	SymbolField
	SymbolNamedType
	SymbolLocal
	SymbolParameter
)

// MethodKind classifies a [Method].
type MethodKind uint8

const (
	MethodOrdinary MethodKind = iota
	MethodConstructor
	MethodStaticConstructor
	MethodLocalFunction
	MethodReducedExtension
	MethodPropertyGet
	MethodPropertySet
	MethodOther
)

// TypeKind classifies a [NamedType].
type TypeKind uint8

const (
	TypeClass TypeKind = iota
	TypeInterface
	TypeStruct
	TypeDelegate
	TypeEnum
	TypeOther
)

// Accessibility is the declared accessibility of a symbol.
type Accessibility uint8

//go:generate go tool stringer -type Accessibility -linecomment
const (
	NotApplicable        Accessibility = iota // not applicable
	Private                                   // private
	ProtectedAndInternal                      // private protected
	Protected                                 // protected
	Internal                                  // internal
	ProtectedOrInternal                       // protected internal
	Public                                    // public
)

// Symbol is a semantic symbol owned by the host's semantic model.
//
// Symbols are compared by identity; a host must hand out the same value
// for the same symbol within one compilation.
type Symbol interface {
	Kind() SymbolKind
	Name() string

	// ID returns the stable identifier of the symbol, in documentation
	// comment id format (e.g. "M:MyNamespace.Foo.Bar(System.Int32)").
	ID() string

	// ContainingType returns the type declaring this symbol, or nil.
	ContainingType() NamedType

	IsVirtual() bool
	IsAbstract() bool
	IsOverride() bool
	IsSealed() bool
	IsStatic() bool
	Accessibility() Accessibility

	// OriginalDefinition returns the symbol as declared, before any
	// substitution of type arguments of the containing type.
	OriginalDefinition() Symbol

	// DeclaringSyntax returns the declaration nodes in source, empty
	// for metadata symbols.
	DeclaringSyntax() []Node
}

// Method is a method, constructor, accessor or local function symbol.
type Method interface {
	Symbol
	MethodKind() MethodKind

	// ReducedFrom returns the static extension method this reduced
	// method was derived from, or nil.
	ReducedFrom() Method

	// ConstructedFrom returns the open generic method this method was
	// instantiated from, or the method itself.
	ConstructedFrom() Method

	TypeArguments() []Type
	Parameters() []Parameter
	IsExtensionMethod() bool
}

// Property is a property or indexer symbol.
type Property interface {
	Symbol
	IsIndexer() bool
}

// Parameter describes a method parameter.
type Parameter struct {
	Name   string
	Type   Type
	Params bool // parameter array
}

// Type is a type symbol.
type Type interface {
	Symbol
	TypeKind() TypeKind
}

// NamedType is a class, interface, struct, delegate or enum.
type NamedType interface {
	Type

	// MetadataName returns the fully qualified metadata name,
	// e.g. "NSubstitute.SubstituteExtensions".
	MetadataName() string

	// AllInterfaces returns all interfaces this type implements,
	// including inherited ones.
	AllInterfaces() []NamedType

	// Members returns the members declared on this type.
	Members() []Symbol

	// FindImplementationForInterfaceMember returns the member of this
	// type implementing the given interface member, or nil.
	FindImplementationForInterfaceMember(member Symbol) Symbol
}
