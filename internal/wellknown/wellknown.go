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

// Package wellknown describes the API surface of the substitution library.
package wellknown

import (
	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/symbols"
)

// Metadata names of the library types the analyzers recognize.
const (
	SubstituteType           = "NSubstitute.Substitute"
	SubstituteExtensionsType = "NSubstitute.SubstituteExtensions"
	ReturnsExtensionsType    = "NSubstitute.ReturnsExtensions.ReturnsExtensions"
	ExceptionExtensionsType  = "NSubstitute.ExceptionExtensions.ExceptionExtensions"
	SubstituteFactoryType    = "NSubstitute.Core.ISubstituteFactory"
)

// Method names of the library.
const (
	For           = "For"
	ForPartsOf    = "ForPartsOf"
	Create        = "Create"
	CreatePartial = "CreatePartial"
)

// Family classifies library methods by the analysis they need.
type Family uint8

//go:generate go tool stringer -type Family
const (
	// None is not a recognized library method.
	None Family = iota

	// Setup methods configure the member invoked on their subject (Returns, Throws).
	Setup

	// When methods configure the members invoked in their lambda argument.
	When

	// Received methods check the member invoked on their result.
	Received

	// Substitute methods create full substitutes (For, Create).
	Substitute

	// PartialSubstitute methods create partial substitutes (ForPartsOf, CreatePartial).
	PartialSubstitute
)

var (
	extensionMethods = map[string]Family{
		"Returns":                  Setup,
		"ReturnsForAnyArgs":        Setup,
		"When":                     When,
		"WhenForAnyArgs":           When,
		"Received":                 Received,
		"ReceivedWithAnyArgs":      Received,
		"DidNotReceive":            Received,
		"DidNotReceiveWithAnyArgs": Received,
	}

	returnsMethods = map[string]Family{
		"ReturnsNull":           Setup,
		"ReturnsNullForAnyArgs": Setup,
	}

	exceptionMethods = map[string]Family{
		"Throws":                Setup,
		"ThrowsForAnyArgs":      Setup,
		"ThrowsAsync":           Setup,
		"ThrowsAsyncForAnyArgs": Setup,
	}

	substituteMethods = map[string]Family{
		For:        Substitute,
		ForPartsOf: PartialSubstitute,
	}

	factoryMethods = map[string]Family{
		Create:        Substitute,
		CreatePartial: PartialSubstitute,
	}
)

// API holds the library types resolved for one compilation.
type API struct {
	substitute, extensions, returns, exceptions, factory host.NamedType
}

// Resolve looks up the library types in a compilation.
func Resolve(c host.Compilation) API {
	return API{
		substitute: c.TypeByMetadataName(SubstituteType),
		extensions: c.TypeByMetadataName(SubstituteExtensionsType),
		returns:    c.TypeByMetadataName(ReturnsExtensionsType),
		exceptions: c.TypeByMetadataName(ExceptionExtensionsType),
		factory:    c.TypeByMetadataName(SubstituteFactoryType),
	}
}

// Referenced reports whether the compilation references the library.
func (a API) Referenced() bool {
	return a.substitute != nil || a.extensions != nil || a.factory != nil
}

// Family classifies a resolved method. Reduced extension methods are
// classified by the static method they were reduced from.
func (a API) Family(m host.Method) Family {
	if r := m.ReducedFrom(); r != nil {
		m = r
	}

	t := m.ContainingType()
	if t == nil {
		return None
	}

	var methods map[string]Family

	switch {
	case sameType(t, a.extensions):
		methods = extensionMethods

	case sameType(t, a.returns):
		methods = returnsMethods

	case sameType(t, a.exceptions):
		methods = exceptionMethods

	case sameType(t, a.substitute):
		methods = substituteMethods

	case sameType(t, a.factory):
		methods = factoryMethods

	default:
		return None
	}

	return methods[m.Name()] // None when not found
}

// IsFactory reports whether m is a method of the substitute factory,
// taking types and constructor arguments as arrays.
func (a API) IsFactory(m host.Method) bool {
	t := m.ContainingType()

	return t != nil && sameType(t, a.factory)
}

// FullSubstituteName returns the name of the method creating a full
// substitute corresponding to a partial substitute method.
func FullSubstituteName(partial string) (string, bool) {
	switch partial {
	case ForPartsOf:
		return For, true

	case CreatePartial:
		return Create, true

	default:
		return "", false
	}
}

func sameType(t, known host.NamedType) bool {
	return known != nil && symbols.SameDefinition(t, known)
}
