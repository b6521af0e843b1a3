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

import "fillmore-labs.com/subanalyzers/host"

// Library holds the stub types of the substitution library.
type Library struct {
	Substitute          *Type
	Extensions          *Type
	ReturnsExtensions   *Type
	ExceptionExtensions *Type
	Factory             *Type

	methods map[string]*Method
}

// AddLibrary declares the substitution library in a compilation.
func AddLibrary(c *Compilation) *Library {
	l := &Library{
		Substitute:          NewClass("NSubstitute.Substitute", Static()),
		Extensions:          NewClass("NSubstitute.SubstituteExtensions", Static()),
		ReturnsExtensions:   NewClass("NSubstitute.ReturnsExtensions.ReturnsExtensions", Static()),
		ExceptionExtensions: NewClass("NSubstitute.ExceptionExtensions.ExceptionExtensions", Static()),
		Factory:             NewInterface("NSubstitute.Core.ISubstituteFactory"),
		methods:             make(map[string]*Method),
	}

	for _, name := range [...]string{"For", "ForPartsOf"} {
		l.methods[name] = l.Substitute.Method(name, Static())
	}

	for _, name := range [...]string{
		"Returns", "ReturnsForAnyArgs",
		"When", "WhenForAnyArgs",
		"Received", "ReceivedWithAnyArgs", "DidNotReceive", "DidNotReceiveWithAnyArgs",
	} {
		l.methods[name] = l.Extensions.Method(name).Extension()
	}

	for _, name := range [...]string{"ReturnsNull", "ReturnsNullForAnyArgs"} {
		l.methods[name] = l.ReturnsExtensions.Method(name).Extension()
	}

	for _, name := range [...]string{"Throws", "ThrowsForAnyArgs", "ThrowsAsync", "ThrowsAsyncForAnyArgs"} {
		l.methods[name] = l.ExceptionExtensions.Method(name).Extension()
	}

	for _, name := range [...]string{"Create", "CreatePartial"} {
		l.methods[name] = l.Factory.Method(name)
	}

	c.AddType(l.Substitute, l.Extensions, l.ReturnsExtensions, l.ExceptionExtensions, l.Factory)

	return l
}

// Method returns the library method with the given name. It panics for unknown names.
func (l *Library) Method(name string) *Method {
	m, ok := l.methods[name]
	if !ok {
		panic("hosttest: unknown library method " + name)
	}

	return m
}

// Generic returns a generic library method instantiated with type arguments,
// e.g. Substitute.For<IFoo>.
func (l *Library) Generic(name string, typeArgs ...host.Type) *Method {
	return l.Method(name).Construct(typeArgs...)
}
