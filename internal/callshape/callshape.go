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

// Package callshape classifies how a library method is invoked and
// locates the expression it applies to.
package callshape

import (
	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/syntaxfacts"
)

// Shape is the call shape of an invocation.
type Shape uint8

//go:generate go tool stringer -type Shape -linecomment
const (
	// Unknown shapes are not analyzed.
	Unknown Shape = iota // unknown

	// Ordinary calls pass the subject as first argument:
	// ordinary methods, constructors, static constructors and local functions.
	Ordinary // ordinary

	// ReducedExtension calls invoke an extension method on its first
	// parameter, as in "subject.Returns(1)".
	ReducedExtension // reduced extension
)

// Classify returns the call shape for a resolved method.
func Classify(m host.Method) Shape {
	switch m.MethodKind() {
	case host.MethodOrdinary, host.MethodConstructor, host.MethodStaticConstructor, host.MethodLocalFunction:
		return Ordinary

	case host.MethodReducedExtension:
		return ReducedExtension

	default:
		return Unknown
	}
}

// Subject returns the expression a library call applies to: the receiver
// of a reduced extension call, or the first argument of an ordinary call.
func Subject(facts syntaxfacts.Facts, invocation host.Node, shape Shape) (host.Node, bool) {
	switch shape {
	case ReducedExtension:
		ma, ok := facts.MemberAccess(invocation)
		if !ok {
			return nil, false
		}

		return facts.Receiver(ma)

	case Ordinary:
		args := facts.Arguments(invocation)
		if len(args) == 0 {
			return nil, false
		}

		return args[0], true

	default:
		return nil, false
	}
}

// Arguments returns the arguments of a library call, excluding the
// subject of ordinary extension method calls.
func Arguments(facts syntaxfacts.Facts, invocation host.Node, m host.Method, shape Shape) []host.Node {
	args := facts.Arguments(invocation)
	if shape == Ordinary && m.IsExtensionMethod() && len(args) > 0 {
		return args[1:]
	}

	return args
}
