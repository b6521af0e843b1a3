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

import "go/token"

// Kind identifies the syntactic category of a [Node].
//
// Kinds are defined by the concrete syntax packages; a tree only
// contains kinds of one language.
type Kind string

// Node is a syntax node or token of a host syntax tree.
//
// Spans are expressed as [token.Pos] values of the host's [token.FileSet],
// so diagnostics and text edits can be mapped back to source positions.
type Node interface {
	Kind() Kind
	Pos() token.Pos
	End() token.Pos

	// Parent returns the enclosing node, nil for the root.
	Parent() Node

	// Children returns the child nodes and tokens in source order.
	Children() []Node

	// Text returns the source text spanned by this node.
	Text() string
}

// FirstChild returns the first child of n with one of the given kinds.
func FirstChild(n Node, kinds ...Kind) Node {
	if n == nil {
		return nil
	}

	for _, c := range n.Children() {
		if c != nil && c.Kind().In(kinds...) {
			return c
		}
	}

	return nil
}

// ChildrenOf returns all children of n with one of the given kinds.
func ChildrenOf(n Node, kinds ...Kind) []Node {
	if n == nil {
		return nil
	}

	var children []Node

	for _, c := range n.Children() {
		if c != nil && c.Kind().In(kinds...) {
			children = append(children, c)
		}
	}

	return children
}

// In reports whether k is one of kinds.
func (k Kind) In(kinds ...Kind) bool {
	for _, kind := range kinds {
		if k == kind {
			return true
		}
	}

	return false
}

// Is reports whether n is non-nil and has one of the given kinds.
func Is(n Node, kinds ...Kind) bool {
	return n != nil && n.Kind().In(kinds...)
}
