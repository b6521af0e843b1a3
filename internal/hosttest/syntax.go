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

// Package hosttest provides an in-memory host for testing the substitution
// analyzers.
//
// It is designed to simplify testing by building syntax trees with real
// source text and positions, symbols with configurable virtuality, and a
// driver running analyzers the way a compiler host would.
package hosttest

import (
	"go/token"
	"strings"

	"fillmore-labs.com/subanalyzers/host"
)

// Node is a syntax node of an in-memory tree. Its text is the concatenation
// of its parts: literal strings (punctuation, whitespace) and child nodes.
type Node struct {
	kind     host.Kind
	parts    []any
	children []*Node
	text     string

	parent   *Node
	pos, end token.Pos
}

var _ host.Node = (*Node)(nil)

// N creates a node of the given kind from parts, which are strings or *[Node] children.
func N(kind host.Kind, parts ...any) *Node {
	n := &Node{kind: kind, parts: parts}

	var text strings.Builder

	for _, part := range parts {
		switch p := part.(type) {
		case string:
			text.WriteString(p) // ignore error

		case *Node:
			n.children = append(n.children, p)
			text.WriteString(p.text) // ignore error

		default:
			panic("hosttest: node part must be string or *Node")
		}
	}

	n.text = text.String()

	return n
}

// Kind implements [host.Node].
func (n *Node) Kind() host.Kind { return n.kind }

// Pos implements [host.Node].
func (n *Node) Pos() token.Pos { return n.pos }

// End implements [host.Node].
func (n *Node) End() token.Pos { return n.end }

// Text implements [host.Node].
func (n *Node) Text() string { return n.text }

// Parent implements [host.Node].
func (n *Node) Parent() host.Node {
	if n.parent == nil {
		return nil
	}

	return n.parent
}

// Children implements [host.Node].
func (n *Node) Children() []host.Node {
	children := make([]host.Node, len(n.children))
	for i, c := range n.children {
		children[i] = c
	}

	return children
}

// place assigns positions relative to base and links parents.
func (n *Node) place(base token.Pos) {
	n.pos = base
	n.end = base + token.Pos(len(n.text))

	offset := base

	for _, part := range n.parts {
		switch p := part.(type) {
		case string:
			offset += token.Pos(len(p))

		case *Node:
			p.parent = n
			p.place(offset)
			offset = p.end
		}
	}
}

// Find returns the first node in preorder with the given kind and text, or nil.
func (n *Node) Find(kind host.Kind, text string) *Node {
	if n.kind == kind && n.text == text {
		return n
	}

	for _, c := range n.children {
		if found := c.Find(kind, text); found != nil {
			return found
		}
	}

	return nil
}

// walk calls fn for n and all its descendants in preorder.
func (n *Node) walk(fn func(*Node)) {
	fn(n)

	for _, c := range n.children {
		c.walk(fn)
	}
}

// File is a source file with a syntax tree and its semantic model.
type File struct {
	handle *token.File
	root   *Node
	model  map[*Node]host.SymbolInfo
}

var _ host.SemanticModel = (*File)(nil)

// NewFile adds the source of root to fset and assigns positions to all nodes.
func NewFile(fset *token.FileSet, name string, root *Node) *File {
	src := root.text

	handle := fset.AddFile(name, -1, len(src))
	handle.SetLinesForContent([]byte(src))

	root.place(token.Pos(handle.Base()))

	return &File{handle: handle, root: root, model: make(map[*Node]host.SymbolInfo)}
}

// Root returns the root node.
func (f *File) Root() *Node { return f.root }

// Source returns the source text.
func (f *File) Source() []byte { return []byte(f.root.text) }

// Handle returns the [token.File] of this file.
func (f *File) Handle() *token.File { return f.handle }

// Find returns the first node with the given kind and text, or nil.
func (f *File) Find(kind host.Kind, text string) *Node { return f.root.Find(kind, text) }

// Bind records the symbol a node refers to.
func (f *File) Bind(n *Node, sym host.Symbol) {
	f.model[n] = host.SymbolInfo{Symbol: sym}
}

// BindCandidates records a failed resolution with candidate symbols.
func (f *File) BindCandidates(n *Node, candidates ...host.Symbol) {
	f.model[n] = host.SymbolInfo{Candidates: candidates}
}

// SymbolInfo implements [host.SemanticModel].
func (f *File) SymbolInfo(n host.Node) host.SymbolInfo {
	node, ok := n.(*Node)
	if !ok {
		return host.SymbolInfo{}
	}

	return f.model[node]
}
