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
	"go/token"

	"fillmore-labs.com/subanalyzers/host"
)

// Compilation is an in-memory compilation.
type Compilation struct {
	language string
	fset     *token.FileSet
	types    map[string]*Type
	grants   map[string]bool
	files    []*File
	extra    []host.AdditionalFile
	model    map[*Node]host.SymbolInfo
}

var _ host.Compilation = (*Compilation)(nil)

// NewCompilation creates an empty compilation for a language.
func NewCompilation(language string) *Compilation {
	return &Compilation{
		language: language,
		fset:     token.NewFileSet(),
		types:    make(map[string]*Type),
		grants:   make(map[string]bool),
		model:    make(map[*Node]host.SymbolInfo),
	}
}

// Language implements [host.Compilation].
func (c *Compilation) Language() string { return c.language }

// TypeByMetadataName implements [host.Compilation].
func (c *Compilation) TypeByMetadataName(name string) host.NamedType {
	t, ok := c.types[name]
	if !ok {
		return nil
	}

	return t
}

// GrantsInternalsTo implements [host.Compilation].
func (c *Compilation) GrantsInternalsTo(assembly string) bool { return c.grants[assembly] }

// AdditionalFiles implements [host.Compilation].
func (c *Compilation) AdditionalFiles() []host.AdditionalFile { return c.extra }

// FileSet returns the file set of the source files.
func (c *Compilation) FileSet() *token.FileSet { return c.fset }

// Files returns the source files.
func (c *Compilation) Files() []*File { return c.files }

// AddType makes types resolvable by metadata name.
func (c *Compilation) AddType(types ...*Type) {
	for _, t := range types {
		c.types[t.MetadataName()] = t
	}
}

// GrantInternalsTo declares InternalsVisibleTo for an assembly.
func (c *Compilation) GrantInternalsTo(assembly string) { c.grants[assembly] = true }

// AddFile adds a source file with the given syntax tree. Its semantic model
// is shared with the compilation, see [Compilation.Bind].
func (c *Compilation) AddFile(name string, root *Node) *File {
	f := NewFile(c.fset, name, root)
	f.model = c.model
	c.files = append(c.files, f)

	return f
}

// Bind records the symbol a node refers to, in any file of the compilation.
func (c *Compilation) Bind(n *Node, sym host.Symbol) {
	c.model[n] = host.SymbolInfo{Symbol: sym}
}

// BindCandidates records a failed resolution with candidate symbols.
func (c *Compilation) BindCandidates(n *Node, candidates ...host.Symbol) {
	c.model[n] = host.SymbolInfo{Candidates: candidates}
}

// Text returns the source text of a span.
func (c *Compilation) Text(pos, end token.Pos) string {
	for _, f := range c.files {
		h := f.handle
		if int(pos) < h.Base() || int(end) > h.Base()+h.Size() {
			continue
		}

		return string(f.Source()[h.Offset(pos):h.Offset(end)])
	}

	return ""
}

// AddAdditionalFile adds a non-source file with content.
func (c *Compilation) AddAdditionalFile(path, content string) {
	c.extra = append(c.extra, additionalFile{path: path, content: []byte(content)})
}

// AddUnreadableFile adds a non-source file failing to read with err.
func (c *Compilation) AddUnreadableFile(path string, err error) {
	c.extra = append(c.extra, additionalFile{path: path, err: err})
}

type additionalFile struct {
	path    string
	content []byte
	err     error
}

func (f additionalFile) Path() string { return f.path }

func (f additionalFile) Content() ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.content, nil
}
