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

// Compilation is the host's view of one compilation pass.
type Compilation interface {
	// Language returns the source language, e.g. "C#" or "Visual Basic".
	Language() string

	// TypeByMetadataName looks up a type by its fully qualified metadata
	// name. It returns nil when the type is not part of the compilation
	// or its references.
	TypeByMetadataName(name string) NamedType

	// GrantsInternalsTo reports whether the compiled assembly declares
	// InternalsVisibleTo for the named assembly.
	GrantsInternalsTo(assembly string) bool

	// AdditionalFiles returns the non-source files of the project.
	AdditionalFiles() []AdditionalFile
}

// AdditionalFile is a non-source project file passed to analyzers.
type AdditionalFile interface {
	// Path returns the file's path as known to the project.
	Path() string

	// Content returns the file's content.
	Content() ([]byte, error)
}

// SymbolInfo is the result of a symbol lookup.
type SymbolInfo struct {
	// Symbol is the resolved symbol, nil on resolution failure.
	Symbol Symbol

	// Candidates holds the candidate symbols when resolution failed,
	// e.g. on ambiguous overloads.
	Candidates []Symbol
}

// SemanticModel answers semantic questions about one syntax tree.
type SemanticModel interface {
	// SymbolInfo returns the symbol referenced by the node.
	SymbolInfo(n Node) SymbolInfo
}
