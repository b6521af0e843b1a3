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

package analyzer

import (
	"errors"
	"flag"
	"fmt"

	"fillmore-labs.com/subanalyzers/csharp"
	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/analyze"
	"fillmore-labs.com/subanalyzers/internal/syntaxfacts"
	"fillmore-labs.com/subanalyzers/visualbasic"
)

// Public API constants for the substitution analyzers.
const (
	name = "subanalyzers"
	doc  = `subanalyzers detects misuse of substitutes: non-virtual setups, dangling received checks and invalid substitute creation`
	url  = "https://pkg.go.dev/fillmore-labs.com/subanalyzers"
)

// ErrUnknownLanguage is returned for languages without syntax support.
var ErrUnknownLanguage = errors.New("unknown language")

// Analyzer is a substitution analyzer suite for one language.
// It implements [host.Analyzer].
type Analyzer struct {
	*analyze.Suite

	// Doc describes the analyzer.
	Doc string

	// URL links to the analyzer documentation.
	URL string

	// Language is the language the analyzer understands.
	Language string

	// Flags configure the analyzer. They must be parsed before the
	// analyzer is initialized by the host.
	Flags flag.FlagSet
}

var _ host.Analyzer = (*Analyzer)(nil)

// New creates a new instance of the substitution analyzer for a language,
// [csharp.Language] or [visualbasic.Language].
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools.
func New(language string, opts ...Option) (*Analyzer, error) {
	var facts syntaxfacts.Facts

	switch language {
	case csharp.Language:
		facts = csharp.Facts{}

	case visualbasic.Language:
		facts = visualbasic.Facts{}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}

	o := analyze.DefaultOptions()
	Options(opts).apply(o)

	a := &Analyzer{
		Suite:    analyze.New(name, facts, o),
		Doc:      doc,
		URL:      url,
		Language: language,
	}

	registerFlags(o, &a.Flags)

	return a, nil
}

// CSharp creates a new instance of the substitution analyzer for C#.
func CSharp(opts ...Option) *Analyzer {
	a, _ := New(csharp.Language, opts...) // known language

	return a
}

// VisualBasic creates a new instance of the substitution analyzer for Visual Basic.
func VisualBasic(opts ...Option) *Analyzer {
	a, _ := New(visualbasic.Language, opts...) // known language

	return a
}
