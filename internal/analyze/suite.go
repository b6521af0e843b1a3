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

package analyze

import (
	"log/slog"
	"runtime/trace"
	"sync"

	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/config"
	"fillmore-labs.com/subanalyzers/internal/rules"
	"fillmore-labs.com/subanalyzers/internal/settings"
	"fillmore-labs.com/subanalyzers/internal/syntaxfacts"
	"fillmore-labs.com/subanalyzers/internal/wellknown"
)

// Suite is the substitution analyzer suite for one concrete syntax.
type Suite struct {
	name  string
	facts syntaxfacts.Facts
	opts  *Options
}

// New creates a [Suite] for the syntax described by facts.
//
// Options are read when a compilation starts, so they may be changed, e.g.
// by flag parsing, until the suite is used.
func New(name string, facts syntaxfacts.Facts, opts *Options) *Suite {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Suite{name: name, facts: facts, opts: opts}
}

// Name implements [host.Analyzer].
func (s *Suite) Name() string { return s.name }

// Rules implements [host.Analyzer].
func (s *Suite) Rules() []*host.Rule { return rules.Enabled(s.opts.Rules) }

// Initialize implements [host.Analyzer].
func (s *Suite) Initialize(r host.Registrar) {
	r.RegisterCompilationStart(s.compilationStart)
}

func (s *Suite) compilationStart(cs *host.CompilationStart) {
	c := cs.Compilation
	if c.Language() != s.facts.Language() {
		return
	}

	api := wellknown.Resolve(c)
	if !api.Referenced() {
		return // nothing to substitute
	}

	ctx := cs.Context
	trace.Log(ctx, "analyzer", s.name)

	a := &pass{
		Suite:    s,
		api:      api,
		settings: sync.OnceValue(func() *settings.Settings { return s.loadSettings(cs) }),
	}

	cs.RegisterNodeAction(a.invocation, s.facts.InvocationKinds()...)
}

// loadSettings reads the suppression settings of a compilation.
func (s *Suite) loadSettings(cs *host.CompilationStart) *settings.Settings {
	if s.opts.Behavior.Enabled(config.IgnoreSettings) {
		return settings.Default()
	}

	files := cs.Compilation.AdditionalFiles()

	if s.opts.Cache != nil {
		return s.opts.Cache.Load(cs.Context, s.opts.Logger, files)
	}

	return settings.Load(cs.Context, s.opts.Logger, files)
}

// pass holds the per-compilation state. It is shared by concurrent node
// actions and read-only after creation.
type pass struct {
	*Suite

	api wellknown.API

	// settings are loaded once, on first use.
	settings func() *settings.Settings
}

func (a *pass) enabled(flag config.Rules) bool {
	return a.opts.Rules.Enabled(flag)
}

func (a *pass) fixes() bool {
	return a.opts.Behavior.Enabled(config.SuggestFixes)
}
