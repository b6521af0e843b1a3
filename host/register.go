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

import "context"

// Analyzer is the contract between the host and an analyzer suite.
type Analyzer interface {
	// Name returns the analyzer name.
	Name() string

	// Rules returns all rules the analyzer may report.
	Rules() []*Rule

	// Initialize registers the analyzer's actions. The host calls it once.
	Initialize(r Registrar)
}

// Registrar accepts the analyzer's action registrations.
type Registrar interface {
	// RegisterCompilationStart registers an action run once at the start
	// of each compilation pass.
	RegisterCompilationStart(action func(*CompilationStart))
}

// NodeAction is run for each syntax node of a registered kind.
//
// Node actions may run concurrently with each other.
type NodeAction func(*NodePass)

// CompilationStart is the context of a compilation start action.
type CompilationStart struct {
	Context     context.Context
	Compilation Compilation

	register func(action NodeAction, kinds []Kind)
}

// NewCompilationStart is used by hosts to create a [CompilationStart] context.
// The register function receives node action registrations.
func NewCompilationStart(ctx context.Context, c Compilation, register func(action NodeAction, kinds []Kind)) *CompilationStart {
	return &CompilationStart{Context: ctx, Compilation: c, register: register}
}

// RegisterNodeAction registers an action run for every node of one of the given kinds.
func (c *CompilationStart) RegisterNodeAction(action NodeAction, kinds ...Kind) {
	if action == nil || len(kinds) == 0 {
		return
	}

	c.register(action, kinds)
}

// NodePass is the context of a [NodeAction] invocation.
type NodePass struct {
	Context     context.Context
	Node        Node
	Model       SemanticModel
	Compilation Compilation

	// Report emits a diagnostic. It is safe for concurrent use.
	Report func(Diagnostic)
}
