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

// Package host defines the interfaces between the substitution analyzers
// and the compiler hosting them.
//
// The host owns parsing, symbol resolution and the scheduling of analyzer
// actions. Analyzers see syntax trees only through [Node], symbols only
// through [Symbol] and its refinements, and register work through
// [Registrar]. Diagnostics are produced as [Diagnostic] records which embed
// the [analysis.Diagnostic] of golang.org/x/tools, including suggested
// fixes as text edits over the host's [token.FileSet].
//
// [analysis.Diagnostic]: https://pkg.go.dev/golang.org/x/tools/go/analysis#Diagnostic
// [token.FileSet]: https://pkg.go.dev/go/token#FileSet
package host
