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

// Package analyze implements the substitution analysis passes.
//
// # Architecture
//
// A [Suite] is bound to one concrete syntax through [syntaxfacts.Facts].
// At compilation start it resolves the substitution library API and, when
// the library is referenced, registers a node action for invocations:
//
//  1. Classify: the invocation's callee is matched against the library
//     members and its call shape is determined
//  2. Resolve: the substituted member is located and checked for
//     interceptability and visibility to the proxy generator
//  3. Report: diagnostics not suppressed by the settings file are emitted,
//     with fixes where the syntax allows them
//
// Settings are read lazily, at most once per compilation, and may be shared
// between compilations through a [settings.Cache].
//
// # Current Limitations
//
//   - Visual Basic calls without argument lists are not analyzed
//   - Parenthesized substitutes are not unwrapped
package analyze
