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

// Package analyzer implements the substitution analyzers for hosts
// compiling C# or Visual Basic.
//
// # Overview
//
// The analyzers detect misuse of a substitution library (NSubstitute):
// members configured or checked on a substitute that can not be
// intercepted, received checks without a following call, and substitutes
// created with arguments that can not apply.
//
// # Example
//
// Given
//
//	public class Foo { public int Bar() => 2; }
//
// the setup
//
//	var substitute = Substitute.For<Foo>();
//	substitute.Bar().Returns(1); // NS1000
//
// is reported, since the non-virtual Bar can not be intercepted. Declaring
// Bar as virtual, or calling it through an interface, removes the diagnostic.
//
// # Rules
//
//   - NS1000, NS1001, NS1002: non-virtual member in Returns-like, Received-like and When-like calls
//   - NS1003: internal member not visible to the proxy generator
//   - NS2000: ForPartsOf or CreatePartial used for an interface
//   - NS2004: constructor arguments supplied for an interface
//   - NS5000: received check without a following call
//
// # Suppressions
//
// Diagnostics about a symbol can be suppressed in an additional file named
// nsubstitute.json:
//
//	{
//	  "Suppressions": [
//	    { "Target": "M:MyNamespace.Foo.Bar", "Rules": ["NS1000"] }
//	  ]
//	}
package analyzer
