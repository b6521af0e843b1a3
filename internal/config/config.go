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

package config

// Rules selects the enabled diagnostic rules.
type Rules uint8

const (
	// NonVirtualSetup enables NS1000, non-virtual members configured with Returns-like calls.
	NonVirtualSetup Rules = 1 << iota

	// NonVirtualReceived enables NS1001, non-virtual members checked with Received-like calls.
	NonVirtualReceived

	// NonVirtualWhen enables NS1002, non-virtual members configured in When-like calls.
	NonVirtualWhen

	// InternalSetup enables NS1003, internal members not visible to the proxy generator.
	InternalSetup

	// PartsOfInterface enables NS2000, partial substitutes for interfaces.
	PartsOfInterface

	// ConstructorArguments enables NS2004, constructor arguments for interface substitutes.
	ConstructorArguments

	// UnusedReceived enables NS5000, Received-like calls without a following member call.
	UnusedReceived

	// AllRules enables all rules.
	AllRules = NonVirtualSetup | NonVirtualReceived | NonVirtualWhen | InternalSetup |
		PartsOfInterface | ConstructorArguments | UnusedReceived
)

// Behavior represents behavioral options for the analyzers.
type Behavior uint8

const (
	// SuggestFixes attaches code fixes to diagnostics.
	SuggestFixes Behavior = 1 << iota

	// IgnoreSettings disables reading the suppression settings file.
	IgnoreSettings
)

// DefaultRules returns the rules enabled by default.
func DefaultRules() BitMask[Rules] { return NewBitMask(AllRules) }

// DefaultBehavior returns the default behavior.
func DefaultBehavior() BitMask[Behavior] { return NewBitMask(SuggestFixes) }
