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

// Package rules defines the diagnostic rules reported by the substitution analyzers.
package rules

import (
	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/config"
)

const helpURL = "https://github.com/nsubstitute/NSubstitute.Analyzers/blob/master/documentation/rules/"

const (
	categoryNonVirtual = "Non virtual substitution"
	categoryCreation   = "Substitute creation"
	categoryUsage      = "Usage"
)

const nonVirtualFormat = "Member %s can not be intercepted. Only interface members and virtual, overriding, and abstract members can be intercepted."

var (
	// NonVirtualSetup is reported for non-virtual members configured with Returns-like calls.
	NonVirtualSetup = &host.Rule{
		ID:       "NS1000",
		Title:    "Non-virtual setup specification.",
		Format:   nonVirtualFormat,
		Category: categoryNonVirtual,
		Severity: host.Warning,
		HelpURL:  helpURL + "NS1000.md",
	}

	// NonVirtualReceived is reported for non-virtual members checked with Received-like calls.
	NonVirtualReceived = &host.Rule{
		ID:       "NS1001",
		Title:    "Non-virtual setup specification.",
		Format:   nonVirtualFormat,
		Category: categoryNonVirtual,
		Severity: host.Warning,
		HelpURL:  helpURL + "NS1001.md",
	}

	// NonVirtualWhen is reported for non-virtual members configured in When-like calls.
	NonVirtualWhen = &host.Rule{
		ID:       "NS1002",
		Title:    "Non-virtual setup specification.",
		Format:   nonVirtualFormat,
		Category: categoryNonVirtual,
		Severity: host.Warning,
		HelpURL:  helpURL + "NS1002.md",
	}

	// InternalSetup is reported for internal members the proxy generator can not see.
	InternalSetup = &host.Rule{
		ID:       "NS1003",
		Title:    "Internal setup specification.",
		Format:   `Internal member %s can not be intercepted without InternalsVisibleToAttribute("DynamicProxyGenAssembly2").`,
		Category: categoryNonVirtual,
		Severity: host.Warning,
		HelpURL:  helpURL + "NS1003.md",
	}

	// PartsOfInterface is reported for partial substitutes of interfaces.
	PartsOfInterface = &host.Rule{
		ID:       "NS2000",
		Title:    "Substitute.ForPartsOf used with interface or delegate.",
		Format:   "Can only use %s for classes. For interfaces use %s.",
		Category: categoryCreation,
		Severity: host.Warning,
		HelpURL:  helpURL + "NS2000.md",
	}

	// ConstructorArguments is reported for constructor arguments passed to interface substitutes.
	ConstructorArguments = &host.Rule{
		ID:       "NS2004",
		Title:    "Substituting for an interface and supplying constructor arguments.",
		Format:   "Can not provide constructor arguments when substituting for interface %s.",
		Category: categoryCreation,
		Severity: host.Warning,
		HelpURL:  helpURL + "NS2004.md",
	}

	// UnusedReceived is reported for Received-like calls without a following member call.
	UnusedReceived = &host.Rule{
		ID:       "NS5000",
		Title:    "Received check.",
		Format:   `Unused received check. To fix, make sure there is a call after "%[1]s". Correct: "sub.%[1]s().SomeCall();". Incorrect: "sub.%[1]s();"`,
		Category: categoryUsage,
		Severity: host.Warning,
		HelpURL:  helpURL + "NS5000.md",
	}
)

// Entry associates a [host.Rule] with its enable flag.
type Entry struct {
	Rule *host.Rule
	Flag config.Rules
}

// All lists all rules in identifier order.
var All = [...]Entry{
	{NonVirtualSetup, config.NonVirtualSetup},
	{NonVirtualReceived, config.NonVirtualReceived},
	{NonVirtualWhen, config.NonVirtualWhen},
	{InternalSetup, config.InternalSetup},
	{PartsOfInterface, config.PartsOfInterface},
	{ConstructorArguments, config.ConstructorArguments},
	{UnusedReceived, config.UnusedReceived},
}

// Enabled returns the rules enabled in the given mask, in identifier order.
func Enabled(mask config.BitMask[config.Rules]) []*host.Rule {
	rs := make([]*host.Rule, 0, mask.Len())

	for flag := range mask.Each() {
		if r := byFlag(flag); r != nil {
			rs = append(rs, r)
		}
	}

	return rs
}

func byFlag(flag config.Rules) *host.Rule {
	for _, e := range All {
		if e.Flag == flag {
			return e.Rule
		}
	}

	return nil
}

// ByID returns the rule with the given identifier, or nil.
func ByID(id string) *host.Rule {
	for _, e := range All {
		if e.Rule.ID == id {
			return e.Rule
		}
	}

	return nil
}
