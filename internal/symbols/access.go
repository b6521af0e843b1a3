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

package symbols

import "fillmore-labs.com/subanalyzers/host"

// ProxyAssembly is the name of the assembly proxies are generated into.
const ProxyAssembly = "DynamicProxyGenAssembly2"

// InternalOnly reports whether sym is only accessible within its assembly.
func InternalOnly(sym host.Symbol) bool {
	switch sym.Accessibility() {
	case host.Internal, host.ProtectedAndInternal:
		return true

	default:
		return false
	}
}

// VisibleToProxy reports whether the proxy generator can override sym.
func VisibleToProxy(c host.Compilation, sym host.Symbol) bool {
	return !InternalOnly(sym) || c.GrantsInternalsTo(ProxyAssembly)
}

// SuppressionTargets returns the identifiers that, when listed in the
// settings, suppress diagnostics about sym: its own, its definition's, and
// those of its containing types, innermost first.
func SuppressionTargets(sym host.Symbol) []string {
	var ids []string

	add := func(id string) {
		if id == "" {
			return
		}

		for _, seen := range ids {
			if seen == id {
				return
			}
		}

		ids = append(ids, id)
	}

	add(sym.ID())
	add(Definition(sym).ID())

	for t := sym.ContainingType(); t != nil; t = t.ContainingType() {
		add(t.ID())
		add(Definition(t).ID())
	}

	return ids
}
