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
	"flag"

	"fillmore-labs.com/subanalyzers/internal/analyze"
	"fillmore-labs.com/subanalyzers/internal/config"
	"fillmore-labs.com/subanalyzers/internal/rules"
	"fillmore-labs.com/subanalyzers/internal/settings"
)

// registerFlags exposes each rule as a boolean flag named by its identifier,
// plus the behavior switches. A nil flag set defaults to the program's
// command line.
func registerFlags(o *analyze.Options, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	for _, e := range rules.All {
		flags.Var(maskFlag[config.Rules]{&o.Rules, e.Flag}, e.Rule.ID, "enable "+e.Rule.ID+": "+e.Rule.Title)
	}

	behavior := func(b config.Behavior) flag.Value { return maskFlag[config.Behavior]{&o.Behavior, b} }

	flags.Var(behavior(config.SuggestFixes), "fix", "suggest code fixes")
	flags.Var(behavior(config.IgnoreSettings), "ignore-settings", "ignore the "+settings.FileName+" suppression file")
}
