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

	"fillmore-labs.com/subanalyzers/internal/config"
	"fillmore-labs.com/subanalyzers/internal/settings"
)

// Options represent configuration options for the substitution analyzers.
type Options struct {
	// Rules are the enabled rules.
	Rules config.BitMask[config.Rules]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Behavior]

	// Logger receives debug output, e.g. about ignored settings files.
	Logger *slog.Logger

	// Cache shares parsed settings between compilations. Optional.
	Cache *settings.Cache
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Rules:    config.DefaultRules(),
		Behavior: config.DefaultBehavior(),
		Logger:   slog.New(slog.DiscardHandler),
	}
}
