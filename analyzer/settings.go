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
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Settings represents the analyzer configuration as provided by a host,
// e.g. from a project configuration file.
type Settings struct {
	// Rules enables or disables rules by identifier.
	Rules map[string]bool `json:"rules,omitzero"`
	// Fixes enables code fixes.
	Fixes *bool `json:"fixes,omitzero"`
	// IgnoreSettings disables reading the suppression settings file.
	IgnoreSettings *bool `json:"ignore-settings,omitzero"`
	// SharedSettings reuses parsed suppression settings across compilations.
	SharedSettings *bool `json:"shared-settings,omitzero"`
}

// DecodeSettings converts raw settings, as decoded from JSON or YAML, into [Settings].
// Unknown fields are rejected.
func DecodeSettings(rawSettings any) (Settings, error) {
	var s Settings

	if rawSettings == nil {
		return s, nil
	}

	data, err := json.Marshal(rawSettings)
	if err != nil {
		return s, fmt.Errorf("can't encode settings: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&s); err != nil {
		return s, fmt.Errorf("can't decode settings: %w", err)
	}

	return s, nil
}

// Options converts [Settings] into a list of [Option] for the substitution analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []Option {
	var opts []Option

	for _, id := range slices.Sorted(maps.Keys(s.Rules)) {
		opts = append(opts, WithRule(id, s.Rules[id]))
	}

	opts = appendOption(opts, s.Fixes, WithFixes)
	opts = appendOption(opts, s.IgnoreSettings, WithIgnoreSettings)
	opts = appendOption(opts, s.SharedSettings, WithSharedSettings)

	return opts
}

// appendOption appends a non-nil setting to an [Option] list.
func appendOption[T any](opts []Option, value *T, constructor func(T) Option) []Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
