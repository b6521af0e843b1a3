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

// Package settings implements the suppression settings read from the
// project's nsubstitute.json file.
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/symbols"
)

// FileName is the name of the settings file, matched case-insensitively.
const FileName = "nsubstitute.json"

// Suppression disables rules for a target symbol.
type Suppression struct {
	// Target is the stable identifier of a symbol, e.g. "M:MyNamespace.Foo.Bar".
	Target string `json:"Target"`

	// Rules are the identifiers of the suppressed rules, e.g. "NS1000".
	Rules []string `json:"Rules"`
}

// Settings holds the suppression settings of a compilation.
//
// Settings are immutable after creation and safe for concurrent use.
type Settings struct {
	suppressions []Suppression
	index        map[string][]string // target → rules
}

type document struct {
	Suppressions []Suppression `json:"Suppressions"`
}

// Default returns the empty settings.
func Default() *Settings {
	return &Settings{}
}

// Parse decodes settings from JSON.
func Parse(data []byte) (*Settings, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")) // UTF-8 byte order mark

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return newSettings(doc.Suppressions), nil
}

func newSettings(suppressions []Suppression) *Settings {
	s := &Settings{
		suppressions: suppressions,
		index:        make(map[string][]string, len(suppressions)),
	}

	for _, sup := range suppressions {
		if sup.Target == "" {
			continue
		}

		s.index[sup.Target] = append(s.index[sup.Target], sup.Rules...)
	}

	return s
}

// Suppressions returns a copy of the configured suppressions.
func (s *Settings) Suppressions() []Suppression {
	out := make([]Suppression, len(s.suppressions))
	for i, sup := range s.suppressions {
		out[i] = Suppression{Target: sup.Target, Rules: slices.Clone(sup.Rules)}
	}

	return out
}

// Suppressed reports whether rule is suppressed for target.
func (s *Settings) Suppressed(target, rule string) bool {
	return slices.ContainsFunc(s.index[target], func(r string) bool { return strings.EqualFold(r, rule) })
}

// Suppresses reports whether diagnostics of rule about sym are withheld.
// Entries for the symbol, its definition and its containing types apply.
func (s *Settings) Suppresses(sym host.Symbol, rule string) bool {
	if len(s.index) == 0 || sym == nil {
		return false
	}

	for _, target := range symbols.SuppressionTargets(sym) {
		if s.Suppressed(target, rule) {
			return true
		}
	}

	return false
}

// Suppress returns new settings with rule suppressed for target.
// The receiver is not modified.
func (s *Settings) Suppress(target, rule string) *Settings {
	if s.Suppressed(target, rule) {
		return s
	}

	suppressions := s.Suppressions()

	if i := slices.IndexFunc(suppressions, func(sup Suppression) bool { return sup.Target == target }); i >= 0 {
		suppressions[i].Rules = append(suppressions[i].Rules, rule)
	} else {
		suppressions = append(suppressions, Suppression{Target: target, Rules: []string{rule}})
	}

	return newSettings(suppressions)
}

// Marshal encodes the settings as indented JSON.
func (s *Settings) Marshal() ([]byte, error) {
	doc := document{Suppressions: s.suppressions}
	if doc.Suppressions == nil {
		doc.Suppressions = []Suppression{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("can't encode settings: %w", err)
	}

	return append(data, '\n'), nil
}

// IsSettingsFile reports whether path names a settings file.
func IsSettingsFile(path string) bool {
	base := path[strings.LastIndexAny(path, `/\`)+1:]

	return strings.EqualFold(base, FileName)
}
