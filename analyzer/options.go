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
	"log/slog"

	"fillmore-labs.com/subanalyzers/internal/analyze"
	"fillmore-labs.com/subanalyzers/internal/config"
	"fillmore-labs.com/subanalyzers/internal/rules"
	"fillmore-labs.com/subanalyzers/internal/settings"
)

// Option configures specific behavior of a [New] substitution analyzer.
type Option interface {
	apply(o *analyze.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *analyze.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithRule is an [Option] to enable or disable a rule by identifier, e.g. "NS1000".
// Unknown identifiers are ignored.
func WithRule(id string, enabled bool) Option { return ruleOption{id: id, enabled: enabled} }

type ruleOption struct {
	id      string
	enabled bool
}

func (o ruleOption) apply(r *analyze.Options) {
	for _, e := range rules.All {
		if e.Rule.ID == o.id {
			r.Rules.Set(e.Flag, o.enabled)
		}
	}
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.id, o.enabled)
}

// WithFixes is an [Option] to configure whether code fixes are attached to diagnostics.
func WithFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *analyze.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("fixes", o.fixes)
}

// WithIgnoreSettings is an [Option] to configure whether the suppression settings file is ignored.
func WithIgnoreSettings(ignore bool) Option { return ignoreSettingsOption{ignore: ignore} }

type ignoreSettingsOption struct{ ignore bool }

func (o ignoreSettingsOption) apply(r *analyze.Options) {
	r.Behavior.Set(config.IgnoreSettings, o.ignore)
}

func (o ignoreSettingsOption) LogAttr() slog.Attr {
	return slog.Bool("ignore-settings", o.ignore)
}

// WithSharedSettings is an [Option] to reuse parsed suppression settings
// across compilations while the settings file is unchanged.
func WithSharedSettings(shared bool) Option { return sharedSettingsOption{shared: shared} }

type sharedSettingsOption struct{ shared bool }

func (o sharedSettingsOption) apply(r *analyze.Options) {
	if !o.shared {
		r.Cache = nil

		return
	}

	if r.Cache == nil {
		r.Cache = &settings.Cache{}
	}
}

func (o sharedSettingsOption) LogAttr() slog.Attr {
	return slog.Bool("shared-settings", o.shared)
}

// WithLogger is an [Option] to set the logger for debug output.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *analyze.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
