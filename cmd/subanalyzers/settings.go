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

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fillmore-labs.com/subanalyzers/internal/rules"
	"fillmore-labs.com/subanalyzers/internal/settings"
)

var (
	errInvalidSettings = errors.New("invalid settings")
	errUnknownRule     = errors.New("unknown rule")
)

func newSettingsCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Maintain " + settings.FileName + " suppression files",
	}

	cmd.AddCommand(newSettingsCheckCmd(logger))
	cmd.AddCommand(newSettingsSuppressCmd(logger))

	return cmd
}

func newSettingsCheckCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a suppression settings file",
		Long: `Validate a suppression settings file.

The file must be valid JSON, name known rules and use symbol identifiers
with a kind prefix like "M:", "P:" or "T:". The analyzers ignore malformed
files silently, so checking them catches mistakes early.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if !settings.IsSettingsFile(path) {
				logger.LogAttrs(cmd.Context(), slog.LevelWarn, "File will not be picked up by the analyzers",
					slog.String("path", path), slog.String("expected", settings.FileName))
			}

			s, err := readSettings(path)
			if err != nil {
				return err
			}

			problems := check(s)
			for _, p := range problems {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, p)
			}

			if len(problems) > 0 {
				return fmt.Errorf("%s: %d problems: %w", path, len(problems), errInvalidSettings)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d suppressions\n", path, len(s.Suppressions()))

			return nil
		},
	}
}

func newSettingsSuppressCmd(logger *slog.Logger) *cobra.Command {
	var target, rule string

	cmd := &cobra.Command{
		Use:   "suppress FILE",
		Short: "Add a suppression to a settings file",
		Long: `Add a suppression entry for a symbol and rule, creating the file when missing.

Examples:
  subanalyzers settings suppress nsubstitute.json --target M:MyNamespace.Foo.Bar --rule NS1000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			r := rules.ByID(strings.ToUpper(rule))
			if r == nil {
				return fmt.Errorf("%w: %q", errUnknownRule, rule)
			}

			s, err := readSettings(path)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				logger.LogAttrs(cmd.Context(), slog.LevelDebug, "Creating settings file", slog.String("path", path))

				s = settings.Default()

			case err != nil:
				return err
			}

			data, err := s.Suppress(target, r.ID).Marshal()
			if err != nil {
				return err
			}

			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("can't write settings: %w", err)
			}

			logger.LogAttrs(cmd.Context(), slog.LevelDebug, "Suppression added",
				slog.String("path", filepath.Base(path)), slog.String("target", target), slog.String("rule", r.ID))

			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Symbol identifier, e.g. M:MyNamespace.Foo.Bar")
	cmd.Flags().StringVar(&rule, "rule", "", "Rule identifier, e.g. NS1000")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("rule")

	return cmd
}

func readSettings(path string) (*settings.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read settings: %w", err)
	}

	s, err := settings.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// check returns the problems of the settings.
func check(s *settings.Settings) []string {
	var problems []string

	for i, sup := range s.Suppressions() {
		if len(sup.Target) < 3 || sup.Target[1] != ':' {
			problems = append(problems, fmt.Sprintf("suppression %d: target %q lacks a kind prefix", i+1, sup.Target))
		}

		if len(sup.Rules) == 0 {
			problems = append(problems, fmt.Sprintf("suppression %d: no rules", i+1))
		}

		for _, id := range sup.Rules {
			if rules.ByID(strings.ToUpper(id)) == nil {
				problems = append(problems, fmt.Sprintf("suppression %d: %v %q", i+1, errUnknownRule, id))
			}
		}
	}

	return problems
}
