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
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fillmore-labs.com/subanalyzers/internal/rules"
)

type ruleInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	HelpURL  string `json:"helpUrl"`
}

func newRulesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the diagnostic rules",
		Long: `List the diagnostic rules reported by the analyzers.

Examples:
  subanalyzers rules          # Table of rules
  subanalyzers rules --json   # JSON output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := make([]ruleInfo, 0, len(rules.All))
			for _, e := range rules.All {
				r := e.Rule
				infos = append(infos, ruleInfo{
					ID:       r.ID,
					Title:    r.Title,
					Category: r.Category,
					Severity: r.Severity.String(),
					HelpURL:  r.HelpURL,
				})
			}

			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")

				return enc.Encode(infos)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tSEVERITY\tCATEGORY\tTITLE")

			for _, info := range infos {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.ID, info.Severity, info.Category, info.Title)
			}

			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
