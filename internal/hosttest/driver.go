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

package hosttest

import (
	"cmp"
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/subanalyzers/host"
	"fillmore-labs.com/subanalyzers/internal/fix"
)

// Run runs an analyzer on a compilation the way a compiler host does: it
// initializes the analyzer, runs the compilation start actions and then the
// node actions for all source files concurrently.
//
// The diagnostics are returned sorted by position and rule.
func Run(ctx context.Context, a host.Analyzer, c *Compilation) ([]host.Diagnostic, error) {
	var r registrar
	a.Initialize(&r)

	actions := make(map[host.Kind][]host.NodeAction)

	for _, start := range r.starts {
		start(host.NewCompilationStart(ctx, c, func(action host.NodeAction, kinds []host.Kind) {
			for _, kind := range kinds {
				actions[kind] = append(actions[kind], action)
			}
		}))
	}

	var (
		mu          sync.Mutex
		diagnostics []host.Diagnostic
	)

	report := func(d host.Diagnostic) {
		mu.Lock()
		defer mu.Unlock()

		diagnostics = append(diagnostics, d)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, f := range c.files {
		g.Go(func() error {
			var err error

			f.root.walk(func(n *Node) {
				if err != nil {
					return
				}

				if err = ctx.Err(); err != nil {
					return
				}

				for _, action := range actions[n.kind] {
					action(&host.NodePass{Context: ctx, Node: n, Model: f, Compilation: c, Report: report})
				}
			})

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyzer %s: %w", a.Name(), err)
	}

	slices.SortStableFunc(diagnostics, func(x, y host.Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Pos, y.Pos),
			cmp.Compare(x.Category, y.Category),
		)
	})

	return diagnostics, nil
}

type registrar struct {
	starts []func(*host.CompilationStart)
}

func (r *registrar) RegisterCompilationStart(action func(*host.CompilationStart)) {
	r.starts = append(r.starts, action)
}

// ApplyFix applies a suggested fix and returns the changed source file.
func (c *Compilation) ApplyFix(sf analysis.SuggestedFix) (string, error) {
	if len(sf.TextEdits) == 0 {
		return "", fmt.Errorf("fix %q without edits", sf.Message)
	}

	pos := sf.TextEdits[0].Pos

	for _, f := range c.files {
		h := f.handle
		if int(pos) < h.Base() || int(pos) > h.Base()+h.Size() {
			continue
		}

		out, err := fix.Apply(h, f.Source(), sf.TextEdits)
		if err != nil {
			return "", err
		}

		return string(out), nil
	}

	return "", fmt.Errorf("fix %q outside of source files", sf.Message)
}
