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

package fix

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// ErrConflict is returned when text edits overlap.
var ErrConflict = errors.New("conflicting edits")

// Apply applies text edits to the source of a file.
func Apply(file *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	edits = slices.SortedFunc(slices.Values(edits), func(a, b analysis.TextEdit) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	var (
		out  bytes.Buffer
		last int
	)

	out.Grow(len(src))

	for _, e := range edits {
		start, end, err := offsets(file, e)
		if err != nil {
			return nil, err
		}

		if start < last || end > len(src) {
			return nil, fmt.Errorf("edit at offset %d: %w", start, ErrConflict)
		}

		out.Write(src[last:start]) // ignore error
		out.Write(e.NewText)       // ignore error
		last = end
	}

	out.Write(src[last:]) // ignore error

	return out.Bytes(), nil
}

func offsets(file *token.File, e analysis.TextEdit) (start, end int, err error) {
	base, size := file.Base(), file.Size()

	if int(e.Pos) < base || int(e.End) > base+size || e.End < e.Pos {
		return 0, 0, fmt.Errorf("edit [%d, %d) outside of %s", e.Pos, e.End, file.Name())
	}

	return file.Offset(e.Pos), file.Offset(e.End), nil
}
