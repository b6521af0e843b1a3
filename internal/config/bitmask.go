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

package config

import (
	"iter"
	"math/bits"
)

// Flag is the underlying type of a single-bit option.
type Flag interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask is a set of single-bit flags, used for enabled rules and behavior options.
//
// The zero value has all flags disabled.
type BitMask[T Flag] struct {
	value T
}

// NewBitMask returns a [BitMask] with the given flags enabled.
func NewBitMask[T Flag](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, f := range flags {
		b.value |= f
	}

	return b
}

// Set enables or disables flags.
func (b *BitMask[T]) Set(flags T, on bool) {
	if on {
		b.value |= flags
		return
	}

	b.value &^= flags
}

// Enabled reports whether any of the given flags is enabled.
func (b BitMask[T]) Enabled(flags T) bool {
	return b.value&flags != 0
}

// Len returns the number of enabled flags.
func (b BitMask[T]) Len() int {
	return bits.OnesCount64(uint64(b.value))
}

// Each yields the enabled flags one bit at a time, lowest first.
func (b BitMask[T]) Each() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := b.value; v != 0; v &= v - 1 {
			if !yield(v & -v) {
				return
			}
		}
	}
}
