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
	"strconv"

	"fillmore-labs.com/subanalyzers/internal/config"
)

// maskFlag is a boolean [flag.Value] switching flags of a shared bit mask.
//
// A zero maskFlag reports false, which [flag.FlagSet.PrintDefaults] relies on.
type maskFlag[T config.Flag] struct {
	mask  *config.BitMask[T]
	flags T
}

// Set implements [flag.Value].
func (f maskFlag[T]) Set(s string) error {
	on, err := parseSwitch(s)
	if err != nil {
		return err
	}

	f.mask.Set(f.flags, on)

	return nil
}

// String implements [flag.Value].
func (f maskFlag[T]) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f maskFlag[T]) Get() any { return f.enabled() }

// IsBoolFlag marks the flag as usable without a value.
func (f maskFlag[T]) IsBoolFlag() bool { return true }

func (f maskFlag[T]) enabled() bool {
	return f.mask != nil && f.mask.Enabled(f.flags)
}

// parseSwitch accepts the [strconv.ParseBool] spellings and "on" / "off".
func parseSwitch(s string) (bool, error) {
	switch s {
	case "on", "On", "ON":
		return true, nil

	case "off", "Off", "OFF":
		return false, nil
	}

	return strconv.ParseBool(s)
}
