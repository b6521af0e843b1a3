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

package settings

import (
	"context"
	"hash/fnv"
	"log/slog"
	"runtime/trace"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"fillmore-labs.com/subanalyzers/host"
)

// Find returns the settings file among the additional files, or nil.
func Find(files []host.AdditionalFile) host.AdditionalFile {
	for _, f := range files {
		if IsSettingsFile(f.Path()) {
			return f
		}
	}

	return nil
}

// Load reads and parses the settings file among the additional files.
// Missing, unreadable or malformed files result in [Default] settings.
func Load(ctx context.Context, logger *slog.Logger, files []host.AdditionalFile) *Settings {
	defer trace.StartRegion(ctx, "LoadSettings").End()

	f := Find(files)
	if f == nil {
		return Default()
	}

	data, err := f.Content()
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "Can't read settings file", slog.String("path", f.Path()), slog.Any("error", err))

		return Default()
	}

	return parseOrDefault(ctx, logger, f.Path(), data)
}

func parseOrDefault(ctx context.Context, logger *slog.Logger, path string, data []byte) *Settings {
	s, err := Parse(data)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "Ignoring malformed settings file", slog.String("path", path), slog.Any("error", err))

		return Default()
	}

	return s
}

// Cache reuses parsed settings across compilations while the settings file
// is unchanged. It is safe for concurrent use.
type Cache struct {
	group singleflight.Group

	mu    sync.Mutex
	key   string
	value *Settings
}

// Load returns the settings for a compilation's additional files, parsing
// the settings file only when its path or content changed.
func (c *Cache) Load(ctx context.Context, logger *slog.Logger, files []host.AdditionalFile) *Settings {
	defer trace.StartRegion(ctx, "CachedSettings").End()

	f := Find(files)
	if f == nil {
		return Default()
	}

	path := f.Path()

	data, err := f.Content()
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "Can't read settings file", slog.String("path", path), slog.Any("error", err))

		return Default()
	}

	key := fingerprint(path, data)

	c.mu.Lock()
	if c.key == key && c.value != nil {
		s := c.value
		c.mu.Unlock()

		return s
	}
	c.mu.Unlock()

	v, _, _ := c.group.Do(key, func() (any, error) {
		s := parseOrDefault(ctx, logger, path, data)

		c.mu.Lock()
		c.key, c.value = key, s
		c.mu.Unlock()

		return s, nil
	})

	return v.(*Settings)
}

func fingerprint(path string, data []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(data)

	return path + "#" + strconv.FormatUint(h.Sum64(), 16)
}
