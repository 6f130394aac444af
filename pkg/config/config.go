// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the allocator/runtime settings this repo's binaries
// are parameterized by, TOML-decoded exactly the way
// matrixorigin/matrixone's cmd/db-server/main.go loads its server config
// via toml.DecodeFile.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/edrya/arrow/pkg/common/moerr"
)

// Config is the top-level decoded document.
type Config struct {
	Allocator AllocatorConfig `toml:"allocator"`
	Logging   LoggingConfig   `toml:"logging"`
}

// AllocatorConfig bounds the mpool the vector core runs against.
type AllocatorConfig struct {
	// Name identifies the pool in mpool's registry.
	Name string `toml:"name"`
	// MaxBytes is the hard cap passed to mpool.NewMPool; 0 means unlimited.
	MaxBytes int64 `toml:"max-bytes"`
	// DefaultInitialCapacity is the capacity a binary passes to
	// AllocateNewCapacity for the vectors it builds (cmd/vecinspect does).
	// It does not change vector.DefaultInitialCapacity, which AllocateNew uses.
	DefaultInitialCapacity int `toml:"default-initial-capacity"`
}

// LoggingConfig mirrors logutil.Options, decoded from TOML rather than
// constructed in code.
type LoggingConfig struct {
	Level      string `toml:"level"`
	Path       string `toml:"path"`
	MaxSizeMB  int    `toml:"max-size-mb"`
	MaxBackups int    `toml:"max-backups"`
	MaxAgeDays int    `toml:"max-age-days"`
}

// Default returns the configuration this repo runs with when no TOML file
// is supplied.
func Default() Config {
	return Config{
		Allocator: AllocatorConfig{
			Name:                   "default",
			MaxBytes:               0,
			DefaultInitialCapacity: 4096,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load decodes path into a Config seeded from Default(), so a partial file
// only needs to name the fields it overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, moerr.NewInvalidArgument("config path", path).Wrap(err)
	}
	return cfg, nil
}
