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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `
[allocator]
name = "vecinspect"
max-bytes = 1048576
default-initial-capacity = 256

[logging]
level = "debug"
path = "vecinspect.log"
max-size-mb = 10
`

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "vecinspect", cfg.Allocator.Name)
	require.EqualValues(t, 1048576, cfg.Allocator.MaxBytes)
	require.Equal(t, 256, cfg.Allocator.DefaultInitialCapacity)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestDefaultIsUsable(t *testing.T) {
	cfg := Default()
	require.Equal(t, "default", cfg.Allocator.Name)
	require.Equal(t, 4096, cfg.Allocator.DefaultInitialCapacity)
}
