// Copyright 2026 The Textlayout Authors.
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

package cliconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textlayout/textlayout/internal/cliconfig"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := cliconfig.DefaultConfig()
	require.Equal(t, 80, cfg.Format.PageWidth)
	require.Equal(t, 0, cfg.Format.Indent)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := cliconfig.Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	require.Equal(t, cliconfig.DefaultConfig(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "textlayout.yaml")
	contents := "format:\n  page_width: 100\n  indent: 2\nlogging:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := cliconfig.Load(path)
	require.NoError(t, err)
	require.Equal(t, 100, cfg.Format.PageWidth)
	require.Equal(t, 2, cfg.Format.Indent)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestValidate_NormalizesInvalidValues(t *testing.T) {
	t.Parallel()

	cfg := &cliconfig.Config{
		Format: cliconfig.FormatConfig{PageWidth: -5, Indent: -1},
		Logging: cliconfig.LoggingConfig{
			Level:  "verbose",
			Format: "xml",
		},
	}
	cfg.Validate()

	require.Equal(t, 80, cfg.Format.PageWidth)
	require.Equal(t, 0, cfg.Format.Indent)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
}
