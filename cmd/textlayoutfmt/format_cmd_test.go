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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/textlayout/textlayout/internal/cliconfig"
)

func TestFormatOptions_ConvertsCliconfigToFormatOptions(t *testing.T) {
	cfg := &cliconfig.Config{Format: cliconfig.FormatConfig{PageWidth: 100, Indent: 4}}

	opts := formatOptions(cfg)
	require.Equal(t, 100, opts.PageWidth)
	require.Equal(t, 4, opts.Indent)
	require.True(t, opts.IsCompilationUnit)
}

func TestRunFormat_RewritesFileInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.demo")
	require.NoError(t, os.WriteFile(path, []byte("@a\n\n\nclass A {}"), 0o644))

	cfg := cliconfig.DefaultConfig()
	logger := zaptest.NewLogger(t)

	require.NoError(t, runFormat(cfg, logger, []string{path}, true))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "@a\nclass A {}\n", string(got))
}
