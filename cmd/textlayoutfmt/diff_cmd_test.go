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

func TestDiffFile_EmptyWhenAlreadyFormatted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.demo")
	require.NoError(t, os.WriteFile(path, []byte("class A {}\n"), 0o644))

	cfg := cliconfig.DefaultConfig()
	logger := zaptest.NewLogger(t)

	diff, err := diffFile(cfg, logger, path)
	require.NoError(t, err)
	require.Empty(t, diff)
}

func TestDiffFile_ReportsChangesWhenUnformatted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.demo")
	require.NoError(t, os.WriteFile(path, []byte("class   A{}"), 0o644))

	cfg := cliconfig.DefaultConfig()
	logger := zaptest.NewLogger(t)

	diff, err := diffFile(cfg, logger, path)
	require.NoError(t, err)
	require.NotEmpty(t, diff)
}
