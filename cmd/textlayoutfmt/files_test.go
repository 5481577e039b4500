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
)

func TestResolveFiles_GlobExpandsAndDeduplicates(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.demo", "b.demo", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(""), 0o644))
	}

	files, err := resolveFiles([]string{
		filepath.Join(dir, "*.demo"),
		filepath.Join(dir, "a.demo"),
	})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(dir, "a.demo"),
		filepath.Join(dir, "b.demo"),
	}, files)
}

func TestResolveFiles_NoMatchIsAnError(t *testing.T) {
	dir := t.TempDir()

	_, err := resolveFiles([]string{filepath.Join(dir, "*.nope")})
	require.Error(t, err)
}

func TestResolveFiles_InvalidPatternIsAnError(t *testing.T) {
	_, err := resolveFiles([]string{"["})
	require.Error(t, err)
}
