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
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/textlayout/textlayout/demo"
	"github.com/textlayout/textlayout/internal/cliconfig"
)

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <path>...",
		Short: "Show what format would change, without writing anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfigAndLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			return runDiff(cfg, logger, args)
		},
	}
}

// diffFile reports the unified diff between a file's current contents
// and its formatted form, or "" if formatting would change nothing.
func diffFile(cfg *cliconfig.Config, logger *zap.Logger, path string) (string, error) {
	sessionID := uuid.New().String()
	log := logger.With(zap.String("session_id", sessionID), zap.String("file", path))

	source, err := os.ReadFile(path)
	if err != nil {
		log.Error("failed to read file", zap.Error(err))
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	result := demo.Format(string(source), formatOptions(cfg))
	if result.Text == string(source) {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(source)),
		B:        difflib.SplitLines(result.Text),
		FromFile: path,
		ToFile:   path + " (formatted)",
		Context:  2,
	})
	if err != nil {
		log.Error("failed to compute diff", zap.Error(err))
		return "", fmt.Errorf("diffing %s: %w", path, err)
	}

	return diff, nil
}

// runDiff computes every file's diff concurrently, then prints the
// non-empty ones in resolved-file order once all have finished.
func runDiff(cfg *cliconfig.Config, logger *zap.Logger, patterns []string) error {
	files, err := resolveFiles(patterns)
	if err != nil {
		return err
	}

	diffs := make([]string, len(files))
	var g errgroup.Group
	for i, path := range files {
		g.Go(func() error {
			diff, err := diffFile(cfg, logger, path)
			if err != nil {
				return err
			}
			diffs[i] = diff
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, diff := range diffs {
		if diff != "" {
			fmt.Print(diff)
		}
	}
	return nil
}
