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
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/textlayout/textlayout/demo"
	"github.com/textlayout/textlayout/format"
	"github.com/textlayout/textlayout/internal/cliconfig"
)

var writeInPlace bool

func formatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <path>...",
		Short: "Format one or more demo-language source files",
		Long: `Format expands every argument as a glob, formats each matched file
concurrently using its own Builder, and either prints the result to
stdout or rewrites the file in place.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfigAndLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			return runFormat(cfg, logger, args, writeInPlace)
		},
	}

	cmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "Write the formatted output back to each file instead of stdout")

	return cmd
}

// formatOptions converts the CLI's persisted config into format.Options.
func formatOptions(cfg *cliconfig.Config) format.Options {
	return format.Options{
		PageWidth:         cfg.Format.PageWidth,
		Indent:            cfg.Format.Indent,
		IsCompilationUnit: true,
	}
}

// formatFile reads, formats, and (per write) either rewrites the file or
// prints its formatted text to stdout. Each call builds its own demo.Events and
// Builder, so concurrent calls across distinct files never share state.
func formatFile(cfg *cliconfig.Config, logger *zap.Logger, path string, write bool) error {
	sessionID := uuid.New().String()
	log := logger.With(zap.String("session_id", sessionID), zap.String("file", path))

	source, err := os.ReadFile(path)
	if err != nil {
		log.Error("failed to read file", zap.Error(err))
		return fmt.Errorf("reading %s: %w", path, err)
	}

	result := demo.Format(string(source), formatOptions(cfg))

	if write {
		if result.Text == string(source) {
			log.Debug("already formatted")
			return nil
		}
		if err := os.WriteFile(path, []byte(result.Text), 0o644); err != nil {
			log.Error("failed to write formatted file", zap.Error(err))
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.Info("formatted file")
		return nil
	}

	fmt.Print(result.Text)
	return nil
}

// runFormat formats every resolved file concurrently, one goroutine per
// file via errgroup, returning the first error encountered (if any)
// after all goroutines have finished.
func runFormat(cfg *cliconfig.Config, logger *zap.Logger, patterns []string, write bool) error {
	files, err := resolveFiles(patterns)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, path := range files {
		g.Go(func() error {
			return formatFile(cfg, logger, path, write)
		})
	}

	return g.Wait()
}
