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

// Package format is the public entry point: it drives a visitor.Events
// implementation through a fresh builder.Builder, then hands the finished
// Document to the layout engine and packages the rendered text as a
// Result.
package format

import "github.com/textlayout/textlayout/layout"

// Options controls formatting behavior. It mirrors layout.Options but
// keeps this package's public surface independent of the layout package's
// internals, the way the teacher's printer.Options is a distinct type
// from dom.Options even though one is a straight conversion of the other.
type Options struct {
	// PageWidth is the maximum number of columns to render before the
	// solver is forced to split further. Zero means the default of 80.
	PageWidth int

	// Indent is the number of columns every line that begins after a
	// split is additionally indented by, on top of whatever the builder's
	// own nesting computed. The first line is not indented. Used to
	// format a fragment that will be spliced into an already-indented
	// context.
	Indent int

	// IsCompilationUnit marks the formatted text as a whole file rather
	// than a fragment: the renderer guarantees a single trailing newline
	// when set, and leaves the text exactly as rendered otherwise.
	IsCompilationUnit bool
}

// DefaultOptions returns the Options used when a caller supplies none.
func DefaultOptions() Options {
	return Options{
		PageWidth:         80,
		IsCompilationUnit: true,
	}
}

// withDefaults returns a copy of opts with zero-valued fields replaced by
// their defaults.
func (opts Options) withDefaults() Options {
	if opts.PageWidth == 0 {
		opts.PageWidth = 80
	}
	return opts
}

// layoutOptions converts opts to the layout package's Options.
func (opts Options) layoutOptions() layout.Options {
	return layout.Options{
		PageWidth:         opts.PageWidth,
		Indent:            opts.Indent,
		IsCompilationUnit: opts.IsCompilationUnit,
	}
}
