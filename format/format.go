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

package format

import (
	"github.com/textlayout/textlayout/builder"
	"github.com/textlayout/textlayout/chunk"
	"github.com/textlayout/textlayout/layout"
	"github.com/textlayout/textlayout/visitor"
)

// Formatter runs a visitor.Events implementation through the chunk-and-
// rule engine. It carries no state between calls; a single Formatter can
// format any number of documents concurrently, since each call builds its
// own Builder and rule.Graph.
type Formatter struct{}

// New returns a ready-to-use Formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format drives events through a fresh Builder, solves the resulting
// Document with opts, and returns the rendered Result.
//
// As spec §7 requires, malformed input from events (unbalanced rule or
// span scopes, a selection mark on a chunk that never existed, emitting
// an ambiguous pending whitespace without having called PreserveNewlines)
// is a programmer error: it panics rather than returning an error, and no
// partial Result is produced. Format does not recover these panics — the
// caller's own trusted construction of events is expected to never
// trigger one, matching the teacher's PrintFile/Print, which likewise let
// printer assertions propagate uncaught.
func Format(opts Options, uri string, events visitor.Events) Result {
	opts = opts.withDefaults()

	b := builder.New()
	events.Visit(b)
	doc := b.End()

	text, selStart, selLength := layout.Render(doc, opts.layoutOptions())

	result := Result{
		Text:              text,
		IsCompilationUnit: opts.IsCompilationUnit,
	}
	if uri != "" {
		result.URI = &uri
	}
	if selStart != chunk.NoSelection {
		result.SelectionStart = &selStart
		result.SelectionLength = &selLength
	}
	return result
}

// Format is a method wrapper around the package-level Format, for callers
// that already hold a Formatter (e.g. one threaded through a CLI command
// for uniformity with other stateful collaborators).
func (f *Formatter) Format(opts Options, uri string, events visitor.Events) Result {
	return Format(opts, uri, events)
}
