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

// Package layout implements the Line Writer/Splitter of spec §4.3: it
// takes a finished builder.Document and renders it to text, choosing a
// value for every free rule by a constrained, memoized search that
// minimizes overflow, rule cost, and span cost.
package layout

// Options configures rendering, per the "Configuration" clause of spec
// §6.
type Options struct {
	// PageWidth is the target column limit.
	PageWidth int

	// Indent is the extra indentation, in spaces, of every line that
	// begins after a split. The first line is not indented.
	Indent int

	// IsCompilationUnit controls trailing-newline policy: a whole
	// compilation unit always ends with exactly one trailing newline.
	IsCompilationUnit bool

	// OverflowCharCost weights every column past PageWidth. It defaults
	// to a value large enough that the solver always prefers a layout
	// that fits over any combination of rule/span costs, so overflow is
	// only ever accepted when nothing fits.
	OverflowCharCost int
}

// DefaultOptions returns the engine's default rendering configuration.
func DefaultOptions() Options {
	return Options{
		PageWidth:         80,
		Indent:            0,
		IsCompilationUnit: true,
		OverflowCharCost:  1_000_000,
	}
}

func (o Options) withDefaults() Options {
	if o.PageWidth == 0 {
		o.PageWidth = 80
	}
	if o.OverflowCharCost == 0 {
		o.OverflowCharCost = 1_000_000
	}
	return o
}
