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

package chunk

// SourceComment is a single comment lifted from the original source text,
// along with enough context for the chunk builder to place it relative to
// surrounding tokens.
type SourceComment struct {
	Text string

	// LinesBefore is the number of source newlines between the previous
	// token (or comment) and this one.
	LinesBefore int

	IsLineComment bool // "// ..." as opposed to "/* ... */".

	// IsInline means this is a block comment with no newlines before or
	// inside it, so it can be adhered to the preceding text on the same
	// line rather than forcing a split.
	IsInline bool

	// FlushLeft means this comment began at column 0 in the source; the
	// split introduced before it is flush-left too, so the comment itself
	// starts at column 0.
	FlushLeft bool

	// SelectionStart/SelectionEnd are offsets into Text marking an
	// editor selection boundary inside this comment, or -1 if unset.
	SelectionStart int
	SelectionEnd   int
}

// HasNewline reports whether the comment's own text spans multiple lines,
// which forces a newline after it even when the next token would
// otherwise follow on the same line (block comments containing "\n").
func (c SourceComment) HasNewline() bool {
	for _, r := range c.Text {
		if r == '\n' {
			return true
		}
	}
	return false
}
