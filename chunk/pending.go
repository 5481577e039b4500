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

// PendingWhitespace is the whitespace state the chunk builder maintains
// between tokens, not yet realized into a chunk. Most values describe
// concrete whitespace; the last two are ambiguous and must be resolved by
// PreserveNewlines before a chunk can be emitted for them.
type PendingWhitespace int

const (
	PendingNone PendingWhitespace = iota
	PendingSpace
	PendingNewline
	PendingNestedNewline
	PendingNewlineFlushLeft
	PendingTwoNewlines
	PendingSpaceOrNewline   // ambiguous: one source newline, or none.
	PendingOneOrTwoNewlines // ambiguous: one or two source newlines.
)

// Ambiguous reports whether p must be resolved via PreserveNewlines before
// it can be emitted.
func (p PendingWhitespace) Ambiguous() bool {
	return p == PendingSpaceOrNewline || p == PendingOneOrTwoNewlines
}

// Resolve collapses an ambiguous pending whitespace given the number of
// newlines actually observed in the source between the two tokens. It
// panics if p is not ambiguous, matching the "emission of an ambiguous
// pending whitespace without prior PreserveNewlines" programmer error in
// the engine's error-handling design.
func (p PendingWhitespace) Resolve(sourceNewlines int) PendingWhitespace {
	switch p {
	case PendingSpaceOrNewline:
		if sourceNewlines > 0 {
			return PendingNewline
		}
		return PendingSpace
	case PendingOneOrTwoNewlines:
		if sourceNewlines > 1 {
			return PendingTwoNewlines
		}
		return PendingNewline
	default:
		panic("chunk: Resolve called on a non-ambiguous PendingWhitespace")
	}
}
