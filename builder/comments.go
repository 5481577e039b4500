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

package builder

import "github.com/textlayout/textlayout/chunk"

// WriteComments implements the comment-interleaving algorithm of spec
// §4.2.1. comments is every comment appearing between the last token and
// the next; linesBeforeToken is the number of source newlines between the
// last comment (or token, if there were none) and the next token.
// nextSuppressesSpace should be true when the next token is one of
// ) ] } , ; or end of file, per step 4 of the algorithm.
func (b *Builder) WriteComments(comments []chunk.SourceComment, linesBeforeToken int, nextSuppressesSpace bool) {
	if len(comments) == 0 {
		b.PreserveNewlines(linesBeforeToken)
		return
	}

	b.absorbBlankLine(comments, linesBeforeToken)
	linesBeforeToken = b.pullNewlineBeforeInlineRun(comments, linesBeforeToken)

	lastGapSplit := false
	for i, c := range comments {
		b.PreserveNewlines(c.LinesBefore)

		spaceSuppressed := b.pendingWS == chunk.PendingSpace
		if spaceSuppressed {
			b.pendingWS = chunk.PendingNone
		}
		b.flushPendingWhitespace()

		if c.LinesBefore == 0 {
			b.writeTrailingComment(c)
		} else {
			b.applySplit(false, isDoubleIfOver1(c.LinesBefore), c.FlushLeft, nil)
			b.current.AppendText(c.Text)
		}

		var linesAfter int
		if i+1 < len(comments) {
			linesAfter = comments[i+1].LinesBefore
		} else {
			linesAfter = linesBeforeToken
		}
		if c.HasNewline() && linesAfter < 1 {
			linesAfter = 1
		}

		lastGapSplit = linesAfter > 0
		if lastGapSplit {
			b.applySplit(false, isDoubleIfOver1(linesAfter), false, nil)
		}
	}

	if !lastGapSplit && !nextSuppressesSpace {
		b.pendingWS = chunk.PendingSpace
	}

	b.PreserveNewlines(linesBeforeToken)
}

// absorbBlankLine implements step 1: a pending blank line is treated as
// already spent elsewhere once the surrounding gaps show their own blank
// line, so it isn't doubled up.
func (b *Builder) absorbBlankLine(comments []chunk.SourceComment, linesBeforeToken int) {
	if b.pendingWS != chunk.PendingTwoNewlines || comments[0].LinesBefore >= 2 {
		return
	}
	blankElsewhere := linesBeforeToken > 1
	for _, c := range comments {
		if c.LinesBefore > 1 {
			blankElsewhere = true
		}
	}
	if blankElsewhere {
		b.pendingWS = chunk.PendingNewline
	}
}

// pullNewlineBeforeInlineRun implements step 2: when a run of purely
// inline comments sits directly against the previous token, a newline the
// pending whitespace was going to emit after the run is instead emitted
// before it.
func (b *Builder) pullNewlineBeforeInlineRun(comments []chunk.SourceComment, linesBeforeToken int) int {
	if linesBeforeToken != 0 {
		return linesBeforeToken
	}
	allInline := true
	for _, c := range comments {
		if !c.IsInline {
			allInline = false
			break
		}
	}
	if !allInline {
		return linesBeforeToken
	}
	minLines, demands := minLinesDemanded(b.pendingWS)
	if !demands {
		return linesBeforeToken
	}
	comments[0].LinesBefore = minLines
	return 1
}

func minLinesDemanded(p chunk.PendingWhitespace) (min int, demands bool) {
	switch p {
	case chunk.PendingNewline, chunk.PendingNestedNewline, chunk.PendingNewlineFlushLeft:
		return 1, true
	case chunk.PendingTwoNewlines:
		return 2, true
	case chunk.PendingOneOrTwoNewlines:
		return 1, true
	default:
		return 0, false
	}
}

// writeTrailingComment implements step 3d: a comment with no blank line
// before it is adhered to the preceding text when possible.
func (b *Builder) writeTrailingComment(c chunk.SourceComment) {
	b.reAdhereLastSplit(c)

	preceding := b.current.Text()
	space := c.IsLineComment || !endsWithOpenGrouping(preceding)
	if space && preceding != "" {
		b.current.AppendText(" ")
	}
	b.current.AppendText(c.Text)
}

// reAdhereLastSplit implements the "re-allow text on that chunk" clause:
// if the current chunk is still empty because the previous chunk just
// finalized on a split, and that previous chunk's text doesn't end with
// an open grouping token, and c is not a multi-line comment, the split is
// undone so c can be appended to the previous chunk's text instead of
// starting a new line.
func (b *Builder) reAdhereLastSplit(c chunk.SourceComment) {
	if b.current.Text() != "" || len(b.chunks) == 0 || c.HasNewline() {
		return
	}
	prev := b.chunks[len(b.chunks)-1]
	if endsWithOpenGrouping(prev.Text()) {
		return
	}
	b.chunks = b.chunks[:len(b.chunks)-1]
	prev.HasSplit = false
	prev.Split = chunk.SplitInfo{}
	b.current = prev
}

func isDoubleIfOver1(n int) chunk.TriState {
	if n > 1 {
		return chunk.TriDouble
	}
	return chunk.TriSingle
}
