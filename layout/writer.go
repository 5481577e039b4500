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

package layout

import (
	"strings"

	"github.com/textlayout/textlayout/builder"
	"github.com/textlayout/textlayout/chunk"
	"github.com/textlayout/textlayout/rule"
)

// Render runs the solver of spec §4.3 over doc, partition by partition,
// and returns the finished text plus the final selection range
// (chunk.NoSelection offsets if doc carried no selection marks).
//
// Selection remapping only covers marks set at the top level of doc:
// nested block chunks are rendered but their own selection offsets (if
// any) are not folded back in. No visitor shipped with this engine
// places a selection mark inside a block argument.
func Render(doc *builder.Document, opts Options) (text string, selectionStart, selectionLength int) {
	opts = opts.withDefaults()

	r := &renderer{graph: doc.Graph, opts: opts}
	r.renderChunks(doc.Chunks, true)

	// The trailing split End emits leaves indentation after the final
	// newline with no line following it; drop it.
	out := strings.TrimRight(r.buf.String(), " ")
	if opts.IsCompilationUnit && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	start, length := remapSelection(doc, r.chunkOffsets)
	return out, start, length
}

type renderer struct {
	graph  *rule.Graph
	opts   Options
	buf    strings.Builder
	column int

	// chunkOffsets[i] is the byte offset in buf where doc.Chunks[i]'s own
	// text begins, recorded only for the top-level renderChunks call.
	chunkOffsets []int
}

// renderChunks solves and emits chunks partition by partition. record is
// true only for the outermost call, over doc.Chunks itself.
func (r *renderer) renderChunks(chunks []*chunk.Chunk, record bool) {
	for _, part := range partitions(chunks) {
		assign, _, _ := solve(part, r.graph, r.opts, r.column)
		r.emit(part, assign, record)
	}
}

func (r *renderer) emit(chunks []*chunk.Chunk, assign assignment, record bool) {
	localIndex := make(map[rule.Handle]int)

	for _, c := range chunks {
		if record {
			r.chunkOffsets = append(r.chunkOffsets, r.buf.Len())
		}
		r.buf.WriteString(c.Text())
		r.column += c.Width()

		if c.IsBlockParent() {
			r.emitBlock(c)
		}

		if !c.HasSplit {
			continue
		}

		owner := c.Split.Rule
		fires := true
		if !owner.Nil() {
			rl := r.graph.Rule(owner)
			idx := localIndex[owner]
			localIndex[owner] = idx + 1
			fires = rl.IsSplitAtValue(idx, assign[owner])
		}

		if !fires {
			if c.Split.SpaceWhenUnsplit {
				r.buf.WriteByte(' ')
				r.column++
			}
			continue
		}

		r.buf.WriteByte('\n')
		if c.Split.IsDouble == chunk.TriDouble {
			r.buf.WriteByte('\n')
		}

		if c.Split.FlushLeft {
			r.column = 0
			continue
		}
		indent := r.opts.Indent + c.Split.Indent
		if c.Split.Nesting != nil {
			indent += c.Split.Nesting.TotalIndent()
		}
		r.buf.WriteString(strings.Repeat(" ", indent))
		r.column = indent
	}
}

// emitBlock resolves a block-parent chunk recursively: if the block must
// break (it overflows unsplit, or already contains a forced hard split),
// its chunks are solved and rendered as their own chunk vector, each line
// indented only by what its own splits carry; no extra indentation level
// is added for the block, and whether the parent chunk's own split fires
// plays no part in the decision. Otherwise the block is emitted in place
// with every split inside it unsplit.
func (r *renderer) emitBlock(c *chunk.Chunk) {
	if hasForcedBreak(c.BlockChunks, r.graph) || r.column+c.UnsplitBlockLength > r.opts.PageWidth {
		r.renderChunks(c.BlockChunks, false)
		return
	}
	r.emitUnsplit(c.BlockChunks)
}

// emitUnsplit renders chunks as if every split inside them stayed
// unsplit, matching the precomputed builder.unsplitLength it mirrors.
func (r *renderer) emitUnsplit(chunks []*chunk.Chunk) {
	for _, c := range chunks {
		r.buf.WriteString(c.Text())
		r.column += c.Width()
		if c.IsBlockParent() {
			r.emitUnsplit(c.BlockChunks)
		}
		if c.HasSplit && c.Split.SpaceWhenUnsplit {
			r.buf.WriteByte(' ')
			r.column++
		}
	}
}

// hasForcedBreak reports whether any chunk in chunks (recursively
// through nested blocks) carries a split that always fires: an
// unconditional split, a hard rule, or a rule since hardened.
func hasForcedBreak(chunks []*chunk.Chunk, g *rule.Graph) bool {
	for _, c := range chunks {
		if c.HasSplit {
			owner := c.Split.Rule
			if owner.Nil() || g.Rule(owner).Kind() == rule.KindHard || g.Hardened(owner) {
				return true
			}
		}
		if c.IsBlockParent() && hasForcedBreak(c.BlockChunks, g) {
			return true
		}
	}
	return false
}

// remapSelection converts the byte-offset-into-concatenated-chunk-text
// selection range the builder computed into a range into the actual
// rendered text, using the recorded start-of-chunk offsets. Start and
// end are remapped independently, since the chunks between them may
// have gained inserted whitespace or indentation that changes their
// separation.
func remapSelection(doc *builder.Document, chunkOffsets []int) (start, length int) {
	if doc.SelectionStart == chunk.NoSelection {
		return chunk.NoSelection, 0
	}

	startPos := findRenderedOffset(doc.Chunks, chunkOffsets, doc.SelectionStart)
	endPos := findRenderedOffset(doc.Chunks, chunkOffsets, doc.SelectionStart+doc.SelectionLength)
	return startPos, endPos - startPos
}

// findRenderedOffset locates the rendered byte offset corresponding to
// target bytes into the concatenation of every chunk's pre-render text.
func findRenderedOffset(chunks []*chunk.Chunk, chunkOffsets []int, target int) int {
	remaining := target
	for i, c := range chunks {
		n := len(c.Text())
		if remaining <= n {
			if i >= len(chunkOffsets) {
				return 0
			}
			return chunkOffsets[i] + remaining
		}
		remaining -= n
	}
	if len(chunkOffsets) == 0 {
		return 0
	}
	return chunkOffsets[len(chunkOffsets)-1]
}
