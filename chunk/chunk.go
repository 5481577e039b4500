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

// Package chunk defines the data model of the chunk-and-rule layout
// engine: the atomic unit of output (Chunk), the record describing how it
// may split (SplitInfo), cost-bearing ranges (Span), the expression-
// nesting tree (Nesting), and the bookkeeping types the chunk builder
// threads between tokens (PendingWhitespace, SourceComment).
package chunk

import (
	"github.com/rivo/uniseg"

	"github.com/textlayout/textlayout/rule"
)

// TriState distinguishes "we don't yet know whether this split is single
// or double" from the two concrete outcomes, used while comment/blank-
// line handling is still deciding how many newlines a split should emit.
type TriState int

const (
	TriUnknown TriState = iota
	TriSingle
	TriDouble
)

// NoSelection marks a selection offset field as unset.
const NoSelection = -1

// SplitInfo describes how a Chunk may break onto a new line.
type SplitInfo struct {
	// Rule is the handle of the rule that owns this split and decides,
	// for a given value, whether it fires.
	Rule rule.Handle

	// Indent is the statement-level indentation, in spaces, to apply to
	// the line that begins after this split fires.
	Indent int

	// Nesting is the expression-nesting context active at this split, or
	// nil for "block-level" (no expression nesting).
	Nesting *Nesting

	// FlushLeft forces the following line to start at column 0,
	// regardless of Indent/Nesting.
	FlushLeft bool

	// IsDouble records whether this split, if it fires, emits one newline
	// or two (a blank line). TriUnknown must be resolved before the
	// split is rendered.
	IsDouble TriState

	// SpaceWhenUnsplit, if true, emits a single space in place of this
	// split when the owning rule chooses not to split here.
	SpaceWhenUnsplit bool
}

// Chunk is an atomic unit of output: some literal text, followed by either
// nothing (mid-line) or a potential split.
type Chunk struct {
	text string

	// HasSplit distinguishes "no split record" (the chunk always flows
	// directly into the next one) from a zero SplitInfo.
	HasSplit bool
	Split    SplitInfo

	Spans []*Span

	// BlockChunks is a nested chunk vector for a child block this chunk
	// introduces (a collection literal, a function body passed as an
	// argument, ...). A non-empty BlockChunks makes this chunk a block
	// parent.
	BlockChunks []*Chunk

	// UnsplitBlockLength caches the total text length of BlockChunks were
	// every inner rule to stay unsplit, so the solver can price a block
	// parent's unsplit cost without re-walking its children.
	UnsplitBlockLength int

	// DivideMarker marks a position where the solver may cut the
	// problem into independent partitions. See the invariant in MarkDivide
	// and the builder's divide pass.
	DivideMarker bool

	SelectionStart int
	SelectionEnd   int
}

// NewChunk constructs a Chunk with the given text and no split, with
// selection offsets unset.
func NewChunk(text string) *Chunk {
	return &Chunk{
		text:           text,
		SelectionStart: NoSelection,
		SelectionEnd:   NoSelection,
	}
}

// Text returns the chunk's literal text.
func (c *Chunk) Text() string { return c.text }

// SetText replaces the chunk's literal text.
func (c *Chunk) SetText(text string) { c.text = text }

// AppendText appends to the chunk's literal text, used when the builder
// concatenates consecutive written tokens onto the same chunk.
func (c *Chunk) AppendText(text string) { c.text += text }

// IsBlockParent reports whether this chunk introduces a child block.
func (c *Chunk) IsBlockParent() bool { return len(c.BlockChunks) > 0 }

// MarkDivide sets DivideMarker, panicking if the invariant it requires
// does not hold: a divide marker must be a hard split, at block level (no
// expression nesting), and must not be a block parent.
func (c *Chunk) MarkDivide() {
	if !c.HasSplit {
		panic("chunk: MarkDivide called on a chunk with no split")
	}
	if c.Split.Nesting != nil {
		panic("chunk: MarkDivide called on a chunk with active expression nesting")
	}
	if c.IsBlockParent() {
		panic("chunk: MarkDivide called on a block-parent chunk")
	}
	c.DivideMarker = true
}

// Width returns the display width of the chunk's own text, accounting for
// multi-rune graphemes.
func (c *Chunk) Width() int {
	return uniseg.StringWidth(c.text)
}

// SetSelectionStartFromEnd marks the selection start at k bytes (selection
// offsets in this engine are byte offsets, matching how source spans are
// recorded) from the end of the chunk's current text.
func (c *Chunk) SetSelectionStartFromEnd(k int) {
	c.SelectionStart = len(c.text) - k
}

// SetSelectionEndFromEnd marks the selection end at k bytes from the end
// of the chunk's current text.
func (c *Chunk) SetSelectionEndFromEnd(k int) {
	c.SelectionEnd = len(c.text) - k
}
