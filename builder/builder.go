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

// Package builder implements the Chunk Builder: it consumes an ordered
// stream of events from an external syntax-tree visitor (see package
// visitor) and produces a linear vector of chunks tied together by rules
// from package rule.
//
// A Builder is driven entirely through the operations table documented on
// its methods; it has no knowledge of any concrete source language. Child
// blocks are built with their own Builder, created by StartBlock and
// joined back to the parent by EndBlock; these nest in strict LIFO order,
// mirroring the teacher's cursor/push idiom in
// experimental/printer/printer.go.
package builder

import (
	"strings"

	"github.com/textlayout/textlayout/chunk"
	"github.com/textlayout/textlayout/rule"
)

// Document is the finalized output of a top-level Builder.End call: the
// chunk vector plus the rule graph it was built against. The layout
// package consumes a Document; the builder package never runs the solver
// itself.
type Document struct {
	Chunks []*chunk.Chunk
	Graph  *rule.Graph

	SelectionStart  int // byte offset within the final chunk vector's text, or chunk.NoSelection.
	SelectionLength int
}

// Builder accumulates chunks for one block of source (a whole compilation
// unit, or a child block opened by StartBlock).
type Builder struct {
	graph  *rule.Graph
	chunks []*chunk.Chunk
	// current is the in-progress chunk: text written via Write lands
	// here until a split finalizes it into chunks and starts a fresh one.
	current *chunk.Chunk

	pendingWS  chunk.PendingWhitespace
	lazyRule   rule.Handle
	hasLazy    bool
	pendingNestIndent *int // queued NestExpression(indent, now=false), realized at next Write.

	activeRules []rule.Handle
	activeSpans []*chunk.Span

	indentStack []int
	nesting     *chunk.Nesting

	blockArgNestingStack []*chunk.Nesting

	// hardSplit is the persistent forced-rule set described in spec §4.2.2
	// and resolved by the Open Question in spec §9: it is never reset by
	// EndBlock, only ever grown, so a rule forced to split by a hard
	// split deep inside a block stays forced even after the block closes.
	hardSplit *hardSplitSet

	parent      *Builder
	parentChunk *chunk.Chunk
}

// New creates a fresh top-level Builder with its own rule graph.
func New() *Builder {
	return &Builder{
		graph:     &rule.Graph{},
		current:   chunk.NewChunk(""),
		hardSplit: newHardSplitSet(),
	}
}

// currentIndent is the statement-level indent in effect right now.
func (b *Builder) currentIndent() int {
	if len(b.indentStack) == 0 {
		return 0
	}
	return b.indentStack[len(b.indentStack)-1]
}

func (b *Builder) innermostRule() rule.Handle {
	if len(b.activeRules) == 0 {
		return rule.Handle(0)
	}
	return b.activeRules[len(b.activeRules)-1]
}

// Write flushes pending whitespace, appends text to the current chunk,
// realizes any lazy rule queued by StartLazyRule, and commits any nesting
// frame queued by NestExpression(indent, now=false).
func (b *Builder) Write(text string) {
	b.flushPendingWhitespace()

	if b.hasLazy {
		b.activeRules = append(b.activeRules, b.lazyRule)
		for _, outer := range b.activeRules[:len(b.activeRules)-1] {
			b.graph.Contain(outer, b.lazyRule)
		}
		b.hasLazy = false
	}

	if b.pendingNestIndent != nil {
		b.nesting = chunk.NewNesting(b.nesting, *b.pendingNestIndent)
		b.pendingNestIndent = nil
	}

	b.current.AppendText(text)
}

// WriteWhitespace sets the pending whitespace to kind. A later Write (or
// the builder's internal flush points) will realize it.
func (b *Builder) WriteWhitespace(kind chunk.PendingWhitespace) {
	b.pendingWS = kind
}

// PreserveNewlines resolves an ambiguous pending whitespace given the
// number of newlines actually present in the source between the last
// token and the next. It is a no-op if the pending whitespace is not
// ambiguous.
func (b *Builder) PreserveNewlines(sourceNewlines int) {
	if b.pendingWS.Ambiguous() {
		b.pendingWS = b.pendingWS.Resolve(sourceNewlines)
	}
}

// flushPendingWhitespace realizes whatever whitespace is currently
// pending as either literal text on the current chunk (for a plain
// space) or a split that finalizes the current chunk.
//
// Panics if the pending whitespace is still ambiguous: the visitor must
// have called PreserveNewlines first, per the engine's error-handling
// design (an unresolved ambiguous whitespace is a programmer error).
func (b *Builder) flushPendingWhitespace() {
	switch b.pendingWS {
	case chunk.PendingNone:
		return
	case chunk.PendingSpace:
		if b.current.Text() != "" {
			b.current.AppendText(" ")
		}
	case chunk.PendingNewline:
		b.applySplit(false, chunk.TriSingle, false, nil)
	case chunk.PendingNestedNewline:
		b.applySplit(false, chunk.TriSingle, false, b.nesting)
	case chunk.PendingNewlineFlushLeft:
		b.applySplit(false, chunk.TriSingle, true, nil)
	case chunk.PendingTwoNewlines:
		b.applySplit(false, chunk.TriDouble, false, nil)
	default:
		panic("builder: flushed an ambiguous PendingWhitespace without a prior PreserveNewlines call")
	}
	b.pendingWS = chunk.PendingNone
}

// Split applies a split at the current chunk, owned by the innermost
// active rule, using the current expression nesting.
func (b *Builder) Split(space bool, isDouble chunk.TriState, flushLeft bool) {
	b.applySplit(space, isDouble, flushLeft, b.nesting)
}

// BlockSplit is like Split, but always uses block-level (statement)
// nesting rather than the current expression nesting.
func (b *Builder) BlockSplit(space bool, isDouble chunk.TriState) {
	b.applySplit(space, isDouble, false, nil)
}

func (b *Builder) applySplit(spaceWhenUnsplit bool, isDouble chunk.TriState, flushLeft bool, nesting *chunk.Nesting) {
	owner := b.innermostRule()

	b.current.HasSplit = true
	b.current.Split = chunk.SplitInfo{
		Rule:             owner,
		Indent:           b.currentIndent(),
		Nesting:          nesting,
		FlushLeft:        flushLeft,
		IsDouble:         isDouble,
		SpaceWhenUnsplit: spaceWhenUnsplit,
	}
	for _, s := range b.activeSpans {
		s.End = len(b.chunks)
		b.current.Spans = append(b.current.Spans, s)
	}

	if !owner.Nil() && b.graph.Rule(owner).Kind() == rule.KindHard {
		b.onHardSplit()
	}

	b.chunks = append(b.chunks, b.current)
	b.current = chunk.NewChunk("")
}

// onHardSplit records every currently active rule capable of absorbing a
// hard split (SplitsOnInnerRules) into the hard-split set, per spec
// §4.2.2. The set (and its transitive constraint closure) is hardened at
// End.
func (b *Builder) onHardSplit() {
	for _, h := range b.activeRules {
		if b.graph.Rule(h).SplitsOnInnerRules() {
			b.hardSplit.add(h)
		}
	}
}

// Indent pushes a new statement-level indent, defaulting to one block
// width (two spaces) deeper than the current indent when width is
// omitted.
func (b *Builder) Indent(width ...int) {
	w := 2
	if len(width) > 0 {
		w = width[0]
	}
	b.indentStack = append(b.indentStack, b.currentIndent()+w)
}

// Unindent pops the most recently pushed statement-level indent.
func (b *Builder) Unindent() {
	if len(b.indentStack) == 0 {
		panic("builder: Unindent called with no matching Indent")
	}
	b.indentStack = b.indentStack[:len(b.indentStack)-1]
}

// NestExpression pushes an expression-nesting frame indented by indent
// spaces below the current frame. If now is false, the frame
// is not created until the next Write call, matching the builder's
// lazy-rule scheduling.
func (b *Builder) NestExpression(indent int, now bool) {
	if now {
		b.nesting = chunk.NewNesting(b.nesting, indent)
		return
	}
	i := indent
	b.pendingNestIndent = &i
}

// Unnest pops the current expression-nesting frame.
func (b *Builder) Unnest() {
	if b.pendingNestIndent != nil {
		// A queued NestExpression that was never realized by a Write
		// simply never happened.
		b.pendingNestIndent = nil
		return
	}
	if b.nesting == nil {
		panic("builder: Unnest called with no matching NestExpression")
	}
	b.nesting = b.nesting.Parent
}

// StartRule pushes r as the new innermost active rule, contained by every
// rule currently active, and returns its handle.
func (b *Builder) StartRule(r rule.Rule) rule.Handle {
	h := b.graph.New(r)
	for _, outer := range b.activeRules {
		b.graph.Contain(outer, h)
	}
	b.activeRules = append(b.activeRules, h)
	return h
}

// StartLazyRule queues r to become active only once the next whitespace
// is realized by Write, and returns its handle immediately so the caller
// can use it (e.g. to pass to StartSpan-adjacent bookkeeping) before it
// is actually live.
func (b *Builder) StartLazyRule(r rule.Rule) rule.Handle {
	h := b.graph.New(r)
	b.lazyRule = h
	b.hasLazy = true
	return h
}

// EndRule pops the innermost active rule.
func (b *Builder) EndRule() {
	if len(b.activeRules) == 0 {
		panic("builder: EndRule called with no matching StartRule")
	}
	b.activeRules = b.activeRules[:len(b.activeRules)-1]
}

// StartSpan pushes a new cost-bearing span starting at the next chunk.
func (b *Builder) StartSpan(cost int) *chunk.Span {
	s := &chunk.Span{Cost: cost, Start: len(b.chunks)}
	b.activeSpans = append(b.activeSpans, s)
	return s
}

// EndSpan pops the innermost active span.
func (b *Builder) EndSpan() {
	if len(b.activeSpans) == 0 {
		panic("builder: EndSpan called with no matching StartSpan")
	}
	b.activeSpans = b.activeSpans[:len(b.activeSpans)-1]
}

// ForceRules hardens every currently active rule (and, transitively, the
// rules its containment constraints force).
func (b *Builder) ForceRules() {
	for _, h := range b.activeRules {
		b.hardSplit.add(h)
	}
}

// StartBlockArgumentNesting snapshots the current expression-nesting
// frame so a child block argument can be laid out against it even after
// intervening Unnest calls in the parent.
func (b *Builder) StartBlockArgumentNesting() {
	b.blockArgNestingStack = append(b.blockArgNestingStack, b.nesting)
}

// EndBlockArgumentNesting releases the most recently snapshotted nesting
// frame and restores it as current.
func (b *Builder) EndBlockArgumentNesting() {
	if len(b.blockArgNestingStack) == 0 {
		panic("builder: EndBlockArgumentNesting called with no matching StartBlockArgumentNesting")
	}
	n := len(b.blockArgNestingStack) - 1
	b.nesting = b.blockArgNestingStack[n]
	b.blockArgNestingStack = b.blockArgNestingStack[:n]
}

// StartBlock closes off the current chunk as a block parent — whatever
// text was written to it up to this point (e.g. an opening bracket) is
// its final text — and returns a fresh Builder that writes into that
// chunk's BlockChunks. Text written to the parent after EndBlock lands
// on a new chunk, not the block-parent chunk, so the parent chunk's own
// text never straddles the block it introduces. The child shares this
// builder's rule graph and its persistent hard-split set, so rule
// handles remain valid across the parent/child boundary and forced
// state is never lost when the child closes.
func (b *Builder) StartBlock() *Builder {
	parentChunk := b.current
	b.chunks = append(b.chunks, parentChunk)
	b.current = chunk.NewChunk("")

	return &Builder{
		graph:       b.graph,
		current:     chunk.NewChunk(""),
		nesting:     b.nesting,
		indentStack: append([]int(nil), b.indentStack...),
		activeRules: append([]rule.Handle(nil), b.activeRules...),
		hardSplit:   b.hardSplit,
		parent:      b,
		parentChunk: parentChunk,
	}
}

// EndBlock closes a child block opened by StartBlock, attaching its
// chunks to the parent chunk's BlockChunks, and returns the parent
// builder. If forceSplit is true, the parent chunk's owning rule (once
// known, at the next split) is forced to fully split. ignoredSplit is
// passed to finish: when true, an empty trailing chunk left at the end of
// the child block is dropped rather than attached.
func (b *Builder) EndBlock(ignoredSplit, forceSplit bool) *Builder {
	if b.parent == nil {
		panic("builder: EndBlock called on a builder with no matching StartBlock")
	}

	child := b.finish(ignoredSplit)
	b.parentChunk.BlockChunks = child
	b.parentChunk.UnsplitBlockLength = unsplitLength(child)

	if forceSplit {
		b.parent.hardSplit.add(b.parent.innermostRule())
	}

	return b.parent
}

// finish flushes any trailing pending whitespace/text into the chunk
// vector and returns it. If ignoredSplit is true and the last chunk in
// the block is a trivially empty trailing split, it is dropped rather
// than emitted.
func (b *Builder) finish(ignoredSplit bool) []*chunk.Chunk {
	b.flushPendingWhitespace()
	if b.current.Text() != "" || b.current.HasSplit || len(b.chunks) == 0 {
		b.chunks = append(b.chunks, b.current)
	}
	if ignoredSplit && len(b.chunks) > 0 {
		last := b.chunks[len(b.chunks)-1]
		if last.Text() == "" && !last.IsBlockParent() {
			b.chunks = b.chunks[:len(b.chunks)-1]
		}
	}
	return b.chunks
}

func unsplitLength(chunks []*chunk.Chunk) int {
	total := 0
	for _, c := range chunks {
		total += c.Width()
		if c.HasSplit && c.Split.SpaceWhenUnsplit {
			total++
		}
		if c.IsBlockParent() {
			total += c.UnsplitBlockLength
		}
	}
	return total
}

// StartSelectionFromEnd marks the current chunk's selection start at k
// bytes from the end of its text written so far.
func (b *Builder) StartSelectionFromEnd(k int) {
	b.current.SetSelectionStartFromEnd(k)
}

// EndSelectionFromEnd marks the current chunk's selection end at k bytes
// from the end of its text written so far.
func (b *Builder) EndSelectionFromEnd(k int) {
	b.current.SetSelectionEndFromEnd(k)
}

// End finalizes a top-level Builder: it emits a trailing hard split,
// hardens the accumulated hard-split set (transitively), runs the divide
// pass, and returns the finished Document. It panics if called on a
// builder produced by StartBlock (use EndBlock instead) or with
// unbalanced rule/span/nesting scopes still open.
func (b *Builder) End() *Document {
	if b.parent != nil {
		panic("builder: End called on a child block builder; use EndBlock")
	}
	if len(b.activeRules) != 0 {
		panic("builder: End called with unclosed StartRule scopes")
	}
	if len(b.activeSpans) != 0 {
		panic("builder: End called with unclosed StartSpan scopes")
	}
	if b.nesting != nil {
		panic("builder: End called with unclosed NestExpression scopes")
	}

	owner := b.innermostRule()
	b.current.HasSplit = true
	b.current.Split = chunk.SplitInfo{Rule: owner, IsDouble: chunk.TriSingle}
	b.chunks = append(b.chunks, b.current)
	b.current = chunk.NewChunk("")

	b.hardenAll()
	b.markDivideMarkers()

	start, length := selectionRange(b.chunks)
	return &Document{
		Chunks:          b.chunks,
		Graph:           b.graph,
		SelectionStart:  start,
		SelectionLength: length,
	}
}

func selectionRange(chunks []*chunk.Chunk) (start, length int) {
	offset := 0
	start, end := chunk.NoSelection, chunk.NoSelection
	for _, c := range chunks {
		if c.SelectionStart != chunk.NoSelection {
			start = offset + c.SelectionStart
		}
		if c.SelectionEnd != chunk.NoSelection {
			end = offset + c.SelectionEnd
		}
		offset += len(c.Text())
	}
	if start == chunk.NoSelection {
		return chunk.NoSelection, 0
	}
	if end == chunk.NoSelection {
		end = start
	}
	return start, end - start
}

// endsWithOpenGrouping reports whether s ends with an opening bracket,
// used by the comment-adherence rule in WriteComments.
func endsWithOpenGrouping(s string) bool {
	return strings.HasSuffix(s, "(") || strings.HasSuffix(s, "[") || strings.HasSuffix(s, "{")
}
