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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textlayout/textlayout/chunk"
	"github.com/textlayout/textlayout/rule"
)

func TestBuilder_WriteAndSplit(t *testing.T) {
	t.Parallel()

	b := New()
	b.Write("library")
	b.WriteWhitespace(chunk.PendingSpace)
	b.Write("foo")
	b.Split(false, chunk.TriSingle, false)
	b.Write(";")

	doc := b.End()
	require.Len(t, doc.Chunks, 2)
	require.Equal(t, "library foo", doc.Chunks[0].Text())
	require.True(t, doc.Chunks[0].HasSplit)
	require.Equal(t, ";", doc.Chunks[1].Text())
}

func TestBuilder_AmbiguousWhitespacePanicsWithoutPreserveNewlines(t *testing.T) {
	t.Parallel()

	b := New()
	b.Write("a")
	b.WriteWhitespace(chunk.PendingOneOrTwoNewlines)
	require.Panics(t, func() { b.Write("b") })
}

func TestBuilder_PreserveNewlinesResolvesAmbiguity(t *testing.T) {
	t.Parallel()

	b := New()
	b.Write("a")
	b.WriteWhitespace(chunk.PendingOneOrTwoNewlines)
	b.PreserveNewlines(2)
	require.NotPanics(t, func() { b.Write("b") })

	doc := b.End()
	require.Equal(t, chunk.TriDouble, doc.Chunks[0].Split.IsDouble)
}

func TestBuilder_ForceRulesHardensActiveScope(t *testing.T) {
	t.Parallel()

	b := New()
	h := b.StartRule(rule.NewSimple(3))
	b.Write("a")
	b.ForceRules()
	b.Split(false, chunk.TriSingle, false)
	b.Write("b")
	b.EndRule()

	doc := b.End()
	require.True(t, doc.Graph.Hardened(h))
	require.True(t, doc.Chunks[0].HasSplit)
	require.Equal(t, h, doc.Chunks[0].Split.Rule)
}

func TestBuilder_HardSplitInsideActiveRuleHardensIt(t *testing.T) {
	t.Parallel()

	b := New()
	outer := b.StartRule(rule.NewSimple(3))
	b.Write("call(")
	hard := b.StartRule(rule.NewHard())
	b.Write("x")
	b.Split(false, chunk.TriSingle, false)
	b.EndRule()
	b.Write(")")
	b.EndRule()

	doc := b.End()
	require.True(t, doc.Graph.Hardened(hard))
	require.True(t, doc.Graph.Hardened(outer), "a hard split nested in an active SplitsOnInnerRules rule must harden that outer rule too")
}

func TestBuilder_DivideMarkerInvariants(t *testing.T) {
	t.Parallel()

	b := New()
	b.Write("a;")
	b.BlockSplit(false, chunk.TriSingle) // no owning rule: unconditional, block-level.
	b.Write("b;")

	doc := b.End()
	for _, c := range doc.Chunks {
		if !c.DivideMarker {
			continue
		}
		require.True(t, c.HasSplit)
		require.Nil(t, c.Split.Nesting)
		require.False(t, c.IsBlockParent())
	}
	require.True(t, doc.Chunks[0].DivideMarker)
}

func TestBuilder_SelectionOffsetsSurviveAcrossChunks(t *testing.T) {
	t.Parallel()

	b := New()
	b.Write("foo")
	b.StartSelectionFromEnd(3)
	b.Split(false, chunk.TriSingle, false)
	b.Write("bar")
	b.EndSelectionFromEnd(1)

	doc := b.End()
	require.NotEqual(t, chunk.NoSelection, doc.SelectionStart)
	require.Equal(t, len("foo")-3, doc.Chunks[0].SelectionStart)
}

func TestBuilder_StartBlockEndBlockAttachesBlockChunks(t *testing.T) {
	t.Parallel()

	b := New()
	b.Write("[")
	child := b.StartBlock()
	child.Write("1")
	child.Split(false, chunk.TriSingle, false)
	child.Write("2")
	b = child.EndBlock(false, false)
	b.Write("]")

	doc := b.End()
	var parent *chunk.Chunk
	for _, c := range doc.Chunks {
		if c.IsBlockParent() {
			parent = c
		}
	}
	require.NotNil(t, parent)
	require.Len(t, parent.BlockChunks, 2)
}

func TestBuilder_WriteCommentsTrailingAdheresToPrecedingText(t *testing.T) {
	t.Parallel()

	b := New()
	b.Write("foo()")
	b.Split(false, chunk.TriSingle, false)
	b.WriteComments([]chunk.SourceComment{
		{Text: "// trailing", LinesBefore: 0, IsLineComment: true, IsInline: false},
	}, 1, false)
	b.Write("bar")

	doc := b.End()
	require.Equal(t, "foo() // trailing", doc.Chunks[0].Text())
}

func TestBuilder_WriteCommentsBlankLineAbsorption(t *testing.T) {
	t.Parallel()

	b := New()
	b.Write("a")
	b.WriteWhitespace(chunk.PendingTwoNewlines)
	b.WriteComments([]chunk.SourceComment{
		{Text: "// c", LinesBefore: 0, IsLineComment: true},
	}, 2, false)
	b.Write("b")

	doc := b.End()
	// The blank line was already demanded by linesBeforeToken=2, so the
	// pending two-newline gap before the comment collapses to a single
	// newline and the comment re-adheres to "a" on the same chunk; the
	// blank line instead surfaces in the gap split after the comment.
	require.Equal(t, "a // c", doc.Chunks[0].Text())
	require.Equal(t, chunk.TriDouble, doc.Chunks[0].Split.IsDouble)
}
