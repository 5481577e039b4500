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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunk_MarkDivideInvariants(t *testing.T) {
	t.Parallel()

	t.Run("no split", func(t *testing.T) {
		c := NewChunk("x")
		require.Panics(t, c.MarkDivide)
	})

	t.Run("nested expression", func(t *testing.T) {
		c := NewChunk("x")
		c.HasSplit = true
		c.Split.Nesting = NewNesting(nil, 2)
		require.Panics(t, c.MarkDivide)
	})

	t.Run("block parent", func(t *testing.T) {
		c := NewChunk("x")
		c.HasSplit = true
		c.BlockChunks = []*Chunk{NewChunk("y")}
		require.Panics(t, c.MarkDivide)
	})

	t.Run("valid", func(t *testing.T) {
		c := NewChunk("x")
		c.HasSplit = true
		require.NotPanics(t, c.MarkDivide)
		require.True(t, c.DivideMarker)
	})
}

func TestChunk_SelectionFromEnd(t *testing.T) {
	t.Parallel()

	c := NewChunk("hello world")
	require.Equal(t, NoSelection, c.SelectionStart)

	c.SetSelectionStartFromEnd(5)
	c.SetSelectionEndFromEnd(0)

	require.Equal(t, 6, c.SelectionStart)
	require.Equal(t, "world", c.Text()[c.SelectionStart:c.SelectionEnd])
}

func TestPendingWhitespace_Resolve(t *testing.T) {
	t.Parallel()

	require.Equal(t, PendingSpace, PendingSpaceOrNewline.Resolve(0))
	require.Equal(t, PendingNewline, PendingSpaceOrNewline.Resolve(1))
	require.Equal(t, PendingNewline, PendingOneOrTwoNewlines.Resolve(1))
	require.Equal(t, PendingTwoNewlines, PendingOneOrTwoNewlines.Resolve(2))
	require.Panics(t, func() { PendingNewline.Resolve(1) })
}

func TestNesting_ColumnOffsetsMonotoneByDepth(t *testing.T) {
	t.Parallel()

	root := NewNesting(nil, 2)
	child := NewNesting(root, 2)
	grandchild := NewNesting(child, 4)

	offsets := ColumnOffsets([]*Nesting{grandchild, root, child})

	require.Less(t, offsets[root], offsets[child])
	require.Less(t, offsets[child], offsets[grandchild])
}

func TestNesting_IsAncestorOf(t *testing.T) {
	t.Parallel()

	var statementLevel *Nesting
	root := NewNesting(nil, 2)
	child := NewNesting(root, 2)

	require.True(t, statementLevel.IsAncestorOf(child))
	require.True(t, root.IsAncestorOf(child))
	require.False(t, child.IsAncestorOf(root))
}
