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

package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textlayout/textlayout/builder"
	"github.com/textlayout/textlayout/chunk"
	"github.com/textlayout/textlayout/format"
	"github.com/textlayout/textlayout/rule"
	"github.com/textlayout/textlayout/visitor"
)

func TestFormat_DefaultsProduceTrailingNewline(t *testing.T) {
	t.Parallel()

	events := visitor.Func(func(b *builder.Builder) {
		b.Write("a")
		b.WriteWhitespace(chunk.PendingSpace)
		b.Write("b")
	})

	result := format.Format(format.DefaultOptions(), "", events)
	require.Equal(t, "a b\n", result.Text)
	require.Nil(t, result.URI)
	require.True(t, result.IsCompilationUnit)
	require.Nil(t, result.SelectionStart)
	require.Nil(t, result.SelectionLength)
}

func TestFormat_NarrowPageWidthForcesTheOptionalSplit(t *testing.T) {
	t.Parallel()

	events := visitor.Func(func(b *builder.Builder) {
		b.Write("aaaa")
		b.StartRule(rule.NewSimple(1))
		b.Split(true, chunk.TriSingle, false)
		b.Write("bbbb")
		b.EndRule()
	})

	result := format.Format(format.Options{PageWidth: 5}, "", events)
	require.Equal(t, "aaaa\nbbbb\n", result.Text)
}

func TestFormat_SetsURIAndSelectionWhenPresent(t *testing.T) {
	t.Parallel()

	events := visitor.Func(func(b *builder.Builder) {
		b.Write("foo")
		b.StartSelectionFromEnd(3)
		b.Write("bar")
		b.EndSelectionFromEnd(0)
	})

	result := format.Format(format.Options{}, "file.demo", events)
	require.NotNil(t, result.URI)
	require.Equal(t, "file.demo", *result.URI)
	require.NotNil(t, result.SelectionStart)
	require.NotNil(t, result.SelectionLength)
	// StartSelectionFromEnd(3) marks the start 3 bytes before the end of
	// "foo" (its start); "bar" is appended to the same unsplit chunk, so
	// EndSelectionFromEnd(0) marks the end of the whole "foobar" text.
	require.Equal(t, "foobar", result.Text[*result.SelectionStart:*result.SelectionStart+*result.SelectionLength])
}

func TestFormat_IndentOptionShiftsEverySplitLine(t *testing.T) {
	t.Parallel()

	events := visitor.Func(func(b *builder.Builder) {
		b.Write("a")
		b.StartRule(rule.NewHard())
		b.Split(false, chunk.TriSingle, false)
		b.EndRule()
		b.Write("b")
	})

	result := format.Format(format.Options{Indent: 2}, "", events)
	require.Equal(t, "a\n  b\n", result.Text)
}
