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

package rule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraph_HardenTransitive(t *testing.T) {
	t.Parallel()

	var g Graph
	positional := &PositionalArgumentRule{ArgCount: 2, cost: 2, ForcesNamed: true}
	named := NewNamedArgument(1)

	pHandle := g.New(positional)
	nHandle := g.New(named)
	g.Contain(pHandle, nHandle)

	require.False(t, g.Hardened(pHandle))
	require.False(t, g.Hardened(nHandle))

	g.Harden(pHandle)

	require.True(t, g.Hardened(pHandle))
	require.True(t, g.Hardened(nHandle), "hardening the outer positional rule must transitively harden the named-argument rule it forces")
	require.True(t, named.Hardened())
	require.Equal(t, named.FullySplitValue(), Value(1))
}

func TestGraph_HardenDoesNotCrossUnrelatedRules(t *testing.T) {
	t.Parallel()

	var g Graph
	a := g.New(NewSimple(1))
	b := g.New(NewSimple(1))
	// No Contain call between a and b: hardening one must not harden the other.

	g.Harden(a)

	require.True(t, g.Hardened(a))
	require.False(t, g.Hardened(b))
}

func TestGraph_HardenIsIdempotentPerRule(t *testing.T) {
	t.Parallel()

	var g Graph
	outer := NewSimple(1)
	outer.ForcesContained = true
	inner := NewSimple(1)

	oh := g.New(outer)
	ih := g.New(inner)
	g.Contain(oh, ih)
	g.Contain(oh, ih) // duplicate edge should not cause double work or panics

	require.NotPanics(t, func() { g.Harden(oh) })
	require.True(t, g.Hardened(ih))
}

func TestHardRule_AlwaysSplitsAndNeverConstrains(t *testing.T) {
	t.Parallel()

	h := NewHard()
	require.Equal(t, 1, h.ValueCount())
	require.True(t, h.IsSplitAtValue(0, h.FullySplitValue()))
	_, ok := h.Constrain(h.FullySplitValue(), NewSimple(3))
	require.False(t, ok)
}

func TestCombinatorRule_ChoosesExactlyOneOption(t *testing.T) {
	t.Parallel()

	c := NewCombinator([]int{2, 5})
	require.Equal(t, 3, c.ValueCount())
	require.Equal(t, Value(2), c.FullySplitValue())

	require.False(t, c.IsSplitAtValue(0, 0))
	require.False(t, c.IsSplitAtValue(1, 0))
	require.True(t, c.IsSplitAtValue(0, 1))
	require.False(t, c.IsSplitAtValue(1, 1))
	require.False(t, c.IsSplitAtValue(0, 2))
	require.True(t, c.IsSplitAtValue(1, 2))

	require.Equal(t, 0, c.Cost(0))
	require.Equal(t, 2, c.Cost(1))
	require.Equal(t, 5, c.Cost(2))
}
