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
	"github.com/textlayout/textlayout/chunk"
	"github.com/textlayout/textlayout/rule"
)

// hardSplitSet is the persistent set of rule handles known to require
// hardening, per spec §4.2.2. It is shared, never copied, between a
// top-level Builder and every child block Builder it spawns via
// StartBlock, which resolves the Open Question in spec §9: forced-rule
// state must survive a child block's EndBlock, not be forgotten by it.
type hardSplitSet struct {
	handles map[rule.Handle]bool
}

func newHardSplitSet() *hardSplitSet {
	return &hardSplitSet{handles: make(map[rule.Handle]bool)}
}

func (s *hardSplitSet) add(h rule.Handle) {
	if h.Nil() {
		return
	}
	s.handles[h] = true
}

// hardenAll hardens every rule recorded in the builder's hard-split set,
// along with each rule's transitive constraint closure (see
// rule.Graph.Harden).
func (b *Builder) hardenAll() {
	for h := range b.hardSplit.handles {
		b.graph.Harden(h)
	}
}

// isHardSplit reports whether c's split always fires: either it has no
// owning rule at all (an unconditional split, such as the trailing split
// End emits), its owning rule is a HardRule, or its owning rule has since
// been hardened.
func (b *Builder) isHardSplit(c *chunk.Chunk) bool {
	if !c.HasSplit {
		return false
	}
	owner := c.Split.Rule
	if owner.Nil() {
		return true
	}
	r := b.graph.Rule(owner)
	return r.Kind() == rule.KindHard || b.graph.Hardened(owner)
}

// markDivideMarkers implements the divide pass of spec §4.2.3: after
// hardening, chunks[i].DivideMarker is set for every index where the
// solver may safely cut the chunk vector into independent partitions.
func (b *Builder) markDivideMarkers() {
	lastIndexForRule := make(map[rule.Handle]int, len(b.chunks))
	for i, c := range b.chunks {
		if c.HasSplit && !c.Split.Rule.Nil() {
			lastIndexForRule[c.Split.Rule] = i
		}
	}

	for i, c := range b.chunks {
		if !b.isHardSplit(c) {
			continue
		}
		if c.Split.Nesting != nil {
			continue
		}
		if c.IsBlockParent() {
			continue
		}
		owner := c.Split.Rule
		if !owner.Nil() && lastIndexForRule[owner] != i {
			continue
		}
		c.DivideMarker = true
	}
}
