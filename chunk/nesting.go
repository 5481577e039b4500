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

import "sort"

// Nesting is an immutable node in the expression-nesting tree. The root of
// the tree (a nil *Nesting) represents "statement-level", i.e. no
// expression nesting at all.
type Nesting struct {
	Parent *Nesting
	Indent int
	Depth  int
}

// NewNesting creates a child nesting frame one level deeper than parent,
// indented by indent spaces relative to it. A nil parent creates a frame
// directly below statement-level.
func NewNesting(parent *Nesting, indent int) *Nesting {
	depth := 1
	if parent != nil {
		depth = parent.Depth + 1
	}
	return &Nesting{Parent: parent, Indent: indent, Depth: depth}
}

// TotalIndent sums the indent along the path from the tree root to n. A
// nil Nesting (statement-level) has a total indent of 0.
func (n *Nesting) TotalIndent() int {
	total := 0
	for cur := n; cur != nil; cur = cur.Parent {
		total += cur.Indent
	}
	return total
}

// IsAncestorOf reports whether n is an ancestor of (or equal to) other,
// by walking up other's parent chain.
func (n *Nesting) IsAncestorOf(other *Nesting) bool {
	for cur := other; cur != nil; cur = cur.Parent {
		if cur == n {
			return true
		}
	}
	return n == nil // statement-level is an ancestor of everything.
}

// ColumnOffsets assigns each distinct nesting level active at split points
// on a single physical line a unique, monotonically increasing extra
// indent, so that a deeper nesting always indents at least as much as a
// shallower one active on the same line — the indentation-monotonicity
// invariant.
//
// This is a small side algorithm, not a mutable global counter: active
// nestings are stable-sorted by depth, and each is assigned an offset
// equal to its own declared Indent plus the running total of every
// shallower nesting's Indent already assigned on this line.
func ColumnOffsets(active []*Nesting) map[*Nesting]int {
	uniq := make([]*Nesting, 0, len(active))
	seen := make(map[*Nesting]bool, len(active))
	for _, n := range active {
		if n == nil || seen[n] {
			continue
		}
		seen[n] = true
		uniq = append(uniq, n)
	}

	sort.SliceStable(uniq, func(i, j int) bool {
		return uniq[i].Depth < uniq[j].Depth
	})

	offsets := make(map[*Nesting]int, len(uniq))
	running := 0
	for _, n := range uniq {
		running += n.Indent
		offsets[n] = running
	}
	return offsets
}
