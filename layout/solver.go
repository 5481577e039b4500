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
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/btree"

	"github.com/textlayout/textlayout/chunk"
	"github.com/textlayout/textlayout/rule"
)

// maxEnumeratedAssignments bounds the exhaustive search in solve. Divide
// markers are expected to keep a partition's free-rule count small
// enough that the full cartesian product rarely approaches this; when
// it does, solveGreedy takes over instead of enumerating forever.
const maxEnumeratedAssignments = 4096

// assignment maps every rule referenced by a partition (hardened or
// free) to the value the solver is considering for it.
type assignment map[rule.Handle]rule.Value

func (a assignment) clone() assignment {
	c := make(assignment, len(a))
	for h, v := range a {
		c[h] = v
	}
	return c
}

// activeRules returns, in first-appearance order, every distinct rule
// handle owning a split within chunks.
func activeRules(chunks []*chunk.Chunk) []rule.Handle {
	seen := make(map[rule.Handle]bool)
	var handles []rule.Handle
	for _, c := range chunks {
		if !c.HasSplit || c.Split.Rule.Nil() {
			continue
		}
		if !seen[c.Split.Rule] {
			seen[c.Split.Rule] = true
			handles = append(handles, c.Split.Rule)
		}
	}
	return handles
}

// solve finds the minimum-cost value assignment for the free rules
// active in chunks, per spec §4.3, and returns it along with its cost
// and the column rendering the partition left off at.
//
// startColumn is the column the partition begins rendering at; every
// other indentation quantity (chunk.SplitInfo.Indent, opts.Indent) is
// already absolute, computed once at build time, so it is not threaded
// through recursive calls the way startColumn is.
func solve(chunks []*chunk.Chunk, g *rule.Graph, opts Options, startColumn int) (assignment, int, int) {
	handles := activeRules(chunks)

	assign := make(assignment, len(handles))
	var free []rule.Handle
	for _, h := range handles {
		if g.Hardened(h) {
			assign[h] = g.Rule(h).FullySplitValue()
			continue
		}
		free = append(free, h)
	}
	sort.Slice(free, func(i, j int) bool { return free[i] < free[j] })

	product := 1
	for _, h := range free {
		product *= g.Rule(h).ValueCount()
		if product > maxEnumeratedAssignments {
			return solveGreedy(chunks, g, opts, startColumn, free, assign)
		}
	}

	memo := &btree.Map[string, int]{}
	var best assignment
	bestCost := -1

	var rec func(i int)
	rec = func(i int) {
		if i == len(free) {
			if !constraintsSatisfied(g, assign) {
				return
			}
			key := assignmentKey(free, assign)
			cost, cached := memo.Get(key)
			if !cached {
				cost, _ = walk(chunks, g, assign, opts, startColumn)
				memo.Set(key, cost)
			}
			if bestCost == -1 || cost < bestCost {
				bestCost = cost
				best = assign.clone()
			}
			return
		}
		h := free[i]
		for v := 0; v < g.Rule(h).ValueCount(); v++ {
			assign[h] = rule.Value(v)
			rec(i + 1)
		}
	}
	rec(0)

	if best == nil {
		// Every candidate violated a constraint. The builder should
		// never produce an inconsistent graph; fall back to the
		// all-unsplit assignment rather than emit nothing.
		best = assign
		bestCost, _ = walk(chunks, g, best, opts, startColumn)
	}

	_, endColumn := walk(chunks, g, best, opts, startColumn)
	return best, bestCost, endColumn
}

// solveGreedy is the budget-exhaustion fallback of spec §7: when the
// free-rule search space is too large to enumerate, start from every
// free rule unsplit and progressively force the one contributing the
// most overflow to its fully-split value, until the layout fits or
// every rule has been forced. This never fails; it only ever degrades
// to a higher-overflow layout.
func solveGreedy(chunks []*chunk.Chunk, g *rule.Graph, opts Options, startColumn int, free []rule.Handle, assign assignment) (assignment, int, int) {
	for _, h := range free {
		assign[h] = rule.Unsplit
	}

	remaining := append([]rule.Handle(nil), free...)
	cost, _ := walk(chunks, g, assign, opts, startColumn)
	for len(remaining) > 0 && cost > 0 {
		worst := -1
		worstCost := cost
		for i, h := range remaining {
			trial := assign.clone()
			trial[h] = g.Rule(h).FullySplitValue()
			if !constraintsSatisfied(g, trial) {
				continue
			}
			c, _ := walk(chunks, g, trial, opts, startColumn)
			if c < worstCost {
				worstCost = c
				worst = i
			}
		}
		if worst == -1 {
			break
		}
		assign[remaining[worst]] = g.Rule(remaining[worst]).FullySplitValue()
		cost = worstCost
		remaining = append(remaining[:worst], remaining[worst+1:]...)
	}

	_, endColumn := walk(chunks, g, assign, opts, startColumn)
	return assign, cost, endColumn
}

// constraintsSatisfied re-checks every Constrain relationship among the
// rules present in assign, the same relation Graph.Harden propagates
// along for hardened rules. It also rejects any assignment in which a
// contained rule splits while a (non-hard) rule containing it stays
// unsplit.
func constraintsSatisfied(g *rule.Graph, assign assignment) bool {
	for outer, vOuter := range assign {
		outerRule := g.Rule(outer)
		for _, inner := range g.Contains(outer) {
			vInner, ok := assign[inner]
			if !ok {
				continue
			}
			if forced, ok := outerRule.Constrain(vOuter, g.Rule(inner)); ok && forced != vInner {
				return false
			}
			if vInner != rule.Unsplit && vOuter == rule.Unsplit && outerRule.Kind() != rule.KindHard {
				return false
			}
		}
	}
	return true
}

func assignmentKey(free []rule.Handle, assign assignment) string {
	var b strings.Builder
	for _, h := range free {
		b.WriteString(strconv.FormatUint(uint64(h), 36))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(assign[h])))
		b.WriteByte(',')
	}
	return b.String()
}

// walk is the cost function of spec §4.3: it plays the partition
// forward under assign, tracking the current column, and returns the
// total cost (overflow + rule cost + span cost, each counted once) and
// the column the partition ends at.
func walk(chunks []*chunk.Chunk, g *rule.Graph, assign assignment, opts Options, startColumn int) (cost, column int) {
	column = startColumn
	localIndex := make(map[rule.Handle]int)
	chargedRule := make(map[rule.Handle]bool)
	chargedSpan := make(map[*chunk.Span]bool)

	overflow := func(col int) int {
		if col <= opts.PageWidth {
			return 0
		}
		return (col - opts.PageWidth) * opts.OverflowCharCost
	}

	for _, c := range chunks {
		column += c.Width()
		if c.IsBlockParent() {
			column += c.UnsplitBlockLength
		}
		if !c.HasSplit {
			continue
		}

		owner := c.Split.Rule
		fires := true
		if !owner.Nil() {
			r := g.Rule(owner)
			idx := localIndex[owner]
			localIndex[owner] = idx + 1
			fires = r.IsSplitAtValue(idx, assign[owner])
			if !chargedRule[owner] {
				chargedRule[owner] = true
				cost += r.Cost(assign[owner])
			}
		}

		if !fires {
			if c.Split.SpaceWhenUnsplit {
				column++
			}
			continue
		}

		cost += overflow(column)
		for _, s := range c.Spans {
			if !chargedSpan[s] {
				chargedSpan[s] = true
				cost += s.Cost
			}
		}

		if c.Split.FlushLeft {
			column = 0
			continue
		}
		indent := opts.Indent + c.Split.Indent
		if c.Split.Nesting != nil {
			indent += c.Split.Nesting.TotalIndent()
		}
		column = indent
	}

	cost += overflow(column)
	return cost, column
}
