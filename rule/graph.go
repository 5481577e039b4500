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

import "github.com/textlayout/textlayout/internal/arena"

// Graph is the rule graph: an arena of rules plus the containment edges
// between them. Two rules are related only through an explicit [Graph.Contain]
// call or through a [Rule.Constrain] that forces a value.
//
// A zero Graph is empty and ready to use.
type Graph struct {
	rules arena.Arena[Rule]

	// contains[outer] holds every rule that outer directly contains, in
	// the order Contain was called. Constraint propagation during Harden
	// only ever walks along these edges.
	contains map[Handle][]Handle

	hardened map[Handle]bool
}

// New allocates a rule in the graph and returns its handle.
func (g *Graph) New(r Rule) Handle {
	return g.rules.New(r)
}

// Rule dereferences a handle.
func (g *Graph) Rule(h Handle) Rule {
	return *g.rules.At(h)
}

// Contain records that outer wraps inner, giving outer the opportunity to
// constrain inner's value whenever outer is hardened (see [Graph.Harden]).
func (g *Graph) Contain(outer, inner Handle) {
	if g.contains == nil {
		g.contains = make(map[Handle][]Handle)
	}
	g.contains[outer] = append(g.contains[outer], inner)
}

// Hardened reports whether h has already been hardened.
func (g *Graph) Hardened(h Handle) bool {
	return g.hardened[h]
}

// Contains returns every rule directly contained by outer, in the order
// Contain recorded them. The layout solver uses this to re-check the
// same containment constraints Harden propagates along, for rules that
// stayed free instead of being hardened.
func (g *Graph) Contains(outer Handle) []Handle {
	return g.contains[outer]
}

// Harden hardens start and every rule transitively forced to its own
// FullySplitValue by start's containment edges.
//
// This is a worklist traversal: starting from start, each rule popped off
// the queue is hardened (unless already hardened), and then for every
// rule it directly contains we ask whether hardening forces that inner
// rule to its own fully-split value too. If so, the inner rule is queued.
// Each rule is hardened at most once, so the traversal terminates.
func (g *Graph) Harden(start Handle) {
	if g.hardened == nil {
		g.hardened = make(map[Handle]bool)
	}

	queue := []Handle{start}
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if g.hardened[h] {
			continue
		}

		r := g.Rule(h)
		r.Harden()
		g.hardened[h] = true

		full := r.FullySplitValue()
		for _, inner := range g.contains[h] {
			if g.hardened[inner] {
				continue
			}
			innerRule := g.Rule(inner)
			if forced, ok := r.Constrain(full, innerRule); ok && forced == innerRule.FullySplitValue() {
				queue = append(queue, inner)
			}
		}
	}
}
