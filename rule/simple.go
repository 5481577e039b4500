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

// SimpleRule is a two-valued rule: all of its owned chunks stay unsplit
// (value 0) or all of them split (value 1). This is the rule kind used for
// an ordinary statement or argument-list boundary with no finer-grained
// splitting strategy.
type SimpleRule struct {
	base

	cost int

	// ForcesContained, when true, forces every rule this rule contains
	// (per Graph.Contain) to its own FullySplitValue whenever this rule
	// is split. Used for constructs where an outer split always implies
	// an inner one, e.g. a block that splits its header must also split
	// its body.
	ForcesContained bool
}

// NewSimple constructs a SimpleRule with the given split cost.
func NewSimple(cost int) *SimpleRule {
	return &SimpleRule{cost: cost}
}

func (*SimpleRule) Kind() Kind             { return KindSimple }
func (*SimpleRule) ValueCount() int        { return 2 }
func (*SimpleRule) FullySplitValue() Value { return 1 }

func (r *SimpleRule) Cost(value Value) int {
	if value == 1 {
		return r.cost
	}
	return 0
}

func (*SimpleRule) IsSplitAtValue(_ int, value Value) bool {
	return value == 1
}

func (*SimpleRule) SplitsOnInnerRules() bool { return true }

func (r *SimpleRule) Constrain(my Value, other Rule) (Value, bool) {
	if r.ForcesContained && my == 1 {
		return other.FullySplitValue(), true
	}
	return 0, false
}
