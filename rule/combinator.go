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

// CombinatorRule chooses exactly one split point among several candidate
// positions, used for constructs with multiple plausible wrap points but
// where only one is ever taken at a time, such as an assignment that can
// wrap either right after the `=` or right before a trailing block
// argument, but never both.
//
// Value 0 means no candidate splits. Value i, for i in [1, len(options)],
// splits only the i-th owned chunk (0-indexed as i-1) and leaves the
// others unsplit. FullySplitValue is the last option, which by convention
// is the "give up and wrap at the final candidate" choice a hard split
// inside the rule's scope forces it to.
type CombinatorRule struct {
	base

	// Options is the number of candidate split chunks this rule owns.
	Options int

	costs []int // per-option cost; costs[i] applies to value i+1.
}

// NewCombinator constructs a CombinatorRule choosing among the given
// per-option costs.
func NewCombinator(costs []int) *CombinatorRule {
	return &CombinatorRule{Options: len(costs), costs: append([]int(nil), costs...)}
}

func (*CombinatorRule) Kind() Kind { return KindCombinator }

func (r *CombinatorRule) ValueCount() int {
	return r.Options + 1
}

func (r *CombinatorRule) FullySplitValue() Value {
	return Value(r.Options)
}

func (r *CombinatorRule) Cost(value Value) int {
	if value == 0 {
		return 0
	}
	return r.costs[int(value)-1]
}

func (*CombinatorRule) IsSplitAtValue(localChunkIndex int, value Value) bool {
	return value != 0 && int(value)-1 == localChunkIndex
}

func (*CombinatorRule) SplitsOnInnerRules() bool { return true }

func (*CombinatorRule) Constrain(Value, Rule) (Value, bool) {
	return 0, false
}
