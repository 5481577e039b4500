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

// NamedArgumentRule governs the separators inside a trailing named- or
// keyword-argument block (e.g. `{a: 1, b: 2}` following positional
// arguments). It is a two-valued rule like SimpleRule, kept as a distinct
// kind so PositionalArgumentRule.Constrain can single it out by type when
// propagating "positional split implies named split".
type NamedArgumentRule struct {
	base

	cost int
}

// NewNamedArgument constructs a NamedArgumentRule with the given split cost.
func NewNamedArgument(cost int) *NamedArgumentRule {
	return &NamedArgumentRule{cost: cost}
}

func (*NamedArgumentRule) Kind() Kind             { return KindNamedArgument }
func (*NamedArgumentRule) ValueCount() int        { return 2 }
func (*NamedArgumentRule) FullySplitValue() Value { return 1 }

func (r *NamedArgumentRule) Cost(value Value) int {
	if value == 1 {
		return r.cost
	}
	return 0
}

func (*NamedArgumentRule) IsSplitAtValue(_ int, value Value) bool {
	return value == 1
}

func (*NamedArgumentRule) SplitsOnInnerRules() bool { return true }

func (*NamedArgumentRule) Constrain(Value, Rule) (Value, bool) {
	return 0, false
}
