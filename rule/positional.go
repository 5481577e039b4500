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

// PositionalArgumentRule governs the separators between positional
// arguments in a call or parameter list. Unlike SimpleRule it is
// multi-valued: value v splits the first v separators (in the order the
// chunk builder registered them with the rule) and leaves the rest on
// the same line, so the solver can trade off "split everything" against
// "split just enough of the front to fit".
//
// Value 0 means nothing splits; value ArgCount means every separator
// splits, which is also FullySplitValue.
type PositionalArgumentRule struct {
	base

	// ArgCount is the number of separators this rule owns.
	ArgCount int

	cost int

	// ForcesNamed, when true and this rule splits at all (value > 0),
	// forces any contained NamedArgumentRule to fully split too: dart-
	// family formatters require that if positional arguments wrap, the
	// trailing named/keyword argument block wraps as well.
	ForcesNamed bool
}

// NewPositionalArgument constructs a PositionalArgumentRule over argCount
// separators.
func NewPositionalArgument(argCount, cost int) *PositionalArgumentRule {
	return &PositionalArgumentRule{ArgCount: argCount, cost: cost}
}

func (*PositionalArgumentRule) Kind() Kind { return KindPositionalArgument }

func (r *PositionalArgumentRule) ValueCount() int {
	return r.ArgCount + 1
}

func (r *PositionalArgumentRule) FullySplitValue() Value {
	return Value(r.ArgCount)
}

func (r *PositionalArgumentRule) Cost(value Value) int {
	if value > 0 {
		return r.cost
	}
	return 0
}

func (*PositionalArgumentRule) IsSplitAtValue(localChunkIndex int, value Value) bool {
	return Value(localChunkIndex) < value
}

func (*PositionalArgumentRule) SplitsOnInnerRules() bool { return true }

func (r *PositionalArgumentRule) Constrain(my Value, other Rule) (Value, bool) {
	if r.ForcesNamed && my > 0 {
		if named, ok := other.(*NamedArgumentRule); ok {
			return named.FullySplitValue(), true
		}
	}
	return 0, false
}
