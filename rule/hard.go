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

// HardRule always splits every chunk it owns. It has a single value and
// contributes no cost, since a hard split is never a choice the solver
// makes — it always fires.
type HardRule struct {
	base
}

// NewHard constructs a HardRule.
func NewHard() *HardRule { return &HardRule{} }

func (*HardRule) Kind() Kind                      { return KindHard }
func (*HardRule) ValueCount() int                 { return 1 }
func (*HardRule) Cost(Value) int                  { return 0 }
func (*HardRule) FullySplitValue() Value          { return 0 }
func (*HardRule) IsSplitAtValue(int, Value) bool  { return true }
func (*HardRule) SplitsOnInnerRules() bool        { return true }
func (*HardRule) Constrain(Value, Rule) (Value, bool) {
	return 0, false
}
