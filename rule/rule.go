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

// Package rule implements the rule graph of the chunk-and-rule layout
// engine: a small algebra of split rules, each owning a set of chunks and
// taking on one of several discrete values, that constrain one another
// through explicit containment.
//
// Rules are modeled as a capability interface rather than a class
// hierarchy, per the engine's design notes: every concrete rule kind
// (hard, simple, positional-argument, named-argument, combinator) is a
// small struct implementing the same fixed method table.
package rule

import "github.com/textlayout/textlayout/internal/arena"

// Value is one of a rule's possible configurations. Value 0 conventionally
// means "do not split"; higher values enable splits in various
// combinations, with the exact meaning defined by the owning rule kind.
type Value int

// Unsplit is the value every rule kind reserves for "nothing splits".
const Unsplit Value = 0

// Handle addresses a Rule stored in a [Graph]'s arena.
type Handle = arena.Handle[Rule]

// Kind identifies which concrete rule implementation a [Rule] is, for
// diagnostics and for type-switch-based constraint logic.
type Kind int

const (
	KindHard Kind = iota
	KindSimple
	KindPositionalArgument
	KindNamedArgument
	KindCombinator
)

func (k Kind) String() string {
	switch k {
	case KindHard:
		return "Hard"
	case KindSimple:
		return "Simple"
	case KindPositionalArgument:
		return "PositionalArgument"
	case KindNamedArgument:
		return "NamedArgument"
	case KindCombinator:
		return "Combinator"
	default:
		return "Unknown"
	}
}

// Rule is the capability set every concrete rule kind implements.
//
// A Rule owns a set of chunks (tracked by the chunk builder, not by the
// rule itself) and decides, for a given [Value], which of its owned
// chunks actually split. Rules constrain one another only through
// [Graph.Contain] and [Constrain]; there is no other coupling between
// rule instances.
type Rule interface {
	// Kind identifies the concrete rule implementation.
	Kind() Kind

	// ValueCount returns the number of distinct values this rule may take,
	// i.e. valid values are in [0, ValueCount()).
	ValueCount() int

	// Cost returns the cost contributed to the solver's objective when
	// this rule is assigned the given value and at least one of its
	// splits fires as a result.
	Cost(value Value) int

	// FullySplitValue returns the value this rule is pinned to once it is
	// hardened, i.e. the value at which every split it owns fires.
	FullySplitValue() Value

	// IsSplitAtValue reports whether the chunk at the given index, local
	// to this rule's own ordering of the chunks it owns (0 for the first
	// chunk the rule was given, 1 for the second, and so on), splits when
	// the rule is assigned value.
	IsSplitAtValue(localChunkIndex int, value Value) bool

	// Constrain reports the value that other is forced to take when this
	// rule is assigned my. Returns ok == false when this rule does not
	// constrain other for that value. other is a rule this rule contains,
	// per [Graph.Contain].
	Constrain(my Value, other Rule) (forced Value, ok bool)

	// SplitsOnInnerRules reports whether a hard split occurring inside a
	// scope owned by this rule should force this rule itself to harden.
	SplitsOnInnerRules() bool

	// Harden pins the rule to its FullySplitValue, collapsing its value
	// set to a singleton.
	Harden()

	// Hardened reports whether Harden has been called.
	Hardened() bool
}

// base holds the hardened bit shared by every concrete rule kind.
type base struct {
	hardened bool
}

func (b *base) Harden()        { b.hardened = true }
func (b *base) Hardened() bool { return b.hardened }
