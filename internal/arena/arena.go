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

// Package arena provides a simple growable-slice arena with compressed,
// index-based handles, used by the rule graph to refer to rules without
// holding live pointers into a slice that may be reallocated.
package arena

// Handle is an index-based pointer into an [Arena]. The zero value is Nil
// and never refers to a live value: indices are offset by one so a freshly
// zeroed Handle is always distinguishable from an allocated one.
type Handle[T any] uint32

// Nil reports whether h does not refer to any value.
func (h Handle[T]) Nil() bool { return h == 0 }

// Arena is an append-only store of T values addressed by [Handle].
//
// A zero Arena is empty and ready to use.
type Arena[T any] struct {
	items []T
}

// New allocates a fresh value in the arena and returns its handle.
func (a *Arena[T]) New(value T) Handle[T] {
	a.items = append(a.items, value)
	return Handle[T](len(a.items))
}

// At dereferences a handle. It panics if h is Nil or was not allocated by a.
func (a *Arena[T]) At(h Handle[T]) *T {
	if h.Nil() {
		panic("arena: dereferenced a nil handle")
	}
	return &a.items[h-1]
}

// Len returns the number of values allocated in the arena.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// All iterates over every handle/value pair in allocation order.
func (a *Arena[T]) All() func(yield func(Handle[T], *T) bool) {
	return func(yield func(Handle[T], *T) bool) {
		for i := range a.items {
			if !yield(Handle[T](i+1), &a.items[i]) {
				return
			}
		}
	}
}
