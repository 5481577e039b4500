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

// Span is a cost bearer covering a contiguous range of chunk indices. It
// contributes Cost to the solver's objective once if any split inside its
// range fires, used to discourage splitting within e.g. a short method
// chain even when no single rule would otherwise forbid it.
type Span struct {
	Cost int

	// Start and End are chunk indices, inclusive, in the chunk vector
	// this span was opened against.
	Start, End int
}

// Contains reports whether chunk index i falls within the span.
func (s *Span) Contains(i int) bool {
	return i >= s.Start && i <= s.End
}
