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

package format

// Result is the record spec §6 describes: `{text, uri?, is_compilation_
// unit, selection_start?, selection_length?}`. The optional fields are
// nil pointers when the formatted document carried no URI or no
// selection mark, rather than zero values that would be indistinguishable
// from "selection at offset 0".
type Result struct {
	// Text is the formatted output.
	Text string

	// URI identifies the document the text was formatted from, when the
	// caller supplied one to Format. Nil otherwise.
	URI *string

	// IsCompilationUnit echoes the Options field Format was called with.
	IsCompilationUnit bool

	// SelectionStart and SelectionLength are the caller's selection mark,
	// remapped onto Text, or both nil if the visitor never placed one.
	SelectionStart  *int
	SelectionLength *int
}
