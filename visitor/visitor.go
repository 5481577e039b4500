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

// Package visitor defines the contract between the layout engine and the
// external collaborator that walks a concrete syntax tree and issues the
// builder operations table calls. The engine never parses source text
// itself; a concrete Events implementation (see the demo package) is what
// ties a specific language's grammar to the builder.
package visitor

import "github.com/textlayout/textlayout/builder"

// Events drives b through whatever sequence of Write/Split/StartRule/
// StartBlock/WriteComments calls reproduces the source it was built to
// walk. Visit is called exactly once, with a fresh Builder; the
// implementation owns deciding when rules open and close, where splits
// are optional versus hard, and where comments attach.
type Events interface {
	Visit(b *builder.Builder)
}

// Func adapts a plain function to Events, the same shape as http.HandlerFunc
// adapting a function to http.Handler.
type Func func(b *builder.Builder)

// Visit calls f(b).
func (f Func) Visit(b *builder.Builder) {
	f(b)
}
