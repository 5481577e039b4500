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

package demo

import (
	"github.com/textlayout/textlayout/format"
	"github.com/textlayout/textlayout/visitor"
)

var _ visitor.Events = (*Events)(nil)

// Format lexes source and runs it through the layout engine, returning
// the formatted result.
func Format(source string, opts format.Options) format.Result {
	return format.Format(opts, "", New(source))
}
