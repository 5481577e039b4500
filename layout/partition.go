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

package layout

import "github.com/textlayout/textlayout/chunk"

// partitions splits chunks at every chunk.DivideMarker, per the divide
// pass of spec §4.2.3: each returned slice (including its own trailing
// divide-marker chunk) can be solved independently, since a divide
// marker is only set where no rule spans across it.
func partitions(chunks []*chunk.Chunk) [][]*chunk.Chunk {
	var parts [][]*chunk.Chunk
	start := 0
	for i, c := range chunks {
		if c.DivideMarker {
			parts = append(parts, chunks[start:i+1])
			start = i + 1
		}
	}
	if start < len(chunks) {
		parts = append(parts, chunks[start:])
	}
	return parts
}
