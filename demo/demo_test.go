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

package demo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textlayout/textlayout/demo"
	"github.com/textlayout/textlayout/format"
)

func TestFormat_MetadataBeforeLibraryDirective(t *testing.T) {
	t.Parallel()

	result := demo.Format("@deprecated library foo;", format.DefaultOptions())
	require.Equal(t, "@deprecated\nlibrary foo;\n", result.Text)
}

func TestFormat_MetadataCollapsesBlankLines(t *testing.T) {
	t.Parallel()

	result := demo.Format("@a\n\n\n@b\n\n\n\n@c\n\n\nclass A {}", format.DefaultOptions())
	require.Equal(t, "@a\n@b\n@c\nclass A {}\n", result.Text)
}

func TestFormat_MultipleTopLevelAnnotations(t *testing.T) {
	t.Parallel()

	result := demo.Format("@a @b class A {}", format.DefaultOptions())
	require.Equal(t, "@a\n@b\nclass A {}\n", result.Text)
}

func TestFormat_ParameterAnnotationsStayInline(t *testing.T) {
	t.Parallel()

	result := demo.Format("foo(\n\n@a\n\n@b\n\nparam) {}", format.DefaultOptions())
	require.Equal(t, "foo(@a @b param) {}\n", result.Text)
}

func TestFormat_CommentBetweenMetadataForcesWrap(t *testing.T) {
	t.Parallel()

	source := "@DomName('DatabaseCallback') // deprecated\n  @Experimental()\n      typedef void DatabaseCallback(database);"
	result := demo.Format(source, format.DefaultOptions())
	require.Equal(t,
		"@DomName(\n    'DatabaseCallback') // deprecated\n@Experimental()\ntypedef void DatabaseCallback(database);\n",
		result.Text)
}

func TestFormat_FunctionTypedParameterExceedingLineLength(t *testing.T) {
	t.Parallel()

	result := demo.Format("withReturnType(@foo @bar int fn(@foo param)) {}", format.Options{PageWidth: 40})
	require.Equal(t,
		"withReturnType(\n    @foo @bar int fn(@foo param)) {}\n",
		result.Text)
}

func TestFormat_EmptyArgumentListsStayUnsplit(t *testing.T) {
	t.Parallel()

	result := demo.Format("@Experimental() class A {}", format.DefaultOptions())
	require.Equal(t, "@Experimental()\nclass A {}\n", result.Text)
}

func TestFormat_MultipleParametersSplitFromTheFirst(t *testing.T) {
	t.Parallel()

	result := demo.Format("withTwoParams(firstParameterName, secondParameterNameThatIsQuiteLong) {}", format.Options{PageWidth: 40})
	require.Equal(t,
		"withTwoParams(\n    firstParameterName,\n    secondParameterNameThatIsQuiteLong) {}\n",
		result.Text)
}
