// Copyright 2023-2026 The Rue Authors
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

package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rigidity/rue-lang/report"
	"github.com/Rigidity/rue-lang/source"
)

func TestReport(t *testing.T) {
	t.Parallel()

	var r report.Report
	assert.True(t, r.Empty())

	r.Errorf(source.Span{Start: 0, End: 2}, "expected %s", "Ident")
	r.Errorf(source.Span{Start: 5, End: 6}, "unexpected character")

	assert.False(t, r.Empty())
	assert.Equal(t, []report.Diagnostic{
		{Message: "expected Ident", Span: source.Span{Start: 0, End: 2}},
		{Message: "unexpected character", Span: source.Span{Start: 5, End: 6}},
	}, r.Diagnostics())
}

func TestRender(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.rue", "ab\ncdef")
	var r report.Report
	r.Errorf(source.Span{Start: 0, End: 2}, "unexpected Ident")
	r.Errorf(source.Span{Start: 4, End: 5}, "unexpected character")

	var out strings.Builder
	report.Renderer{}.Render(&out, file, &r)

	assert.Equal(t,
		"test.rue:1:1: error: unexpected Ident\n"+
			"test.rue:2:2: error: unexpected character\n",
		out.String())
}
