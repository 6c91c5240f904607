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

package parser_test

import (
	"strings"
	"testing"

	"github.com/Rigidity/rue-lang/internal/golden"
	"github.com/Rigidity/rue-lang/parser"
	"github.com/Rigidity/rue-lang/report"
	"github.com/Rigidity/rue-lang/source"
)

// Set RUE_REFRESH to a glob (e.g. "**") to rewrite the expected outputs.
func TestParseGolden(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:      "testdata",
		Extension: "rue",
		Refresh:   "RUE_REFRESH",
		Outputs:   []string{"dump.txt", "stderr.txt"},
	}

	corpus.Run(t, func(t *testing.T, name, text string, outputs []string) {
		tree, diags := parser.Parse(text)
		outputs[0] = tree.Root().Dump()

		var stderr strings.Builder
		report.Renderer{}.Render(&stderr, source.NewFile(name, text), diags)
		outputs[1] = stderr.String()
	})
}
