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

package parser

import "github.com/Rigidity/rue-lang/syntax"

// program parses the top-level construct covering the whole file.
//
// The grammar defines no items yet, so every non-trivia token goes through
// single-token recovery. The loop consumes at least one token per
// iteration, so it terminates on any finite input, and because recovery
// still places the offending token in the tree, the tree stays lossless.
func program(p *parser) {
	p.start(syntax.Program)
	for !p.at(syntax.EOF) {
		if p.at(syntax.Error) {
			p.errorf("unexpected character")
		} else {
			p.errorf("unexpected %v", p.peek())
		}
	}
	p.finish()
}
