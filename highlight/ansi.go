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

package highlight

import (
	"io"

	"github.com/fatih/color"

	"github.com/Rigidity/rue-lang/lexer"
)

// styles maps each class to its terminal style. Other is absent: those
// tokens print unstyled.
var styles = map[Class]*color.Color{
	Comment:  color.New(color.FgHiBlack),
	String:   color.New(color.FgGreen),
	Variable: color.New(color.FgCyan),
	Type:     color.New(color.FgYellow),
	Keyword:  color.New(color.FgMagenta, color.Bold),
	Pair:     color.New(color.FgBlue),
	Invalid:  color.New(color.FgRed, color.Underline),
}

// Fprint writes src to w with one ANSI style per token class. The output
// contains exactly the bytes of src plus styling.
func Fprint(w io.Writer, src string) error {
	for tok := range lexer.New(src).All() {
		style, ok := styles[Classify(tok)]
		if !ok {
			if _, err := io.WriteString(w, tok.Text); err != nil {
				return err
			}
			continue
		}
		if _, err := style.Fprint(w, tok.Text); err != nil {
			return err
		}
	}
	return nil
}
