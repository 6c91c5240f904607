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

package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/Rigidity/rue-lang/source"
)

// Renderer writes diagnostics as compiler-style text, one per line:
//
//	name.rue:1:3: error: unexpected Ident
type Renderer struct {
	// Colorize enables ANSI styling. Styling is still subject to the color
	// package's global TTY detection.
	Colorize bool
}

// Render writes every diagnostic in r against file, which supplies the
// line/column positions.
func (re Renderer) Render(w io.Writer, file *source.File, r *Report) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed, color.Bold)

	for _, d := range r.Diagnostics() {
		loc := file.Location(d.Span.Start)
		if re.Colorize {
			bold.Fprintf(w, "%s:%d:%d: ", file.Name(), loc.Line, loc.Column)
			red.Fprint(w, "error: ")
			fmt.Fprintln(w, d.Message)
			continue
		}
		fmt.Fprintf(w, "%s:%d:%d: error: %s\n", file.Name(), loc.Line, loc.Column, d.Message)
	}
}
