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

// Package source provides byte spans over input text and line/column lookup
// for rendering diagnostics.
package source

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Span is a half-open byte range [Start, End) into some input text.
type Span struct {
	Start, End int
}

// Len returns the number of bytes this span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Location is a 1-based line and column position. Columns count bytes, not
// display width.
type Location struct {
	Line, Column int
}

// File is a named piece of input text with an on-demand line index.
//
// The index is built at most once and a built File is safe for concurrent
// use.
type File struct {
	name string
	text string

	once sync.Once
	// Byte offset of the start of each line. lines[0] is always 0.
	lines []int
}

// NewFile returns a File over the given text. The name is only used for
// display; nothing is read from disk.
func NewFile(name, text string) *File {
	return &File{name: name, text: text}
}

// Name returns the display name of this file.
func (f *File) Name() string {
	return f.name
}

// Text returns the full text of this file.
func (f *File) Text() string {
	return f.text
}

// Location converts a byte offset into a line/column pair. Offsets past the
// end of the text clamp to the final location.
func (f *File) Location(offset int) Location {
	f.once.Do(f.index)

	offset = min(max(offset, 0), len(f.text))
	line, exact := slices.BinarySearch(f.lines, offset)
	if !exact {
		line--
	}
	return Location{
		Line:   line + 1,
		Column: offset - f.lines[line] + 1,
	}
}

func (f *File) index() {
	f.lines = []int{0}
	for i := 0; ; {
		nl := strings.IndexByte(f.text[i:], '\n')
		if nl == -1 {
			break
		}
		i += nl + 1
		f.lines = append(f.lines, i)
	}
}
