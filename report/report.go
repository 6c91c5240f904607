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

// Package report collects and renders parse diagnostics.
//
// Malformed input is never a Go error anywhere in this repository: the
// lexer and parser always complete, and everything wrong with the input
// ends up as a [Diagnostic] here, independent of the tree.
package report

import (
	"fmt"

	"github.com/Rigidity/rue-lang/source"
)

// Diagnostic is a single problem found in the input.
type Diagnostic struct {
	Message string
	Span    source.Span
}

// Report accumulates the diagnostics of one parse, in the order they were
// recorded.
//
// The zero value is an empty report ready for use.
type Report struct {
	diagnostics []Diagnostic
}

// Errorf records a diagnostic against the given span.
func (r *Report) Errorf(span source.Span, format string, args ...any) {
	r.diagnostics = append(r.diagnostics, Diagnostic{
		Message: fmt.Sprintf(format, args...),
		Span:    span,
	})
}

// Diagnostics returns the recorded diagnostics in order. The caller must
// not mutate the returned slice.
func (r *Report) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Empty returns whether nothing has been recorded.
func (r *Report) Empty() bool {
	return len(r.diagnostics) == 0
}
