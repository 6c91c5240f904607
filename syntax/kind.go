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

package syntax

import "fmt"

const (
	// EOF is the sentinel the parser sees once the token stream is
	// exhausted. It is never stored in a tree.
	EOF Kind = iota
	// Error tags both unrecognized input at the token level and the
	// composite nodes the parser wraps around tokens it could not place.
	Error

	Whitespace
	BlockComment
	LineComment

	String
	Ident

	Fn // The "fn" keyword.

	OpenParen
	CloseParen
	OpenBrace
	CloseBrace

	GreaterThan
	Minus

	Program // The top-level composite covering a whole file.

	kindCount
)

// Kind identifies what kind of element a token or tree node is.
//
// One registry serves both layers: terminal kinds tag tokens and tree
// leaves, composite kinds tag interior nodes, and [Error] may appear as
// either. Kinds map bijectively onto the dense range [0, KindCount).
type Kind uint16

// KindCount is the number of mapped kind values.
const KindCount = uint16(kindCount)

// IsTrivia returns whether this terminal is irrelevant to grammar dispatch.
// Trivia still appears in the tree; the parser only skips it when deciding
// which production to take.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, BlockComment, LineComment:
		return true
	default:
		return false
	}
}

var kindNames = [...]string{
	EOF:          "EOF",
	Error:        "Error",
	Whitespace:   "Whitespace",
	BlockComment: "BlockComment",
	LineComment:  "LineComment",
	String:       "String",
	Ident:        "Ident",
	Fn:           "Fn",
	OpenParen:    "OpenParen",
	CloseParen:   "CloseParen",
	OpenBrace:    "OpenBrace",
	CloseBrace:   "CloseBrace",
	GreaterThan:  "GreaterThan",
	Minus:        "Minus",
	Program:      "Program",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("syntax.Kind(%d)", uint16(k))
	}
	return kindNames[k]
}

// Raw returns the dense integer encoding of this kind, for compact storage.
func (k Kind) Raw() uint16 {
	return uint16(k)
}

// FromRaw is the inverse of [Kind.Raw].
//
// Raw values only ever come from Kinds this package handed out, so an
// unmapped value is a defect in the caller, not an input error: FromRaw
// panics rather than returning an error.
func FromRaw(raw uint16) Kind {
	if raw >= KindCount {
		panic(fmt.Sprintf("rue/syntax: unmapped kind value %d", raw))
	}
	return Kind(raw)
}
