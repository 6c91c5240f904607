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

// Package highlight assigns presentation classes to raw tokens for
// syntax-highlighted rendering.
//
// Highlighting is a read-only consumer of the lexer's token stream: it
// looks at each token's kind and, for identifiers, the case of the first
// rune. It never constructs or inspects a syntax tree.
package highlight

import (
	"unicode"
	"unicode/utf8"

	"github.com/Rigidity/rue-lang/lexer"
	"github.com/Rigidity/rue-lang/syntax"
)

// Class is the presentation class of a single token.
type Class int

const (
	Comment Class = iota
	String
	Variable
	Type
	Keyword
	Pair
	Invalid
	Other
)

// String returns the display class name used by front-ends, e.g.
// "t-comment".
func (c Class) String() string {
	switch c {
	case Comment:
		return "t-comment"
	case String:
		return "t-string"
	case Variable:
		return "t-variable"
	case Type:
		return "t-type"
	case Keyword:
		return "t-keyword"
	case Pair:
		return "t-pair"
	case Invalid:
		return "t-invalid"
	default:
		return "t-other"
	}
}

// Classify assigns tok its presentation class.
func Classify(tok lexer.Token) Class {
	switch tok.Kind {
	case syntax.LineComment, syntax.BlockComment:
		return Comment
	case syntax.String:
		return String
	case syntax.Ident:
		// Capitalized identifiers read as type names.
		r, _ := utf8.DecodeRuneInString(tok.Text)
		if unicode.IsUpper(r) {
			return Type
		}
		return Variable
	case syntax.Fn:
		return Keyword
	case syntax.OpenParen, syntax.CloseParen, syntax.OpenBrace, syntax.CloseBrace:
		return Pair
	case syntax.Error:
		return Invalid
	default:
		return Other
	}
}
