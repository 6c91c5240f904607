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

// Package lexer scans rue source text into tokens.
//
// Lexing cannot fail: every byte of the input lands in exactly one token,
// in order, so the token texts concatenated reproduce the source exactly.
// Input the lexer does not recognize becomes an [syntax.Error]-kind token,
// and strings or block comments cut off by end-of-input are flagged via
// [Token.Terminated] instead of being rejected.
package lexer

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/Rigidity/rue-lang/syntax"
)

// Token is a single lexed element of the input.
//
// Text is a substring of the source; the lexer never copies text. Tokens
// are consumed by the parser in the same pass that produces them and are
// not retained after tree construction.
type Token struct {
	Kind syntax.Kind
	Text string

	// Terminated is false only for a string or block comment whose closing
	// delimiter was cut off by end-of-input.
	Terminated bool
}

// eof is returned by peek when the input is exhausted. It is not a valid
// rune, so it never collides with source text.
const eof rune = -1

// Lexer is a single-pass scanner over rue source text.
//
// A Lexer is not seekable; to scan the same input again, make a new one.
type Lexer struct {
	src    string
	cursor int
}

// New returns a Lexer at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Tokens scans src to completion and returns every token.
func Tokens(src string) []Token {
	var tokens []Token
	for tok := range New(src).All() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// All iterates over the remaining tokens of the input.
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Next scans and returns the next token. The second result is false once
// the input is exhausted; end-of-input is not itself a token.
func (l *Lexer) Next() (Token, bool) {
	if l.cursor >= len(l.src) {
		return Token{}, false
	}

	start := l.cursor
	kind, terminated := l.scan(start)
	return Token{
		Kind:       kind,
		Text:       l.src[start:l.cursor],
		Terminated: terminated,
	}, true
}

func (l *Lexer) scan(start int) (syntax.Kind, bool) {
	r := l.bump()
	switch {
	case r == '(':
		return syntax.OpenParen, true
	case r == ')':
		return syntax.CloseParen, true
	case r == '{':
		return syntax.OpenBrace, true
	case r == '}':
		return syntax.CloseBrace, true
	case r == '>':
		return syntax.GreaterThan, true
	case r == '-':
		return syntax.Minus, true

	case r == '/':
		switch l.peek() {
		case '/':
			return l.lineComment()
		case '*':
			return l.blockComment()
		}
		// A lone slash is not part of the language.
		return syntax.Error, true

	case r == '\'' || r == '"':
		return l.string(r)

	case unicode.IsSpace(r):
		return l.whitespace()

	case isIdentStart(r):
		return l.ident(start)

	default:
		// Take the rest of the grapheme cluster so that combining
		// sequences stay inside one unknown token.
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(l.src[start:], -1)
		l.cursor = start + len(cluster)
		return syntax.Error, true
	}
}

// lineComment scans "//" through end-of-line, not consuming the newline.
func (l *Lexer) lineComment() (syntax.Kind, bool) {
	l.bump() // The second /.
	for l.peek() != '\n' && l.peek() != eof {
		l.bump()
	}
	return syntax.LineComment, true
}

// blockComment scans "/*" through the matching "*/". Comments do not nest.
func (l *Lexer) blockComment() (syntax.Kind, bool) {
	l.bump() // The *.
	for {
		switch r := l.bump(); {
		case r == eof:
			return syntax.BlockComment, false
		case r == '*' && l.peek() == '/':
			l.bump()
			return syntax.BlockComment, true
		}
	}
}

// string scans from just past the opening quote through the first matching
// quote. There is no escape processing and no nesting.
func (l *Lexer) string(quote rune) (syntax.Kind, bool) {
	for {
		switch l.bump() {
		case eof:
			return syntax.String, false
		case quote:
			return syntax.String, true
		}
	}
}

// whitespace scans a maximal run of whitespace into one token.
func (l *Lexer) whitespace() (syntax.Kind, bool) {
	for unicode.IsSpace(l.peek()) {
		l.bump()
	}
	return syntax.Whitespace, true
}

// keywords is the exact-match table checked after an identifier run.
var keywords = map[string]syntax.Kind{
	"fn": syntax.Fn,
}

func (l *Lexer) ident(start int) (syntax.Kind, bool) {
	for isIdentContinue(l.peek()) {
		l.bump()
	}
	if kind, ok := keywords[l.src[start:l.cursor]]; ok {
		return kind, true
	}
	return syntax.Ident, true
}

// peek returns the next rune without consuming it, or eof.
func (l *Lexer) peek() rune {
	if l.cursor >= len(l.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.cursor:])
	return r
}

// bump consumes and returns the next rune, or eof. Invalid UTF-8 advances
// one byte at a time so the cursor always makes progress.
func (l *Lexer) bump() rune {
	if l.cursor >= len(l.src) {
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.src[l.cursor:])
	l.cursor += n
	return r
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}
