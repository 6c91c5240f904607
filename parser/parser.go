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

// Package parser turns rue source text into a lossless syntax tree.
//
// The parser is error-tolerant: it terminates on arbitrary input, never
// aborts, and always produces a complete tree covering every token, plus a
// list of diagnostics. A token the grammar cannot place is isolated into a
// single-token [syntax.Error] node so the cursor always advances.
package parser

import (
	"github.com/Rigidity/rue-lang/lexer"
	"github.com/Rigidity/rue-lang/report"
	"github.com/Rigidity/rue-lang/source"
	"github.com/Rigidity/rue-lang/syntax"
)

// Parse lexes and parses src. It always returns a finished tree whose
// leaves reproduce src exactly; anything wrong with the input is reported
// through the diagnostic list, never as a Go error.
func Parse(src string) (*syntax.Tree, *report.Report) {
	p := &parser{
		tokens:  lexer.Tokens(src),
		builder: syntax.NewBuilder(),
		report:  &report.Report{},
	}
	program(p)
	return p.builder.Build(), p.report
}

// parser drives grammar productions over a flat token slice.
//
// Grammar productions bracket composite nodes with start and finish, and
// move the cursor only through eat, expect, and the error recovery in
// errorf. Trivia is never inspected by productions: any primitive that
// looks at the next token first flushes pending trivia into the innermost
// open node, which is how whitespace and comments end up attached to the
// tree without any production mentioning them.
type parser struct {
	tokens []lexer.Token
	pos    int
	offset int // Byte offset of tokens[pos].

	builder *syntax.Builder
	report  *report.Report
}

// start opens a composite node of the given kind.
func (p *parser) start(kind syntax.Kind) {
	p.builder.Start(kind)
}

// finish closes the innermost open node. Trailing trivia inside the
// node's extent is flushed first so it is owned by the node that was open
// when the cursor passed it.
func (p *parser) finish() {
	p.eatTrivia()
	p.builder.Finish()
}

// peek returns the kind of the next non-trivia token without consuming
// it, or [syntax.EOF] once the stream is exhausted.
func (p *parser) peek() syntax.Kind {
	p.eatTrivia()
	return p.peekRaw()
}

// at returns whether the next non-trivia token has the given kind. EOF is
// an ordinary kind here; productions dispatch on it like any other.
func (p *parser) at(kind syntax.Kind) bool {
	return p.peek() == kind
}

// eat consumes the next non-trivia token if it has the given kind,
// appending it (and the trivia before it) to the innermost open node.
// Reports whether it consumed anything; on a mismatch nothing changes.
func (p *parser) eat(kind syntax.Kind) bool {
	if p.peek() != kind {
		return false
	}
	p.bump()
	return true
}

// expect is eat with recovery: on a mismatch it records a diagnostic and
// isolates exactly one raw token into an [syntax.Error] node, so every
// failure still advances the cursor.
func (p *parser) expect(kind syntax.Kind) bool {
	if p.eat(kind) {
		return true
	}
	p.errorf("expected %v", kind)
	return false
}

// errorf records a diagnostic at the next token and performs single-token
// recovery.
func (p *parser) errorf(format string, args ...any) {
	p.report.Errorf(p.nextSpan(), format, args...)

	p.start(syntax.Error)
	p.bump()
	p.finish()
}

// bump unconditionally consumes the next non-trivia token. At EOF it is a
// no-op.
func (p *parser) bump() {
	p.eatTrivia()
	p.consume()
}

// eatTrivia flushes pending trivia tokens into the innermost open node.
func (p *parser) eatTrivia() {
	for p.peekRaw().IsTrivia() {
		p.consume()
	}
}

func (p *parser) peekRaw() syntax.Kind {
	if p.pos >= len(p.tokens) {
		return syntax.EOF
	}
	return p.tokens[p.pos].Kind
}

// consume appends the token under the cursor as a leaf of the innermost
// open node and advances past it.
func (p *parser) consume() {
	if p.pos >= len(p.tokens) {
		return
	}
	tok := p.tokens[p.pos]
	if tok.Terminated {
		p.builder.Token(tok.Kind, tok.Text)
	} else {
		p.builder.Unterminated(tok.Kind, tok.Text)
	}
	p.pos++
	p.offset += len(tok.Text)
}

// nextSpan returns the span of the token under the cursor, or the empty
// span at end-of-input.
func (p *parser) nextSpan() source.Span {
	if p.pos >= len(p.tokens) {
		return source.Span{Start: p.offset, End: p.offset}
	}
	return source.Span{Start: p.offset, End: p.offset + len(p.tokens[p.pos].Text)}
}
