// Copyright 2026 The Textlayout Authors.
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

package demo

import (
	"github.com/textlayout/textlayout/builder"
	"github.com/textlayout/textlayout/chunk"
	"github.com/textlayout/textlayout/rule"
)

// argSeparatorCost is the cost charged by a PositionalArgumentRule once
// any of its separators fire, the same flat per-rule cost for every call
// and parameter list this package writes.
const argSeparatorCost = 1

// nestIndent is how many columns a wrapped call or parameter list is
// indented relative to its enclosing line.
const nestIndent = 4

// Events parses a small Dart-flavored declaration language directly into
// builder operations: annotations, library/class/typedef declarations,
// function declarations, and function-typed parameters.
type Events struct {
	toks []token
	pos  int
}

// New lexes source and returns an Events ready to Visit.
func New(source string) *Events {
	return &Events{toks: lex(source)}
}

func (e *Events) peek() token {
	return e.toks[e.pos]
}

func (e *Events) peekAt(offset int) token {
	i := e.pos + offset
	if i >= len(e.toks) {
		return e.toks[len(e.toks)-1] // EOF
	}
	return e.toks[i]
}

func (e *Events) advance() token {
	t := e.toks[e.pos]
	if e.pos+1 < len(e.toks) {
		e.pos++
	}
	return t
}

func (e *Events) peekIsKeyword(kw string) bool {
	t := e.peek()
	return t.kind == tokIdent && t.text == kw
}

// countTopLevelItems counts the comma-separated items between the
// already-consumed opening paren (e.pos sits just past it) and its
// matching close paren, ignoring commas nested inside a deeper paren
// pair. It does not consume any tokens.
func (e *Events) countTopLevelItems() int {
	depth := 0
	count := 0
	sawAny := false
	for i := e.pos; ; i++ {
		t := e.toks[i]
		if t.kind == tokEOF {
			break
		}
		if depth == 0 && t.kind == tokRParen {
			break
		}
		sawAny = true
		switch t.kind {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
		case tokComma:
			if depth == 0 {
				count++
			}
		}
	}
	if sawAny {
		count++
	}
	return count
}

// trailingCommentFollows reports whether the token right after the
// not-yet-consumed closing paren at e.pos carries a same-line leading
// comment.
func (e *Events) trailingCommentFollows() bool {
	next := e.peekAt(1)
	return len(next.comments) > 0 && next.comments[0].LinesBefore == 0
}

func isSuppressingKind(k tokenKind) bool {
	switch k {
	case tokRParen, tokRBrace, tokComma, tokSemi, tokEOF:
		return true
	}
	return false
}

// writeTok consumes the next token and writes its leading trivia and
// text, using whatever whitespace is already pending.
func (e *Events) writeTok(b *builder.Builder) token {
	t := e.advance()
	b.WriteComments(t.comments, t.linesBefore, isSuppressingKind(t.kind))
	b.Write(t.text)
	return t
}

// Visit walks the whole token stream, writing one declaration at a time.
// Declarations are always separated by a single, unconditional newline:
// Dart-family formatters collapse any run of source blank lines between
// top-level declarations down to exactly one.
func (e *Events) Visit(b *builder.Builder) {
	first := true
	for e.peek().kind != tokEOF {
		if !first {
			b.WriteWhitespace(chunk.PendingNewline)
		}
		first = false
		e.parseDeclaration(b)
	}
	if eof := e.peek(); len(eof.comments) > 0 {
		b.WriteWhitespace(chunk.PendingNewline)
		b.WriteComments(eof.comments, eof.linesBefore, true)
	}
}

func (e *Events) parseDeclaration(b *builder.Builder) {
	for e.peek().kind == tokAt {
		e.writeAnnotation(b, true)
		b.WriteWhitespace(chunk.PendingNewline)
	}

	switch {
	case e.peekIsKeyword("library"):
		e.parseLibrary(b)
	case e.peekIsKeyword("class"):
		e.parseClass(b)
	case e.peekIsKeyword("typedef"):
		e.parseTypedef(b)
	default:
		e.parseFunction(b)
	}
}

// writeAnnotation writes "@name" and its optional parenthesized argument
// list. allowForce enables the comment-forces-wrap behavior: when the
// token immediately following this call carries a same-line trailing
// comment, the call is forced to fully split so the comment reads
// naturally after the last argument rather than dangling after a closing
// paren on its own line. Only top-level metadata does this; an inline
// parameter annotation never forces its enclosing parameter list.
func (e *Events) writeAnnotation(b *builder.Builder, allowForce bool) {
	e.writeTok(b) // "@"
	name := e.advance()
	b.WriteComments(name.comments, name.linesBefore, e.peek().kind != tokLParen)
	b.Write(name.text)

	if e.peek().kind != tokLParen {
		return
	}
	e.advance() // "("
	b.Write("(")

	n := e.countTopLevelItems()
	if n == 0 {
		e.advance() // ")"
		b.Write(")")
		return
	}

	b.StartRule(rule.NewPositionalArgument(n, argSeparatorCost))
	b.NestExpression(nestIndent, true)
	for i := 0; i < n; i++ {
		b.Split(i > 0, chunk.TriSingle, false)
		arg := e.advance()
		b.WriteComments(arg.comments, arg.linesBefore, i == n-1)
		b.Write(arg.text)
		if i < n-1 {
			b.Write(",")
			e.advance() // ","
		}
	}
	b.Unnest()

	if allowForce && e.trailingCommentFollows() {
		b.ForceRules()
	}
	b.EndRule()

	e.advance() // ")"
	b.Write(")")
}

func (e *Events) parseLibrary(b *builder.Builder) {
	e.writeTok(b) // "library"
	b.WriteWhitespace(chunk.PendingSpace)
	e.writeTok(b) // name
	e.writeTok(b) // ";"
}

func (e *Events) parseClass(b *builder.Builder) {
	e.writeTok(b) // "class"
	b.WriteWhitespace(chunk.PendingSpace)
	e.writeTok(b) // name
	b.WriteWhitespace(chunk.PendingSpace)
	e.writeTok(b) // "{"
	e.writeTok(b) // "}"
}

func (e *Events) parseTypedef(b *builder.Builder) {
	e.writeTok(b) // "typedef"
	b.WriteWhitespace(chunk.PendingSpace)
	e.writeFunctionSignature(b)
	e.writeTok(b) // ";"
}

// writeFunctionSignature writes "type name(params)" — the common shape
// shared by a typedef and a function-typed parameter.
func (e *Events) writeFunctionSignature(b *builder.Builder) {
	e.writeTok(b) // type
	b.WriteWhitespace(chunk.PendingSpace)
	e.writeTok(b) // name
	e.writeParamList(b)
}

// parseFunction writes a top-level function declaration, which in this
// language never spells out a return type: "name(params) { }" or
// "name(params);".
func (e *Events) parseFunction(b *builder.Builder) {
	e.writeTok(b) // name
	e.writeParamList(b)
	b.WriteWhitespace(chunk.PendingSpace)
	if e.peek().kind == tokSemi {
		e.writeTok(b)
		return
	}
	e.writeTok(b) // "{"
	e.writeTok(b) // "}"
}

// writeParamList writes a parenthesized, comma-separated parameter list.
// A single PositionalArgumentRule decides how many parameters (counting
// from the first) start their own line.
func (e *Events) writeParamList(b *builder.Builder) {
	e.advance() // "("
	b.Write("(")

	n := e.countTopLevelItems()
	if n == 0 {
		e.advance() // ")"
		b.Write(")")
		return
	}

	b.StartRule(rule.NewPositionalArgument(n, argSeparatorCost))
	b.NestExpression(nestIndent, true)
	for i := 0; i < n; i++ {
		b.Split(i > 0, chunk.TriSingle, false)
		e.parseParam(b)
		if i < n-1 {
			b.Write(",")
			e.advance() // ","
		}
	}
	b.Unnest()
	b.EndRule()

	e.advance() // ")"
	b.Write(")")
}

// parseParam writes one parameter. Leading annotations are always joined
// to what follows by a plain space and never split, regardless of blank
// lines in the source: parameter metadata reads inline, unlike
// declaration-level metadata. A parameter is either a plain name or a
// function-typed signature (a nested "type name(params)"), distinguished
// by whether an identifier is immediately followed by another identifier.
func (e *Events) parseParam(b *builder.Builder) {
	for e.peek().kind == tokAt {
		e.writeAnnotation(b, false)
		b.WriteWhitespace(chunk.PendingSpace)
	}

	first := e.advance()
	b.WriteComments(first.comments, first.linesBefore, false)
	b.Write(first.text)

	if e.peek().kind == tokIdent {
		b.WriteWhitespace(chunk.PendingSpace)
		name := e.advance()
		b.WriteComments(name.comments, name.linesBefore, false)
		b.Write(name.text)
		e.writeParamList(b)
	}
}
