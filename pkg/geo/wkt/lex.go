// Copyright 2021 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

package wkt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError is an error that occurs while reading WKT, either because a
// token is malformed or because the tokens do not follow the grammar.
type ParseError struct {
	// Pos is the byte offset of the offending token.
	Pos int
	// Line and Col are the 1-based position of the offending token.
	Line, Col int
	// Expected describes what the grammar allowed at Pos.
	Expected string
	// Found describes the token that was actually there.
	Found string
	// Hint is an optional suggestion for fixing the input.
	Hint string

	str string
}

func (e *ParseError) Error() string {
	lineStart := strings.LastIndexByte(e.str[:e.Pos], '\n') + 1
	lineEnd := strings.IndexByte(e.str[e.Pos:], '\n')
	if lineEnd == -1 {
		lineEnd = len(e.str)
	} else {
		lineEnd += e.Pos
	}
	err := fmt.Sprintf("syntax error: expected %s but found %s at line %d, column %d\n%s\n%s^",
		e.Expected, e.Found, e.Line, e.Col, e.str[lineStart:lineEnd], strings.Repeat(" ", e.Pos-lineStart))
	if e.Hint != "" {
		err += fmt.Sprintf("\nHINT: %s", e.Hint)
	}
	return err
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokKeyword
	tokNumber
	tokLParen
	tokRParen
	tokComma
)

// token is a lexed unit of input. For keywords str is upper-cased; for
// numbers it is the literal text.
type token struct {
	kind tokenKind
	str  string
	num  float64
	pos  int
}

func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokKeyword:
		return fmt.Sprintf("keyword %q", t.str)
	case tokNumber:
		return fmt.Sprintf("number %s", t.str)
	default:
		return fmt.Sprintf("%q", t.str)
	}
}

// Constant returned by peek when the lexer reaches EOF.
const eof = 0

// wktLex turns WKT text into tokens on demand. It keeps a single token of
// lookahead and can be restarted from the beginning with reset.
type wktLex struct {
	line    string
	pos     int
	peeked  token
	hasPeek bool
}

func makeWktLex(line string) *wktLex {
	return &wktLex{line: line}
}

func (l *wktLex) reset() {
	l.pos = 0
	l.hasPeek = false
}

// peekToken returns the next token without consuming it.
func (l *wktLex) peekToken() (token, error) {
	if !l.hasPeek {
		tok, err := l.lex()
		if err != nil {
			return token{}, err
		}
		l.peeked, l.hasPeek = tok, true
	}
	return l.peeked, nil
}

// nextToken consumes and returns the next token.
func (l *wktLex) nextToken() (token, error) {
	tok, err := l.peekToken()
	if err != nil {
		return token{}, err
	}
	l.hasPeek = false
	return tok, nil
}

// lex lexes a token from the input.
func (l *wktLex) lex() (token, error) {
	// Skip leading spaces.
	l.trimLeft()
	start := l.pos

	if l.pos == len(l.line) {
		return token{kind: tokEOF, pos: start}, nil
	}
	switch c := l.peek(); {
	case c == '(':
		l.next()
		return token{kind: tokLParen, str: "(", pos: start}, nil
	case c == ')':
		l.next()
		return token{kind: tokRParen, str: ")", pos: start}, nil
	case c == ',':
		l.next()
		return token{kind: tokComma, str: ",", pos: start}, nil
	case isLetter(c):
		return l.keyword(start), nil
	case isNumStart(c):
		return l.num(start)
	default:
		l.next()
		return token{}, l.errorAt(start, "token", fmt.Sprintf("character %q", c), "")
	}
}

// keyword lexes a keyword, upper-casing it.
func (l *wktLex) keyword(start int) token {
	var b strings.Builder
	for isLetter(l.peek()) {
		c := l.next()
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return token{kind: tokKeyword, str: b.String(), pos: start}
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isNumStart(c byte) bool {
	switch c {
	case '-', '+', '.':
		return true
	default:
		return isDigit(c)
	}
}

// num lexes a number. Signs, a decimal point and an exponent are accepted;
// the value must be finite.
func (l *wktLex) num(start int) (token, error) {
	if c := l.peek(); c == '-' || c == '+' {
		l.next()
	}
	for {
		c := l.peek()
		if isDigit(c) || c == '.' {
			l.next()
			continue
		}
		if c == 'e' || c == 'E' {
			l.next()
			if s := l.peek(); s == '-' || s == '+' {
				l.next()
			}
			continue
		}
		break
	}
	str := l.line[start:l.pos]
	fl, err := strconv.ParseFloat(str, 64)
	if err != nil || math.IsInf(fl, 0) {
		return token{}, l.errorAt(start, "number", fmt.Sprintf("%q", str), "")
	}
	return token{kind: tokNumber, str: str, num: fl, pos: start}, nil
}

func (l *wktLex) peek() byte {
	if l.pos == len(l.line) {
		return eof
	}
	return l.line[l.pos]
}

func (l *wktLex) next() byte {
	c := l.peek()
	if l.pos < len(l.line) {
		l.pos++
	}
	return c
}

func (l *wktLex) trimLeft() {
	for {
		switch l.peek() {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			l.next()
		default:
			return
		}
	}
}

// errorAt builds a ParseError for the token starting at pos.
func (l *wktLex) errorAt(pos int, expected, found, hint string) *ParseError {
	line := 1 + strings.Count(l.line[:pos], "\n")
	col := pos - (strings.LastIndexByte(l.line[:pos], '\n') + 1) + 1
	return &ParseError{
		Pos:      pos,
		Line:     line,
		Col:      col,
		Expected: expected,
		Found:    found,
		Hint:     hint,
		str:      l.line,
	}
}

// unexpected builds a ParseError for tok.
func (l *wktLex) unexpected(tok token, expected string) *ParseError {
	return l.errorAt(tok.pos, expected, tok.describe(), "")
}
