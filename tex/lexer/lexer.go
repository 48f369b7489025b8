// lexer.go -
// Copyright (C) 2025  The mathtex authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package lexer splits math-mode TeX input into tokens for the macro
// expander.  The lexer uses math-mode conventions: white space is
// dropped, comments run from "%" to the end of the line, and every
// character outside a control sequence forms a token of its own.
package lexer

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"mathtex/tex/token"
)

// Lexer produces tokens from a fixed input string.
type Lexer struct {
	input string
	pos   int
}

// New creates a Lexer for the given input.  The input is normalised to
// NFC first, so that Unicode alias macros match their composed forms.
func New(input string) *Lexer {
	return &Lexer{input: norm.NFC.String(input)}
}

// Lex returns the next token.  At the end of the input it returns
// token.EOF, on this and on every following call.
func (l *Lexer) Lex() (token.Token, error) {
	l.skipBlanks()
	if l.pos >= len(l.input) {
		return token.EOF, nil
	}

	if l.input[l.pos] == '\\' {
		return l.lexControlSequence()
	}

	start := l.pos
	size, err := l.nextRuneLen()
	if err != nil {
		return token.Token{}, err
	}
	l.pos += size
	return token.New(l.input[start:l.pos]), nil
}

func (l *Lexer) lexControlSequence() (token.Token, error) {
	start := l.pos
	l.pos++
	if l.pos >= len(l.input) {
		return token.Token{}, l.makeError("incomplete control sequence")
	}

	if !isCsLetter(l.input[l.pos]) {
		size, err := l.nextRuneLen()
		if err != nil {
			return token.Token{}, err
		}
		l.pos += size
		return token.New(l.input[start:l.pos]), nil
	}
	for l.pos < len(l.input) && isCsLetter(l.input[l.pos]) {
		l.pos++
	}
	return token.New(l.input[start:l.pos]), nil
}

// ReadAll drains the lexer and returns all remaining tokens, not
// including the end-of-input marker.
func (l *Lexer) ReadAll() (token.TokenList, error) {
	var toks token.TokenList
	for {
		tok, err := l.Lex()
		if err != nil {
			return nil, err
		}
		if tok.IsEOF() {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func (l *Lexer) skipBlanks() {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case isSpace(c):
			l.pos++
		case c == '%':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isCsLetter reports whether c may appear in a control word.  The
// engine follows the internal-macro convention and always treats "@"
// as a letter, so names like \@ifnextchar lex as one token.
func isCsLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '@'
}

// nextRuneLen gives the byte length of the UTF-8 sequence at the
// current position, or an error if the input is not valid UTF-8 there.
func (l *Lexer) nextRuneLen() (int, error) {
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	if r == utf8.RuneError && size <= 1 {
		return 0, l.makeError("invalid UTF-8 encoding")
	}
	return size, nil
}
