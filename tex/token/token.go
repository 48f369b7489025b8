// token.go -
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

// Package token defines the lexical units exchanged between the lexer,
// the macro expander and the downstream parser.
package token

import "strings"

// Token is the smallest unit of input.  Text is either the name of a
// control sequence (including the leading backslash), a single visible
// character, or the end-of-input marker.
type Token struct {
	Text string
}

// EOF marks the end of the input stream.  The expander returns it
// instead of failing, so that lookahead code can test for the end of
// input like for any other token.
var EOF = Token{Text: "EOF"}

// New creates a token with the given text.
func New(text string) Token {
	return Token{Text: text}
}

// IsEOF reports whether the token is the end-of-input marker.
func (tok Token) IsEOF() bool {
	return tok.Text == EOF.Text
}

// IsControlSequence reports whether the token names a control sequence.
func (tok Token) IsControlSequence() bool {
	return len(tok.Text) > 1 && tok.Text[0] == '\\'
}

func (tok Token) isControlWord() bool {
	if !tok.IsControlSequence() {
		return false
	}
	for i := 1; i < len(tok.Text); i++ {
		c := tok.Text[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '@') {
			return false
		}
	}
	return true
}

// TokenList describes a run of tokens, for example the contents of a
// macro argument or the result of expanding a macro.
type TokenList []Token

// Text converts the token list back into source form.  A space is
// inserted after a control word where the following token would
// otherwise be absorbed into the name.
func (toks TokenList) Text() string {
	var b strings.Builder
	sepNeeded := false
	for _, tok := range toks {
		if tok.IsEOF() {
			continue
		}
		if sepNeeded && startsWithLetter(tok.Text) {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
		sepNeeded = tok.isControlWord()
	}
	return b.String()
}

func startsWithLetter(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
