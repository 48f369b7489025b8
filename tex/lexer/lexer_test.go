// lexer_test.go -
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

package lexer

import (
	"errors"
	"testing"

	"mathtex/tex/token"
)

func TestLexControlSequence(t *testing.T) {
	testCases := []struct{ in, out string }{
		{"\\frac", "\\frac"},
		{"\\frac12", "\\frac"},
		{"\\frac {1}", "\\frac"},
		{"\\df@tag x", "\\df@tag"},
		{"\\@ifnextchar*", "\\@ifnextchar"},
		{"\\{}", "\\{"},
		{"\\\\x", "\\\\"},
		{"\\,y", "\\,"},
		{"\\2t", "\\2"},
	}
	for i, testCase := range testCases {
		l := New(testCase.in)
		tok, err := l.Lex()
		if err != nil {
			t.Error("failed to read control sequence", err)
		} else if tok.Text != testCase.out {
			t.Errorf("test %d: wrong token, expected %q, got %q",
				i, testCase.out, tok.Text)
		}
	}
}

func TestLexStream(t *testing.T) {
	testCases := []struct {
		in  string
		out []string
	}{
		{"\\frac{1}{2}", []string{"\\frac", "{", "1", "}", "{", "2", "}"}},
		{"a + b", []string{"a", "+", "b"}},
		{"x%comment\ny", []string{"x", "y"}},
		{"#1", []string{"#", "1"}},
		{"α+β", []string{"α", "+", "β"}},
		{"…", []string{"…"}},
		{"", nil},
	}
	for i, testCase := range testCases {
		toks, err := New(testCase.in).ReadAll()
		if err != nil {
			t.Fatal(i, err)
		}
		if len(toks) != len(testCase.out) {
			t.Fatalf("test %d: wrong number of tokens, expected %d, got %v",
				i, len(testCase.out), toks)
		}
		for j, tok := range toks {
			if tok.Text != testCase.out[j] {
				t.Errorf("test %d: token %d is %q, expected %q",
					i, j, tok.Text, testCase.out[j])
			}
		}
	}
}

func TestLexEOF(t *testing.T) {
	l := New("x")
	tok, err := l.Lex()
	if err != nil || tok.Text != "x" {
		t.Fatal("unexpected first token", tok, err)
	}
	for i := 0; i < 3; i++ {
		tok, err = l.Lex()
		if err != nil {
			t.Fatal(err)
		}
		if !tok.IsEOF() {
			t.Error("expected EOF token, got", tok.Text)
		}
	}
}

func TestLexInvalidUTF8(t *testing.T) {
	testCases := []string{
		"\xff",
		"a+\xffb",
		"x\xc3",     // truncated two-byte sequence
		"\\\xff",    // after a backslash
		"\\char\x80",
	}
	for _, in := range testCases {
		l := New(in)
		var err error
		for i := 0; i < len(in)+1 && err == nil; i++ {
			var tok token.Token
			tok, err = l.Lex()
			if err == nil && tok.IsEOF() {
				t.Errorf("%q: input drained without a scan error", in)
				break
			}
		}
		var scanErr *Error
		if err != nil && !errors.As(err, &scanErr) {
			t.Errorf("%q: wrong error type %T", in, err)
		}
	}
}

func TestLexError(t *testing.T) {
	l := New("x + \\")
	var err error
	for i := 0; i < 3 && err == nil; i++ {
		_, err = l.Lex()
	}
	if err == nil {
		t.Fatal("expected scan error for trailing backslash")
	}
	var scanErr *Error
	if !errors.As(err, &scanErr) {
		t.Fatalf("wrong error type %T", err)
	}
	if scanErr.Line != 1 {
		t.Error("wrong line", scanErr.Line)
	}
}
