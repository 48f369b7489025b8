// char.go -
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

package macro

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

// charDigits maps digit tokens to their numeric value.  The table
// covers all bases \char supports; digits too large for the selected
// base are rejected by the base check at the use sites.
var charDigits = map[string]int{
	"0": 0, "1": 1, "2": 2, "3": 3, "4": 4,
	"5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
	"a": 10, "b": 11, "c": 12, "d": 13, "e": 14, "f": 15,
	"A": 10, "B": 11, "C": 12, "D": 13, "E": 14, "F": 15,
}

// parseChar implements \char.  The first token selects the notation:
// "'" for octal, '"' for hexadecimal, "`" for the code point of the
// following (possibly escaped) character, anything else starts a
// decimal literal.  Digits are consumed greedily; the first token
// that is not a digit of the base stays in the stream.
func parseChar(e *Expander) (Definition, error) {
	tok, err := e.PopToken()
	if err != nil {
		return nil, err
	}

	base := 10
	switch tok.Text {
	case "'":
		base = 8
		tok, err = e.PopToken()
	case "\"":
		base = 16
		tok, err = e.PopToken()
	case "`":
		tok, err = e.PopToken()
		if err != nil {
			return nil, err
		}
		if tok.IsEOF() {
			return nil, &MissingArgumentError{Command: "\\char`"}
		}
		text := strings.TrimPrefix(tok.Text, "\\")
		r, _ := utf8.DecodeRuneInString(text)
		return charLiteral(int(r))
	}
	if err != nil {
		return nil, err
	}

	digit, ok := charDigits[tok.Text]
	if !ok || digit >= base {
		return nil, &InvalidDigitError{Digit: tok.Text, Base: base}
	}

	number := digit
	for {
		next, err := e.Future()
		if err != nil {
			return nil, err
		}
		digit, ok = charDigits[next.Text]
		if !ok || digit >= base {
			break
		}
		number = number*base + digit
		if _, err := e.PopToken(); err != nil {
			return nil, err
		}
	}
	return charLiteral(number)
}

// charLiteral emits the \@char call the downstream parser turns into
// a character from the current font.
func charLiteral(code int) (Definition, error) {
	cp, err := safecast.Conv[int32](code)
	if err != nil {
		return nil, fmt.Errorf("\\char: code point %d out of range: %w", code, err)
	}
	return Literal{Body: fmt.Sprintf("\\@char{%d}", cp)}, nil
}
