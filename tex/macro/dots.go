// dots.go -
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
	"strings"

	"mathtex/tex/symbols"
)

// The \dots family picks an ellipsis style by looking at the token
// that follows, without consuming it.  Each command expands to a
// further macro name, so the decision feeds back into ordinary
// recursive expansion.

// dotsStyle maps a following token to the ellipsis variant to use
// before it: \dotsb between binary operators and relations, \dotsi
// before integrals, \dotsc after commas, \dotsx for everything that
// asks for trailing space.
var dotsStyle = map[string]string{
	",": "\\dotsc",
	"\\not": "\\dotsb",
	// binary operators and relations
	"+": "\\dotsb", "=": "\\dotsb", "<": "\\dotsb", ">": "\\dotsb",
	"-": "\\dotsb", "*": "\\dotsb", ":": "\\dotsb",
	// symbols defined in terms of \DOTSB
	"\\DOTSB": "\\dotsb",
	"\\coprod": "\\dotsb", "\\bigvee": "\\dotsb", "\\bigwedge": "\\dotsb",
	"\\biguplus": "\\dotsb", "\\bigcap": "\\dotsb", "\\bigcup": "\\dotsb",
	"\\prod": "\\dotsb", "\\sum": "\\dotsb", "\\bigotimes": "\\dotsb",
	"\\bigoplus": "\\dotsb", "\\bigodot": "\\dotsb", "\\bigsqcup": "\\dotsb",
	"\\And": "\\dotsb",
	"\\longrightarrow": "\\dotsb", "\\Longrightarrow": "\\dotsb",
	"\\longleftarrow": "\\dotsb", "\\Longleftarrow": "\\dotsb",
	"\\longleftrightarrow": "\\dotsb", "\\Longleftrightarrow": "\\dotsb",
	"\\mapsto": "\\dotsb", "\\longmapsto": "\\dotsb",
	"\\hookrightarrow": "\\dotsb", "\\doteq": "\\dotsb",
	"\\mathbin": "\\dotsb", "\\mathrel": "\\dotsb",
	"\\relbar": "\\dotsb", "\\Relbar": "\\dotsb",
	"\\xrightarrow": "\\dotsb", "\\xleftarrow": "\\dotsb",
	// symbols defined in terms of \DOTSI
	"\\DOTSI": "\\dotsi",
	"\\int": "\\dotsi", "\\oint": "\\dotsi", "\\iint": "\\dotsi",
	"\\iiint": "\\dotsi", "\\iiiint": "\\dotsi", "\\idotsint": "\\dotsi",
	// symbols defined in terms of \DOTSX
	"\\DOTSX": "\\dotsx",
}

// spaceAfterDots lists the tokens before which an ellipsis needs a
// trailing thin space.
var spaceAfterDots = map[string]bool{
	")": true, "]": true, "\\rbrack": true,
	"\\}": true, "\\rbrace": true, "\\rangle": true,
	"\\rceil": true, "\\rfloor": true, "\\rgroup": true,
	"\\rmoustache": true, "\\right": true,
	"\\bigr": true, "\\biggr": true, "\\Bigr": true, "\\Biggr": true,
	"$": true,
	";": true, ".": true, ",": true,
}

// parseDots implements \dots.  The next token is expanded by one step
// first, so an alias in front of an operator still selects the
// operator style.  Registered binary and relation symbols count as
// operators as well.
func parseDots(e *Expander) (Definition, error) {
	next, err := e.ExpandAfterFuture()
	if err != nil {
		return nil, err
	}

	name := "\\dotso"
	switch {
	case dotsStyle[next.Text] != "":
		name = dotsStyle[next.Text]
	case strings.HasPrefix(next.Text, "\\not"):
		name = "\\dotsb"
	case symbols.IsGroup(symbols.MathMode, next.Text, symbols.Bin, symbols.Rel):
		name = "\\dotsb"
	}
	return Literal{Body: name}, nil
}

func parseDotso(e *Expander) (Definition, error) {
	next, err := e.Future()
	if err != nil {
		return nil, err
	}
	if spaceAfterDots[next.Text] {
		return Literal{Body: "\\ldots\\,"}, nil
	}
	return Literal{Body: "\\ldots"}, nil
}

func parseDotsc(e *Expander) (Definition, error) {
	next, err := e.Future()
	if err != nil {
		return nil, err
	}
	// \dotsc runs straight into a following comma.
	if spaceAfterDots[next.Text] && next.Text != "," {
		return Literal{Body: "\\ldots\\,"}, nil
	}
	return Literal{Body: "\\ldots"}, nil
}

func parseCdots(e *Expander) (Definition, error) {
	next, err := e.Future()
	if err != nil {
		return nil, err
	}
	if spaceAfterDots[next.Text] {
		return Literal{Body: "\\@cdots\\,"}, nil
	}
	return Literal{Body: "\\@cdots"}, nil
}
