// builtins.go -
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
	"sync"

	"mathtex/tex/lexer"
)

var (
	builtinOnce sync.Once
	builtins    map[string]Definition
)

// Builtins returns the catalog of built-in macro definitions.  The
// catalog is built on the first call and must not be modified
// afterwards; every Namespace shares it as its read-only base.
func Builtins() map[string]Definition {
	builtinOnce.Do(initBuiltins)
	return builtins
}

func define(name string, def Definition) {
	builtins[name] = def
}

// defineString registers a zero-argument literal body.  The body is
// tokenized and expanded again on use, so it may refer to any other
// macro, including ones registered later.
func defineString(name, body string) {
	define(name, Literal{Body: body})
}

func defineNative(name string, fn func(e *Expander) (Definition, error)) {
	define(name, Native(fn))
}

// defineTemplate registers a pre-tokenized body.  The arity is taken
// from the highest #n marker in the body.
func defineTemplate(name, body string) {
	define(name, mustTemplate(body))
}

// mustTemplate builds a Template from a body string.  It is meant for
// catalog entries and panics on malformed bodies.
func mustTemplate(body string) Template {
	toks, err := lexer.New(body).ReadAll()
	if err != nil {
		panic(fmt.Sprintf("invalid builtin macro body %q: %v", body, err))
	}
	arity := 0
	for i := 0; i+1 < len(toks); i++ {
		if toks[i].Text != "#" {
			continue
		}
		if toks[i+1].Text == "#" {
			i++
			continue
		}
		if n, ok := paramNumber(toks[i+1].Text); ok && n > arity {
			arity = n
		}
	}
	return Template{Tokens: toks, Arity: arity}
}

// initBuiltins fills the catalog.  Registering a name twice
// overwrites the earlier entry; the Unicode section at the end relies
// on this for code-point aliases of ASCII-named macros.
func initBuiltins() {
	builtins = make(map[string]Definition)

	// definition commands
	defineNative("\\def", func(e *Expander) (Definition, error) {
		return parseDef(e, false)
	})
	defineNative("\\gdef", func(e *Expander) (Definition, error) {
		return parseDef(e, true)
	})
	defineNative("\\global", parseGlobal)
	defineNative("\\newcommand", func(e *Expander) (Definition, error) {
		return parseNewcommand(e, "\\newcommand", false, true)
	})
	defineNative("\\renewcommand", func(e *Expander) (Definition, error) {
		return parseNewcommand(e, "\\renewcommand", true, false)
	})
	defineNative("\\providecommand", func(e *Expander) (Definition, error) {
		return parseNewcommand(e, "\\providecommand", true, true)
	})

	// character code literals
	defineNative("\\char", parseChar)

	// context-sensitive ellipses
	defineNative("\\dots", parseDots)
	defineNative("\\dotso", parseDotso)
	defineNative("\\dotsc", parseDotsc)
	defineNative("\\cdots", parseCdots)
	defineString("\\dotsb", "\\cdots")
	defineString("\\dotsm", "\\cdots")
	defineString("\\dotsi", "\\!\\ldots")
	defineString("\\dotsx", "\\ldots\\,")

	// LaTeX lookahead conditionals
	defineNative("\\@ifnextchar", parseIfNextChar)
	defineTemplate("\\@ifstar", "\\@ifnextchar *{\\@firstoftwo{#1}}")
	defineNative("\\@firstoftwo", parseFirstOfTwo)
	defineNative("\\@secondoftwo", parseSecondOfTwo)

	// equation tags
	defineString("\\tag", "\\@ifstar\\tag@literal\\tag@paren")
	defineTemplate("\\tag@paren", "\\tag@literal{({#1})}")
	defineNative("\\tag@literal", parseTagLiteral)

	// plain TeX and amsmath aliases
	defineString("\\bgroup", "{")
	defineString("\\egroup", "}")
	defineString("\\lq", "`")
	defineString("\\rq", "'")
	defineString("\\ldotp", "\\mathpunct{.}")
	defineString("\\cdotp", "\\mathpunct{\\cdot}")
	defineString("\\neq", "\\ne")
	defineString("\\notin", "\\not\\in")
	defineString("\\iff", "\\;\\Longleftrightarrow\\;")
	defineString("\\implies", "\\;\\Longrightarrow\\;")
	defineString("\\impliedby", "\\;\\Longleftarrow\\;")
	defineString("\\thinspace", "\\,")
	defineString("\\medspace", "\\:")
	defineString("\\thickspace", "\\;")
	defineTemplate("\\pmod", "\\allowbreak\\mkern18mu({\\operatorname{mod}}\\,\\,#1)")

	// Unicode code points for ASCII-named macros
	defineString("±", "\\pm")
	defineString("∓", "\\mp")
	defineString("×", "\\times")
	defineString("÷", "\\div")
	defineString("≠", "\\ne")
	defineString("≤", "\\le")
	defineString("≥", "\\ge")
	defineString("∞", "\\infty")
	defineString("…", "\\dots")
	defineString("⋯", "\\cdots")
	defineString("→", "\\to")
	defineString("ℝ", "\\mathbb{R}")
	defineString("ℕ", "\\mathbb{N}")
	defineString("ℤ", "\\mathbb{Z}")
	defineString("ℚ", "\\mathbb{Q}")
	defineString("ℂ", "\\mathbb{C}")
}

// parseIfNextChar implements \@ifnextchar{tok}{yes}{no}: peek at the
// next unexpanded token and expand to the second or third argument
// depending on whether it matches the first.  The peeked token itself
// stays in the stream.
func parseIfNextChar(e *Expander) (Definition, error) {
	args, err := e.ConsumeArgs(3)
	if err != nil {
		return nil, err
	}
	next, err := e.Future()
	if err != nil {
		return nil, err
	}
	if len(args[0]) == 1 && args[0][0].Text == next.Text {
		return Template{Tokens: args[1]}, nil
	}
	return Template{Tokens: args[2]}, nil
}

func parseFirstOfTwo(e *Expander) (Definition, error) {
	args, err := e.ConsumeArgs(2)
	if err != nil {
		return nil, err
	}
	return Template{Tokens: args[0]}, nil
}

func parseSecondOfTwo(e *Expander) (Definition, error) {
	args, err := e.ConsumeArgs(2)
	if err != nil {
		return nil, err
	}
	return Template{Tokens: args[1]}, nil
}

// parseTagLiteral implements the working part of \tag.  The tag text
// is stored by globally defining \df@tag; a surviving definition
// means the formula already carries a tag.
func parseTagLiteral(e *Expander) (Definition, error) {
	if e.IsDefined("\\df@tag") {
		return nil, &DuplicateTagError{}
	}
	return mustTemplate("\\gdef\\df@tag{\\text{#1}}"), nil
}
