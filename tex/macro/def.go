// def.go -
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
	"regexp"
	"strconv"
	"strings"

	"mathtex/tex/token"
)

// parseDef implements \def and \gdef.  The command reads the macro
// name, the parameter markers #1..#9 and the replacement body from
// the stream and registers the result:
//
//	\def\name#1#2{body}
//
// Parameters must be numbered consecutively starting at one.
func parseDef(e *Expander, global bool) (Definition, error) {
	name, err := consumeNameToken(e, "\\def")
	if err != nil {
		return nil, err
	}

	group, err := e.ConsumeArg()
	if err != nil {
		return nil, err
	}
	arity, body, err := scanParams(e, group)
	if err != nil {
		return nil, err
	}

	e.ns.Set(name, Template{Tokens: body, Arity: arity}, global)
	return nil, nil
}

// parseGlobal implements the \global prefix.  Only \global\def is
// supported; it behaves like \gdef.
func parseGlobal(e *Expander) (Definition, error) {
	tok, err := e.PopToken()
	if err != nil {
		return nil, err
	}
	if tok.Text != "\\def" {
		return nil, &UnsupportedCommandError{Command: tok.Text}
	}
	return parseDef(e, true)
}

// parseNewcommand implements the \newcommand family:
//
//	\newcommand{\name}[numArgs]{body}
//
// \newcommand requires the name to be new, \renewcommand requires it
// to exist, \providecommand accepts both and silently overwrites.
// The bracketed argument count is optional; without it the arity is
// taken from #1..#9 markers as in \def.
func parseNewcommand(e *Expander, cmd string, existsOK, missingOK bool) (Definition, error) {
	name, err := consumeNameToken(e, cmd)
	if err != nil {
		return nil, err
	}

	defined := e.ns.IsDefined(name)
	if defined && !existsOK {
		return nil, &RedefinitionPolicyError{Name: name, Defined: true}
	}
	if !defined && !missingOK {
		return nil, &RedefinitionPolicyError{Name: name, Defined: false}
	}

	group, err := e.ConsumeArg()
	if err != nil {
		return nil, err
	}
	override := -1
	if len(group) == 1 && group[0].Text == "[" {
		override, err = readBracketArity(e)
		if err != nil {
			return nil, err
		}
		group, err = e.ConsumeArg()
		if err != nil {
			return nil, err
		}
	}

	arity, body, err := scanParams(e, group)
	if err != nil {
		return nil, err
	}
	if override >= 0 {
		arity = override
	}

	e.ns.Set(name, Template{Tokens: body, Arity: arity}, false)
	return nil, nil
}

// consumeNameToken reads the macro name being defined.  The name must
// be a single token, either bare or wrapped in braces.
func consumeNameToken(e *Expander, cmd string) (string, error) {
	group, err := e.ConsumeArg()
	if err != nil {
		return "", err
	}
	if len(group) != 1 {
		return "", &DefinitionSyntaxError{
			Reason: cmd + "'s first argument must be a single token",
		}
	}
	return group[0].Text, nil
}

// scanParams reads the #1..#9 parameter markers preceding a macro
// body.  The given group is the first group already consumed; the
// first group that is not a "#" marker is the replacement body.
func scanParams(e *Expander, group token.TokenList) (int, token.TokenList, error) {
	arity := 0
	for len(group) == 1 && group[0].Text == "#" {
		digit, err := e.ConsumeArg()
		if err != nil {
			return 0, nil, err
		}
		want := strconv.Itoa(arity + 1)
		if len(digit) != 1 || digit[0].Text != want {
			return 0, nil, &DefinitionSyntaxError{
				Reason: fmt.Sprintf("parameter markers must be numbered "+
					"consecutively, expected #%s got #%s", want, digit.Text()),
			}
		}
		arity++

		group, err = e.ConsumeArg()
		if err != nil {
			return 0, nil, err
		}
	}
	return arity, group, nil
}

var arityLiteral = regexp.MustCompile(`^\s*[0-9]+\s*$`)

// readBracketArity reads the digits of a bracketed argument count up
// to the closing "]".  The tokens are fully expanded while reading,
// so the count itself may be produced by a macro.
func readBracketArity(e *Expander) (int, error) {
	var b strings.Builder
	for {
		tok, err := e.ExpandNextToken()
		if err != nil {
			return 0, err
		}
		if tok.Text == "]" || tok.IsEOF() {
			break
		}
		b.WriteString(tok.Text)
	}

	text := b.String()
	if !arityLiteral.MatchString(text) {
		return 0, &DefinitionSyntaxError{
			Reason: fmt.Sprintf("invalid number of arguments %q", text),
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n > 9 {
		return 0, &DefinitionSyntaxError{
			Reason: fmt.Sprintf("invalid number of arguments %q", text),
		}
	}
	return n, nil
}
