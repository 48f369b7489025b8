// context.go -
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

	"mathtex/tex/lexer"
	"mathtex/tex/token"
)

// Expander is the cursor over the pending token stream.  Tokens come
// from the lexer at the bottom and from a push-back stack on top of
// it; expanding a macro pushes its replacement onto the stack, so the
// replacement is seen before the rest of the input.
//
// An Expander works for exactly one parse session and is driven
// synchronously by its caller.  Native macros receive the same
// Expander and may consume further tokens or recursively trigger
// nested expansion.
type Expander struct {
	lex *lexer.Lexer
	ns  *Namespace

	// stack holds pushed-back tokens, innermost last.
	stack token.TokenList

	// bodyCache keeps the token form of literal macro bodies, so
	// alias chains are only tokenized once per session.
	bodyCache map[string]token.TokenList

	maxExpand int
	numExpand int
}

// New creates an Expander reading from the given input, resolving
// macro names against ns.
func New(input string, ns *Namespace) *Expander {
	return &Expander{
		lex:       lexer.New(input),
		ns:        ns,
		bodyCache: make(map[string]token.TokenList),
	}
}

// Namespace returns the namespace the Expander resolves against.  The
// host parser uses it to open and close groups at group boundaries.
func (e *Expander) Namespace() *Namespace {
	return e.ns
}

// IsDefined reports whether the given macro name has a definition.
func (e *Expander) IsDefined(name string) bool {
	return e.ns.IsDefined(name)
}

// SetMaxExpand sets a ceiling on the number of expansion steps
// performed over the Expander's lifetime.  The engine does no cycle
// detection, so a cyclic definition expands forever unless a ceiling
// is set.  A limit of 0 (the default) means no ceiling.
func (e *Expander) SetMaxExpand(limit int) {
	e.maxExpand = limit
}

// Future returns the next token without consuming it and without
// expanding it.
func (e *Expander) Future() (token.Token, error) {
	if len(e.stack) == 0 {
		tok, err := e.lex.Lex()
		if err != nil {
			return token.Token{}, err
		}
		e.stack = append(e.stack, tok)
	}
	return e.stack[len(e.stack)-1], nil
}

// PopToken consumes and returns the next unexpanded token.  At the
// end of the input it returns token.EOF instead of failing.
func (e *Expander) PopToken() (token.Token, error) {
	tok, err := e.Future()
	if err != nil {
		return token.Token{}, err
	}
	e.stack = e.stack[:len(e.stack)-1]
	return tok, nil
}

// PushToken pushes a single token back; it becomes the next token
// returned by Future and PopToken.
func (e *Expander) PushToken(tok token.Token) {
	e.stack = append(e.stack, tok)
}

// PushTokens pushes a token list back so that toks[0] is read first.
func (e *Expander) PushTokens(toks token.TokenList) {
	for i := len(toks) - 1; i >= 0; i-- {
		e.stack = append(e.stack, toks[i])
	}
}

// ExpandOnce performs a single expansion step on the next token.  If
// the token is a macro, its replacement is pushed back onto the
// stream and ExpandOnce reports true.  If it is not a macro, the
// stream is left untouched and ExpandOnce reports false.
func (e *Expander) ExpandOnce() (bool, error) {
	tok, err := e.PopToken()
	if err != nil {
		return false, err
	}
	def, ok := e.ns.Get(tok.Text)
	if !ok {
		e.PushToken(tok)
		return false, nil
	}

	e.numExpand++
	if e.maxExpand > 0 && e.numExpand > e.maxExpand {
		return false, &ExpansionLimitError{Limit: e.maxExpand}
	}

	if err := e.pushExpansion(def); err != nil {
		return false, err
	}
	return true, nil
}

// pushExpansion resolves one definition into tokens and pushes them
// onto the stream.  For a Template this consumes the template's
// arguments first.
func (e *Expander) pushExpansion(def Definition) error {
	switch d := def.(type) {
	case Literal:
		toks, err := e.tokenizeBody(d.Body)
		if err != nil {
			return err
		}
		e.PushTokens(toks)
	case Template:
		args, err := e.ConsumeArgs(d.Arity)
		if err != nil {
			return err
		}
		toks, err := substitute(d.Tokens, args)
		if err != nil {
			return err
		}
		e.PushTokens(toks)
	case Native:
		res, err := d(e)
		if err != nil {
			return err
		}
		if res == nil {
			return nil
		}
		if _, again := res.(Native); again {
			panic("native macro returned a native definition")
		}
		return e.pushExpansion(res)
	}
	return nil
}

// ExpandAfterFuture expands the next token by exactly one step and
// returns the token that is next after that, without consuming it.
func (e *Expander) ExpandAfterFuture() (token.Token, error) {
	if _, err := e.ExpandOnce(); err != nil {
		return token.Token{}, err
	}
	return e.Future()
}

// ExpandNextToken expands and consumes tokens until a non-macro token
// results, and returns that token.
func (e *Expander) ExpandNextToken() (token.Token, error) {
	for {
		expanded, err := e.ExpandOnce()
		if err != nil {
			return token.Token{}, err
		}
		if !expanded {
			return e.PopToken()
		}
	}
}

// ExpandTokens fully expands the given token list against the current
// namespace and returns the resulting non-macro tokens.  The pending
// stream beyond the given tokens is not touched, except that macros
// at the very end of the list may consume their arguments from it.
func (e *Expander) ExpandTokens(toks token.TokenList) (token.TokenList, error) {
	var out token.TokenList
	depth := len(e.stack)
	e.PushTokens(toks)
	for len(e.stack) > depth {
		expanded, err := e.ExpandOnce()
		if err != nil {
			return nil, err
		}
		if !expanded {
			tok, err := e.PopToken()
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
		}
	}
	return out, nil
}

// ExpandMacro fully expands the current definition of the named macro
// and returns the resulting tokens.  The result is nil if the name is
// not defined.
func (e *Expander) ExpandMacro(name string) (token.TokenList, error) {
	if !e.ns.IsDefined(name) {
		return nil, nil
	}
	return e.ExpandTokens(token.TokenList{token.New(name)})
}

// ExpandMacroAsText is like ExpandMacro but renders the expansion
// back into source form.
func (e *Expander) ExpandMacroAsText(name string) (string, error) {
	toks, err := e.ExpandMacro(name)
	if err != nil {
		return "", err
	}
	return toks.Text(), nil
}

// ConsumeArg reads a single macro argument from the stream: either
// the contents of a brace-delimited group, with the outer braces
// stripped, or a single token.
func (e *Expander) ConsumeArg() (token.TokenList, error) {
	tok, err := e.PopToken()
	if err != nil {
		return nil, err
	}
	if tok.IsEOF() {
		return nil, &MissingArgumentError{}
	}
	if tok.Text != "{" {
		return token.TokenList{tok}, nil
	}

	var arg token.TokenList
	depth := 1
	for {
		tok, err = e.PopToken()
		if err != nil {
			return nil, err
		}
		if tok.IsEOF() {
			return nil, &MissingArgumentError{}
		}
		switch tok.Text {
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				return arg, nil
			}
		}
		arg = append(arg, tok)
	}
}

// ConsumeArgs reads exactly numArgs macro arguments from the stream.
func (e *Expander) ConsumeArgs(numArgs int) ([]token.TokenList, error) {
	args := make([]token.TokenList, numArgs)
	for i := range args {
		arg, err := e.ConsumeArg()
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return args, nil
}

// tokenizeBody turns a literal macro body into tokens, caching the
// result per body string.
func (e *Expander) tokenizeBody(body string) (token.TokenList, error) {
	if toks, ok := e.bodyCache[body]; ok {
		return toks, nil
	}
	toks, err := lexer.New(body).ReadAll()
	if err != nil {
		return nil, err
	}
	e.bodyCache[body] = toks
	return toks, nil
}

// substitute replaces the parameter markers in a template body by the
// given argument token lists.  "#" followed by a digit is a parameter
// reference, "##" collapses into a literal "#".  A reference beyond
// the number of arguments fails; a bracketed argument count may
// declare fewer parameters than the body uses.
func substitute(tmpl token.TokenList, args []token.TokenList) (token.TokenList, error) {
	out := make(token.TokenList, 0, len(tmpl))
	for i := 0; i < len(tmpl); i++ {
		tok := tmpl[i]
		if tok.Text == "#" && i+1 < len(tmpl) {
			next := tmpl[i+1]
			if next.Text == "#" {
				out = append(out, next)
				i++
				continue
			}
			if num, ok := paramNumber(next.Text); ok {
				if num > len(args) {
					return nil, &DefinitionSyntaxError{
						Reason: fmt.Sprintf(
							"#%d is not a valid argument number", num),
					}
				}
				out = append(out, args[num-1]...)
				i++
				continue
			}
		}
		out = append(out, tok)
	}
	return out, nil
}

func paramNumber(text string) (int, bool) {
	if len(text) != 1 || text[0] < '1' || text[0] > '9' {
		return 0, false
	}
	return int(text[0] - '0'), true
}
