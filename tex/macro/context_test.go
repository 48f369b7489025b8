// context_test.go -
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathtex/tex/token"
)

// expandAll drains the expander and returns the fully expanded input
// in source form.
func expandAll(t *testing.T, e *Expander) string {
	t.Helper()
	var out token.TokenList
	for {
		tok, err := e.ExpandNextToken()
		require.NoError(t, err)
		if tok.IsEOF() {
			return out.Text()
		}
		out = append(out, tok)
	}
}

// expandAllErr drains the expander and returns the first error.
func expandAllErr(e *Expander) error {
	for {
		tok, err := e.ExpandNextToken()
		if err != nil {
			return err
		}
		if tok.IsEOF() {
			return nil
		}
	}
}

func TestFutureDoesNotConsume(t *testing.T) {
	e := New("ab", NewNamespace())

	tok, err := e.Future()
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Text)

	tok, err = e.Future()
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Text)

	tok, err = e.PopToken()
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Text)

	tok, err = e.PopToken()
	require.NoError(t, err)
	assert.Equal(t, "b", tok.Text)
}

func TestPopTokenReturnsEOF(t *testing.T) {
	e := New("", NewNamespace())
	for i := 0; i < 2; i++ {
		tok, err := e.PopToken()
		require.NoError(t, err)
		assert.True(t, tok.IsEOF())
	}
}

func TestPushTokensOrder(t *testing.T) {
	e := New("z", NewNamespace())
	e.PushTokens(token.TokenList{token.New("x"), token.New("y")})

	var got []string
	for i := 0; i < 3; i++ {
		tok, err := e.PopToken()
		require.NoError(t, err)
		got = append(got, tok.Text)
	}
	assert.Equal(t, []string{"x", "y", "z"}, got)
}

func TestConsumeArg(t *testing.T) {
	testCases := []struct {
		in   string
		arg  string
		next string
	}{
		{"x y", "x", "y"},
		{"{ab}c", "ab", "c"},
		{"{a{b}}c", "a{b}", "c"},
		{"\\frac x", "\\frac", "x"},
	}
	for _, testCase := range testCases {
		e := New(testCase.in, NewNamespace())

		arg, err := e.ConsumeArg()
		require.NoError(t, err, testCase.in)
		assert.Equal(t, testCase.arg, arg.Text(), testCase.in)

		next, err := e.Future()
		require.NoError(t, err)
		assert.Equal(t, testCase.next, next.Text, testCase.in)
	}
}

func TestConsumeArgsExhausted(t *testing.T) {
	for _, in := range []string{"", "{a}", "{a}{unclosed"} {
		e := New(in, NewNamespace())
		_, err := e.ConsumeArgs(2)
		var missing *MissingArgumentError
		require.ErrorAs(t, err, &missing, "input %q", in)
	}
}

func TestExpandOnceNonMacro(t *testing.T) {
	e := New("x", NewNamespace())

	expanded, err := e.ExpandOnce()
	require.NoError(t, err)
	assert.False(t, expanded)

	tok, err := e.PopToken()
	require.NoError(t, err)
	assert.Equal(t, "x", tok.Text, "token is left in the stream")
}

func TestExpandOnceSingleStep(t *testing.T) {
	ns := NewNamespace()
	ns.Set("\\a", Literal{Body: "\\b"}, false)
	ns.Set("\\b", Literal{Body: "x"}, false)
	e := New("\\a", ns)

	expanded, err := e.ExpandOnce()
	require.NoError(t, err)
	require.True(t, expanded)

	// one step only: \b is in the stream, still unexpanded
	tok, err := e.PopToken()
	require.NoError(t, err)
	assert.Equal(t, "\\b", tok.Text)
}

func TestExpandNextToken(t *testing.T) {
	ns := NewNamespace()
	ns.Set("\\a", Literal{Body: "\\b"}, false)
	ns.Set("\\b", Literal{Body: "x"}, false)
	e := New("\\a", ns)

	tok, err := e.ExpandNextToken()
	require.NoError(t, err)
	assert.Equal(t, "x", tok.Text)
}

func TestExpandAfterFuture(t *testing.T) {
	ns := NewNamespace()
	ns.Set("\\a", Literal{Body: "xy"}, false)
	e := New("\\a z", ns)

	tok, err := e.ExpandAfterFuture()
	require.NoError(t, err)
	assert.Equal(t, "x", tok.Text)

	// the lookahead result is not consumed
	tok, err = e.PopToken()
	require.NoError(t, err)
	assert.Equal(t, "x", tok.Text)
}

func TestExpandMacro(t *testing.T) {
	ns := NewNamespace()
	ns.Set("\\vec", Literal{Body: "(x,y)"}, false)
	e := New("", ns)

	toks, err := e.ExpandMacro("\\vec")
	require.NoError(t, err)
	assert.Equal(t, "(x,y)", toks.Text())

	toks, err = e.ExpandMacro("\\nosuchmacro")
	require.NoError(t, err)
	assert.Nil(t, toks)
}

func TestExpandMacroAsText(t *testing.T) {
	e := New("", NewNamespace())

	// \dotsb -> \cdots -> \@cdots (no trailing space at end of input)
	text, err := e.ExpandMacroAsText("\\dotsb")
	require.NoError(t, err)
	assert.Equal(t, "\\@cdots", text)
}

func TestAliasIdempotence(t *testing.T) {
	ns := NewNamespace()
	ns.Set("\\B", Literal{Body: "x+y"}, false)
	ns.Set("\\A", Literal{Body: "\\B"}, false)
	e := New("", ns)

	a, err := e.ExpandMacro("\\A")
	require.NoError(t, err)
	b, err := e.ExpandMacro("\\B")
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestTemplateArityContract(t *testing.T) {
	ns := NewNamespace()
	ns.Set("\\pair", mustTemplate("(#1,#2)"), false)

	e := New("\\pair{a}b c", ns)
	assert.Equal(t, "(a,b)c", expandAll(t, e))

	e = New("\\pair{a}", ns)
	var missing *MissingArgumentError
	require.ErrorAs(t, expandAllErr(e), &missing)
}

func TestExpansionLimit(t *testing.T) {
	ns := NewNamespace()
	ns.Set("\\x", Literal{Body: "\\x"}, false)
	e := New("\\x", ns)
	e.SetMaxExpand(100)

	err := expandAllErr(e)
	var limit *ExpansionLimitError
	require.ErrorAs(t, err, &limit)
	assert.Equal(t, 100, limit.Limit)
}

func TestHashSubstitution(t *testing.T) {
	ns := NewNamespace()
	ns.Set("\\lit", mustTemplate("##1 and #1"), false)
	e := New("\\lit{z}", ns)
	assert.Equal(t, "#1andz", expandAll(t, e))
}
