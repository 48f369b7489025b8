// token_test.go -
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

package token

import "testing"

func TestText(t *testing.T) {
	testCases := []struct {
		toks []string
		out  string
	}{
		{[]string{"\\frac", "{", "1", "}", "{", "2", "}"}, "\\frac{1}{2}"},
		{[]string{"\\alpha", "x"}, "\\alpha x"},
		{[]string{"\\alpha", "+", "x"}, "\\alpha+x"},
		{[]string{"\\,", "x"}, "\\,x"},
		{[]string{"a", "b", "c"}, "abc"},
		{[]string{"\\ldots", "EOF"}, "\\ldots"},
		{nil, ""},
	}
	for i, testCase := range testCases {
		var toks TokenList
		for _, text := range testCase.toks {
			toks = append(toks, New(text))
		}
		if got := toks.Text(); got != testCase.out {
			t.Errorf("test %d: got %q, expected %q", i, got, testCase.out)
		}
	}
}

func TestIsControlSequence(t *testing.T) {
	testCases := []struct {
		text string
		want bool
	}{
		{"\\frac", true},
		{"\\,", true},
		{"x", false},
		{"EOF", false},
	}
	for _, testCase := range testCases {
		if got := New(testCase.text).IsControlSequence(); got != testCase.want {
			t.Errorf("%q: got %v", testCase.text, got)
		}
	}
}
