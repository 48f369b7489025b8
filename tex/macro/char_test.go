// char_test.go -
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
)

func TestChar(t *testing.T) {
	testCases := []struct{ in, out string }{
		// decimal
		{"\\char65", "\\@char{65}"},
		{"\\char65x", "\\@char{65}x"},
		{"\\char0", "\\@char{0}"},
		// octal
		{"\\char'101", "\\@char{65}"},
		{"\\char'78", "\\@char{7}8"},
		// hexadecimal
		{"\\char\"41", "\\@char{65}"},
		{"\\char\"ff", "\\@char{255}"},
		{"\\char\"4G", "\\@char{4}G"},
		// code point of the following token
		{"\\char`a", "\\@char{97}"},
		{"\\char`\\%", "\\@char{37}"},
		{"\\char`α", "\\@char{945}"},
	}
	for _, testCase := range testCases {
		e := New(testCase.in, NewNamespace())
		assert.Equal(t, testCase.out, expandAll(t, e), testCase.in)
	}
}

func TestCharInvalidDigit(t *testing.T) {
	testCases := []struct {
		in   string
		base int
	}{
		{"\\char'8", 8},
		{"\\char'x", 8},
		{"\\char x", 10},
		{"\\char\"g", 16},
	}
	for _, testCase := range testCases {
		e := New(testCase.in, NewNamespace())
		var digitErr *InvalidDigitError
		require.ErrorAs(t, expandAllErr(e), &digitErr, testCase.in)
		assert.Equal(t, testCase.base, digitErr.Base, testCase.in)
	}
}

func TestCharMissingArgument(t *testing.T) {
	e := New("\\char`", NewNamespace())
	var missing *MissingArgumentError
	require.ErrorAs(t, expandAllErr(e), &missing)
	assert.Equal(t, "\\char`", missing.Command)
}
