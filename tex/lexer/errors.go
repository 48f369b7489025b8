// errors.go -
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
	"fmt"
	"strings"
)

// Error describes a scan failure together with human-readable
// information about the input position.
type Error struct {
	Message string
	Line    int
	Column  int
	Context string
}

func (err *Error) Error() string {
	res := fmt.Sprintf("%s at line %d, column %d",
		err.Message, err.Line, err.Column)
	if err.Context != "" {
		res += fmt.Sprintf(", before %q", err.Context)
	}
	return res
}

// makeError returns an error which includes the given message together
// with the current input position.
func (l *Lexer) makeError(message string) *Error {
	head := l.input[:l.pos]
	line := strings.Count(head, "\n") + 1
	column := l.pos - strings.LastIndexByte(head, '\n')

	context := l.input[l.pos:]
	if len(context) > 20 {
		context = context[:17] + "..."
	}

	return &Error{
		Message: message,
		Line:    line,
		Column:  column,
		Context: context,
	}
}
