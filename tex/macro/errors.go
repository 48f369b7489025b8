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

package macro

import "fmt"

// The error types below describe the distinguishable ways macro
// processing can fail.  Each error aborts the current expansion and
// propagates to the caller unchanged; the engine never recovers from
// them internally.  Use errors.As to branch on the kind.

// DefinitionSyntaxError reports a malformed macro definition: a macro
// name that is not a single token, parameter markers that are out of
// order or repeated, or a malformed bracketed argument count.
type DefinitionSyntaxError struct {
	Reason string
}

func (err *DefinitionSyntaxError) Error() string {
	return "invalid macro definition: " + err.Reason
}

// RedefinitionPolicyError reports a \newcommand for a name that
// already exists, or a \renewcommand for one that does not.
type RedefinitionPolicyError struct {
	Name    string
	Defined bool
}

func (err *RedefinitionPolicyError) Error() string {
	if err.Defined {
		return fmt.Sprintf("%s is already defined; use \\renewcommand", err.Name)
	}
	return fmt.Sprintf("%s is not yet defined; use \\newcommand", err.Name)
}

// InvalidDigitError reports a \char literal whose first digit is not a
// digit of the requested base.
type InvalidDigitError struct {
	Digit string
	Base  int
}

func (err *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid base-%d digit %q", err.Base, err.Digit)
}

// MissingArgumentError reports that the input ended while a macro
// argument was still expected.
type MissingArgumentError struct {
	// Command names the macro whose argument is missing, if known.
	Command string
}

func (err *MissingArgumentError) Error() string {
	if err.Command != "" {
		return "missing argument for " + err.Command
	}
	return "end of input while reading macro argument"
}

// UnsupportedCommandError reports a \global prefix applied to anything
// other than \def.
type UnsupportedCommandError struct {
	Command string
}

func (err *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("\\global is not supported before %q", err.Command)
}

// DuplicateTagError reports a second \tag in the same formula.
type DuplicateTagError struct{}

func (err *DuplicateTagError) Error() string {
	return "multiple \\tag"
}

// ExpansionLimitError reports that a single expansion step chain
// exceeded the ceiling configured with SetMaxExpand.
type ExpansionLimitError struct {
	Limit int
}

func (err *ExpansionLimitError) Error() string {
	return fmt.Sprintf("too many macro expansions (limit %d), "+
		"possibly a cyclic definition", err.Limit)
}
