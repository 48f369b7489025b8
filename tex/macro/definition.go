// definition.go -
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

import "mathtex/tex/token"

// Definition is the value stored under a macro name.  The three
// implementations, Literal, Template and Native, form a closed set;
// the expander matches on them explicitly.
type Definition interface {
	isDefinition()
}

// Literal is a macro body kept as source text.  The body takes no
// arguments and is tokenized again every time the macro is expanded,
// so a literal may refer to macros defined later.
type Literal struct {
	Body string
}

// Template is a pre-tokenized macro body with positional parameters.
// Parameter references appear in Tokens as a "#" token followed by a
// digit token; "##" stands for a literal "#".
type Template struct {
	Tokens token.TokenList
	Arity  int
}

// Native is a macro implemented in Go.  The callback may inspect and
// consume upcoming tokens through the Expander and returns the
// replacement as a Literal or Template, or nil for an empty
// replacement.
type Native func(e *Expander) (Definition, error)

func (Literal) isDefinition()  {}
func (Template) isDefinition() {}
func (Native) isDefinition()   {}
