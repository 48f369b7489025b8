// doc.go -
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

// Package macro implements TeX-style macro expansion for math input.
//
// The package rewrites control sequences into primitive token
// sequences: user-defined macros from \def and the \newcommand family,
// string aliases from the builtin catalog, and native macros whose
// expansion depends on the upcoming tokens.  Expansion is driven by
// the downstream parser pulling one token at a time through an
// Expander; the package never expands further than the caller asks
// for.
//
// A self-referential definition like \def\x{\x} loops forever when
// expanded, exactly as it does in TeX.  Callers that need protection
// against such input can set a ceiling with SetMaxExpand.
package macro
