// symbols.go -
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

// Package symbols holds the static classification table for math and
// text symbols.  The table is filled once at start-up and is read-only
// afterwards, so it can be shared between parse sessions.
package symbols

// Mode selects between the math-mode and text-mode symbol tables.
type Mode int

// The two symbol table modes.
const (
	MathMode Mode = iota
	TextMode
)

// Group classifies a symbol by its spacing behaviour.
type Group int

// The symbol groups, following the TeX atom types.
const (
	Ord Group = iota
	Op
	Bin
	Rel
	Open
	Close
	Punct
	Accent
	Inner
)

func (g Group) String() string {
	switch g {
	case Ord:
		return "ord"
	case Op:
		return "op"
	case Bin:
		return "bin"
	case Rel:
		return "rel"
	case Open:
		return "open"
	case Close:
		return "close"
	case Punct:
		return "punct"
	case Accent:
		return "accent"
	case Inner:
		return "inner"
	default:
		return "unknown"
	}
}

// Entry describes a single symbol.
type Entry struct {
	Group Group

	// Char is the character the symbol renders as.
	Char rune
}

var (
	mathTable = make(map[string]Entry)
	textTable = make(map[string]Entry)
)

// Classify looks up a symbol by the text of its token.  The second
// return value reports whether the symbol is known.
func Classify(mode Mode, name string) (Entry, bool) {
	var entry Entry
	var ok bool
	if mode == MathMode {
		entry, ok = mathTable[name]
	} else {
		entry, ok = textTable[name]
	}
	return entry, ok
}

// IsGroup reports whether name is a registered symbol belonging to one
// of the given groups.
func IsGroup(mode Mode, name string, groups ...Group) bool {
	entry, ok := Classify(mode, name)
	if !ok {
		return false
	}
	for _, g := range groups {
		if entry.Group == g {
			return true
		}
	}
	return false
}

func register(mode Mode, group Group, ch rune, name string) {
	entry := Entry{Group: group, Char: ch}
	if mode == MathMode {
		mathTable[name] = entry
	} else {
		textTable[name] = entry
	}
}
