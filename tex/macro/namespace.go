// namespace.go -
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

// Namespace is the scoped symbol table for macro definitions.  It
// consists of the shared builtin catalog, which is never written to,
// and a stack of override frames holding user definitions.
//
// The host parser opens a frame with BeginGroup when it enters a
// lexical group and drops it again with EndGroup; definitions made
// locally inside the frame disappear with it.  One Namespace belongs
// to one parse session and must not be shared.
type Namespace struct {
	base   map[string]Definition
	frames []map[string]Definition
}

// NewNamespace creates a Namespace for a fresh parse session, seeded
// with the builtin catalog.
func NewNamespace() *Namespace {
	return &Namespace{
		base:   Builtins(),
		frames: []map[string]Definition{make(map[string]Definition)},
	}
}

// Get returns the innermost definition of the given macro name.  The
// second return value reports whether the name is defined at all;
// an unknown name is not an error.
func (ns *Namespace) Get(name string) (Definition, bool) {
	for i := len(ns.frames) - 1; i >= 0; i-- {
		if def, ok := ns.frames[i][name]; ok {
			return def, true
		}
	}
	def, ok := ns.base[name]
	return def, ok
}

// IsDefined reports whether the given macro name has a definition.
func (ns *Namespace) IsDefined(name string) bool {
	_, ok := ns.Get(name)
	return ok
}

// Set installs a definition for the given macro name.  A local write
// goes into the innermost frame and lasts until that frame is
// dropped.  A global write goes into the outermost frame and removes
// shadowing entries from all inner frames, so it stays visible in the
// current group and in every group entered afterwards.  Builtins are
// never modified; a user definition merely shadows them.
func (ns *Namespace) Set(name string, def Definition, global bool) {
	if global {
		for _, frame := range ns.frames[1:] {
			delete(frame, name)
		}
		ns.frames[0][name] = def
		return
	}
	ns.frames[len(ns.frames)-1][name] = def
}

// BeginGroup opens a new override frame.
func (ns *Namespace) BeginGroup() {
	ns.frames = append(ns.frames, make(map[string]Definition))
}

// EndGroup drops the innermost override frame together with all local
// definitions made in it.
func (ns *Namespace) EndGroup() {
	if len(ns.frames) == 1 {
		panic("EndGroup without matching BeginGroup")
	}
	ns.frames = ns.frames[:len(ns.frames)-1]
}
