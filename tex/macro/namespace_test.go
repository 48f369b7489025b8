// namespace_test.go -
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

func TestNamespaceFallsBackToBuiltins(t *testing.T) {
	ns := NewNamespace()

	def, ok := ns.Get("\\dotsb")
	require.True(t, ok)
	assert.Equal(t, Literal{Body: "\\cdots"}, def)

	_, ok = ns.Get("\\nosuchmacro")
	assert.False(t, ok)
	assert.False(t, ns.IsDefined("\\nosuchmacro"))
}

func TestNamespaceShadowsBuiltins(t *testing.T) {
	ns := NewNamespace()
	ns.Set("\\dotsb", Literal{Body: "xxx"}, false)

	def, ok := ns.Get("\\dotsb")
	require.True(t, ok)
	assert.Equal(t, Literal{Body: "xxx"}, def)

	// the shared catalog itself is untouched
	assert.Equal(t, Literal{Body: "\\cdots"}, Builtins()["\\dotsb"])
}

func TestNamespaceLocalScope(t *testing.T) {
	ns := NewNamespace()

	ns.BeginGroup()
	ns.Set("\\x", Literal{Body: "inner"}, false)
	assert.True(t, ns.IsDefined("\\x"))
	ns.EndGroup()

	assert.False(t, ns.IsDefined("\\x"))
}

func TestNamespaceGlobalOverridesLocal(t *testing.T) {
	ns := NewNamespace()

	ns.BeginGroup()
	ns.Set("\\x", Literal{Body: "v1"}, false)
	ns.Set("\\x", Literal{Body: "v2"}, true)

	def, ok := ns.Get("\\x")
	require.True(t, ok)
	assert.Equal(t, Literal{Body: "v2"}, def, "global write wins in the current frame")

	ns.BeginGroup()
	def, _ = ns.Get("\\x")
	assert.Equal(t, Literal{Body: "v2"}, def, "global write visible in new frames")
	ns.EndGroup()

	ns.EndGroup()
	def, _ = ns.Get("\\x")
	assert.Equal(t, Literal{Body: "v2"}, def, "global write survives the frame")
}

func TestNamespaceEndGroupPanics(t *testing.T) {
	ns := NewNamespace()
	assert.Panics(t, func() { ns.EndGroup() })
}
