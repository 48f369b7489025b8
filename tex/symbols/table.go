// table.go -
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

package symbols

func init() {
	// binary operators
	register(MathMode, Bin, '+', "+")
	register(MathMode, Bin, '−', "-")
	register(MathMode, Bin, '*', "*")
	register(MathMode, Bin, '±', "\\pm")
	register(MathMode, Bin, '∓', "\\mp")
	register(MathMode, Bin, '×', "\\times")
	register(MathMode, Bin, '÷', "\\div")
	register(MathMode, Bin, '⋅', "\\cdot")
	register(MathMode, Bin, '∘', "\\circ")
	register(MathMode, Bin, '∪', "\\cup")
	register(MathMode, Bin, '∩', "\\cap")
	register(MathMode, Bin, '∧', "\\wedge")
	register(MathMode, Bin, '∨', "\\vee")
	register(MathMode, Bin, '⊕', "\\oplus")
	register(MathMode, Bin, '⊗', "\\otimes")
	register(MathMode, Bin, '⊙', "\\odot")
	register(MathMode, Bin, '∖', "\\setminus")
	register(MathMode, Bin, '†', "\\dagger")

	// relations
	register(MathMode, Rel, '=', "=")
	register(MathMode, Rel, '<', "<")
	register(MathMode, Rel, '>', ">")
	register(MathMode, Rel, ':', ":")
	register(MathMode, Rel, '≤', "\\le")
	register(MathMode, Rel, '≤', "\\leq")
	register(MathMode, Rel, '≥', "\\ge")
	register(MathMode, Rel, '≥', "\\geq")
	register(MathMode, Rel, '≠', "\\ne")
	register(MathMode, Rel, '∼', "\\sim")
	register(MathMode, Rel, '≃', "\\simeq")
	register(MathMode, Rel, '≈', "\\approx")
	register(MathMode, Rel, '≡', "\\equiv")
	register(MathMode, Rel, '⊂', "\\subset")
	register(MathMode, Rel, '⊃', "\\supset")
	register(MathMode, Rel, '⊆', "\\subseteq")
	register(MathMode, Rel, '⊇', "\\supseteq")
	register(MathMode, Rel, '∈', "\\in")
	register(MathMode, Rel, '∋', "\\ni")
	register(MathMode, Rel, '∝', "\\propto")
	register(MathMode, Rel, '⊥', "\\perp")
	register(MathMode, Rel, '∣', "\\mid")
	register(MathMode, Rel, '∥', "\\parallel")
	register(MathMode, Rel, '⊢', "\\vdash")
	register(MathMode, Rel, '⊣', "\\dashv")
	register(MathMode, Rel, '→', "\\to")
	register(MathMode, Rel, '←', "\\gets")

	// large operators
	register(MathMode, Op, '∑', "\\sum")
	register(MathMode, Op, '∏', "\\prod")
	register(MathMode, Op, '∫', "\\int")
	register(MathMode, Op, '∮', "\\oint")
	register(MathMode, Op, '⋁', "\\bigvee")
	register(MathMode, Op, '⋀', "\\bigwedge")
	register(MathMode, Op, '⋂', "\\bigcap")
	register(MathMode, Op, '⋃', "\\bigcup")

	// delimiters
	register(MathMode, Open, '(', "(")
	register(MathMode, Open, '[', "[")
	register(MathMode, Open, '⟨', "\\langle")
	register(MathMode, Open, '⌊', "\\lfloor")
	register(MathMode, Open, '⌈', "\\lceil")
	register(MathMode, Close, ')', ")")
	register(MathMode, Close, ']', "]")
	register(MathMode, Close, '⟩', "\\rangle")
	register(MathMode, Close, '⌋', "\\rfloor")
	register(MathMode, Close, '⌉', "\\rceil")

	// punctuation
	register(MathMode, Punct, ',', ",")
	register(MathMode, Punct, ';', ";")

	// text-mode punctuation used by alias macros
	register(TextMode, Punct, '–', "\\textendash")
	register(TextMode, Punct, '—', "\\textemdash")
}
