/*
Copyright (C) 2026  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

// Substitute returns a copy of body where every identifier that is a key of
// table is replaced by its expression. It descends into every application,
// parameter lists of nested lambdas and macros included (no hygiene).
// Replacements are inserted as they are and not substituted again.
// body itself is never modified.
func Substitute(body Expression, table map[string]Expression) Expression {
	switch body.Kind {
	case IdentifierExpr:
		if replacement, ok := table[body.Text]; ok {
			return replacement
		}
		return body
	case ApplicationExpr:
		children := make([]Expression, len(body.Children))
		for i, child := range body.Children {
			children[i] = Substitute(child, table)
		}
		body.Children = children
		return body
	}
	return body
}
