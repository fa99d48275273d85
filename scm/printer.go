/*
Copyright (C) 2023, 2026  Carl-Philip Hänsch

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

import (
	"fmt"
	"io"
	"strings"
)

// String renders the expression in source syntax.
func (e Expression) String() string {
	switch e.Kind {
	case IdentifierExpr, ConstantExpr, CommentExpr:
		return e.Text
	case ApplicationExpr:
		l := make([]string, len(e.Children))
		for i, x := range e.Children {
			l[i] = x.String()
		}
		return "(" + strings.Join(l, " ") + ")"
	}
	return ""
}

func ws(indent int) string {
	return strings.Repeat("  ", indent)
}

// PrintTree writes the indented syntax tree of e, one node per line.
func PrintTree(w io.Writer, e Expression) {
	printTree(w, e, 0)
}

func printTree(w io.Writer, e Expression, indent int) {
	switch e.Kind {
	case Empty:
		fmt.Fprintln(w)
	case ApplicationExpr:
		fmt.Fprintln(w, ws(indent)+"Ap (")
		for _, child := range e.Children {
			printTree(w, child, indent+1)
		}
		fmt.Fprintln(w, ws(indent)+")")
	case IdentifierExpr:
		fmt.Fprintf(w, "%sIdentifier %q\n", ws(indent), e.Text)
	case ConstantExpr:
		fmt.Fprintf(w, "%sConstant %q\n", ws(indent), e.Text)
	case CommentExpr:
		fmt.Fprintf(w, "%sComment %q\n", ws(indent), e.Text)
	}
}
