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

type ExprKind int

const (
	Empty ExprKind = iota // end of input
	IdentifierExpr
	ConstantExpr
	ApplicationExpr
	CommentExpr
)

// Expression is a node of the syntax tree. Text holds the name of an
// identifier, the digits of a constant or the line of a comment;
// Children holds the forms of an application, the callee first.
type Expression struct {
	Kind     ExprKind
	Text     string
	Children []Expression
	Line     int
}

func NewIdentifier(name string) Expression {
	return Expression{Kind: IdentifierExpr, Text: name}
}

func NewConstant(text string) Expression {
	return Expression{Kind: ConstantExpr, Text: text}
}

func NewApplication(children ...Expression) Expression {
	if children == nil {
		children = []Expression{}
	}
	return Expression{Kind: ApplicationExpr, Children: children}
}

func NewComment(text string) Expression {
	return Expression{Kind: CommentExpr, Text: text}
}

func (e Expression) IsEmpty() bool {
	return e.Kind == Empty
}

func (e Expression) IsIdentifier() bool {
	return e.Kind == IdentifierExpr
}
