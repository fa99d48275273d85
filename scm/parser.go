/*
Copyright (C) 2023, 2026  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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

import "fmt"

type SourceInfo struct {
	source string
	line   int
}

func (source_info SourceInfo) String() string {
	return fmt.Sprintf("%s:%d", source_info.source, source_info.line)
}

// Read parses the first expression of s.
func Read(source, s string) (Expression, error) {
	return ReadExpression(NewTokenizer(source, NewStringReader(s)))
}

// ReadExpression reads one expression; Empty at end of input.
func ReadExpression(t *Tokenizer) (expression Expression, err error) {
	defer func() {
		// a broken input is reported instead of the syntax error it causes
		if t.Err() != nil {
			expression, err = Expression{}, t.Err()
		}
	}()
	defer catch(&err)
	return readFrom(t), nil
}

// Syntactic Analysis
func readFrom(t *Tokenizer) Expression {
	token := t.Next()
	si := SourceInfo{t.Source, token.Line}
	switch token.Kind {
	case Comment:
		return Expression{Kind: CommentExpr, Text: token.Text, Line: token.Line}
	case Constant:
		return Expression{Kind: ConstantExpr, Text: token.Text, Line: token.Line}
	case Identifier:
		return Expression{Kind: IdentifierExpr, Text: token.Text, Line: token.Line}
	case LeftParen:
		L := make([]Expression, 0)
		for {
			next := t.Peek()
			if next.Kind == RightParen {
				t.Next()
				return Expression{Kind: ApplicationExpr, Children: L, Line: token.Line}
			}
			if next.Kind == EndOfInput {
				raise(SyntaxError, "%s: expecting matching )", si)
			}
			L = append(L, readFrom(t))
		}
	case EndOfInput:
		return Expression{Kind: Empty, Line: token.Line}
	}
	raise(SyntaxError, "%s: unexpected %s", si, token.Kind)
	return Expression{}
}

// EvalAll evaluates every expression of s and returns the value of the last one.
func EvalAll(source, s string, en *Env) (Object, error) {
	return Run(NewTokenizer(source, NewStringReader(s)), en)
}

// Run reads and evaluates expressions until end of input. It stops at the
// first error; nothing after a failing form is evaluated.
func Run(t *Tokenizer, en *Env) (result Object, err error) {
	for {
		code, err := ReadExpression(t)
		if err != nil {
			return result, err
		}
		if code.IsEmpty() {
			return result, nil
		}
		result, err = evalForm(SourceInfo{t.Source, code.Line}, code, en)
		if err != nil {
			return result, err
		}
	}
}

func evalForm(si SourceInfo, code Expression, en *Env) (result Object, err error) {
	if Trace != nil {
		Trace.Duration(si.String(), "form", func() {
			result, err = EvalSafe(en, code)
		})
	} else {
		result, err = EvalSafe(en, code)
	}
	if e, ok := err.(*Error); ok {
		err = &Error{e.Kind, si.String() + ": " + e.Msg}
	}
	return
}
