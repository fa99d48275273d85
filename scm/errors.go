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

import "fmt"

type ErrorKind int

const (
	SyntaxError ErrorKind = iota + 1
	UnboundNameError
	TypeError
	ArityError
	MalformedConstantError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case UnboundNameError:
		return "unbound name"
	case TypeError:
		return "type error"
	case ArityError:
		return "arity error"
	case MalformedConstantError:
		return "malformed constant"
	}
	return "error"
}

// Error is the single error type of the interpreter. All of them are fatal:
// the evaluation that raised one is aborted as a whole.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrSyntax) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrSyntax            = &Error{Kind: SyntaxError}
	ErrUnboundName       = &Error{Kind: UnboundNameError}
	ErrType              = &Error{Kind: TypeError}
	ErrArity             = &Error{Kind: ArityError}
	ErrMalformedConstant = &Error{Kind: MalformedConstantError}
)

func newError(kind ErrorKind, format string, a ...any) *Error {
	return &Error{kind, fmt.Sprintf(format, a...)}
}

// raise aborts the current evaluation; the boundary functions turn it back into an error
func raise(kind ErrorKind, format string, a ...any) {
	panic(newError(kind, format, a...))
}

// catch converts a raised *Error into err and lets every other panic through.
func catch(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(*Error); ok {
			*err = e
			return
		}
		panic(r)
	}
}
