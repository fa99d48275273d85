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

import "strconv"

type ObjectKind int

const (
	Unit ObjectKind = iota
	Integer
	Closure
	Thunk // reserved for lazy evaluation; nothing constructs it
)

func (k ObjectKind) String() string {
	switch k {
	case Unit:
		return "unit"
	case Integer:
		return "integer"
	case Closure:
		return "closure"
	case Thunk:
		return "thunk"
	}
	return "unknown"
}

// Procedure is the uniform calling convention: it receives the caller's
// environment and the unevaluated operands, args[0] being the callee itself.
// The procedure decides which operands to evaluate and in which order.
type Procedure func(en *Env, args []Expression) Object

// Object is a runtime value. It is copied by value; a Closure shares its
// Procedure, which owns its captured environment snapshot.
type Object struct {
	Kind  ObjectKind
	value int64
	proc  Procedure
	name  string // "lambda", "macro" or the name of a builtin, for printing
}

func NewUnit() Object {
	return Object{}
}

func NewInt(i int64) Object {
	return Object{Kind: Integer, value: i}
}

func NewBool(b bool) Object {
	if b {
		return NewInt(1)
	}
	return NewInt(0)
}

func NewClosure(p Procedure) Object {
	return Object{Kind: Closure, proc: p, name: "procedure"}
}

func newNamedClosure(name string, p Procedure) Object {
	return Object{Kind: Closure, proc: p, name: name}
}

func (o Object) IsUnit() bool {
	return o.Kind == Unit
}

// Int returns the integer payload or raises a TypeError.
func (o Object) Int() int64 {
	if o.Kind != Integer {
		raise(TypeError, "expected integer, found %s", o.Kind)
	}
	return o.value
}

// Procedure returns the procedure payload or raises a TypeError.
func (o Object) Procedure() Procedure {
	if o.Kind != Closure {
		raise(TypeError, "expected closure, found %s", o.Kind)
	}
	return o.proc
}

func (o Object) String() string {
	switch o.Kind {
	case Integer:
		return strconv.FormatInt(o.value, 10)
	case Closure:
		return "#<" + o.name + ">"
	case Thunk:
		return "#<thunk>"
	}
	return ""
}
