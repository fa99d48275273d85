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

// Globalenv holds the builtins; NewGlobalEnv hands out independent copies.
var Globalenv = NewEnv()

func init() {
	init_builtins()
}

// NewGlobalEnv returns a fresh root environment containing all builtins.
func NewGlobalEnv() *Env {
	return Globalenv.Fork()
}

func binary(en *Env, args []Expression, op func(a, b int64) int64) Object {
	lhs := Eval(en, args[1]).Int()
	rhs := Eval(en, args[2]).Int()
	return NewInt(op(lhs, rhs))
}

// define binds into the global environment and into en itself, so the
// rest of a body sees the name as well
func define(en *Env, name string, value Object) {
	global := en.Global()
	global.Add(name, value)
	if global != en {
		en.Add(name, value)
	}
}

func mustName(form string, e Expression) string {
	if e.Kind != IdentifierExpr {
		raise(SyntaxError, "%s expects a name, found %s", form, e)
	}
	return e.Text
}

func init_builtins() {
	DeclareTitle("Output")
	Declare(Globalenv, &Declaration{
		"display", "evaluates value and prints the integer on its own line",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "int", "value to print"},
		}, "int",
		func(en *Env, args []Expression) Object {
			fmt.Fprintln(Output, Eval(en, args[1]).Int())
			return NewInt(0)
		},
	})

	DeclareTitle("Arithmetic")
	Declare(Globalenv, &Declaration{
		"+", "adds two integers",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"a", "int", "left operand"},
			DeclarationParameter{"b", "int", "right operand"},
		}, "int",
		func(en *Env, args []Expression) Object {
			return binary(en, args, func(a, b int64) int64 { return a + b })
		},
	})
	Declare(Globalenv, &Declaration{
		"-", "subtracts b from a",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"a", "int", "left operand"},
			DeclarationParameter{"b", "int", "right operand"},
		}, "int",
		func(en *Env, args []Expression) Object {
			return binary(en, args, func(a, b int64) int64 { return a - b })
		},
	})
	Declare(Globalenv, &Declaration{
		"<", "returns 1 if a is less than b, otherwise 0",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"a", "int", "left operand"},
			DeclarationParameter{"b", "int", "right operand"},
		}, "int",
		func(en *Env, args []Expression) Object {
			return NewBool(Eval(en, args[1]).Int() < Eval(en, args[2]).Int())
		},
	})

	DeclareTitle("Control flow")
	Declare(Globalenv, &Declaration{
		"begin", "evaluates all expressions in order and returns the value of the last one",
		1, 1000,
		[]DeclarationParameter{
			DeclarationParameter{"expr...", "expr", "expressions to evaluate"},
		}, "any",
		func(en *Env, args []Expression) Object {
			for i := 1; i < len(args)-1; i++ {
				Eval(en, args[i])
			}
			return Eval(en, args[len(args)-1])
		},
	})
	Declare(Globalenv, &Declaration{
		"if", "evaluates then if condition is nonzero, otherwise else; the other branch is not evaluated",
		3, 3,
		[]DeclarationParameter{
			DeclarationParameter{"condition", "int", "condition"},
			DeclarationParameter{"then", "expr", "evaluated when condition is nonzero"},
			DeclarationParameter{"else", "expr", "evaluated when condition is zero"},
		}, "any",
		func(en *Env, args []Expression) Object {
			if Eval(en, args[1]).Int() != 0 {
				return Eval(en, args[2])
			}
			return Eval(en, args[3])
		},
	})

	DeclareTitle("Binding")
	Declare(Globalenv, &Declaration{
		"define", "binds name to the value in the global environment and returns the value",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"name", "name", "name to bind (not evaluated)"},
			DeclarationParameter{"value", "any", "value to bind"},
		}, "any",
		func(en *Env, args []Expression) Object {
			name := mustName("define", args[1])
			value := Eval(en, args[2])
			define(en, name, value)
			return value
		},
	})
	Declare(Globalenv, &Declaration{
		"lambda", `creates a procedure

The procedure remembers a copy of the current environment. On a call, the
arguments are evaluated in the caller's environment and bound to the
parameters; the body sees the parameters and the remembered names first and
falls back to the caller's environment for everything else.`,
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"params", "params", "list of parameter names, e.g. (a b)"},
			DeclarationParameter{"body", "expr", "expression to evaluate on a call"},
		}, "func",
		func(en *Env, args []Expression) Object {
			return NewLambda(en, checkParams("lambda", args[1]), args[2])
		},
	})
	Declare(Globalenv, &Declaration{
		"macro", `creates a macro

(macro (params) body) returns the macro, (macro name (params) body) also
defines it under name. On a call, every occurrence of a parameter in body is
replaced by the unevaluated argument expression and the result is evaluated
in the caller's environment. The substitution is purely textual: an argument
used twice is evaluated twice, and names are not renamed.`,
		2, 3,
		[]DeclarationParameter{
			DeclarationParameter{"name", "name", "(optional) name to define the macro under"},
			DeclarationParameter{"params", "params", "list of parameter names"},
			DeclarationParameter{"body", "expr", "template expression"},
		}, "func",
		func(en *Env, args []Expression) Object {
			if len(args) == 3 {
				return NewMacro(checkParams("macro", args[1]), args[2])
			}
			name := mustName("macro", args[1])
			m := NewMacro(checkParams("macro", args[2]), args[3])
			define(en, name, m)
			return m
		},
	})
}
