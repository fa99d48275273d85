/*
Copyright (C) 2023-2026  Carl-Philip Hänsch
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
/*
 * A minimal S-expression evaluator: integers, define, closures, macros.
 *
 * Every callee receives its operands unevaluated, so if, begin, define and
 * lambda are ordinary procedures in the environment.
 */
package scm

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Output receives display and comment output.
var Output io.Writer = os.Stdout

/*
 Eval / Apply
*/

// Eval evaluates expression in en. Errors are raised as panics of *Error;
// use EvalSafe at the boundary.
func Eval(en *Env, expression Expression) Object {
	switch expression.Kind {
	case IdentifierExpr:
		return en.Lookup(expression.Text)
	case ConstantExpr:
		i, err := strconv.ParseInt(expression.Text, 10, 64)
		if err != nil {
			raise(MalformedConstantError, "%q is not a valid integer", expression.Text)
		}
		return NewInt(i)
	case CommentExpr:
		fmt.Fprintln(Output, expression.Text)
		return NewUnit()
	case ApplicationExpr:
		list := expression.Children
		if len(list) == 0 {
			raise(TypeError, "cannot apply the empty form ()")
		}
		callee := Eval(en, list[0])
		if callee.Kind != Closure {
			raise(TypeError, "%s is a %s, not a procedure", list[0], callee.Kind)
		}
		if Trace != nil {
			var result Object
			Trace.Duration(list[0].String(), "scm", func() {
				result = callee.proc(en, list)
			})
			return result
		}
		return callee.proc(en, list)
	}
	return NewUnit()
}

// EvalSafe evaluates expression and returns raised errors instead of panicking.
func EvalSafe(en *Env, expression Expression) (result Object, err error) {
	defer catch(&err)
	return Eval(en, expression), nil
}

func checkParams(form string, params Expression) []string {
	if params.Kind != ApplicationExpr {
		raise(SyntaxError, "%s expects a parameter list, found %s", form, params)
	}
	names := make([]string, len(params.Children))
	for i, p := range params.Children {
		if p.Kind != IdentifierExpr {
			raise(SyntaxError, "%s parameter %d is not a name: %s", form, i+1, p)
		}
		names[i] = p.Text
	}
	return names
}

func checkArgs(name string, params []string, args []Expression) {
	if len(args)-1 != len(params) {
		raise(ArityError, "%s expects %d arguments, got %d", name, len(params), len(args)-1)
	}
}

// NewLambda creates a closure. It captures a snapshot of en; parameters are
// evaluated in the caller's environment, and the body runs in the caller's
// environment overlaid with the snapshot and the parameters. Free names that
// are not captured therefore resolve at the call site.
func NewLambda(en *Env, params []string, body Expression) Object {
	captured := en.Copy()
	return newNamedClosure("lambda", func(caller *Env, args []Expression) Object {
		checkArgs("lambda", params, args)
		bound := captured.Copy()
		for i, p := range params {
			bound.Add(p, Eval(caller, args[i+1]))
		}
		local := caller.Copy().Merge(bound)
		return Eval(local, body)
	})
}

// NewMacro creates a macro: operands are substituted unevaluated into a copy
// of body, which then runs in the caller's environment. Nothing is captured.
func NewMacro(params []string, body Expression) Object {
	return newNamedClosure("macro", func(caller *Env, args []Expression) Object {
		checkArgs("macro", params, args)
		table := make(map[string]Expression, len(params))
		for i, p := range params {
			table[p] = args[i+1]
		}
		return Eval(caller, Substitute(body, table))
	})
}
