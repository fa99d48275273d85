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

import "github.com/google/btree"

type binding struct {
	name  string
	value Object
}

func bindingLess(a, b binding) bool {
	return a.name < b.name
}

// Env maps names to objects. Environments are values: Copy produces an
// independent snapshot (btree clones lazily, copy on write), and apart from
// the global environment nothing is ever written through a shared reference.
type Env struct {
	vars   *btree.BTreeG[binding]
	global *Env // root this env was copied from, nil for a root
}

func NewEnv() *Env {
	return &Env{vars: btree.NewG[binding](8, bindingLess)}
}

// Copy returns a snapshot; writes to either side are invisible to the other.
func (e *Env) Copy() *Env {
	return &Env{vars: e.vars.Clone(), global: e.Global()}
}

// Fork returns an independent root environment with the same bindings.
func (e *Env) Fork() *Env {
	return &Env{vars: e.vars.Clone()}
}

// Global is the root environment top-level define writes to.
func (e *Env) Global() *Env {
	if e.global == nil {
		return e
	}
	return e.global
}

func (e *Env) Get(name string) (Object, bool) {
	b, ok := e.vars.Get(binding{name: name})
	return b.value, ok
}

// Lookup returns the binding of name or raises an UnboundNameError.
func (e *Env) Lookup(name string) Object {
	o, ok := e.Get(name)
	if !ok {
		raise(UnboundNameError, "%s is not in scope", name)
	}
	return o
}

func (e *Env) Add(name string, o Object) *Env {
	e.vars.ReplaceOrInsert(binding{name, o})
	return e
}

func (e *Env) AddInt(name string, i int64) *Env {
	return e.Add(name, NewInt(i))
}

func (e *Env) AddProcedure(name string, p Procedure) *Env {
	return e.Add(name, newNamedClosure(name, p))
}

// Merge copies every binding of other into e; other wins on collisions.
func (e *Env) Merge(other *Env) *Env {
	other.vars.Ascend(func(b binding) bool {
		e.vars.ReplaceOrInsert(b)
		return true
	})
	return e
}

func (e *Env) Len() int {
	return e.vars.Len()
}

// Names lists all bound names in sorted order.
func (e *Env) Names() []string {
	result := make([]string, 0, e.vars.Len())
	e.vars.Ascend(func(b binding) bool {
		result = append(result, b.name)
		return true
	})
	return result
}
