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

import (
	"errors"
	"testing"
)

func TestEnvCopyIsSnapshot(t *testing.T) {
	en := NewEnv().AddInt("a", 1)
	snap := en.Copy()
	en.AddInt("a", 2).AddInt("b", 3)
	snap.AddInt("c", 4)

	if v := snap.Lookup("a").Int(); v != 1 {
		t.Errorf("snapshot sees later write: a = %d", v)
	}
	if _, ok := snap.Get("b"); ok {
		t.Errorf("snapshot sees later insert")
	}
	if _, ok := en.Get("c"); ok {
		t.Errorf("source sees write to snapshot")
	}
	if snap.Global() != en || en.Global() != en {
		t.Errorf("copies must point to their root")
	}
	if fork := en.Fork(); fork.Global() != fork {
		t.Errorf("a fork is its own root")
	}
}

func TestEnvMergeLaterWins(t *testing.T) {
	a := NewEnv().AddInt("x", 1).AddInt("y", 1)
	b := NewEnv().AddInt("y", 2).AddInt("z", 2)
	a.Merge(b)
	if a.Lookup("x").Int() != 1 || a.Lookup("y").Int() != 2 || a.Lookup("z").Int() != 2 {
		t.Fatalf("unexpected merge result %v", a.Names())
	}
	if b.Len() != 2 {
		t.Fatalf("merge modified its argument")
	}
}

func TestEnvNamesSorted(t *testing.T) {
	en := NewEnv().AddInt("b", 1).AddInt("a", 1).AddProcedure("c", func(*Env, []Expression) Object { return NewUnit() })
	names := en.Names()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestLookupUnbound(t *testing.T) {
	_, err := EvalSafe(NewEnv(), NewIdentifier("nope"))
	if !errors.Is(err, ErrUnboundName) {
		t.Fatalf("expected unbound name error, got %v", err)
	}
}

func TestObjectAccessorsCheckKind(t *testing.T) {
	var err error
	func() {
		defer catch(&err)
		NewClosure(nil).Int()
	}()
	if !errors.Is(err, ErrType) {
		t.Fatalf("expected type error, got %v", err)
	}
	err = nil
	func() {
		defer catch(&err)
		NewInt(3).Procedure()
	}()
	if !errors.Is(err, ErrType) {
		t.Fatalf("expected type error, got %v", err)
	}
	if NewInt(-5).String() != "-5" || NewUnit().String() != "" || NewClosure(nil).String() != "#<procedure>" {
		t.Fatalf("unexpected object strings")
	}
}
