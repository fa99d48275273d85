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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinsAreDeclared(t *testing.T) {
	en := NewGlobalEnv()
	for _, name := range []string{"display", "+", "-", "<", "begin", "if", "define", "lambda", "macro"} {
		if DeclarationFor(name) == nil {
			t.Errorf("%s has no declaration", name)
		}
		o, ok := en.Get(name)
		if !ok || o.Kind != Closure {
			t.Errorf("%s is not bound to a procedure", name)
		}
	}
}

func TestHelp(t *testing.T) {
	var b bytes.Buffer
	old := Output
	Output = &b
	defer func() { Output = old }()

	Help("")
	if !strings.Contains(b.String(), "-- Arithmetic --") || !strings.Contains(b.String(), "  +: adds two integers") {
		t.Fatalf("unexpected listing:\n%s", b.String())
	}
	b.Reset()
	Help("if")
	if !strings.HasPrefix(b.String(), "Help for: if\n") {
		t.Fatalf("unexpected help:\n%s", b.String())
	}

	var err error
	func() {
		defer catch(&err)
		Help("no-such-function")
	}()
	if !errors.Is(err, ErrUnboundName) {
		t.Fatalf("expected unbound name, got %v", err)
	}
}

func TestWriteDocumentation(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDocumentation(dir); err != nil {
		t.Fatal(err)
	}
	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "- [Control flow](control-flow.md)") {
		t.Fatalf("unexpected index:\n%s", index)
	}
	chapter, err := os.ReadFile(filepath.Join(dir, "binding.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(chapter), "## lambda") {
		t.Fatalf("lambda missing in binding.md")
	}
}
