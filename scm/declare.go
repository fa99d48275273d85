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

import "os"
import "fmt"
import "strings"
import "path/filepath"

type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int
	Params       []DeclarationParameter
	Returns      string // any | int | func | unit
	Fn           Procedure
}

type DeclarationParameter struct {
	Name string
	Type string // any | int | func | name | params | expr
	Desc string
}

var declaration_titles []string
var declarations map[string]*Declaration = make(map[string]*Declaration)

func DeclareTitle(title string) {
	declaration_titles = append(declaration_titles, "#"+title)
}

// Declare registers def for help and documentation and binds it in env.
// The bound procedure checks the operand count before calling Fn.
func Declare(env *Env, def *Declaration) {
	if _, ok := declarations[def.Name]; !ok {
		declaration_titles = append(declaration_titles, def.Name)
	}
	declarations[def.Name] = def
	if def.Fn != nil {
		env.Add(def.Name, newNamedClosure(def.Name, checkedProcedure(def)))
	}
}

func checkedProcedure(def *Declaration) Procedure {
	fn := def.Fn
	return func(en *Env, args []Expression) Object {
		n := len(args) - 1
		if n < def.MinParameter {
			raise(ArityError, "function %s expects at least %d parameters, got %d", def.Name, def.MinParameter, n)
		}
		if n > def.MaxParameter {
			raise(ArityError, "function %s expects at most %d parameters, got %d", def.Name, def.MaxParameter, n)
		}
		return fn(en, args)
	}
}

// DeclarationFor returns the declaration of a builtin name or nil.
func DeclarationFor(name string) *Declaration {
	return declarations[name]
}

// slugify makes a filesystem-safe, lowercase slug from a chapter title.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		out = "chapter"
	}
	return out
}

// WriteDocumentation generates Markdown docs:
// - index.md with links to chapters
// - one <chapter>.md file per chapter, containing all functions of that chapter
func WriteDocumentation(folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", folder, err)
	}

	type Chapter struct {
		Title string
		Slug  string
		Fns   []*Declaration
	}

	var chapters []*Chapter
	var current *Chapter
	for _, t := range declaration_titles {
		if len(t) > 0 && t[0] == '#' {
			current = &Chapter{Title: t[1:], Slug: slugify(t[1:])}
			chapters = append(chapters, current)
			continue
		}
		if current == nil {
			current = &Chapter{Title: "General", Slug: "general"}
			chapters = append(chapters, current)
		}
		current.Fns = append(current.Fns, declarations[t])
	}

	indexPath := filepath.Join(folder, "index.md")
	indexFile, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", indexPath, err)
	}
	defer indexFile.Close()

	fmt.Fprint(indexFile, "# Documentation\n\n")
	for _, ch := range chapters {
		if len(ch.Fns) == 0 {
			continue
		}
		fmt.Fprintf(indexFile, "- [%s](%s.md)\n", ch.Title, ch.Slug)
	}

	for _, ch := range chapters {
		if len(ch.Fns) == 0 {
			continue
		}
		fp := filepath.Join(folder, ch.Slug+".md")
		f, err := os.Create(fp)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", fp, err)
		}
		fmt.Fprintf(f, "# %s\n\n", ch.Title)
		for _, def := range ch.Fns {
			fmt.Fprintf(f, "## %s\n\n", def.Name)
			if def.Desc != "" {
				fmt.Fprintf(f, "%s\n\n", def.Desc)
			}
			fmt.Fprintf(f, "**Allowed number of parameters:** %d–%d\n\n", def.MinParameter, def.MaxParameter)
			fmt.Fprint(f, "### Parameters\n\n")
			if len(def.Params) == 0 {
				fmt.Fprint(f, "_This function has no parameters._\n\n")
			} else {
				for _, p := range def.Params {
					fmt.Fprintf(f, "- **%s** (`%s`): %s\n", p.Name, p.Type, p.Desc)
				}
				fmt.Fprintln(f)
			}
			fmt.Fprintf(f, "### Returns\n\n`%s`\n\n", def.Returns)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Help prints the list of builtins (name == "") or the help of one builtin.
func Help(name string) {
	if name == "" {
		fmt.Fprintln(Output, "Available functions:")
		for _, title := range declaration_titles {
			if title[0] == '#' {
				fmt.Fprintln(Output, "")
				fmt.Fprintln(Output, "-- "+title[1:]+" --")
			} else {
				fmt.Fprintln(Output, "  "+title+": "+strings.Split(declarations[title].Desc, "\n")[0])
			}
		}
		fmt.Fprintln(Output, "")
		fmt.Fprintln(Output, "get further information by typing (help functionname)")
		return
	}
	def := DeclarationFor(name)
	if def == nil {
		raise(UnboundNameError, "no help for %s", name)
	}
	fmt.Fprintln(Output, "Help for: "+def.Name)
	fmt.Fprintln(Output, "===")
	fmt.Fprintln(Output, "")
	fmt.Fprintln(Output, def.Desc)
	fmt.Fprintln(Output, "")
	fmt.Fprintln(Output, "Allowed nø of parameters: ", def.MinParameter, "-", def.MaxParameter)
	fmt.Fprintln(Output, "")
	for _, p := range def.Params {
		fmt.Fprintln(Output, " - "+p.Name+" ("+p.Type+"): "+p.Desc)
	}
	fmt.Fprintln(Output, "")
}
