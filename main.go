/*
Copyright (C) 2023, 2024, 2026  Carl-Philip Hänsch

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
	minscm: a minimal S-expression evaluator with closures and macros
*/
package main

import "os"
import "fmt"
import "flag"
import "time"
import "syscall"
import "os/signal"
import "path/filepath"
import "github.com/chzyer/readline"
import "github.com/dc0d/onexit"
import "github.com/docker/go-units"
import "github.com/fsnotify/fsnotify"
import "github.com/launix-de/minscm/scm"

// printAST makes the loaders print syntax trees instead of evaluating
var printAST bool

// runTokens evaluates or, with -ast, prints every expression of t
func runTokens(t *scm.Tokenizer, en *scm.Env) (scm.Object, error) {
	if !printAST {
		return scm.Run(t, en)
	}
	for {
		code, err := scm.ReadExpression(t)
		if err != nil {
			return scm.NewUnit(), err
		}
		if code.IsEmpty() {
			return scm.NewUnit(), nil
		}
		scm.PrintTree(scm.Output, code)
	}
}

// loadFile evaluates a script; nested imports are relative to its folder
func loadFile(filename string, en *scm.Env) (scm.Object, error) {
	f, err := os.Open(filename)
	if err != nil {
		return scm.NewUnit(), err
	}
	defer f.Close()
	en2 := en.Copy()
	en2.AddProcedure("import", getImport(filepath.Dir(filename)))
	return runTokens(scm.NewTokenizer(filename, scm.NewLineReader(f)), en2)
}

func getImport(path string) scm.Procedure {
	return func(en *scm.Env, args []scm.Expression) scm.Object {
		if len(args) != 2 || !args[1].IsIdentifier() {
			panic(&scm.Error{Kind: scm.ArityError, Msg: "import expects one file name"})
		}
		result, err := loadFile(filepath.Join(path, args[1].Text), en)
		if err != nil {
			if e, ok := err.(*scm.Error); ok {
				panic(e)
			}
			// an unreadable file is a name import cannot resolve
			panic(&scm.Error{Kind: scm.UnboundNameError, Msg: err.Error()})
		}
		return result
	}
}

// workaround for flags package to allow multiple values
type arrayFlags []string

func (i *arrayFlags) String() string {
	return "dummy"
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// setupIO returns the template environment: builtins plus IO functions
func setupIO(wd string) *scm.Env {
	// IO functions are not part of the builtins so scm stays sandboxable
	IOEnv := scm.NewGlobalEnv()
	scm.DeclareTitle("IO")
	scm.Declare(IOEnv, &scm.Declaration{
		Name: "help", Desc: "Lists all functions or print help for a specific function",
		MinParameter: 0, MaxParameter: 1,
		Params: []scm.DeclarationParameter{
			scm.DeclarationParameter{Name: "topic", Type: "name", Desc: "function to print help about (not evaluated)"},
		}, Returns: "unit",
		Fn: func(en *scm.Env, args []scm.Expression) scm.Object {
			if len(args) == 1 {
				scm.Help("")
			} else {
				scm.Help(args[1].String())
			}
			return scm.NewUnit()
		},
	})
	scm.Declare(IOEnv, &scm.Declaration{
		Name: "import", Desc: "Evaluates a source file into the current environment and returns its last value",
		MinParameter: 1, MaxParameter: 1,
		Params: []scm.DeclarationParameter{
			scm.DeclarationParameter{Name: "filename", Type: "name", Desc: "file name relative to the folder of the source file"},
		}, Returns: "any",
		Fn: getImport(wd),
	})
	return IOEnv
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	onexit.ForceExit(1)
}

func loadAll(files []string, en *scm.Env) error {
	for _, scmfile := range files {
		size := "?"
		if st, err := os.Stat(scmfile); err == nil {
			size = units.HumanSize(float64(st.Size()))
		}
		if !quiet {
			fmt.Println("Loading " + scmfile + " (" + size + ") ...")
		}
		if _, err := loadFile(scmfile, en); err != nil {
			return err
		}
	}
	return nil
}

// watch reruns all scripts in a fresh environment whenever one of them changes
func watch(files []string, template *scm.Env) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fatal(err)
	}
	onexit.Register(func() { watcher.Close() })
	for _, f := range files {
		if err := watcher.Add(f); err != nil {
			fatal(err)
		}
	}
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			// flush all other events
			for {
				time.Sleep(10 * time.Millisecond) // delay a bit, so we don't read empty files
				select {
				case <-watcher.Events:
					// ignore
				default:
					goto to_rerun
				}
			}
		to_rerun:
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				watcher.Add(event.Name) // text editors rename, so we have to rewatch
			}
			fmt.Println("change in " + event.Name + ", reloading ...")
			if err := loadAll(files, template.Fork()); err != nil {
				fmt.Println(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Println("watch error:", err)
		}
	}
}

var quiet bool

func main() {
	var commands arrayFlags
	flag.Var(&commands, "c", "Execute command (repeatable)")
	flag.BoolVar(&quiet, "q", false, "Do not print the banner and loading messages")
	flag.BoolVar(&printAST, "ast", false, "Print syntax trees instead of evaluating")
	trace := flag.Bool("trace", false, "Write a chrome trace file (folder from MINSCM_TRACEDIR)")
	watchMode := flag.Bool("watch", false, "Rerun the scripts whenever they change")
	docs := flag.String("doc", "", "Write markdown documentation of all functions into this folder and exit")
	wd, _ := os.Getwd()
	flag.StringVar(&wd, "wd", wd, "Working Directory for (import) (Default: .)")
	flag.Parse()
	imports := flag.Args()

	if !quiet {
		fmt.Print(`minscm Copyright (C) 2026   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

`)
	}

	template := setupIO(wd)
	IOEnv := template.Fork()
	if *docs != "" {
		if err := scm.WriteDocumentation(*docs); err != nil {
			fatal(err)
		}
		onexit.ForceExit(0)
	}
	if *trace {
		if err := scm.SetTrace(true, os.Getenv("MINSCM_TRACEDIR")); err != nil {
			fatal(err)
		}
		onexit.Register(func() { scm.SetTrace(false, "") }) // close trace file on exit
	}

	// install exit handler
	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, syscall.SIGTERM, syscall.SIGINT)
	go (func() {
		<-cancelChan
		if scm.ReplInstance != nil {
			scm.ReplInstance.Close()
		}
		onexit.ForceExit(1)
	})()

	if err := loadAll(imports, IOEnv); err != nil {
		if !*watchMode {
			fatal(err)
		}
		fmt.Println(err)
	}
	for _, command := range commands {
		if !quiet {
			fmt.Println("Executing " + command + " ...")
		}
		if _, err := runTokens(scm.NewTokenizer("command line", scm.NewStringReader(command)), IOEnv); err != nil {
			fatal(err)
		}
	}

	if *watchMode && len(imports) > 0 {
		watch(imports, template)
	} else if len(imports) == 0 && len(commands) == 0 {
		if readline.IsTerminal(int(os.Stdin.Fd())) && !printAST {
			if !quiet {
				fmt.Print("\n    Type (help) to show help\n\n")
			}
			scm.Repl(IOEnv)
		} else if _, err := runTokens(scm.NewTokenizer("stdin", scm.NewLineReader(os.Stdin)), IOEnv); err != nil {
			fatal(err)
		}
	}
	onexit.ForceExit(0)
}
