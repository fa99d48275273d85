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

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

const newprompt = "\033[32m>\033[0m "
const contprompt = "\033[32m.\033[0m "
const resultprompt = "\033[31m=\033[0m "

var ReplInstance *readline.Instance

// promptLines feeds readline into the tokenizer and switches to the
// continuation prompt once an expression spans more than one line
type promptLines struct {
	l    *readline.Instance
	cont bool
}

func (p *promptLines) Readline() (string, error) {
	if p.cont {
		p.l.SetPrompt(contprompt)
	} else {
		p.l.SetPrompt(newprompt)
	}
	line, err := p.l.Readline()
	if err == readline.ErrInterrupt {
		if len(line) == 0 && !p.cont {
			return "", io.EOF
		}
		// ^C discards the line
		return "", nil
	}
	p.cont = true
	return line, err
}

// Repl reads expressions from the terminal and prints their values. A failing
// expression prints its error and the session continues with the next line.
func Repl(en *Env) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       ".minscm-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	ReplInstance = l
	defer func() {
		l.Close()
		ReplInstance = nil
	}()
	l.CaptureExitSignal()

	lines := &promptLines{l: l}
	t := NewTokenizer("user prompt", lines)
	for {
		lines.cont = false
		code, err := ReadExpression(t)
		if err == nil && code.IsEmpty() {
			break
		}
		var result Object
		if err == nil {
			result, err = evalForm(SourceInfo{t.Source, code.Line}, code, en)
		}
		if err != nil {
			if t.Err() != nil {
				fmt.Println(t.Err())
				break
			}
			fmt.Println(err)
			t.Reset()
			continue
		}
		if !result.IsUnit() {
			fmt.Print(resultprompt)
			fmt.Println(result.String())
		}
	}
}
