/*
Copyright (C) 2024, 2026  Carl-Philip Hänsch

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

import "io"
import "os"
import "time"
import "encoding/json"
import "github.com/google/uuid"

// Tracefile writes Chrome trace events (chrome://tracing, ui.perfetto.dev).
type Tracefile struct {
	isFirst bool
	file    io.WriteCloser
	Name    string
}

var Trace *Tracefile // set to not nil if you want to trace

// SetTrace opens a new trace file in dir (on) or closes the current one (off).
func SetTrace(on bool, dir string) error {
	if Trace != nil {
		Trace.Close()
		Trace = nil
	}
	if on {
		name := dir + "trace_" + uuid.NewString() + ".json"
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		Trace = NewTrace(f)
		Trace.Name = name
	}
	return nil
}

func NewTrace(file io.WriteCloser) *Tracefile {
	file.Write([]byte("["))
	result := new(Tracefile)
	result.file = file
	result.isFirst = true
	return result
}

func (t *Tracefile) Close() error {
	t.file.Write([]byte("]"))
	return t.file.Close()
}

func (t *Tracefile) Duration(name string, cat string, f func()) {
	t.Event(name, cat, "B")
	defer t.Event(name, cat, "E")
	f()
}

/*
	@name string function
	@cat string comma separated categories (for filtering)
	@typ B/E for begin/end, X for events
*/
func (t *Tracefile) Event(name string, cat string, typ string) {
	if t.isFirst {
		t.isFirst = false
	} else {
		t.file.Write([]byte(",\n"))
	}
	b, _ := json.Marshal(struct {
		Name string `json:"name"`
		Cat  string `json:"cat"`
		Ph   string `json:"ph"`
		Ts   int64  `json:"ts"`
		Pid  int    `json:"pid"`
		Tid  int    `json:"tid"`
	}{name, cat, typ, time.Since(start).Microseconds(), os.Getpid(), 0})
	t.file.Write(b)
}

var start time.Time = time.Now()
