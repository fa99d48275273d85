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

/*
Package parsec is a tiny backtracking parser combinator library over a byte range.

A Parser recognizes a prefix of input[pos:end]. On success it reports the
position after the match, on failure it reports the position it started from,
so a failed parser never leaks partial consumption.

	ident := parsec.Seq(letter, parsec.Many(alnum))
	num := parsec.Many1(parsec.Digit())
	token := parsec.Alt(parsec.Action(ident, onIdent), parsec.Action(num, onNum))
	ok, next := token.RunRange(line, pos, len(line))

Actions are deferred: they only fire after the outermost Run/RunRange succeeded,
once per successful match, in the order the matches completed.
*/
package parsec

import "strings"

type pending struct {
	f     func(string)
	start int
	end   int
}

// state of one top-level match attempt
type state struct {
	input   string
	end     int
	actions []pending
}

type matcher func(st *state, pos int) (bool, int)

// Parser is an immutable recognizer; build them with the constructors of this package.
type Parser struct {
	m matcher
}

func (p Parser) match(st *state, pos int) (bool, int) {
	mark := len(st.actions)
	ok, next := p.m(st, pos)
	if !ok {
		// drop actions of failed branches
		st.actions = st.actions[:mark]
		return false, pos
	}
	return true, next
}

// RunRange matches p against input[pos:end] and returns whether it matched and the position after the match.
func (p Parser) RunRange(input string, pos, end int) (bool, int) {
	if end > len(input) {
		end = len(input)
	}
	if pos < 0 || pos > end {
		return false, pos
	}
	st := &state{input: input, end: end}
	ok, next := p.match(st, pos)
	if !ok {
		return false, pos
	}
	for _, a := range st.actions {
		a.f(input[a.start:a.end])
	}
	return true, next
}

// Run matches a prefix of input.
func (p Parser) Run(input string) (bool, int) {
	return p.RunRange(input, 0, len(input))
}

// Match reports whether p consumes the whole input.
func (p Parser) Match(input string) bool {
	ok, next := p.Run(input)
	return ok && next == len(input)
}

// Satisfy consumes one character for which pred holds.
func Satisfy(pred func(c byte) bool) Parser {
	return Parser{func(st *state, pos int) (bool, int) {
		if pos < st.end && pred(st.input[pos]) {
			return true, pos + 1
		}
		return false, pos
	}}
}

func Char(c byte) Parser {
	return Satisfy(func(x byte) bool { return x == c })
}

func OneOf(set string) Parser {
	return Satisfy(func(x byte) bool { return strings.IndexByte(set, x) >= 0 })
}

func AnyChar() Parser {
	return Satisfy(func(byte) bool { return true })
}

// Range accepts lo <= c <= hi.
func Range(lo, hi byte) Parser {
	return Satisfy(func(x byte) bool { return lo <= x && x <= hi })
}

func Digit() Parser {
	return Range('0', '9')
}

// Seq matches all parsers one after another. If one fails, the rest is not
// tried and the whole sequence fails at its start position.
func Seq(parsers ...Parser) Parser {
	return Parser{func(st *state, pos int) (bool, int) {
		cur := pos
		for _, p := range parsers {
			ok, next := p.match(st, cur)
			if !ok {
				return false, pos
			}
			cur = next
		}
		return true, cur
	}}
}

// Alt tries the parsers in order from the same start position; the first match wins.
func Alt(parsers ...Parser) Parser {
	return Parser{func(st *state, pos int) (bool, int) {
		for _, p := range parsers {
			if ok, next := p.match(st, pos); ok {
				return true, next
			}
		}
		return false, pos
	}}
}

// Many matches p greedily zero or more times. It always succeeds.
func Many(p Parser) Parser {
	return Parser{func(st *state, pos int) (bool, int) {
		return true, repeat(p, st, pos)
	}}
}

// Many1 matches p greedily at least once.
func Many1(p Parser) Parser {
	return Parser{func(st *state, pos int) (bool, int) {
		ok, next := p.match(st, pos)
		if !ok {
			return false, pos
		}
		return true, repeat(p, st, next)
	}}
}

func repeat(p Parser, st *state, pos int) int {
	for {
		mark := len(st.actions)
		ok, next := p.match(st, pos)
		if !ok || next == pos {
			// an empty match would repeat forever
			st.actions = st.actions[:mark]
			return pos
		}
		pos = next
	}
}

// Action calls f with the matched substring once the outermost match succeeded.
func Action(p Parser, f func(matched string)) Parser {
	return Parser{func(st *state, pos int) (bool, int) {
		ok, next := p.match(st, pos)
		if !ok {
			return false, pos
		}
		st.actions = append(st.actions, pending{f, pos, next})
		return true, next
	}}
}
