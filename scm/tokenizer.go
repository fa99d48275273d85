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

import "io"
import "bufio"
import "strings"
import "github.com/launix-de/minscm/parsec"

type TokenKind int

const (
	Undefined TokenKind = iota
	Comment
	Identifier
	Constant
	LeftParen
	RightParen
	EndOfInput
)

func (k TokenKind) String() string {
	switch k {
	case Comment:
		return "comment"
	case Identifier:
		return "identifier"
	case Constant:
		return "constant"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	case EndOfInput:
		return "end of input"
	}
	return "undefined"
}

type Token struct {
	Kind TokenKind
	Text string // only for Comment, Identifier and Constant
	Line int
}

// LineReader is a line oriented input source; *readline.Instance satisfies it.
// Readline returns io.EOF when there are no more lines.
type LineReader interface {
	Readline() (string, error)
}

type scannerLines struct {
	s *bufio.Scanner
}

func (l scannerLines) Readline() (string, error) {
	if l.s.Scan() {
		return l.s.Text(), nil
	}
	if err := l.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func NewLineReader(r io.Reader) LineReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return scannerLines{s}
}

func NewStringReader(s string) LineReader {
	return NewLineReader(strings.NewReader(s))
}

// lexical grammar
var (
	letter = parsec.Satisfy(func(c byte) bool {
		return 33 <= c && c <= 39 || 42 <= c && c <= 47 || 58 <= c && c <= 126
	})
	alphaNum = parsec.Satisfy(func(c byte) bool {
		return 33 <= c && c <= 39 || 42 <= c && c <= 126
	})
	spaces = parsec.Many(parsec.OneOf(" \t"))

	identifierRule = parsec.Seq(letter, parsec.Many(alphaNum))
	constantRule   = parsec.Many1(parsec.Digit())
	commentRule    = parsec.Seq(spaces, parsec.Char(';'), parsec.Many(parsec.AnyChar()))
)

// Tokenizer pulls lines from a LineReader on demand and queues their tokens.
type Tokenizer struct {
	Source string // name used in error messages
	in     LineReader
	line   int
	tokens []Token
	err    error // read error other than io.EOF

	grammar parsec.Parser
	current Token // written by the grammar actions
}

func NewTokenizer(source string, in LineReader) *Tokenizer {
	t := &Tokenizer{Source: source, in: in}
	kind := func(k TokenKind) func(string) {
		return func(s string) {
			t.current = Token{Kind: k, Line: t.line}
			if k == Identifier || k == Constant {
				t.current.Text = s
			}
		}
	}
	t.grammar = parsec.Alt(
		parsec.Action(identifierRule, kind(Identifier)),
		parsec.Action(constantRule, kind(Constant)),
		parsec.Action(parsec.Char('('), kind(LeftParen)),
		parsec.Action(parsec.Char(')'), kind(RightParen)),
	)
	return t
}

// Next removes and returns the next token.
func (t *Tokenizer) Next() Token {
	if len(t.tokens) == 0 && !t.fill() {
		return Token{Kind: EndOfInput, Line: t.line}
	}
	tok := t.tokens[0]
	t.tokens = t.tokens[1:]
	return tok
}

// Peek returns the next token without removing it.
func (t *Tokenizer) Peek() Token {
	tok := t.Next()
	t.unget(tok)
	return tok
}

func (t *Tokenizer) unget(tok Token) {
	t.tokens = append([]Token{tok}, t.tokens...)
}

// Reset drops all queued tokens of the current line.
func (t *Tokenizer) Reset() {
	t.tokens = nil
}

// Err returns the first read error that was not io.EOF.
func (t *Tokenizer) Err() error {
	return t.err
}

// Line is the number of the last line read.
func (t *Tokenizer) Line() int {
	return t.line
}

// fill reads lines until one of them produced tokens
func (t *Tokenizer) fill() bool {
	for {
		if t.err != nil {
			return false
		}
		line, err := t.in.Readline()
		if err != nil {
			if err != io.EOF {
				t.err = err
			}
			return false
		}
		t.line++
		if t.tokenizeLine(line) {
			return true
		}
	}
}

func (t *Tokenizer) tokenizeLine(line string) bool {
	if commentRule.Match(line) {
		t.tokens = append(t.tokens, Token{Comment, line, t.line})
		return true
	}
	found := false
	pos, end := 0, len(line)
	for pos < end {
		_, pos = spaces.RunRange(line, pos, end)
		if pos == end {
			break
		}
		ok, next := t.grammar.RunRange(line, pos, end)
		if !ok {
			// stray character: the rest of the line yields no tokens
			break
		}
		t.tokens = append(t.tokens, t.current)
		found = true
		pos = next
	}
	return found
}
