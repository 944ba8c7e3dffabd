// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/scanner"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Error is a parse error.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

type parser struct {
	s   scanner.Scanner
	img []vm.Cell
	err error
}

func (p *parser) fail(msg string) {
	if p.err != nil {
		return
	}
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.err = &Error{pos, msg}
}

// value parses an integer starting with token tok.
func (p *parser) value(tok rune) {
	neg := false
	switch tok {
	case '-':
		neg = true
		fallthrough
	case '+':
		if tok = p.s.Scan(); tok != scanner.Int {
			p.fail("expected integer, got " + scanner.TokenString(tok))
			return
		}
	}
	s := p.s.TokenText()
	if neg {
		s = "-" + s
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.fail("invalid integer " + strconv.Quote(s))
		return
	}
	p.img = append(p.img, vm.Cell(v))
}

func (p *parser) skipComment() {
	for ch := p.s.Peek(); ch != '\n' && ch != scanner.EOF; ch = p.s.Peek() {
		p.s.Next()
	}
}

func (p *parser) parse(name string, r io.Reader) ([]vm.Cell, error) {
	p.s.Init(r)
	p.s.Filename = name
	p.s.Mode = scanner.ScanInts
	p.s.Error = func(s *scanner.Scanner, msg string) { p.fail(msg) }

	// need is true when a value is expected
	need := true
	for tok := p.s.Scan(); p.err == nil && tok != scanner.EOF; tok = p.s.Scan() {
		switch tok {
		case '#':
			p.skipComment()
		case ',':
			if need {
				p.fail("unexpected ','")
			}
			need = true
		case scanner.Int, '-', '+':
			if !need {
				p.fail("missing ',' before " + strconv.Quote(p.s.TokenText()))
				break
			}
			p.value(tok)
			need = false
		default:
			p.fail("unexpected " + scanner.TokenString(tok))
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.img, nil
}

// Parse parses program text read from r. The name is used in error messages.
func Parse(name string, r io.Reader) ([]vm.Cell, error) {
	var p parser
	return p.parse(name, r)
}

// Load parses the program in the named file.
func Load(fileName string) ([]vm.Cell, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	img, err := Parse(fileName, f)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	if len(img) == 0 {
		return nil, errors.Errorf("Load %s: empty program", fileName)
	}
	return img, nil
}
