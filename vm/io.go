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

package vm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Source is the interface that wraps the Next method.
//
// Next returns the next input value. It may block until a value is available.
// Next must return an error whose cause is ErrOutOfInput when no more values
// will ever be available.
//
// If a Source implements io.Closer, the instance it is bound to will close it
// when it stops.
type Source interface {
	Next() (Cell, error)
}

// Sink is the interface that wraps the Emit method.
//
// Emit delivers an output value. It may block until the value is delivered.
// Sinks that forward values to another instance return an error whose cause is
// ErrChannelClosed if that instance is gone.
//
// If a Sink implements io.Closer, the instance it is bound to will close it
// when it stops.
type Sink interface {
	Emit(v Cell) error
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func() (Cell, error)

// Next calls f().
func (f SourceFunc) Next() (Cell, error) { return f() }

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(v Cell) error

// Emit calls f(v).
func (f SinkFunc) Emit(v Cell) error { return f(v) }

// Scalar returns a Source that yields v on every read.
func Scalar(v Cell) Source {
	return SourceFunc(func() (Cell, error) { return v, nil })
}

// Values returns a Source that yields the given values in order, then fails
// with ErrOutOfInput.
func Values(vs ...Cell) Source {
	vs = append([]Cell(nil), vs...)
	return SourceFunc(func() (Cell, error) {
		if len(vs) == 0 {
			return 0, ErrOutOfInput
		}
		v := vs[0]
		vs = vs[1:]
		return v, nil
	})
}

// Prompt is the text written by interactive sources before reading a value.
const Prompt = "Enter Input: "

type interactive struct {
	r      *bufio.Reader
	prompt io.Writer
}

func (s *interactive) Next() (Cell, error) {
	if s.prompt != nil {
		if _, err := io.WriteString(s.prompt, Prompt); err != nil {
			return 0, errors.Wrap(err, "prompt failed")
		}
		if f, ok := s.prompt.(interface{ Flush() error }); ok {
			if err := f.Flush(); err != nil {
				return 0, errors.Wrap(err, "prompt failed")
			}
		}
	}
	line, err := s.r.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		if err != io.EOF {
			return 0, errors.Wrap(err, "read failed")
		}
		if line == "" {
			return 0, ErrOutOfInput
		}
	}
	v, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid input")
	}
	return Cell(v), nil
}

// Interactive returns a Source that reads one integer per line from r. If
// prompt is not nil, Prompt is written to it before each read. End of input is
// reported as ErrOutOfInput.
func Interactive(r io.Reader, prompt io.Writer) Source {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &interactive{br, prompt}
}

// Printer returns a Sink that writes each value to w in decimal followed by a
// line break.
func Printer(w io.Writer) Sink {
	return SinkFunc(func(v Cell) error {
		var b [24]byte
		buf := strconv.AppendInt(b[:0], int64(v), 10)
		_, err := w.Write(append(buf, '\n'))
		return errors.Wrap(err, "write failed")
	})
}
