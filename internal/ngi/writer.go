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

// Package ngi provides internal helpers shared by the intcode packages.
package ngi

import (
	"io"
	"strconv"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer and latches the first write error. Once an
// error occurred, all subsequent writes are no-ops returning that error.
type ErrWriter struct {
	w   io.Writer
	Err error
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteCells writes the decimal representation of the given cells, separated
// by sep.
func (w *ErrWriter) WriteCells(cells []vm.Cell, sep string) error {
	var b []byte
	for n, c := range cells {
		if n > 0 {
			b = append(b, sep...)
		}
		b = strconv.AppendInt(b, int64(c), 10)
		if len(b) >= 4096 {
			w.Write(b)
			b = b[:0]
		}
	}
	if len(b) > 0 {
		w.Write(b)
	}
	return w.Err
}

// NewErrWriter returns a new ErrWriter writing to w.
func NewErrWriter(w io.Writer) *ErrWriter {
	if ew, ok := w.(*ErrWriter); ok {
		return ew
	}
	return &ErrWriter{w, nil}
}
