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
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Use errors.Cause on errors returned by this package to compare
// against these values.
var (
	// ErrInvalidInstruction is returned when decoding an unknown operation code.
	ErrInvalidInstruction = errors.New("invalid instruction")
	// ErrInvalidAddressingMode is returned for unknown mode digits, modes not
	// supported by the instance's tier, or Immediate mode on a write target.
	ErrInvalidAddressingMode = errors.New("invalid addressing mode")
	// ErrOutOfInput is returned when an input is required but the source is
	// exhausted or its sender is gone.
	ErrOutOfInput = errors.New("out of input")
	// ErrChannelClosed is returned by a link sender when the receiving side
	// has been closed. Instances recover from it, see Fallback.
	ErrChannelClosed = errors.New("channel closed")
	// ErrInvalidAddress is returned for negative addresses, for addresses
	// past the end of memory in tiers without auto-extending memory, and for
	// addresses past the memory limit (see MaxMemory).
	ErrInvalidAddress = errors.New("invalid address")
)

// Fault is the error returned by Run and Step when the instance stops on a
// fatal condition.
type Fault struct {
	PC   int   // address of the failing instruction
	Word Cell  // instruction word at PC
	Err  error // underlying error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault @pc=%d (word %d): %v", f.PC, f.Word, f.Err)
}

// Cause returns the underlying error. It makes errors.Cause see through a
// Fault.
func (f *Fault) Cause() error { return f.Err }

// Unwrap supports errors.Is and errors.As from the standard library.
func (f *Fault) Unwrap() error { return f.Err }

// Format implements fmt.Formatter. With the %+v verb, the underlying error is
// printed with its stack trace.
func (f *Fault) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "fault @pc=%d (word %d): %+v", f.PC, f.Word, f.Err)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, f.Error())
	case 'q':
		fmt.Fprintf(s, "%q", f.Error())
	}
}
