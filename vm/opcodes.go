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
	"strconv"

	"github.com/pkg/errors"
)

// Opcode is an intcode operation code.
type Opcode Cell

// Intcode operation codes.
const (
	OpAdd  Opcode = 1
	OpMul  Opcode = 2
	OpSto  Opcode = 3
	OpLoad Opcode = 4
	OpJnz  Opcode = 5
	OpJz   Opcode = 6
	OpLt   Opcode = 7
	OpEq   Opcode = 8
	OpRbo  Opcode = 9
	OpHlt  Opcode = 99
)

var opcodes = map[Opcode]struct {
	name     string
	operands int
	write    int // 1-based index of the write target operand, 0 if none
}{
	OpAdd:  {"add", 3, 3},
	OpMul:  {"mul", 3, 3},
	OpSto:  {"sto", 1, 1},
	OpLoad: {"load", 1, 0},
	OpJnz:  {"jnz", 2, 0},
	OpJz:   {"jz", 2, 0},
	OpLt:   {"lt", 3, 3},
	OpEq:   {"eq", 3, 3},
	OpRbo:  {"rbo", 1, 0},
	OpHlt:  {"hlt", 0, 0},
}

// Valid returns true if op is a known operation code.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Operands returns the number of operands of op.
func (op Opcode) Operands() int {
	return opcodes[op].operands
}

// WriteOperand returns the 1-based index of the operand that op writes to, or
// 0 if op does not write to memory.
func (op Opcode) WriteOperand() int {
	return opcodes[op].write
}

func (op Opcode) String() string {
	if o, ok := opcodes[op]; ok {
		return o.name
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Mode is an operand addressing mode.
type Mode int8

// Addressing modes.
const (
	Position  Mode = 0 // operand is the address of the value
	Immediate Mode = 1 // operand is the value
	Relative  Mode = 2 // operand plus the relative base is the address of the value
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode // addressing mode of operands 1, 2 and 3
}

// Width returns the number of memory cells used by the instruction, including
// the instruction word itself.
func (ins Instruction) Width() int {
	return 1 + ins.Op.Operands()
}

// Decode decodes an instruction word. The two low decimal digits of w are the
// operation code, the following three digits the addressing modes of the first,
// second and third operand. Missing mode digits default to Position.
//
// Decode accepts the full instruction set. Use Tier.Decode to restrict it.
func Decode(w Cell) (Instruction, error) {
	var ins Instruction
	if w < 0 {
		return ins, errors.Wrapf(ErrInvalidInstruction, "negative word %d", w)
	}
	ins.Op = Opcode(w % 100)
	if !ins.Op.Valid() {
		return ins, errors.Wrapf(ErrInvalidInstruction, "opcode %d", ins.Op)
	}
	m := w / 100
	for n := range ins.Modes {
		d := Mode(m % 10)
		if d > Relative {
			return ins, errors.Wrapf(ErrInvalidAddressingMode, "mode digit %d for operand %d", d, n+1)
		}
		ins.Modes[n] = d
		m /= 10
	}
	if m != 0 {
		return ins, errors.Wrapf(ErrInvalidInstruction, "word %d", w)
	}
	if wo := ins.Op.WriteOperand(); wo > 0 && ins.Modes[wo-1] == Immediate {
		return ins, errors.Wrapf(ErrInvalidAddressingMode, "immediate write target for %v", ins.Op)
	}
	return ins, nil
}
