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

// Tier selects the capabilities of an instance.
type Tier int

// Instruction set tiers.
const (
	// Tier1 supports add, mul and hlt. Instructions have no mode digits and
	// all operands are direct addresses.
	Tier1 Tier = iota + 1
	// Tier2 adds sto, load, jnz, jz, lt, eq and the Immediate mode.
	Tier2
	// Tier3 adds rbo, the Relative mode, auto-extending memory and 64 bits
	// words.
	Tier3
)

func (t Tier) String() string {
	return "tier" + strconv.Itoa(int(t))
}

// Valid returns true if t is a known tier.
func (t Tier) Valid() bool {
	return t >= Tier1 && t <= Tier3
}

// GrowMemory returns true if memory auto-extends on out of bounds accesses.
func (t Tier) GrowMemory() bool { return t >= Tier3 }

// WordBits returns the machine word width in bits.
func (t Tier) WordBits() int {
	if t >= Tier3 {
		return 64
	}
	return 32
}

// word wraps v to the tier's word width.
func (t Tier) word(v Cell) Cell {
	if t >= Tier3 {
		return v
	}
	return Cell(int32(v))
}

// Decode decodes w using the subset of the instruction set supported by t.
func (t Tier) Decode(w Cell) (Instruction, error) {
	switch t {
	case Tier1:
		switch op := Opcode(w); op {
		case OpAdd, OpMul, OpHlt:
			return Instruction{Op: op}, nil
		}
		return Instruction{}, errors.Wrapf(ErrInvalidInstruction, "word %d", w)
	case Tier2:
		ins, err := Decode(w)
		if err != nil {
			return ins, err
		}
		if ins.Op == OpRbo {
			return ins, errors.Wrapf(ErrInvalidInstruction, "opcode %d", ins.Op)
		}
		for n, m := range ins.Modes {
			if m == Relative {
				return ins, errors.Wrapf(ErrInvalidAddressingMode, "mode digit %d for operand %d", m, n+1)
			}
		}
		return ins, nil
	case Tier3:
		return Decode(w)
	}
	return Instruction{}, errors.Errorf("unsupported tier %d", int(t))
}
