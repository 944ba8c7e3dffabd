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

package vm_test

import (
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

func TestDecode(t *testing.T) {
	P, I, R := vm.Position, vm.Immediate, vm.Relative
	tests := [...]struct {
		word  vm.Cell
		op    vm.Opcode
		modes [3]vm.Mode
		width int
	}{
		{1, vm.OpAdd, [3]vm.Mode{P, P, P}, 4},
		{1002, vm.OpMul, [3]vm.Mode{P, I, P}, 4},
		{104, vm.OpLoad, [3]vm.Mode{I, P, P}, 2},
		{3, vm.OpSto, [3]vm.Mode{P, P, P}, 2},
		{203, vm.OpSto, [3]vm.Mode{R, P, P}, 2},
		{1105, vm.OpJnz, [3]vm.Mode{I, I, P}, 3},
		{1006, vm.OpJz, [3]vm.Mode{P, I, P}, 3},
		{21107, vm.OpLt, [3]vm.Mode{I, I, R}, 4},
		{1208, vm.OpEq, [3]vm.Mode{R, I, P}, 4},
		{109, vm.OpRbo, [3]vm.Mode{I, P, P}, 2},
		{99, vm.OpHlt, [3]vm.Mode{P, P, P}, 1},
	}
	for _, test := range tests {
		ins, err := vm.Decode(test.word)
		if err != nil {
			t.Errorf("%d: %v", test.word, err)
			continue
		}
		if ins.Op != test.op || ins.Modes != test.modes || ins.Width() != test.width {
			t.Errorf("%d: expected %v %v width %d, got %v %v width %d",
				test.word, test.op, test.modes, test.width, ins.Op, ins.Modes, ins.Width())
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := [...]struct {
		word vm.Cell
		err  error
	}{
		{0, vm.ErrInvalidInstruction},
		{42, vm.ErrInvalidInstruction},
		{-1, vm.ErrInvalidInstruction},
		{100001, vm.ErrInvalidInstruction},
		{301, vm.ErrInvalidAddressingMode},
		{9001, vm.ErrInvalidAddressingMode},
		{10001, vm.ErrInvalidAddressingMode},
		{103, vm.ErrInvalidAddressingMode},
		{11107, vm.ErrInvalidAddressingMode},
	}
	for _, test := range tests {
		_, err := vm.Decode(test.word)
		if errors.Cause(err) != test.err {
			t.Errorf("%d: expected %v, got %v", test.word, test.err, err)
		}
	}
}

func TestTierDecode(t *testing.T) {
	tests := [...]struct {
		tier vm.Tier
		word vm.Cell
		err  error
	}{
		{vm.Tier1, 1, nil},
		{vm.Tier1, 2, nil},
		{vm.Tier1, 99, nil},
		{vm.Tier1, 3, vm.ErrInvalidInstruction},
		{vm.Tier1, 101, vm.ErrInvalidInstruction},
		{vm.Tier2, 1101, nil},
		{vm.Tier2, 8, nil},
		{vm.Tier2, 9, vm.ErrInvalidInstruction},
		{vm.Tier2, 204, vm.ErrInvalidAddressingMode},
		{vm.Tier3, 204, nil},
		{vm.Tier3, 22201, nil},
		{vm.Tier(0), 99, nil},
	}
	for _, test := range tests {
		_, err := test.tier.Decode(test.word)
		if test.tier.Valid() && errors.Cause(err) != test.err {
			t.Errorf("%v %d: expected %v, got %v", test.tier, test.word, test.err, err)
		}
		if !test.tier.Valid() && err == nil {
			t.Errorf("%v %d: expected error for invalid tier", test.tier, test.word)
		}
	}
}

func TestOpcodeString(t *testing.T) {
	if s := vm.OpJnz.String(); s != "jnz" {
		t.Errorf("expected jnz, got %s", s)
	}
	if s := vm.Opcode(42).String(); s != "op(42)" {
		t.Errorf("expected op(42), got %s", s)
	}
	if s := vm.Relative.String(); s != "relative" {
		t.Errorf("expected relative, got %s", s)
	}
	if vm.Tier2.WordBits() != 32 || vm.Tier3.WordBits() != 64 {
		t.Error("bad word width")
	}
}
