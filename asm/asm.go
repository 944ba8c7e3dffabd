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
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ngi"
	"github.com/db47h/intcode/vm"
	"golang.org/x/crypto/blake2b"
)

func operand(ew io.Writer, m vm.Mode, v vm.Cell) {
	switch m {
	case vm.Immediate:
		io.WriteString(ew, strconv.FormatInt(int64(v), 10))
	case vm.Relative:
		if v < 0 {
			io.WriteString(ew, "[rb"+strconv.FormatInt(int64(v), 10)+"]")
		} else {
			io.WriteString(ew, "[rb+"+strconv.FormatInt(int64(v), 10)+"]")
		}
	default:
		io.WriteString(ew, "["+strconv.FormatInt(int64(v), 10)+"]")
	}
}

// Disassemble writes a disassembly of the instruction at address pc in img to
// w and returns the address of the next instruction.
//
// Operands missing at the end of img are printed as "???".
func Disassemble(img []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := ngi.NewErrWriter(w)

	ins, err := vm.Decode(img[pc])
	if err != nil {
		io.WriteString(ew, ".dat "+strconv.FormatInt(int64(img[pc]), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, ins.Op.String())
	pc++
	for n := 0; n < ins.Op.Operands(); n++ {
		ew.Write([]byte{' '})
		if pc >= len(img) {
			io.WriteString(ew, "???")
			continue
		}
		operand(ew, ins.Modes[n], img[pc])
		pc++
	}
	return pc, ew.Err
}

// DisassembleAll writes a disassembly of all cells in img to w, one
// instruction per line prefixed by its address. The base parameter is added to
// all printed addresses.
func DisassembleAll(img []vm.Cell, base int, w io.Writer) error {
	ew := ngi.NewErrWriter(w)
	for pc := 0; pc < len(img); {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		pc, _ = Disassemble(img, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

// Fingerprint returns a hex encoded BLAKE2b-256 digest of img, used to
// identify programs in logs.
func Fingerprint(img []vm.Cell) string {
	b := make([]byte, 8*len(img))
	for n, c := range img {
		binary.LittleEndian.PutUint64(b[8*n:], uint64(c))
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}
