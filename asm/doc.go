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

// Package asm provides utility functions to load, disassemble and identify
// intcode programs.
//
// Program text is a comma separated list of decimal integers. Whitespace,
// including line breaks, may appear anywhere between values, a trailing comma
// is accepted, and '#' starts a comment that runs to the end of the line:
//
//	# add the values at addresses 0 and 0, store in 0
//	1, 0, 0, 0,
//	99
//
// Disassembly listings use the following mnemonics:
//
//	opcode	asm	operands	description
//	------	----	--------	-------------------------------------------
//	1	add	a b dst		dst = a + b
//	2	mul	a b dst		dst = a * b
//	3	sto	dst		dst = next input value
//	4	load	a		output a
//	5	jnz	c t		jump to t if c != 0
//	6	jz	c t		jump to t if c == 0
//	7	lt	a b dst		dst = 1 if a < b, 0 otherwise
//	8	eq	a b dst		dst = 1 if a == b, 0 otherwise
//	9	rbo	a		add a to the relative base
//	99	hlt			halt
//
// Operands are printed as n for Immediate mode, [n] for Position mode and
// [rb+n] or [rb-n] for Relative mode. Words that do not decode to a valid
// instruction are printed as data: ".dat n".
package asm
