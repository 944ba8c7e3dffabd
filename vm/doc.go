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

// Package vm implements the intcode machine: a small stored-program computer
// whose memory is a sequence of signed integer cells and whose instructions
// encode per-operand addressing modes in their decimal digits.
//
// The instruction set comes in three cumulative tiers:
//
//	Tier1	add, mul and hlt with fixed 4-word instructions and direct addressing.
//	Tier2	adds sto, load, jnz, jz, lt, eq and the Immediate addressing mode.
//	Tier3	adds the Relative addressing mode, the relative base register, rbo,
//		auto-extending memory and 64 bits words.
//
// A tier is selected when creating an Instance with the WithTier option. The
// default is Tier3.
//
// Input and output go through the Source and Sink interfaces. The package
// provides preset values (Scalar, Values), line based interactive input
// (Interactive), decimal output (Printer) and unbuffered links between
// instances (NewLink). A link sender whose receiving instance has already
// halted gets ErrChannelClosed; an instance configured with a Fallback sink
// then forwards the value to it and keeps running. This is how a ring of
// instances reports its last value once it shuts down, see package pipeline.
//
// Fatal conditions stop the instance and are returned by Run as a *Fault
// carrying the program counter and the offending instruction word. Use
// errors.Cause to get the error kind:
//
//	if err := i.Run(); errors.Cause(err) == vm.ErrOutOfInput {
//		// ...
//	}
package vm
