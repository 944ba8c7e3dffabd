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

// Memory is the addressable memory of an instance.
//
// Reads and writes past the end of memory extend it with zero cells up to and
// including the accessed address. Addresses must not be negative.
type Memory []Cell

// grow extends m so that addr is a valid index.
func (m *Memory) grow(addr int) {
	if addr < len(*m) {
		return
	}
	if addr < cap(*m) {
		l := len(*m)
		*m = (*m)[:addr+1]
		clear((*m)[l:])
		return
	}
	t := make(Memory, addr+1, 2*addr+2)
	copy(t, *m)
	*m = t
}

// Read returns the value at address addr.
func (m *Memory) Read(addr int) Cell {
	m.grow(addr)
	return (*m)[addr]
}

// Write sets the value at address addr.
func (m *Memory) Write(addr int, v Cell) {
	m.grow(addr)
	(*m)[addr] = v
}

// Len returns the current length of memory in cells.
func (m Memory) Len() int { return len(m) }

// Cells returns a copy of the memory contents.
func (m Memory) Cells() []Cell {
	return append([]Cell(nil), m...)
}
