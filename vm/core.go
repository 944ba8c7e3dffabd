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
	"io"

	"github.com/pkg/errors"
)

// address validates a, the effective address of a memory access.
func (i *Instance) address(a Cell) (int, error) {
	if a < 0 || a >= Cell(len(i.Mem)) && (!i.tier.GrowMemory() || a >= Cell(i.maxMem)) {
		return 0, errors.Wrapf(ErrInvalidAddress, "address %d", a)
	}
	return int(a), nil
}

// operandAddr returns the effective address of operand n (1-based) of the
// instruction at PC. For Immediate operands, this is the address of the
// operand itself.
func (i *Instance) operandAddr(ins Instruction, n int) (int, error) {
	p, err := i.address(Cell(i.PC + n))
	if err != nil {
		return 0, err
	}
	switch ins.Modes[n-1] {
	case Immediate:
		return p, nil
	case Relative:
		return i.address(i.Mem.Read(p) + i.RB)
	default:
		return i.address(i.Mem.Read(p))
	}
}

func (i *Instance) operand(ins Instruction, n int) (Cell, error) {
	a, err := i.operandAddr(ins, n)
	if err != nil {
		return 0, errors.Wrapf(err, "%v operand %d", ins.Op, n)
	}
	return i.Mem.Read(a), nil
}

func (i *Instance) store(ins Instruction, n int, v Cell) error {
	if ins.Modes[n-1] == Immediate {
		return errors.Wrapf(ErrInvalidAddressingMode, "%v operand %d", ins.Op, n)
	}
	a, err := i.operandAddr(ins, n)
	if err != nil {
		return errors.Wrapf(err, "%v operand %d", ins.Op, n)
	}
	i.Mem.Write(a, i.tier.word(v))
	return nil
}

func (i *Instance) input() (Cell, error) {
	if i.hasPhase {
		i.hasPhase = false
		return i.phase, nil
	}
	if i.in == nil {
		return 0, errors.Wrap(ErrOutOfInput, "no input source")
	}
	v, err := i.in.Next()
	if err != nil {
		return 0, errors.Wrap(err, "input failed")
	}
	return v, nil
}

func (i *Instance) output(v Cell) error {
	if i.out == nil {
		i.log.Debug("no output sink, value dropped", "value", v)
		return nil
	}
	err := i.out.Emit(v)
	if errors.Cause(err) != ErrChannelClosed {
		return errors.Wrap(err, "output failed")
	}
	if i.fallback == nil {
		i.log.Warn("receiver gone, value dropped", "value", v)
		return nil
	}
	i.log.Debug("receiver gone, value sent to fallback", "value", v)
	return errors.Wrap(i.fallback.Emit(v), "fallback output failed")
}

// step executes the instruction at PC.
func (i *Instance) step() error {
	pc, err := i.address(Cell(i.PC))
	if err != nil {
		return err
	}
	ins, err := i.tier.Decode(i.Mem.Read(pc))
	if err != nil {
		return err
	}
	next := pc + ins.Width()
	switch ins.Op {
	case OpAdd, OpMul, OpLt, OpEq:
		a, err := i.operand(ins, 1)
		if err != nil {
			return err
		}
		b, err := i.operand(ins, 2)
		if err != nil {
			return err
		}
		var v Cell
		switch ins.Op {
		case OpAdd:
			v = a + b
		case OpMul:
			v = a * b
		case OpLt:
			if a < b {
				v = 1
			}
		case OpEq:
			if a == b {
				v = 1
			}
		}
		if err = i.store(ins, 3, v); err != nil {
			return err
		}
	case OpSto:
		v, err := i.input()
		if err != nil {
			return err
		}
		if err = i.store(ins, 1, v); err != nil {
			return err
		}
	case OpLoad:
		v, err := i.operand(ins, 1)
		if err != nil {
			return err
		}
		if err = i.output(v); err != nil {
			return err
		}
	case OpJnz, OpJz:
		c, err := i.operand(ins, 1)
		if err != nil {
			return err
		}
		t, err := i.operand(ins, 2)
		if err != nil {
			return err
		}
		if (c != 0) == (ins.Op == OpJnz) {
			if t < 0 {
				return errors.Wrapf(ErrInvalidAddress, "%v target %d", ins.Op, t)
			}
			next = int(t)
		}
	case OpRbo:
		v, err := i.operand(ins, 1)
		if err != nil {
			return err
		}
		i.RB += v
	case OpHlt:
		i.halted = true
		next = pc
	}
	i.PC = next
	i.insCount++
	return nil
}

// fault wraps err into a *Fault for the instruction at PC.
func (i *Instance) fault(err error) error {
	if f, ok := err.(*Fault); ok {
		return f
	}
	var w Cell
	if i.PC >= 0 && i.PC < len(i.Mem) {
		w = i.Mem[i.PC]
	}
	return &Fault{PC: i.PC, Word: w, Err: err}
}

func closePort(p interface{}) {
	if c, ok := p.(io.Closer); ok {
		c.Close()
	}
}

// stop moves the instance to the halted state and closes its I/O ports.
func (i *Instance) stop(err error) {
	i.halted = true
	i.err = err
	closePort(i.in)
	closePort(i.out)
	if err != nil {
		i.log.Warn("fault", "error", err, "instructions", i.insCount)
		return
	}
	i.log.Debug("halted", "pc", i.PC, "instructions", i.insCount)
}

// Step executes a single instruction.
//
// If the instruction halts the instance or fails, the instance is stopped
// and its I/O ports are closed. A failed instruction is reported as a *Fault.
// Calling Step on a stopped instance returns the fault that stopped it, or
// nil.
func (i *Instance) Step() (err error) {
	if i.halted {
		return i.err
	}
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = i.fault(e)
			default:
				panic(e)
			}
		}
		if err != nil || i.halted {
			i.stop(err)
		}
	}()
	if err = i.step(); err != nil {
		return i.fault(err)
	}
	return nil
}

// Run starts execution of the instance and returns once it stops.
//
// If the instance halted normally on hlt, err is nil and PC points to the hlt
// instruction. On a fatal error, err is a *Fault and PC points to the
// instruction that triggered it. In both cases, the instance's I/O ports are
// closed when Run returns.
func (i *Instance) Run() (err error) {
	if i.halted {
		return i.err
	}
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = i.fault(e)
			default:
				panic(e)
			}
		}
		i.stop(err)
	}()
	i.log.Debug("run", "tier", i.tier, "pc", i.PC, "cells", len(i.Mem))
	for !i.halted {
		if err = i.step(); err != nil {
			return i.fault(err)
		}
	}
	return nil
}
