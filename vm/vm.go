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
	"log/slog"

	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an intcode machine instance.
type Instance struct {
	PC       int    // Program Counter
	RB       Cell   // Relative base
	Mem      Memory // Memory
	tier     Tier
	halted   bool
	err      error
	in       Source
	out      Sink
	fallback Sink
	phase    Cell
	hasPhase bool
	insCount int64
	maxMem   int
	name     string
	log      *slog.Logger
}

// DefaultMaxMemory is the default memory limit, in cells, of instances with
// auto-extending memory.
const DefaultMaxMemory = 1 << 24

// Option interface
type Option func(*Instance) error

// WithTier sets the instruction set tier. The default is Tier3.
func WithTier(t Tier) Option {
	return func(i *Instance) error {
		if !t.Valid() {
			return errors.Errorf("unsupported tier %d", int(t))
		}
		i.tier = t
		return nil
	}
}

// Input sets the source of values read by the sto instruction.
func Input(s Source) Option {
	return func(i *Instance) error { i.in = s; return nil }
}

// Output sets the sink receiving values written by the load instruction.
func Output(s Sink) Option {
	return func(i *Instance) error { i.out = s; return nil }
}

// Phase sets a value that will be delivered exactly once, as the first input,
// before any read from the input Source.
func Phase(v Cell) Option {
	return func(i *Instance) error {
		i.phase, i.hasPhase = v, true
		return nil
	}
}

// Fallback sets the sink receiving output values that could not be delivered
// to the output sink because its receiver is gone (ErrChannelClosed). Each
// such value is emitted exactly once to the fallback sink and the instance
// keeps running.
//
// Unlike the input and output ports, the fallback sink is not closed when the
// instance stops, so that it can be shared between instances.
func Fallback(s Sink) Option {
	return func(i *Instance) error { i.fallback = s; return nil }
}

// MaxMemory sets the number of cells that memory can grow to in tiers with
// auto-extending memory. Accessing an address at or past the limit fails with
// ErrInvalidAddress. The limit does not apply to the program itself.
func MaxMemory(n int) Option {
	return func(i *Instance) error {
		if n < 1 {
			return errors.Errorf("invalid memory limit %d", n)
		}
		i.maxMem = n
		return nil
	}
}

// Name sets the instance name used in log records.
func Name(name string) Option {
	return func(i *Instance) error { i.name = name; return nil }
}

// Logger sets the logger. By default, nothing is logged.
func Logger(l *slog.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			return errors.New("nil logger")
		}
		i.log = l
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new intcode machine instance.
//
// The program is copied into the instance's memory, so the same program can be
// used to create any number of instances.
func New(program []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem:  append(Memory(nil), program...),
		tier:   Tier3,
		maxMem: DefaultMaxMemory,
		log:    slog.New(slog.DiscardHandler),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.tier < Tier3 {
		for n, v := range i.Mem {
			if i.tier.word(v) != v {
				return nil, errors.Errorf("value %d at memory location %d does not fit in %d bits", v, n, i.tier.WordBits())
			}
		}
	}
	if i.name != "" {
		i.log = i.log.With("instance", i.name)
	}
	return i, nil
}

// Tier returns the instance's instruction set tier.
func (i *Instance) Tier() Tier { return i.tier }

// Halted returns true once the instance has stopped, either normally on hlt
// or on a fatal error.
func (i *Instance) Halted() bool { return i.halted }

// Err returns the fault that stopped the instance, if any.
func (i *Instance) Err() error { return i.err }

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
