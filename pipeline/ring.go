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

package pipeline

import (
	"log/slog"
	"strconv"
	"sync"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// ErrNoResult is returned by Run when all instances of a ring halted without
// any value reaching the ring's Result.
var ErrNoResult = errors.New("ring halted without a result")

type config struct {
	tier    vm.Tier
	log     *slog.Logger
	workers int
}

// Option interface
type Option func(*config) error

// WithTier sets the instruction set tier of the ring's instances. The default
// is vm.Tier3.
func WithTier(t vm.Tier) Option {
	return func(c *config) error {
		if !t.Valid() {
			return errors.Errorf("unsupported tier %d", int(t))
		}
		c.tier = t
		return nil
	}
}

// WithLogger sets the logger used by rings and their instances.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		if l == nil {
			return errors.New("nil logger")
		}
		c.log = l
		return nil
	}
}

// WithWorkers sets the number of rings that Best runs concurrently. The
// default is 1.
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return errors.Errorf("invalid worker count %d", n)
		}
		c.workers = n
		return nil
	}
}

func newConfig(opts []Option) (*config, error) {
	c := &config{
		tier:    vm.Tier3,
		log:     slog.New(slog.DiscardHandler),
		workers: 1,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Ring is a feedback ring of intcode instances.
type Ring struct {
	insts  []*vm.Instance
	links  []*vm.Link
	result *Result
	phases []vm.Cell
	log    *slog.Logger
	ran    bool
}

// New creates a ring with one instance per phase value. Each instance gets its
// own copy of program. Link k connects the output of instance k to the input of
// instance (k+1) mod N.
//
// A ring needs at least two instances: links are unbuffered, so a single
// instance would block forever sending to itself.
func New(program []vm.Cell, phases []vm.Cell, opts ...Option) (*Ring, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	n := len(phases)
	if n < 2 {
		return nil, errors.Errorf("ring needs at least 2 instances, got %d", n)
	}
	r := &Ring{
		insts:  make([]*vm.Instance, n),
		links:  make([]*vm.Link, n),
		result: NewResult(),
		phases: append([]vm.Cell(nil), phases...),
		log:    c.log,
	}
	for k := range r.links {
		r.links[k] = vm.NewLink()
	}
	for k, ph := range phases {
		r.insts[k], err = vm.New(program,
			vm.WithTier(c.tier),
			vm.Phase(ph),
			vm.Input(r.links[(k+n-1)%n].Receiver()),
			vm.Output(r.links[k].Sender()),
			vm.Fallback(r.result),
			vm.Name("amp"+strconv.Itoa(k)),
			vm.Logger(c.log))
		if err != nil {
			return nil, errors.Wrapf(err, "amplifier %d", k)
		}
	}
	return r, nil
}

// Instances returns the ring's instances, in ring order.
func (r *Ring) Instances() []*vm.Instance {
	return r.insts
}

// Run starts all instances, delivers seed to the first instance, and waits
// for all instances to halt. It returns the value captured by the ring's
// Result.
//
// If an instance stops on a fault, Run returns the fault of the first failing
// instance in ring order. A ring can only run once.
func (r *Ring) Run(seed vm.Cell) (vm.Cell, error) {
	if r.ran {
		return 0, errors.New("ring already ran")
	}
	r.ran = true
	r.log.Debug("ring start", "phases", r.phases, "seed", seed)

	// the last link feeds the first instance. The injector keeps it open
	// until the seed is delivered, whatever the last instance does.
	seeder := r.links[len(r.links)-1].Injector()
	errs := make([]error, len(r.insts))
	var wg sync.WaitGroup
	for k, i := range r.insts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[k] = i.Run()
		}()
	}
	if err := seeder.Emit(seed); err != nil {
		r.log.Warn("seed not delivered", "error", err)
	}
	seeder.Close()
	wg.Wait()

	for k, err := range errs {
		if err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", k)
		}
	}
	v, ok := r.result.Value()
	if !ok {
		return 0, ErrNoResult
	}
	if n := r.result.Extra(); n > 0 {
		r.log.Warn("ring produced extra results", "count", n)
	}
	r.log.Debug("ring done", "phases", r.phases, "result", v)
	return v, nil
}

// Run creates a ring from program and phases and runs it with the given seed.
func Run(program []vm.Cell, phases []vm.Cell, seed vm.Cell, opts ...Option) (vm.Cell, error) {
	r, err := New(program, phases, opts...)
	if err != nil {
		return 0, err
	}
	return r.Run(seed)
}
