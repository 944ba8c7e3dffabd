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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/internal/configs"
	"github.com/db47h/intcode/internal/logs"
	"github.com/db47h/intcode/pipeline"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// cellList accumulates comma separated values. It can be set multiple times.
type cellList []vm.Cell

func (l *cellList) String() string {
	if l == nil {
		return ""
	}
	return strings.Trim(fmt.Sprint([]vm.Cell(*l)), "[]")
}

func (l *cellList) Set(s string) error {
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return err
		}
		*l = append(*l, vm.Cell(v))
	}
	return nil
}

func (l *cellList) Get() interface{} { return *l }

type tierFlag vm.Tier

func (t *tierFlag) String() string { return strconv.Itoa(int(*t)) }
func (t *tierFlag) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if !vm.Tier(n).Valid() {
		return fmt.Errorf("tier %d not supported", n)
	}
	*t = tierFlag(n)
	return nil
}
func (t *tierFlag) Get() interface{} { return vm.Tier(*t) }

// patches holds addr=value memory patches applied to the program before
// running it.
type patches map[int]vm.Cell

func (p patches) String() string { return "" }
func (p patches) Set(s string) error {
	a, v, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected addr=value, got %q", s)
	}
	addr, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return err
	}
	if addr < 0 {
		return fmt.Errorf("negative address %d", addr)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return err
	}
	p[addr] = vm.Cell(n)
	return nil
}
func (p patches) Get() interface{} { return map[int]vm.Cell(p) }

var (
	tier     = tierFlag(vm.Tier3)
	input    cellList
	phases   cellList
	search   cellList
	set      = make(patches)
	target   optCell
	seed     int64
	workers  int
	logLevel string
	cfgFile  string
	dis      bool
	dump     bool
	debug    bool
)

func setupFlags(fs *flag.FlagSet) {
	fs.Var(&tier, "tier", "instruction set `tier` (1, 2 or 3)")
	fs.Var(&input, "input", "comma separated input `values` (can be specified multiple times)")
	fs.Var(&phases, "phases", "run an amplifier ring with the given comma separated phase `values`")
	fs.Var(&search, "search", "search the permutation of phase `values` giving the highest ring output")
	fs.Var(set, "set", "set memory cell before running (`addr=value`, can be specified multiple times)")
	fs.Var(&target, "target", "search the noun and verb (cells 1 and 2) for which cell 0 ends up holding `value`")
	fs.Int64Var(&seed, "seed", 0, "ring seed `value`")
	fs.IntVar(&workers, "workers", runtime.NumCPU(), "number of rings run concurrently when searching")
	fs.StringVar(&logLevel, "log", "warn", "log `level` (debug, info, warn or error)")
	fs.StringVar(&cfgFile, "config", "", "load settings from CUE `file`; command line flags take precedence")
	fs.BoolVar(&dis, "dis", false, "disassemble the program and exit")
	fs.BoolVar(&dump, "dump", false, "dump memory upon exit")
	fs.BoolVar(&debug, "debug", false, "enable debug diagnostics")
}

// applyConfig copies the settings of c that were not set on the command line.
func applyConfig(fs *flag.FlagSet, c *configs.Config) {
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if !explicit["tier"] && c.Tier != 0 {
		tier = tierFlag(c.Tier)
	}
	if !explicit["input"] && c.Input != nil {
		input = c.Input
	}
	if !explicit["phases"] && c.Phases != nil {
		phases = c.Phases
	}
	if !explicit["search"] && c.Search != nil {
		search = c.Search
	}
	if !explicit["seed"] && c.Seed != nil {
		seed = int64(*c.Seed)
	}
	if !explicit["log"] && c.Log != "" {
		logLevel = c.Log
	}
	for addr, v := range c.Set {
		if _, ok := set[addr]; !ok {
			set[addr] = v
		}
	}
}

// lineInput returns the interactive source for stdin. When stdin is a
// terminal, the user is prompted on w and the terminal is put in line mode.
func lineInput(log *slog.Logger, w io.Writer) (vm.Source, func()) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return vm.Interactive(os.Stdin, nil), nil
	}
	restore, err := setLineMode()
	if err != nil {
		log.Debug("line mode not set", "error", err)
	}
	return vm.Interactive(os.Stdin, w), restore
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	var f *vm.Fault
	if errors.As(err, &f) {
		fmt.Fprintf(os.Stderr, "PC: %d (%d)\n", f.PC, f.Word)
	}
	if i != nil {
		fmt.Fprintf(os.Stderr, "RB: %d, instructions: %d\n", i.RB, i.InstructionCount())
	}
	os.Exit(1)
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)
	defer func() {
		if e := stdout.Flush(); err == nil {
			err = e
		}
		atExit(i, err)
	}()

	fs := flag.CommandLine
	setupFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] program\n", os.Args[0])
		fs.PrintDefaults()
	}
	flag.Parse()

	if cfgFile != "" {
		var c *configs.Config
		if c, err = configs.Load(cfgFile); err != nil {
			return
		}
		applyConfig(fs, c)
	}
	var l slog.Level
	if l, err = logs.ParseLevel(logLevel); err != nil {
		return
	}
	logs.Level.Set(l)
	log := logs.New(os.Stderr)

	if flag.NArg() != 1 {
		fs.Usage()
		err = errors.New("missing program file")
		return
	}
	var prog []vm.Cell
	if prog, err = asm.Load(flag.Arg(0)); err != nil {
		return
	}
	for addr, v := range set {
		if addr >= len(prog) {
			err = errors.Errorf("set: address %d out of program range", addr)
			return
		}
		prog[addr] = v
	}
	log.Info("program loaded", "file", flag.Arg(0), "cells", len(prog), "fingerprint", asm.Fingerprint(prog))

	if dis {
		err = asm.DisassembleAll(prog, 0, stdout)
		return
	}

	popts := []pipeline.Option{
		pipeline.WithTier(vm.Tier(tier)),
		pipeline.WithLogger(log),
	}
	switch {
	case target.set:
		var noun, verb vm.Cell
		if noun, verb, err = findNounVerb(prog, vm.Tier(tier), target.v); err != nil {
			return
		}
		fmt.Fprintf(stdout, "%d\n", 100*noun+verb)
	case len(search) > 0:
		var best vm.Cell
		var ph []vm.Cell
		best, ph, err = pipeline.Best(prog, search, vm.Cell(seed), append(popts, pipeline.WithWorkers(workers))...)
		if err != nil {
			return
		}
		fmt.Fprintf(stdout, "%d %v\n", best, ph)
	case len(phases) > 0:
		var v vm.Cell
		if v, err = pipeline.Run(prog, phases, vm.Cell(seed), popts...); err != nil {
			return
		}
		fmt.Fprintf(stdout, "%d\n", v)
	default:
		var src vm.Source
		if input != nil {
			src = vm.Values(input...)
		} else {
			var restore func()
			src, restore = lineInput(log, stdout)
			if restore != nil {
				defer restore()
			}
		}
		i, err = vm.New(prog,
			vm.WithTier(vm.Tier(tier)),
			vm.Input(src),
			vm.Output(vm.Printer(stdout)),
			vm.Logger(log))
		if err != nil {
			return
		}
		err = i.Run()
		log.Info("halted", "instructions", i.InstructionCount())
		if err == nil && dump {
			err = dumpMem(i, stdout)
		}
	}
}
