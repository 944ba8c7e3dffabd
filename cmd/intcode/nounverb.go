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
	"strconv"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// optCell is a cell value flag that records whether it was set.
type optCell struct {
	v   vm.Cell
	set bool
}

func (c *optCell) String() string {
	if c == nil || !c.set {
		return ""
	}
	return strconv.FormatInt(int64(c.v), 10)
}

func (c *optCell) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	c.v, c.set = vm.Cell(v), true
	return nil
}

func (c *optCell) Get() interface{} { return c.v }

// findNounVerb looks for the values of cells 1 (noun) and 2 (verb), both in
// the range [0, 99], for which prog halts with target in cell 0. Candidates
// that fault are skipped.
func findNounVerb(prog []vm.Cell, t vm.Tier, target vm.Cell) (noun, verb vm.Cell, err error) {
	if len(prog) < 3 {
		return 0, 0, errors.Errorf("program too short: %d cells", len(prog))
	}
	p := append([]vm.Cell(nil), prog...)
	for noun = 0; noun < 100; noun++ {
		for verb = 0; verb < 100; verb++ {
			p[1], p[2] = noun, verb
			i, err := vm.New(p, vm.WithTier(t))
			if err != nil {
				return 0, 0, err
			}
			if i.Run() == nil && i.Mem[0] == target {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, errors.Errorf("no noun and verb give %d", target)
}
