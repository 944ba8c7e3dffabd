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
	"iter"
	"sync"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Permutations returns an iterator over all permutations of set, starting with
// set itself. Permutations are generated with Heap's algorithm: each one
// differs from the previous one by a single swap. Each yielded slice is a new
// copy that the caller may keep.
func Permutations(set []vm.Cell) iter.Seq[[]vm.Cell] {
	return func(yield func([]vm.Cell) bool) {
		a := append([]vm.Cell(nil), set...)
		c := make([]int, len(a))
		if !yield(append([]vm.Cell(nil), a...)) {
			return
		}
		for i := 0; i < len(a); {
			if c[i] >= i {
				c[i] = 0
				i++
				continue
			}
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			if !yield(append([]vm.Cell(nil), a...)) {
				return
			}
			c[i]++
			i = 0
		}
	}
}

type job struct {
	n      int
	phases []vm.Cell
	v      vm.Cell
	err    error
}

// Best runs a ring for each permutation of set and returns the highest result
// along with the phase sequence that produced it. Ties go to the permutation
// enumerated first by Permutations. Rings are run concurrently according to
// the WithWorkers option.
//
// If any ring fails, Best returns the error of the first failing permutation.
func Best(program []vm.Cell, set []vm.Cell, seed vm.Cell, opts ...Option) (best vm.Cell, phases []vm.Cell, err error) {
	c, err := newConfig(opts)
	if err != nil {
		return 0, nil, err
	}
	jobs := make(chan job)
	results := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				j.v, j.err = Run(program, j.phases, seed, opts...)
				results <- j
			}
		}()
	}
	go func() {
		n := 0
		for p := range Permutations(set) {
			jobs <- job{n: n, phases: p}
			n++
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	bestN, errN := -1, -1
	for j := range results {
		switch {
		case j.err != nil:
			if errN < 0 || j.n < errN {
				errN, err = j.n, errors.Wrapf(j.err, "phases %v", j.phases)
			}
		case bestN < 0 || j.v > best || j.v == best && j.n < bestN:
			bestN, best, phases = j.n, j.v, j.phases
		}
	}
	if err != nil {
		return 0, nil, err
	}
	c.log.Debug("best phases", "phases", phases, "result", best)
	return best, phases, nil
}
