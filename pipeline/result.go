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
	"sync"
	"sync/atomic"

	"github.com/db47h/intcode/vm"
)

// Result is a one-shot vm.Sink. It keeps the first value emitted to it and
// counts, but otherwise ignores, any later value. It is safe for concurrent
// use.
type Result struct {
	once  sync.Once
	done  chan struct{}
	v     vm.Cell
	extra atomic.Int64
}

// NewResult returns a new, empty Result.
func NewResult() *Result {
	return &Result{done: make(chan struct{})}
}

// Emit implements vm.Sink. It never fails.
func (r *Result) Emit(v vm.Cell) error {
	first := false
	r.once.Do(func() {
		r.v = v
		first = true
		close(r.done)
	})
	if !first {
		r.extra.Add(1)
	}
	return nil
}

// Value returns the captured value. The boolean result is false if no value
// has been emitted yet.
func (r *Result) Value() (vm.Cell, bool) {
	select {
	case <-r.done:
		return r.v, true
	default:
		return 0, false
	}
}

// Extra returns the number of values emitted after the first one.
func (r *Result) Extra() int64 {
	return r.extra.Load()
}
