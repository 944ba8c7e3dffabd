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

package vm_test

import (
	"fmt"
	"os"

	"github.com/db47h/intcode/vm"
)

func ExampleInstance_Run() {
	// a program that outputs a copy of itself
	quine := []vm.Cell{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}

	var out []vm.Cell
	i, err := vm.New(quine,
		vm.Output(vm.SinkFunc(func(v vm.Cell) error {
			out = append(out, v)
			return nil
		})))
	if err != nil {
		panic(err)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}
	fmt.Println(out)
	fmt.Println(len(i.Mem) > len(quine))

	// Output:
	// [109 1 204 -1 1001 100 1 100 1008 100 16 101 1006 101 0 99]
	// true
}

func ExamplePrinter() {
	i, err := vm.New([]vm.Cell{104, 1125899906842624, 99}, vm.Output(vm.Printer(os.Stdout)))
	if err != nil {
		panic(err)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}

	// Output:
	// 1125899906842624
}

func ExampleScalar() {
	// outputs 999 if the input is below 8, 1000 if equal to 8 and 1001 if
	// greater than 8.
	cmp8 := []vm.Cell{
		3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
		1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
		999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99,
	}
	for _, v := range []vm.Cell{7, 8, 9} {
		i, err := vm.New(cmp8,
			vm.WithTier(vm.Tier2),
			vm.Input(vm.Scalar(v)),
			vm.Output(vm.Printer(os.Stdout)))
		if err != nil {
			panic(err)
		}
		if err = i.Run(); err != nil {
			panic(err)
		}
	}

	// Output:
	// 999
	// 1000
	// 1001
}
