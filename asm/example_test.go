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

package asm_test

import (
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
)

func ExampleDisassembleAll() {
	img, err := asm.Parse("quine", strings.NewReader(
		"109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"))
	if err != nil {
		panic(err)
	}
	if err = asm.DisassembleAll(img, 0, os.Stdout); err != nil {
		panic(err)
	}

	// Output:
	//      0	rbo 1
	//      2	load [rb-1]
	//      4	add [100] 1 [100]
	//      8	eq [100] 16 [101]
	//     12	jz [101] 0
	//     15	hlt
}
