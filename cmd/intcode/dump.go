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
	"io"

	"github.com/db47h/intcode/internal/ngi"
	"github.com/db47h/intcode/vm"
)

// dumpMem writes the instance memory to w as a comma separated list, the same
// format accepted by the program loader.
func dumpMem(i *vm.Instance, w io.Writer) error {
	ew := ngi.NewErrWriter(w)
	ew.WriteCells(i.Mem, ",")
	_, err := ew.Write([]byte{'\n'})
	return err
}
