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

// The intcode command line tool loads an intcode program and runs it on a
// single machine instance, or on a ring of amplifiers.
//
// Usage:
//
//	intcode [flags] program
//
//	-config file
//		  load settings from CUE file; command line flags take precedence
//	-debug
//		  enable debug diagnostics
//	-dis
//		  disassemble the program and exit
//	-dump
//		  dump memory upon exit
//	-input values
//		  comma separated input values (can be specified multiple times)
//	-log level
//		  log level (debug, info, warn or error) (default "warn")
//	-phases values
//		  run an amplifier ring with the given comma separated phase values
//	-search values
//		  search the permutation of phase values giving the highest ring output
//	-seed value
//		  ring seed value
//	-set addr=value
//		  set memory cell before running (can be specified multiple times)
//	-target value
//		  search the noun and verb (cells 1 and 2) for which cell 0 ends up holding value
//	-tier tier
//		  instruction set tier (1, 2 or 3) (default 3)
//	-workers int
//		  number of rings run concurrently when searching (default NumCPU)
//
// The program file contains comma separated integers. Line comments start
// with '#'.
//
// Without -phases or -search, the program runs on a single instance. Values
// output by the program are printed on stdout, one per line. Input values are
// taken from -input, or read from stdin one per line. When stdin is a
// terminal, the user is prompted with "Enter Input: ".
//
// -phases runs a feedback ring with one amplifier per phase value, seeded with
// -seed, and prints the ring output. -search tries every permutation of the
// given values and prints the best output followed by the phase sequence
// producing it.
//
// -set patches the program before running it. For example, to restore the
// "1202 program alarm" state:
//
//	intcode -tier 1 -set 1=12 -set 2=2 -dump gravity.txt
//
// -target tries every noun (cell 1) and verb (cell 2) between 0 and 99 and
// prints 100*noun+verb for the first pair leaving the given value in cell 0.
//
// -config loads the same settings from a CUE file:
//
//	tier:   2
//	search: [5, 6, 7, 8, 9]
//	set: {"1": 12}
//
// -debug prints errors with a full stack trace, followed by the faulting
// instruction's address and word.
package main
