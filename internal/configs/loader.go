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

// Package configs loads intcode command configuration files written in CUE.
package configs

import (
	"os"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Schema is the CUE schema that configuration files are validated against.
// Unknown fields are rejected.
const Schema = `
tier?:   1 | 2 | 3
phases?: [...int]
seed?:   int
search?: [...int]
input?:  [...int]
log?:    "debug" | "info" | "warn" | "error"
set?: [=~"^[0-9]+$"]: int
`

// Config holds the settings read from a configuration file. Zero values mean
// that the corresponding field was not set.
type Config struct {
	Tier   vm.Tier
	Phases []vm.Cell
	Seed   *vm.Cell
	Search []vm.Cell
	Input  []vm.Cell
	Log    string
	Set    map[int]vm.Cell
}

// Load reads and validates the configuration file at fileName.
func Load(fileName string) (*Config, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return Parse(fileName, b)
}

// Parse validates and decodes src. fileName is only used in error messages.
func Parse(fileName string, src []byte) (*Config, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString("close({" + Schema + "})")
	if err := schema.Err(); err != nil {
		return nil, errors.Wrap(err, "config schema")
	}
	v := ctx.CompileBytes(src, cue.Filename(fileName))
	if err := v.Err(); err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	v = schema.Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, errors.Wrap(err, fileName)
	}

	var c Config
	var set map[string]vm.Cell
	for _, f := range []struct {
		path   string
		target any
	}{
		{"tier", &c.Tier},
		{"phases", &c.Phases},
		{"seed", &c.Seed},
		{"search", &c.Search},
		{"input", &c.Input},
		{"log", &c.Log},
		{"set", &set},
	} {
		fv := v.LookupPath(cue.ParsePath(f.path))
		if !fv.Exists() {
			continue
		}
		if err := fv.Decode(f.target); err != nil {
			return nil, errors.Wrapf(err, "%s: %s", fileName, f.path)
		}
	}
	if len(set) > 0 {
		c.Set = make(map[int]vm.Cell, len(set))
		for k, val := range set {
			addr, err := strconv.Atoi(k)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: set", fileName)
			}
			c.Set[addr] = val
		}
	}
	return &c, nil
}
