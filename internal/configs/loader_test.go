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

package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

func TestLoad(t *testing.T) {
	c, err := Load("testdata/day9.cue")
	if err != nil {
		t.Fatal(err)
	}
	if c.Tier != vm.Tier3 || c.Log != "debug" || fmt.Sprint(c.Input) != "[2]" {
		t.Fatalf("got %+v", c)
	}
	if c.Seed != nil || c.Phases != nil || c.Search != nil || c.Set != nil {
		t.Fatalf("unset fields decoded: %+v", c)
	}

	c, err = Load("testdata/ring.cue")
	if err != nil {
		t.Fatal(err)
	}
	if c.Seed == nil || *c.Seed != 0 {
		t.Fatalf("seed: got %v", c.Seed)
	}
	if str := fmt.Sprint(c.Search); str != "[5 6 7 8 9]" {
		t.Fatalf("search: got %s", str)
	}
	if len(c.Set) != 2 || c.Set[1] != 12 || c.Set[2] != 2 {
		t.Fatalf("set: got %v", c.Set)
	}
	if c.Tier != 0 {
		t.Fatalf("tier: got %v", c.Tier)
	}
}

func TestLoad_errors(t *testing.T) {
	if _, err := Load("testdata/bad.cue"); err == nil {
		t.Fatal("unknown field: should error")
	}
	_, err := Load("testdata/missing.cue")
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("missing file: expected a not exist error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "testdata/missing.cue: ") {
		t.Fatalf("missing file: error not wrapped with the file name: %v", err)
	}

	data := []struct {
		name string
		src  string
	}{
		{"tier", "tier: 4"},
		{"log", `log: "verbose"`},
		{"phases", `phases: [1, "a"]`},
		{"syntax", "tier: {"},
		{"set", `set: {"x": 1}`},
		{"incomplete", "seed: int"},
	}
	dir := t.TempDir()
	for _, d := range data {
		fn := filepath.Join(dir, d.name+".cue")
		if err := os.WriteFile(fn, []byte(d.src), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(fn); err == nil {
			t.Errorf("%s: should error", d.name)
		} else {
			t.Logf("%s: %v", d.name, err)
		}
	}
}
