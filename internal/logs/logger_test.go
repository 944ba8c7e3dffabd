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

package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	data := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", 0, false},
	}
	for _, d := range data {
		l, err := ParseLevel(d.in)
		if (err == nil) != d.ok {
			t.Errorf("%s: unexpected error state: %v", d.in, err)
			continue
		}
		if d.ok && l != d.want {
			t.Errorf("%s: expected %v, got %v", d.in, d.want, l)
		}
	}
}

func TestLogger(t *testing.T) {
	defer Level.Set(Level.Level())

	var buf bytes.Buffer
	l := slog.New(handlers(&buf, false)[0])
	Level.Set(slog.LevelInfo)
	l.Debug("hidden")
	l.Info("shown", "pc", 42)
	Level.Set(slog.LevelDebug)
	l.Debug("now shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record logged at info level: %s", out)
	}
	if !strings.Contains(out, "msg=shown pc=42") {
		t.Errorf("missing info record: %s", out)
	}
	if !strings.Contains(out, `msg="now shown"`) {
		t.Errorf("missing debug record: %s", out)
	}

	buf.Reset()
	New(&buf).Warn("fanout")
	if !isSystemdService() && !strings.Contains(buf.String(), "msg=fanout") {
		t.Errorf("missing fanout record: %s", buf.String())
	}
}

func TestJournalKey(t *testing.T) {
	if k := journalKey("vm.instance-1"); k != "VM_INSTANCE_1" {
		t.Fatalf("got %q", k)
	}
}
