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

// Package logs sets up the structured logger used by the intcode command.
package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Level is the level shared by all loggers returned by New.
var Level = new(slog.LevelVar)

// ParseLevel parses a level name: debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, errors.Wrapf(err, "invalid log level %q", s)
	}
	return l, nil
}

// New returns a logger writing text records to w. When the process runs as a
// systemd service, records go to the systemd journal instead.
func New(w io.Writer) *slog.Logger {
	return slog.New(slogmulti.Fanout(handlers(w, isSystemdService())...))
}

func handlers(w io.Writer, service bool) []slog.Handler {
	text := slog.NewTextHandler(w, &slog.HandlerOptions{Level: Level})
	if !service {
		return []slog.Handler{text}
	}
	jh, err := slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: journalKey,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = journalKey(a.Key)
			return a
		},
	})
	if err != nil {
		r := slog.NewRecord(time.Now(), slog.LevelWarn, "systemd journal unavailable", 0)
		r.AddAttrs(slog.Any("error", err))
		_ = text.Handle(context.Background(), r)
		return []slog.Handler{text}
	}
	return []slog.Handler{jh}
}

// journal fields are upper case letters, digits and underscores.
func journalKey(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(s))
}

func isSystemdService() bool {
	b, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.SplitN(strings.TrimSpace(string(b)), ":", 3)
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
