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

// Package pipeline runs intcode instances connected in a feedback ring.
//
// Instance k of a ring reads from instance k-1 and writes to instance k+1,
// wrapping around, so that the output of the last instance feeds back into the
// first one. Each instance first receives its own phase value, then the first
// instance receives the seed value. All instances run concurrently.
//
// A ring shuts down as instances halt: once an instance has halted, its
// predecessor can no longer send it values. Every instance of a ring uses the
// same one-shot Result as its fallback output, so the first value that could
// not be forwarded because the ring was closing becomes the ring's result,
// regardless of which instance produced it.
package pipeline
