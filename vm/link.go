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

package vm

import "sync"

// Link is an unbuffered, point to point connection between two instances.
//
// A send on a link blocks until the value is received or the receiving side is
// closed. A receive blocks until a value arrives or all sending sides are
// closed. Values are delivered in send order.
//
// Besides its Sender, a link can have any number of Injectors, used by third
// parties to deliver values. The link stays open for the receiver until the
// Sender and all Injectors are closed.
type Link struct {
	c       chan Cell
	rdone   chan struct{} // closed when the receiver is closed
	sdone   chan struct{} // closed when the sender and all injectors are closed
	ronce   sync.Once
	sonce   sync.Once
	mu      sync.Mutex
	senders int
}

// NewLink returns a new Link.
func NewLink() *Link {
	return &Link{
		c:       make(chan Cell),
		rdone:   make(chan struct{}),
		sdone:   make(chan struct{}),
		senders: 1,
	}
}

// Receiver returns the receiving end of the link. It implements Source and
// io.Closer.
func (l *Link) Receiver() *Receiver { return (*Receiver)(l) }

// Sender returns the sending end of the link. It implements Sink and
// io.Closer.
func (l *Link) Sender() *Sender { return (*Sender)(l) }

func (l *Link) release() {
	l.mu.Lock()
	l.senders--
	if l.senders == 0 {
		close(l.sdone)
	}
	l.mu.Unlock()
}

func (l *Link) send(v Cell) error {
	select {
	case l.c <- v:
		return nil
	case <-l.rdone:
		return ErrChannelClosed
	}
}

// Injector returns a new sending end for a third party. It must be closed
// once done. If the Sender and all previous injectors are already closed, the
// returned injector is closed and its Emit method fails with ErrChannelClosed.
func (l *Link) Injector() *Injector {
	in := &Injector{l: l}
	l.mu.Lock()
	if l.senders == 0 {
		in.once.Do(func() {})
		in.closed = true
	} else {
		l.senders++
	}
	l.mu.Unlock()
	return in
}

// Inject delivers v to the receiving end on behalf of a third party. It is a
// shorthand for creating an Injector, emitting v and closing it.
func (l *Link) Inject(v Cell) error {
	in := l.Injector()
	defer in.Close()
	return in.Emit(v)
}

// Injector is an additional sending end of a Link.
type Injector struct {
	l      *Link
	once   sync.Once
	closed bool
}

// Emit sends v to the receiving end. It blocks until the value is received,
// and fails with ErrChannelClosed if the receiver is closed first.
func (in *Injector) Emit(v Cell) error {
	if in.closed {
		return ErrChannelClosed
	}
	return in.l.send(v)
}

// Close closes the injector. Close always returns nil.
func (in *Injector) Close() error {
	in.once.Do(func() {
		in.closed = true
		in.l.release()
	})
	return nil
}

// Receiver is the receiving end of a Link.
type Receiver Link

// Next waits for the next value. Once the sender and all injectors are closed,
// it fails with ErrOutOfInput.
func (r *Receiver) Next() (Cell, error) {
	select {
	case v := <-r.c:
		return v, nil
	case <-r.sdone:
		return 0, ErrOutOfInput
	}
}

// Close closes the receiving end. Pending and subsequent sends fail with
// ErrChannelClosed. Close always returns nil.
func (r *Receiver) Close() error {
	r.ronce.Do(func() { close(r.rdone) })
	return nil
}

// Sender is the sending end of a Link.
type Sender Link

// Emit sends v to the receiving end. If the receiver is closed, it fails with
// ErrChannelClosed.
func (s *Sender) Emit(v Cell) error {
	return (*Link)(s).send(v)
}

// Close closes the sending end. Once all injectors are closed as well, pending
// and subsequent receives fail with ErrOutOfInput. Close always returns nil.
func (s *Sender) Close() error {
	s.sonce.Do((*Link)(s).release)
	return nil
}
