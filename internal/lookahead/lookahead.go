// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package lookahead provides a bounded window of upcoming lines from a stream.
//
// The window is what makes resynchronization possible without unbounded memory:
// it is the only part of a stream that is ever held in memory at once.
package lookahead

import (
	"bufio"
	"io"
	"strings"
)

// Buffer holds up to depth pending lines read from an underlying stream.
// Lines are stored without their trailing newline; a final unterminated
// line still counts as a line.
type Buffer struct {
	r     *bufio.Reader
	depth int
	lines []string
	eof   bool
}

// New returns a buffer that reads from r and holds at most depth lines.
func New(r io.Reader, depth int) *Buffer {
	return &Buffer{r: bufio.NewReader(r), depth: depth}
}

// Fill tops the buffer up until it holds depth lines or the stream is
// exhausted. Hitting the end of the stream is not an error; after a
// successful Fill, Len() == depth or Exhausted() is true.
func (b *Buffer) Fill() error {
	for len(b.lines) < b.depth && !b.eof {
		line, err := b.r.ReadString('\n')
		switch err {
		case nil:
		case io.EOF:
			b.eof = true
			if line == "" {
				return nil
			}
		default:
			return err
		}
		b.lines = append(b.lines, strings.TrimSuffix(line, "\n"))
	}
	return nil
}

// Peek returns the line at offset i from the front of the window. The
// second result is false if i is beyond the buffered lines.
func (b *Buffer) Peek(i int) (string, bool) {
	if i < 0 || i >= len(b.lines) {
		return "", false
	}
	return b.lines[i], true
}

// Pop removes and returns up to n lines from the front of the window,
// fewer if the window holds fewer.
func (b *Buffer) Pop(n int) []string {
	n = min(n, len(b.lines))
	out := make([]string, n)
	copy(out, b.lines[:n])
	k := copy(b.lines, b.lines[n:])
	b.lines = b.lines[:k]
	return out
}

// Len reports the number of buffered lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Lines returns the current window contents. The result aliases the
// buffer and is only valid until the next Fill or Pop.
func (b *Buffer) Lines() []string { return b.lines }

// Exhausted reports whether the underlying stream has ended. Absence of
// a line beyond Len() means end-of-stream only when this is true; at the
// edge of a full window it merely means the line has not been read yet.
func (b *Buffer) Exhausted() bool { return b.eof }
