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

package rundiff

import (
	"bufio"
	"fmt"
	"io"

	"github.com/isu-cpre581-pangolin/gem5/internal/lookahead"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// emitter renders diff regions with surrounding context and correct
// unified-diff-style line numbering. It owns the precontext buffer, the
// postcontext countdown and the running line counters for both streams.
//
// lineX and lineY are the 1-based positions of the oldest line that is
// buffered but not yet printed. They only advance when a line leaves the
// precontext buffer (printed at a region start or dropped for capacity) or
// is printed directly.
type emitter struct {
	w       *bufio.Writer
	x, y    *lookahead.Buffer
	context int

	pre          []string // most recent matching lines, len <= context
	post         int      // matching lines still to print after the last region
	lineX, lineY int
	emitted      bool // a region has been written
}

func newEmitter(w io.Writer, x, y *lookahead.Buffer, context int) *emitter {
	return &emitter{
		w:       bufio.NewWriter(w),
		x:       x,
		y:       y,
		context: context,
		lineX:   1,
		lineY:   1,
	}
}

// start prints the two stream name headers. They are flushed right away so
// that a consumer sees which streams are being compared even if no
// difference is ever found.
func (e *emitter) start(nameX, nameY string) error {
	fmt.Fprintf(e.w, "-%s\n+%s\n", nameX, nameY)
	return e.w.Flush()
}

// emitRegion prints one diff region: nx lines pulled from x as deletions and
// ny from y as insertions, prefixed by the buffered precontext. A new region
// header is printed only if the precontext buffer is full, meaning there is a
// gap since the previous region, or at the very first region; otherwise the
// region continues the previous block.
func (e *emitter) emitRegion(nx, ny int) error {
	if len(e.pre) == e.context || (!e.emitted && e.lineX == 1 && e.lineY == 1) {
		fmt.Fprintf(e.w, "@@ -%d +%d @@\n", e.lineX, e.lineY)
	}
	for _, line := range e.pre {
		fmt.Fprintf(e.w, "%s%s\n", prefixMatch, line)
	}
	e.lineX += len(e.pre)
	e.lineY += len(e.pre)
	e.pre = e.pre[:0]
	for _, line := range e.x.Pop(nx) {
		fmt.Fprintf(e.w, "%s%s\n", prefixDelete, line)
		e.lineX++
	}
	for _, line := range e.y.Pop(ny) {
		fmt.Fprintf(e.w, "%s%s\n", prefixInsert, line)
		e.lineY++
	}
	e.emitted = true
	e.post = e.context
	if e.context == 0 {
		// No trailing context will follow, this is a quiescent point.
		return e.w.Flush()
	}
	return nil
}

// advanceMatch consumes one confirmed matching line pair. While postcontext
// is owed from the previous region the line is printed; otherwise it is
// remembered as precontext for the next region, dropping the oldest entry
// once the buffer is over capacity.
func (e *emitter) advanceMatch(line string) error {
	if e.post > 0 {
		fmt.Fprintf(e.w, "%s%s\n", prefixMatch, line)
		e.lineX++
		e.lineY++
		e.post--
		if e.post == 0 {
			return e.w.Flush()
		}
		return nil
	}
	e.pre = append(e.pre, line)
	if len(e.pre) > e.context {
		copy(e.pre, e.pre[1:])
		e.pre = e.pre[:len(e.pre)-1]
		e.lineX++
		e.lineY++
	}
	return nil
}

func (e *emitter) flush() error { return e.w.Flush() }
