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
	"errors"
	"fmt"
	"io"

	"github.com/isu-cpre581-pangolin/gem5/internal/config"
	"github.com/isu-cpre581-pangolin/gem5/internal/lookahead"
	"github.com/isu-cpre581-pangolin/gem5/internal/resync"
)

// ErrLostSync is returned by [Run] when no matching line pair can be found
// within the lookahead window. The remaining windows are emitted as one
// maximal diff region before Run gives up; increasing [Lookahead] is the
// only mitigation.
var ErrLostSync = errors.New("lost sync: no matching line pair within the lookahead window")

// Stream is one input to [Run]. The name appears in the output header.
type Stream struct {
	Name string
	R    io.Reader
}

// Run compares the lines of x and y and writes a unified-diff-style report
// to w, reading both streams sequentially and holding at most a fixed
// lookahead window of each in memory.
//
// The report starts with two name headers and then contains one block per
// group of nearby differences:
//
//	-<x name>
//	+<y name>
//	@@ -<line in x> +<line in y> @@
//	 <context line>
//	-<line only in x>
//	+<line only in y>
//	 <context line>
//
// Output is flushed at quiescent points so a downstream consumer sees
// results while the producers are still running.
//
// changed reports whether any difference was emitted. err is nil at a
// normal double end-of-stream, wraps [ErrLostSync] if the streams could not
// be realigned, and is a read error otherwise.
//
// The following options are supported: [Context], [Lookahead], [LCSAligned].
func Run(w io.Writer, x, y Stream, opts ...Option) (changed bool, err error) {
	cfg := config.FromOptions(opts)
	bx := lookahead.New(x.R, cfg.Lookahead)
	by := lookahead.New(y.R, cfg.Lookahead)
	e := newEmitter(w, bx, by, cfg.Context)

	if err := e.start(x.Name, y.Name); err != nil {
		return false, err
	}
	for {
		if err := bx.Fill(); err != nil {
			return e.emitted, fmt.Errorf("reading %s: %w", x.Name, err)
		}
		if err := by.Fill(); err != nil {
			return e.emitted, fmt.Errorf("reading %s: %w", y.Name, err)
		}
		lx, okx := bx.Peek(0)
		ly, oky := by.Peek(0)
		switch {
		case !okx && !oky:
			return e.emitted, e.flush()
		case okx && oky && lx == ly:
			bx.Pop(1)
			by.Pop(1)
			if err := e.advanceMatch(lx); err != nil {
				return e.emitted, err
			}
		default:
			nx, ny, ok := resync.Find(bx, by, cfg)
			if !ok {
				// Dump both windows as one maximal region so nothing read so
				// far is lost, then report the fault.
				if err := e.emitRegion(bx.Len(), by.Len()); err != nil {
					return true, err
				}
				if err := e.flush(); err != nil {
					return true, err
				}
				return true, fmt.Errorf("%s / %s: %w", x.Name, y.Name, ErrLostSync)
			}
			if err := e.emitRegion(nx, ny); err != nil {
				return true, err
			}
		}
	}
}
