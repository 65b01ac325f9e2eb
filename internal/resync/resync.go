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

// Package resync determines how many leading lines to discard from two diverging
// streams so that their lookahead windows agree on their front line again.
package resync

import (
	"github.com/isu-cpre581-pangolin/gem5/internal/config"
	"github.com/isu-cpre581-pangolin/gem5/internal/lookahead"
)

// Find computes a discard pair (nx, ny) for two windows that are known to
// disagree at offset 0: after dropping nx lines from x and ny lines from y,
// both windows hold the same front line, or both streams have ended inside
// the window. On success nx+ny > 0.
//
// ok is false if no realignment exists within the window. This is the
// lost-sync fault: beyond the window the two streams cannot be proven
// related, and guessing further would risk silently wrong output.
func Find(x, y *lookahead.Buffer, cfg config.Config) (nx, ny int, ok bool) {
	switch cfg.Strategy {
	case config.LCSAligned:
		nx, ny, ok = lcsAligned(x, y)
	default:
		nx, ny, ok = naive(x, y, cfg.Lookahead)
	}
	// A candidate may realign the streams past a true end-of-stream; there is
	// nothing left to discard there.
	return min(nx, x.Len()), min(ny, y.Len()), ok
}

// naive iterates a candidate window size cnt from 1 upward. For each cnt it
// tries a pure substitution (cnt,cnt) first, then insertions and deletions of
// growing size: (n,cnt) and (cnt,n) for n = 0..cnt-1. The first confirmed
// candidate wins, so the cheapest realignment is found first and substitution
// is preferred over insertion/deletion at equal cost.
func naive(x, y *lookahead.Buffer, depth int) (nx, ny int, ok bool) {
	for cnt := 1; cnt < depth; cnt++ {
		if confirmed(x, y, cnt, cnt) {
			return cnt, cnt, true
		}
		for n := 0; n < cnt; n++ {
			if confirmed(x, y, n, cnt) {
				return n, cnt, true
			}
			if confirmed(x, y, cnt, n) {
				return cnt, n, true
			}
		}
	}
	return 0, 0, false
}

// confirmed reports whether discarding a lines from x and b from y realigns
// the streams. The line after the proposed resync point must match as well;
// a single agreeing line is too weak a signal (blank lines and other filler
// coincide all the time).
func confirmed(x, y *lookahead.Buffer, a, b int) bool {
	return pairEq(x, y, a, b) && pairEq(x, y, a+1, b+1)
}

// pairEq compares line a of x with line b of y. Two absent lines are equal
// only if both streams have truly ended: at the edge of a full window a line
// is absent merely because it has not been read yet.
func pairEq(x, y *lookahead.Buffer, a, b int) bool {
	lx, okx := x.Peek(a)
	ly, oky := y.Peek(b)
	switch {
	case okx && oky:
		return lx == ly
	case !okx && !oky:
		return x.Exhausted() && y.Exhausted()
	default:
		return false
	}
}
