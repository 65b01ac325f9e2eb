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

package resync_test

import (
	"strings"
	"testing"

	"github.com/isu-cpre581-pangolin/gem5/internal/config"
	"github.com/isu-cpre581-pangolin/gem5/internal/lookahead"
	"github.com/isu-cpre581-pangolin/gem5/internal/resync"
)

func window(t *testing.T, lines []string, depth int) *lookahead.Buffer {
	t.Helper()
	var in string
	if len(lines) > 0 {
		in = strings.Join(lines, "\n") + "\n"
	}
	b := lookahead.New(strings.NewReader(in), depth)
	if err := b.Fill(); err != nil {
		t.Fatalf("Fill() failed: %v", err)
	}
	return b
}

func TestFind(t *testing.T) {
	tests := []struct {
		name   string
		x, y   []string
		nx, ny int
		only   []config.Strategy // nil = both strategies
	}{
		{
			name: "substitution",
			x:    []string{"X", "c", "d"},
			y:    []string{"Y", "c", "d"},
			nx:   1, ny: 1,
		},
		{
			name: "insertion",
			x:    []string{"b", "c", "d"},
			y:    []string{"NEW", "b", "c", "d"},
			nx:   0, ny: 1,
		},
		{
			name: "deletion",
			x:    []string{"OLD", "b", "c", "d"},
			y:    []string{"b", "c", "d"},
			nx:   1, ny: 0,
		},
		{
			name: "block-substitution",
			x:    []string{"X1", "X2", "c", "d"},
			y:    []string{"Y1", "Y2", "c", "d"},
			nx:   2, ny: 2,
		},
		{
			// A single agreeing blank line is not a resync point for the naive
			// search: the line after it still disagrees, so the search moves on
			// to the real realignment at the q/r pair.
			name: "blank-line-coincidence-naive",
			x:    []string{"A", "", "B", "q", "r"},
			y:    []string{"C", "", "D", "q", "r"},
			nx:   3, ny: 3,
			only: []config.Strategy{config.Naive},
		},
		{
			// The LCS alignment is free to match the blank line itself.
			name: "blank-line-coincidence-lcs",
			x:    []string{"A", "", "B", "q", "r"},
			y:    []string{"C", "", "D", "q", "r"},
			nx:   1, ny: 1,
			only: []config.Strategy{config.LCSAligned},
		},
		{
			name: "tails-at-end-of-stream",
			x:    []string{"x1", "x2"},
			y:    []string{"y1", "y2", "y3"},
			nx:   2, ny: 3,
		},
		{
			name: "one-stream-ended",
			x:    nil,
			y:    []string{"c", "d"},
			nx:   0, ny: 2,
		},
		{
			// Nothing in common, but both streams ended inside the window: the
			// remaining tails are a plain delete/insert pair, not a fault.
			name: "disjoint-at-end-of-stream",
			x:    []string{"a1", "a2", "a3", "a4"},
			y:    []string{"b1", "b2", "b3", "b4"},
			nx:   4, ny: 4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategies := tt.only
			if strategies == nil {
				strategies = []config.Strategy{config.Naive, config.LCSAligned}
			}
			for _, strategy := range strategies {
				cfg := config.Default
				cfg.Lookahead = 8
				cfg.Strategy = strategy
				x := window(t, tt.x, cfg.Lookahead)
				y := window(t, tt.y, cfg.Lookahead)

				nx, ny, ok := resync.Find(x, y, cfg)
				if !ok {
					t.Fatalf("strategy %d: Find() reported lost sync", strategy)
				}
				if nx != tt.nx || ny != tt.ny {
					t.Errorf("strategy %d: Find() = (%d, %d), want (%d, %d)", strategy, nx, ny, tt.nx, tt.ny)
				}
				if nx+ny == 0 {
					t.Errorf("strategy %d: Find() discarded nothing", strategy)
				}
				// The realignment invariant: the new front lines agree, unless
				// the resync point is past the end of both streams.
				lx, okx := x.Peek(nx)
				ly, oky := y.Peek(ny)
				switch {
				case okx && oky:
					if lx != ly {
						t.Errorf("strategy %d: lines after discard differ: %q vs %q", strategy, lx, ly)
					}
				case !okx && !oky:
					if !x.Exhausted() || !y.Exhausted() {
						t.Errorf("strategy %d: resync point beyond a window that is not at end of stream", strategy)
					}
				default:
					t.Errorf("strategy %d: resync point absent on one side only", strategy)
				}
			}
		})
	}
}

// The window edge of a stream that has more lines pending must never be
// treated as a resync point: only a true end of stream may terminate the
// alignment.
func TestFindFullWindowEdge(t *testing.T) {
	for _, strategy := range []config.Strategy{config.Naive, config.LCSAligned} {
		cfg := config.Default
		cfg.Lookahead = 4
		cfg.Strategy = strategy
		// Six disjoint lines per stream, window of four: the continuation
		// beyond the window is unknown, so this must be a lost-sync fault.
		x := window(t, []string{"a1", "a2", "a3", "a4", "a5", "a6"}, cfg.Lookahead)
		y := window(t, []string{"b1", "b2", "b3", "b4", "b5", "b6"}, cfg.Lookahead)
		if _, _, ok := resync.Find(x, y, cfg); ok {
			t.Errorf("strategy %d: Find() ok = true at a full window edge, want lost sync", strategy)
		}
	}
}

// Substitution is preferred over insertion and deletion of the same cost.
func TestFindNaivePrefersSubstitution(t *testing.T) {
	cfg := config.Default
	cfg.Lookahead = 8
	// (1,1) and e.g. (0,1) both realign here; the naive order tries (1,1) first.
	x := window(t, []string{"X", "c", "c", "c"}, cfg.Lookahead)
	y := window(t, []string{"c", "c", "c", "c"}, cfg.Lookahead)
	nx, ny, ok := resync.Find(x, y, cfg)
	if !ok || nx != 1 || ny != 1 {
		t.Errorf("Find() = (%d, %d, %v), want (1, 1, true)", nx, ny, ok)
	}
}
