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

package resync

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/isu-cpre581-pangolin/gem5/internal/lookahead"
)

// lcsAligned realigns the windows with a longest-common-subsequence diff.
// The diff is computed in line mode, one rune per distinct line, so equal
// runes are equal lines. Only the prefix of the alignment matters: the
// number of delete and insert lines emitted before the first equal run is
// exactly the discard pair, and the rest of the alignment is ignored.
func lcsAligned(x, y *lookahead.Buffer) (nx, ny int, ok bool) {
	dmp := diffmatchpatch.New()
	rx, ry, _ := dmp.DiffLinesToRunes(joinLines(x.Lines()), joinLines(y.Lines()))
	diffs := dmp.DiffCleanupMerge(dmp.DiffMainRunes(rx, ry, false))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			if nx+ny == 0 {
				// The driver only calls resync on a front mismatch.
				panic("resync: windows already agree on their front line")
			}
			return nx, ny, true
		case diffmatchpatch.DiffDelete:
			nx += utf8.RuneCountInString(d.Text)
		case diffmatchpatch.DiffInsert:
			ny += utf8.RuneCountInString(d.Text)
		}
	}
	// No common line anywhere in the window. If both streams ended inside it,
	// the remaining tails are a plain delete/insert pair rather than a fault.
	if x.Exhausted() && y.Exhausted() {
		return x.Len(), y.Len(), true
	}
	return 0, 0, false
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
