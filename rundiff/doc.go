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

// Package rundiff compares two ordered line streams and reports their
// differences in a unified-diff-like format without ever holding either
// stream in memory in full.
//
// Unlike a file diff, [Run] only ever sees a fixed lookahead window of each
// stream. That makes it suitable for unbounded or continuously produced
// input such as simulator traces: differences are reported incrementally
// while both producers are still running. The price is that realignment
// after a mismatch is limited to the window; if the streams drift further
// apart than [Lookahead] lines, Run gives up with [ErrLostSync] rather than
// guess at output that can no longer be proven related.
//
// Two resynchronization strategies are available. The default tries growing
// substitution, insertion and deletion candidates in cost order; the
// [LCSAligned] option instead aligns the whole windows with a
// longest-common-subsequence diff, which finds more minimal resync points
// at a materially higher per-mismatch cost.
package rundiff
