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

import "github.com/isu-cpre581-pangolin/gem5/internal/config"

// Option configures the behavior of [Run].
type Option = config.Option

// Context sets the number of matching lines printed before and after each
// diff region. The default is 3. With 0, regions are printed bare and each
// one gets its own header.
func Context(n int) Option {
	return func(cfg *config.Config) {
		cfg.Context = max(0, n)
	}
}

// Lookahead sets the number of pending lines buffered per stream. The
// default is 200. The window bounds memory use and is the sole limit on how
// far apart the two streams may drift before resynchronization fails.
func Lookahead(n int) Option {
	return func(cfg *config.Config) {
		cfg.Lookahead = n
	}
}

// LCSAligned selects longest-common-subsequence resynchronization instead
// of the default candidate search. Resync points are more minimal, each
// mismatch costs more.
func LCSAligned() Option {
	return func(cfg *config.Config) {
		cfg.Strategy = config.LCSAligned
	}
}
