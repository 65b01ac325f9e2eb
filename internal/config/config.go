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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// rundiff.Option.
package config

// Strategy describes how diverging streams are realigned after a mismatch.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Strategy
type Strategy int

const (
	// Naive tries growing substitution, insertion and deletion candidates in cost order and
	// accepts the first one confirmed by two consecutive matching lines.
	Naive Strategy = iota

	// LCSAligned aligns both lookahead windows with a longest-common-subsequence diff and
	// discards everything before the first matched pair. More minimal resync points than
	// Naive at a materially higher per-mismatch cost.
	LCSAligned
)

// Config collects all configurable parameters for a diff run.
type Config struct {
	// Context is the number of matching lines printed before and after a diff region.
	Context int

	// Lookahead is the number of pending lines buffered per stream. It bounds both memory
	// use and how far apart the streams may drift before resynchronization fails.
	Lookahead int

	// Strategy selects the resynchronization algorithm.
	Strategy Strategy
}

// Default is the default configuration.
var Default = Config{
	Context:   3,
	Lookahead: 200,
	Strategy:  Naive,
}

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config)

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option) Config {
	cfg := Default
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Context = max(0, cfg.Context)
	// A window of at least two lines is needed for the two-line resync confirmation.
	cfg.Lookahead = max(2, cfg.Lookahead)
	return cfg
}
