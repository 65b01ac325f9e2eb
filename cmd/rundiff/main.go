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

// rundiff compares two line streams and prints a unified-diff-style report
// without ever holding more than a fixed lookahead window of either stream
// in memory. It is meant for comparing unbounded or live output, e.g. the
// traces of two simulator runs while both are still executing.
//
// A stream argument that names an existing regular file is read as a file;
// anything else is run as a shell command and its standard output is
// compared instead:
//
//	rundiff run1.trace run2.trace
//	rundiff './sim --config a' './sim --config b'
//
// Exit status is 0 if the streams are identical, 1 if differences were
// reported, and 2 on usage errors, unreadable streams, or when the streams
// drifted further apart than the lookahead window (lost sync).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"

	"github.com/isu-cpre581-pangolin/gem5/rundiff"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: rundiff [-c lines] [-l lines] [-x] <stream1> <stream2>\n")
		fmt.Fprintf(os.Stderr, "A stream is a file path, or a shell command whose stdout is compared.\n\n")
		flag.PrintDefaults()
	}
	context := flag.Int("c", 3, "matching `lines` printed before and after each diff region")
	depth := flag.Int("l", 200, "`lines` of lookahead used to resynchronize after a mismatch")
	lcs := flag.Bool("x", false, "use LCS-based resynchronization instead of the naive search")
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	opts := []rundiff.Option{
		rundiff.Context(*context),
		rundiff.Lookahead(*depth),
	}
	if *lcs {
		opts = append(opts, rundiff.LCSAligned())
	}

	changed, err := run(flag.Arg(0), flag.Arg(1), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rundiff: %v\n", err)
		os.Exit(2)
	}
	if changed {
		os.Exit(1)
	}
}

func run(spec1, spec2 string, opts []rundiff.Option) (changed bool, err error) {
	x, closeX, err := openStream(spec1)
	if err != nil {
		return false, err
	}
	defer closeX()
	y, closeY, err := openStream(spec2)
	if err != nil {
		return false, err
	}
	defer closeY()

	return rundiff.Run(os.Stdout, x, y, opts...)
}

// openStream turns a stream specifier into a readable stream. An existing
// regular file is opened directly; any other specifier is handed to the
// shell and its standard output is captured. The returned close function
// reports a producer's own failure to stderr but does not fail the diff:
// the comparison is about the producer's output, not its exit status.
func openStream(spec string) (rundiff.Stream, func(), error) {
	if fi, err := os.Stat(spec); err == nil && fi.Mode().IsRegular() {
		f, err := os.Open(spec)
		if err != nil {
			return rundiff.Stream{}, nil, err
		}
		return rundiff.Stream{Name: spec, R: f}, func() { f.Close() }, nil
	}

	cmd := exec.Command("/bin/sh", "-c", spec)
	cmd.Stderr = os.Stderr
	out, err := cmd.StdoutPipe()
	if err != nil {
		return rundiff.Stream{}, nil, fmt.Errorf("starting %q: %w", spec, err)
	}
	if err := cmd.Start(); err != nil {
		return rundiff.Stream{}, nil, fmt.Errorf("starting %q: %w", spec, err)
	}
	closefn := func() {
		// Closing the pipe unblocks a producer that is still writing after a
		// lost sync made us stop reading early.
		out.Close()
		if err := cmd.Wait(); err != nil {
			var exit *exec.ExitError
			if errors.As(err, &exit) {
				fmt.Fprintf(os.Stderr, "rundiff: %q: %v\n", spec, err)
				return
			}
			fmt.Fprintf(os.Stderr, "rundiff: waiting for %q: %v\n", spec, err)
		}
	}
	return rundiff.Stream{Name: spec, R: out}, closefn, nil
}
