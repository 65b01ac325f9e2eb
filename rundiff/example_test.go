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

package rundiff_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/isu-cpre581-pangolin/gem5/rundiff"
)

func ExampleRun() {
	run1 := `tick 100: fetch 0x0040
tick 101: decode
tick 102: execute add
tick 103: writeback
`
	run2 := `tick 100: fetch 0x0040
tick 101: decode
tick 102: execute sub
tick 103: writeback
`
	changed, err := rundiff.Run(os.Stdout,
		rundiff.Stream{Name: "run1.trace", R: strings.NewReader(run1)},
		rundiff.Stream{Name: "run2.trace", R: strings.NewReader(run2)})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("changed:", changed)
	// Output:
	// -run1.trace
	// +run2.trace
	// @@ -1 +1 @@
	//  tick 100: fetch 0x0040
	//  tick 101: decode
	// -tick 102: execute add
	// +tick 102: execute sub
	//  tick 103: writeback
	// changed: true
}
