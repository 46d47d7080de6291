// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"go/ast"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopchain/internal/testsource"
)

func TestJumps(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name     string
		body     string
		embedded int
		free     bool // first statement
		hoist    bool // first statement
	}{
		{"top_level", `break`, 0, false, false},
		{"guard", `if c { continue }`, 0, false, false},
		{"guard_with_statement", `if c { println(); break }`, 1, false, false},
		{"nested_guard", `if c { if d { continue } }`, 1, false, false},
		{"else", `if c { println() } else { break }`, 1, false, false},
		{"inner_loop", `for range 3 { break }`, 0, true, true},
		{"switch_break", `switch { default: break }`, 0, true, true},
		{"switch_continue", `switch { default: continue }`, 1, false, false},
		{"select_break", `select { default: break }`, 0, true, true},
		{"func_literal", `func() { for { break } }()`, 0, true, true},
		{"return", `if c { return }`, 0, false, false},
		{"return_before_switch_break", `if c { return } else { switch { default: break } }`, 0, false, false},
		{"continue_before_loop_break", `if c { println(); continue } else { for range 3 { break } }`, 1, false, false},
		{"defer", `defer println()`, 0, true, false},
		{"defer_in_func_literal", `func() { defer println() }()`, 0, true, true},
		{"plain", `println()`, 0, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := "var c, d bool\n_, _ = c, d\nfor range 3 {\n" + tt.body + "\n}"

			_, body := testsource.Fragment(t, src)

			var loop inspector.Cursor
			for loop = range body.Preorder((*ast.RangeStmt)(nil)) {
				break
			}

			stmts := children(loop.ChildAt(edge.RangeStmt_Body, -1))

			if got := embeddedJumps(loop, stmts); got != tt.embedded {
				t.Errorf("embeddedJumps() = %d, want %d", got, tt.embedded)
			}

			if got := jumpFree(stmts[0], loop); got != tt.free {
				t.Errorf("jumpFree() = %t, want %t", got, tt.free)
			}

			if got := hoistable(stmts[0], loop); got != tt.hoist {
				t.Errorf("hoistable() = %t, want %t", got, tt.hoist)
			}
		})
	}
}

func TestInitializations(t *testing.T) {
	t.Parallel()

	const src = `a := 1
println()
b := 0
var c []int
var d, e int
var (
	f string
)
g := make([]int, 0)
var h = []int(nil)
for range 3 {
	_, _, _, _, _, _, _, _ = a, b, c, d, e, f, g, h
}`

	o, body := testsource.Fragment(t, src)

	var loop inspector.Cursor
	for loop = range body.Preorder((*ast.RangeStmt)(nil)) {
		break
	}

	got := make(map[string]bool)
	for v, init := range initializations(o, loop) {
		got[v.Name()] = init.IsNil(o)
	}

	want := map[string]bool{"b": false, "c": true, "g": false, "h": true}

	if len(got) != len(want) {
		t.Errorf("Got initializations %v, want %v", got, want)
	}

	for name, isNil := range want {
		if g, ok := got[name]; !ok || g != isNil {
			t.Errorf("Initialization of %s: %t, %t, want %t", name, g, ok, isNil)
		}
	}
}
