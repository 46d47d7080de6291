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

package match_test

import (
	_ "embed"
	"go/ast"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/ast/inspector"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/loopchain/internal/chain"
	. "fillmore-labs.com/loopchain/internal/match"
	"fillmore-labs.com/loopchain/internal/oracle"
	"fillmore-labs.com/loopchain/internal/testsource"
)

//go:embed testdata/cases.yaml
var cases []byte

type matchCase struct {
	Name    string `yaml:"name"`
	Want    string `yaml:"want"`
	Commit  string `yaml:"commit"`
	Deletes int    `yaml:"deletes"`
	Src     string `yaml:"src"`
}

type outcome struct {
	Chain   string
	Commit  string
	Deletes int
}

func TestMatch(t *testing.T) {
	t.Parallel()

	var tests []matchCase
	if err := yaml.Unmarshal(cases, &tests); err != nil {
		t.Fatalf("Can't read test cases: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			o, c := firstLoop(t, tt.Src)

			r, err := Match(o, c)
			if err != nil {
				t.Fatalf("Match() failed: %v", err)
			}

			want := outcome{Chain: tt.Want, Commit: tt.Commit, Deletes: tt.Deletes}
			if diff := cmp.Diff(want, summarize(r)); diff != "" {
				t.Errorf("Match() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatchIsRepeatable(t *testing.T) {
	t.Parallel()

	const src = `package test

func f(list []string) int {
	i := 0
	for _, s := range list {
		if s == "" {
			continue
		}
		x := len(s) * i
		i++
		if x > 0 {
			return x
		}
	}
	return 0
}
`

	o, c := firstLoop(t, src)

	first, err := Match(o, c)
	if err != nil {
		t.Fatalf("Match() failed: %v", err)
	}

	second, err := Match(o, c)
	if err != nil {
		t.Fatalf("Match() failed: %v", err)
	}

	if diff := cmp.Diff(summarize(first), summarize(second)); diff != "" {
		t.Errorf("Match() not repeatable (-first +second):\n%s", diff)
	}
}

func TestMatchTypedCounter(t *testing.T) {
	t.Parallel()

	const src = `package test

func f(list []int) int64 {
	var n int64 = 2
	for _, x := range list {
		if x > 0 {
			n++
		}
	}
	return n
}
`

	o, c := firstLoop(t, src)

	r, err := Match(o, c)
	if err != nil || r == nil {
		t.Fatalf("Match() = %v, %v, want result", r, err)
	}

	if r.Prefix != "2 + int64(" || r.Suffix != ")" {
		t.Errorf("Got prefix %q, suffix %q, want %q, %q", r.Prefix, r.Suffix, "2 + int64(", ")")
	}

	if r.Var == nil || r.Var.Name() != "n" {
		t.Errorf("Got variable %v, want n", r.Var)
	}

	if r.Init == nil || o.Text(r.Init.Stmt.Node()) != "var n int64 = 2" {
		t.Errorf("Got initialization %v, want var n int64 = 2", r.Init)
	}
}

func TestMatchLambdas(t *testing.T) {
	t.Parallel()

	const src = `package test

func f(list []string) int {
	i := 0
	n := 0
	for _, s := range list {
		k := len(s) * i
		i++
		if k > 10 {
			n++
		}
	}
	return n
}
`

	o, c := firstLoop(t, src)

	r, err := Match(o, c)
	if err != nil || r == nil {
		t.Fatalf("Match() = %v, %v, want result", r, err)
	}

	calls := chain.Merge(r.Calls)
	if len(calls) != 2 {
		t.Fatalf("Got %d calls, want 2", len(calls))
	}

	mapping := calls[0].Fn
	if diff := cmp.Diff(lambda{"i", "s", "string", "int", "len(s) * i"}, summarizeLambda(mapping)); diff != "" {
		t.Errorf("Map lambda mismatch (-want +got):\n%s", diff)
	}

	count := calls[1].Fn
	if diff := cmp.Diff(lambda{"", "k", "int", "bool", "k > 10"}, summarizeLambda(count)); diff != "" {
		t.Errorf("CountFunc lambda mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractLoop(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want SourceKind
		ok   bool
	}{
		{"slice", `var l []int; for _, x := range l { _ = x }`, SourceSlice, true},
		{"slice_index", `var l []int; for i := range l { _ = i }`, SourceSlice, true},
		{"array", `var a [3]int; for _, x := range a { _ = x }`, SourceArray, true},
		{"array_mutated", `var a [3]int; for i, x := range a { a[i] = x }`, 0, false},
		{"func", `var s func(func(int) bool); for x := range s { _ = x }`, SourceFunc, true},
		{"map", `var m map[int]int; for k := range m { _ = k }`, 0, false},
		{"string", `var s string; for _, r := range s { _ = r }`, 0, false},
		{"int", `for i := range 10 { _ = i }`, 0, false},
		{"assign", `var l []int; var x int; for _, x = range l { _ = x }`, 0, false},
		{"labeled", "var l []int\nL:\nfor range l { break L }", 0, false},
		{"seq2", `var s func(func(int, int) bool); for k, v := range s { _, _ = k, v }`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o, body := testsource.Fragment(t, tt.src)

			var c inspector.Cursor
			for c = range body.Preorder((*ast.RangeStmt)(nil)) {
				break
			}

			loop, ok := ExtractLoop(o, c)
			if ok != tt.ok {
				t.Fatalf("ExtractLoop() = %t, want %t", ok, tt.ok)
			}

			if ok && loop.Source != tt.want {
				t.Errorf("Got source %s, want %s", loop.Source, tt.want)
			}
		})
	}
}

type lambda struct {
	Index, Elem, Type, Result, Body string
}

func summarizeLambda(fn *chain.Lambda) lambda {
	if fn == nil {
		return lambda{}
	}

	return lambda{fn.Index, fn.Elem, fn.Type, fn.Result, fn.Body.String()}
}

func summarize(r *Result) outcome {
	if r == nil {
		return outcome{}
	}

	return outcome{
		Chain:   chain.Presentation(chain.Merge(r.Calls)),
		Commit:  r.Commit.String(),
		Deletes: len(r.Deletes),
	}
}

func firstLoop(tb testing.TB, src string) (*oracle.Oracle, inspector.Cursor) {
	tb.Helper()

	o, _ := testsource.File(tb, src)

	root := inspector.New([]*ast.File{o.File}).Root()
	for c := range root.Preorder((*ast.RangeStmt)(nil)) {
		return o, c
	}

	tb.Fatal("Can't find range loop")

	return nil, root
}
