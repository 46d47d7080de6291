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

package fix_test

import (
	"errors"
	"go/ast"
	"go/token"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/loopchain/internal/fix"
	"fillmore-labs.com/loopchain/internal/oracle"
	"fillmore-labs.com/loopchain/internal/testsource"
)

func TestStatementBounds(t *testing.T) {
	t.Parallel()

	const src = `package test

func f() {
	// doc
	var x = 1 // line
	y := 2 // not included
	_, _ = x, y
}
`

	o, body := testsource.File(t, src)
	stmts := body.Node().(*ast.BlockStmt).List

	pos, end := StatementBounds(stmts[0])
	if got, want := text(o, pos, end), "// doc\n\tvar x = 1 // line"; got != want {
		t.Errorf("StatementBounds(var) = %q, want %q", got, want)
	}

	pos, end = StatementBounds(stmts[1])
	if got, want := text(o, pos, end), "y := 2"; got != want {
		t.Errorf("StatementBounds(:=) = %q, want %q", got, want)
	}
}

func TestLineBounds(t *testing.T) {
	t.Parallel()

	const src = `package test

func f() {
	x := 1
	y := 2; _ = y
	_ = x
}
`

	o, body := testsource.File(t, src)
	stmts := body.Node().(*ast.BlockStmt).List

	pos, end := LineBounds(o, stmts[0].Pos(), stmts[0].End())
	if got, want := text(o, pos, end), "\tx := 1\n"; got != want {
		t.Errorf("LineBounds(alone) = %q, want %q", got, want)
	}

	pos, end = LineBounds(o, stmts[1].Pos(), stmts[1].End())
	if got, want := text(o, pos, end), "y := 2"; got != want {
		t.Errorf("LineBounds(shared) = %q, want %q", got, want)
	}
}

func TestCaptureRestore(t *testing.T) {
	t.Parallel()

	const src = `package test

func f(list []int) {
	for _, x := range list {
		// explain
		if x /* kept */ > 0 {
			println(x) // trailing
		}
	}
}
`

	o, body := testsource.File(t, src)
	loop := body.Node().(*ast.BlockStmt).List[0].(*ast.RangeStmt)
	cond := loop.Body.List[0].(*ast.IfStmt).Cond

	groups := Capture(o.File, loop.Pos(), loop.End(), []ast.Node{cond})
	if len(groups) != 2 {
		t.Fatalf("Capture() = %d groups, want 2", len(groups))
	}

	if got, want := Restore(o, groups, "\t"), "// explain\n\t// trailing\n\t"; got != want {
		t.Errorf("Restore() = %q, want %q", got, want)
	}
}

func TestImport(t *testing.T) {
	t.Parallel()

	const path = "example.com/seq"

	tests := [...]struct {
		name string
		src  string
		path string
		want string // name
		file string // file after the edit, empty when unchanged
	}{
		{
			name: "no_imports",
			src:  "package test\n\nfunc f() {\n}\n",
			path: path,
			want: "seq",
			file: "package test\n\nimport \"example.com/seq\"\n\nfunc f() {\n}\n",
		},
		{
			name: "group",
			src:  "package test\n\nimport (\n\t\"strings\"\n)\n\nfunc f() { _ = strings.ToUpper }\n",
			path: path,
			want: "seq",
			file: "package test\n\nimport (\n\t\"strings\"\n\t\"example.com/seq\"\n)\n\nfunc f() { _ = strings.ToUpper }\n",
		},
		{
			name: "single",
			src:  "package test\n\nimport \"strings\"\n\nfunc f() { _ = strings.ToUpper }\n",
			path: path,
			want: "seq",
			file: "package test\n\nimport \"strings\"\nimport \"example.com/seq\"\n\nfunc f() { _ = strings.ToUpper }\n",
		},
		{
			name: "package_conflict",
			src:  "package test\n\nfunc f() {\n}\n\nvar seq = 1\n",
			path: path,
			want: "seq_1",
			file: "package test\n\nimport seq_1 \"example.com/seq\"\n\nfunc f() {\n}\n\nvar seq = 1\n",
		},
		{
			name: "local_conflict",
			src:  "package test\n\nfunc f() {\n}\n\nfunc g() { seq := 1; _ = seq }\n",
			path: path,
			want: "seq_1",
			file: "package test\n\nimport seq_1 \"example.com/seq\"\n\nfunc f() {\n}\n\nfunc g() { seq := 1; _ = seq }\n",
		},
		{
			name: "imported",
			src:  "package test\n\nimport \"strings\"\n\nfunc f() { _ = strings.ToUpper }\n",
			path: "strings",
			want: "strings",
		},
		{
			name: "renamed",
			src:  "package test\n\nimport str \"strings\"\n\nfunc f() { _ = str.ToUpper }\n",
			path: "strings",
			want: "str",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o, body := testsource.File(t, tt.src)

			name, edit, ok := Import(o, tt.path, body.Node().End()-1)
			if !ok {
				t.Fatalf("Import() failed")
			}

			if name != tt.want {
				t.Errorf("Import() = %q, want %q", name, tt.want)
			}

			switch {
			case edit == nil && tt.file != "":
				t.Errorf("Import() returned no edit")

			case edit != nil && tt.file == "":
				t.Errorf("Import() returned unexpected edit %q", edit.NewText)

			case edit != nil:
				if got := apply(t, o, *edit); got != tt.file {
					t.Errorf("Got file %q, want %q", got, tt.file)
				}
			}
		})
	}
}

func TestImportShadowed(t *testing.T) {
	t.Parallel()

	const src = "package test\n\nimport \"strings\"\n\nfunc f() {\n\t_ = strings.ToUpper\n\tstrings := 1\n\t_ = strings\n}\n"

	o, body := testsource.File(t, src)

	if name, _, ok := Import(o, "strings", body.Node().End()-1); ok {
		t.Errorf("Import() = %q, want failure", name)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	src := []byte("0123456789")

	a, err := Apply(src, []Edit{
		{Start: 6, End: 8, Text: []byte("x")},
		{Start: 2, End: 2, Text: []byte("abc")},
		{Start: 2, End: 2, Text: []byte("abc")},
	})
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	if got, want := string(a.Src), "01abc2345x89"; got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}

	if got, ok := a.Moved(Edit{Start: 6, End: 8, Text: []byte("x")}); !ok || got != 9 {
		t.Errorf("Moved() = %d, %t, want 9", got, ok)
	}

	tests := [...]struct {
		offset int
		want   int
		ok     bool
	}{
		{1, 1, true},
		{2, 5, true},
		{5, 8, true},
		{6, 0, false},
		{7, 0, false},
		{8, 10, true},
	}

	for _, tt := range tests {
		if got, ok := a.Map(tt.offset); got != tt.want || ok != tt.ok {
			t.Errorf("Map(%d) = %d, %t, want %d, %t", tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyOverlap(t *testing.T) {
	t.Parallel()

	_, err := Apply([]byte("0123456789"), []Edit{
		{Start: 2, End: 5},
		{Start: 4, End: 6, Text: []byte("x")},
	})

	if !errors.Is(err, ErrOverlap) {
		t.Errorf("Apply() error = %v, want %v", err, ErrOverlap)
	}
}

func text(o *oracle.Oracle, pos, end token.Pos) string {
	return string(o.Source()[o.Offset(pos):o.Offset(end)])
}

func apply(tb testing.TB, o *oracle.Oracle, edits ...analysis.TextEdit) string {
	tb.Helper()

	offsets, err := Offsets(o.Fset.File(o.File.Pos()), edits)
	if err != nil {
		tb.Fatalf("Offsets() failed: %v", err)
	}

	a, err := Apply(o.Source(), offsets)
	if err != nil {
		tb.Fatalf("Apply() failed: %v", err)
	}

	return string(a.Src)
}
