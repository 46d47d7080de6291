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

package verify_test

import (
	"errors"
	"go/ast"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopchain/internal/chain"
	"fillmore-labs.com/loopchain/internal/fix"
	"fillmore-labs.com/loopchain/internal/oracle"
	"fillmore-labs.com/loopchain/internal/testsource"
	. "fillmore-labs.com/loopchain/internal/verify"
	"fillmore-labs.com/loopchain/seq"
)

const lengths = `package test

import "strings"

func f(list []string) int {
	n := 0
	for _, s := range list {
		n += len(strings.ToUpper(s))
	}

	return n
}
`

func TestQuick(t *testing.T) {
	t.Parallel()

	o, _ := testsource.File(t, lengths)
	loop := firstLoop(o)
	call := loop.Body.List[0].(*ast.AssignStmt).Rhs[0]
	id := loop.X

	tests := []struct {
		name  string
		text  string
		copy  ast.Node
		at    string
		want  types.Type
		exact bool
		ok    bool
	}{
		{"lambda", `func(s string) int { return len(strings.ToUpper(s)) }("")`, call, "len(", types.Typ[types.Int], true, true},
		{"assignable", `func(s string) int { return len(strings.ToUpper(s)) }("")`, call, "len(", types.Universe.Lookup("any").Type(), false, true},
		{"wrong_type", `func(s string) int { return len(strings.ToUpper(s)) }("")`, call, "len(", types.Typ[types.String], true, false},
		{"not_exact", `func(s string) int { return len(strings.ToUpper(s)) }("")`, call, "len(", types.Universe.Lookup("any").Type(), true, false},
		{"free_variable", `len(strings.ToUpper(s))`, call, "len(", nil, false, false},
		{"captured", `func(list []string) int { return len(list) }(nil)`, id, "list)", nil, false, false},
		{"type_changed", `func(s []string) int { return len(s) }(nil)`, ident(loop.Value), "s)", nil, false, false},
	}

	v := New(pkg(o), seq.ImportPath, false)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &Candidate{
				Expr:  rendered(o, tt.text, tt.at, tt.copy),
				Pos:   loop.Pos(),
				Want:  tt.want,
				Exact: tt.exact,
				Edits: []analysis.TextEdit{{Pos: loop.Pos(), End: loop.End(), NewText: []byte(tt.text)}},
			}

			err := v.Verify(t.Context(), o, c)
			if tt.ok && err != nil {
				t.Errorf("Verify() = %v, want nil", err)
			}

			if !tt.ok && !errors.Is(err, ErrNotPreserved) {
				t.Errorf("Verify() = %v, want %v", err, ErrNotPreserved)
			}
		})
	}
}

func TestDecisive(t *testing.T) {
	t.Parallel()

	o, _ := testsource.File(t, lengths)
	loop := firstLoop(o)
	call := loop.Body.List[0].(*ast.AssignStmt).Rhs[0]

	const expr = `func(s string) int { return len(strings.ToUpper(s)) }("")`

	tests := []struct {
		name string
		lhs  string
		ok   bool
	}{
		{"assign", "n = ", true},
		{"unused", "m := ", false},
		{"undefined", "k = ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := New(pkg(o), seq.ImportPath, true)

			c := &Candidate{
				Expr:   rendered(o, expr, "len(", call),
				Pos:    loop.Pos(),
				Edits:  []analysis.TextEdit{{Pos: loop.Pos(), End: loop.End(), NewText: []byte(tt.lhs + expr)}},
				Offset: len(tt.lhs),
			}

			err := v.Verify(t.Context(), o, c)
			if tt.ok && err != nil {
				t.Errorf("Verify() = %v, want nil", err)
			}

			if !tt.ok && !errors.Is(err, ErrNotPreserved) {
				t.Errorf("Verify() = %v, want %v", err, ErrNotPreserved)
			}
		})
	}
}

func TestDecisiveImport(t *testing.T) {
	t.Parallel()

	const src = `package test

import "iter"

func f(s iter.Seq[int]) int {
	n := 0
	for v := range s {
		if v > 10 {
			n++
		}
	}

	return n
}
`

	o, _ := testsource.File(t, src)
	loop := firstLoop(o)
	cond := loop.Body.List[0].(*ast.IfStmt).Cond

	name, imp, ok := fix.Import(o, seq.ImportPath, loop.Pos())
	if !ok {
		t.Fatal("Can't import runtime package")
	}

	const lhs = "n = "

	expr := name + ".CountFunc(s, func(v int) bool { return v > 10 })"

	c := &Candidate{
		Expr: rendered(o, expr, "v > 10", cond),
		Pos:  loop.Pos(),
		Want: types.Typ[types.Int],
		Edits: []analysis.TextEdit{
			{Pos: loop.Pos(), End: loop.End(), NewText: []byte(lhs + expr)},
			*imp,
		},
		Offset:  len(lhs),
		Imports: true,
	}

	v := New(pkg(o), seq.ImportPath, false)

	if err := v.Verify(t.Context(), o, c); err != nil {
		t.Errorf("Verify() = %v, want nil", err)
	}

	c.Edits = c.Edits[:1]

	if err := v.Verify(t.Context(), o, c); !errors.Is(err, ErrNotPreserved) {
		t.Errorf("Verify() without import = %v, want %v", err, ErrNotPreserved)
	}
}

func pkg(o *oracle.Oracle) Package {
	return Package{
		Fset:     o.Fset,
		Files:    []*ast.File{o.File},
		Types:    o.Pkg,
		ReadFile: func(string) ([]byte, error) { return o.Source(), nil },
	}
}

func firstLoop(o *oracle.Oracle) *ast.RangeStmt {
	for n := range inspector.New([]*ast.File{o.File}).Root().Preorder((*ast.RangeStmt)(nil)) {
		return n.Node().(*ast.RangeStmt)
	}

	return nil
}

func ident(e ast.Expr) ast.Node { return e.(*ast.Ident) }

// rendered describes text containing a copy of node at the first occurrence of at.
func rendered(o *oracle.Oracle, text, at string, node ast.Node) chain.Rendered {
	return chain.Rendered{
		Text:   text,
		Copies: []chain.Placed{{Node: node, Offset: strings.Index(text, at), Len: len(o.Text(node))}},
	}
}
