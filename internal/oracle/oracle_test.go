// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package oracle_test

import (
	"go/ast"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopchain/internal/testsource"
)

func TestInert(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		stmt int
		want bool
	}{
		{"short_declaration", `x := 1; _ = x`, 0, true},
		{"short_declaration_func", `x := func() int { return 1 }; _ = x`, 0, false},
		{"reassignment", `var x int; x = 2; _ = x`, 1, false},
		{"var_without_value", `var x int; _ = x`, 0, true},
		{"var_with_make", `var y = make([]int, 10); _ = y`, 0, true},
		{"var_with_make_variable", `n := 3; var y = make([]int, n); _ = y`, 1, false},
		{"var_with_literal", `var z = 42; _ = z`, 0, true},
		{"var_with_const_expr", `var z = "x" + "y"; _ = z`, 0, true},
		{"var_with_new", `var y = new(int); _ = y`, 0, true},
		{"nil_conversion", `y := []int(nil); _ = y`, 0, true},
		{"empty_composite", `y := []string{}; _ = y`, 0, true},
		{"composite_with_call", `y := []int{len(make([]int, 1))}; _ = y`, 0, false},
		{"const", `const c = 1; _ = c`, 0, true},
		{"type", `type T int; var _ T`, 0, true},
		{"call", `println(); var x int; _ = x`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o, body := testsource.Fragment(t, tt.src)

			stmt := body.Node().(*ast.BlockStmt).List[tt.stmt]

			if got := o.Inert(stmt); got != tt.want {
				t.Errorf("Inert(%s) = %t, want %t", o.Text(stmt), got, tt.want)
			}
		})
	}
}

func TestIsZeroValue(t *testing.T) {
	t.Parallel()

	const src = `type P struct{ X int }
var (
	a = 0
	b = ""
	c = false
	d = 0.0
	e = P{}
	f = P{X: 1}
	g = 1
	h = "x"
	i = [2]int{}
	j = []int{}
)
var k *int = nil
_, _, _, _, _, _, _, _, _, _, _ = a, b, c, d, e, f, g, h, i, j, k`

	want := map[string]bool{
		"a": true, "b": true, "c": true, "d": true, "e": true, "f": false,
		"g": false, "h": false, "i": true, "j": false, "k": true,
	}

	o, body := testsource.Fragment(t, src)

	for c := range body.Preorder((*ast.ValueSpec)(nil)) {
		spec := c.Node().(*ast.ValueSpec)
		name := spec.Names[0].Name

		if got := o.IsZeroValue(spec.Values[0]); got != want[name] {
			t.Errorf("IsZeroValue(%s) = %t, want %t", o.Text(spec.Values[0]), got, want[name])
		}
	}
}

func TestUsesAndAssigned(t *testing.T) {
	t.Parallel()

	const src = `package test

type T struct{ n int }

func (t *T) Inc()     { t.n++ }
func (t T) Get() int { return t.n }

func _() {
	var (
		a, b, c, d, e int
		s, r          T
		arr           [3]int
		p             = &T{}
	)
	a = 1
	_ = b + b
	c++
	_ = &d
	s.Inc()
	_ = r.Get()
	arr[1] = e
	p.n = 2
	_, _ = a, c
}
`

	o, _ := testsource.File(t, src)
	body := lastFuncBody(o.File)

	vars := make(map[string]*types.Var)

	for c := range body.Preorder((*ast.ValueSpec)(nil)) {
		for _, id := range c.Node().(*ast.ValueSpec).Names {
			vars[id.Name] = o.Info.Defs[id].(*types.Var)
		}
	}

	tests := [...]struct {
		name     string
		uses     int
		assigned bool
	}{
		{"a", 2, true},
		{"b", 2, false},
		{"c", 2, true},
		{"d", 1, true},
		{"e", 1, false},
		{"s", 1, true},
		{"r", 1, false},
		{"arr", 1, true},
		{"p", 1, false},
	}

	mutated := o.Mutated(body)

	for _, tt := range tests {
		v := vars[tt.name]

		if got := o.Uses(v, body); got != tt.uses {
			t.Errorf("Uses(%s) = %d, want %d", tt.name, got, tt.uses)
		}

		if got := o.Assigned(v, body); got != tt.assigned {
			t.Errorf("Assigned(%s) = %t, want %t", tt.name, got, tt.assigned)
		}

		if _, got := mutated[v]; got != tt.assigned {
			t.Errorf("Mutated(%s) = %t, want %t", tt.name, got, tt.assigned)
		}
	}
}

func lastFuncBody(f *ast.File) inspector.Cursor {
	var body inspector.Cursor

	for c := range inspector.New([]*ast.File{f}).Root().Preorder((*ast.FuncDecl)(nil)) {
		body = c.ChildAt(edge.FuncDecl_Body, -1)
	}

	return body
}

func TestTypeString(t *testing.T) {
	t.Parallel()

	const src = `package test

import (
	"io"
	str "strings"
)

type local struct{}

func f(r io.Reader, b *str.Builder, l []local, m map[string]io.Writer) {
	_, _, _, _ = r, b, l, m

	{
		io := 0
		_ = io
		_ = r
	}
}
`

	o, body := testsource.File(t, src)

	params := map[string]types.Type{}
	for _, obj := range []string{"r", "b", "l", "m"} {
		params[obj] = o.LookupAt(obj, body.Node().End()-1).Type()
	}

	pos := body.Node().Pos()

	tests := [...]struct {
		name string
		want string
	}{
		{"r", "io.Reader"},
		{"b", "*str.Builder"},
		{"l", "[]local"},
		{"m", "map[string]io.Writer"},
	}

	for _, tt := range tests {
		got, ok := o.TypeString(params[tt.name], pos)
		if !ok || got != tt.want {
			t.Errorf("TypeString(%s) = %q, %t, want %q", tt.name, got, ok, tt.want)
		}
	}

	// io is shadowed in the inner block
	inner := innermostBlock(body)
	if got, ok := o.TypeString(params["r"], inner.Node().End()-1); ok {
		t.Errorf("TypeString(r) in shadowed scope = %q, want failure", got)
	}

	if got, ok := o.ZeroLiteral(params["l"], pos); !ok || got != "nil" {
		t.Errorf("ZeroLiteral([]local) = %q, %t, want nil", got, ok)
	}

	if got, ok := o.ZeroLiteral(o.LookupAt("local", pos).Type(), pos); !ok || got != "local{}" {
		t.Errorf("ZeroLiteral(local) = %q, %t, want local{}", got, ok)
	}
}

func innermostBlock(body inspector.Cursor) inspector.Cursor {
	inner := body
	for c := range body.Preorder((*ast.BlockStmt)(nil)) {
		inner = c
	}

	return inner
}
