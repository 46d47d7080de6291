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

package oracle

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// Uses counts the references to v in the given subtrees.
func (o *Oracle) Uses(v *types.Var, cs ...inspector.Cursor) int {
	if v == nil {
		return 0
	}

	n := 0

	for _, c := range cs {
		for ci := range c.Preorder((*ast.Ident)(nil)) {
			if o.Info.Uses[ci.Node().(*ast.Ident)] == v {
				n++
			}
		}
	}

	return n
}

// Used reports whether v is referenced in the given subtrees.
func (o *Oracle) Used(v *types.Var, cs ...inspector.Cursor) bool {
	return o.Uses(v, cs...) > 0
}

// UsedAfter reports whether v is referenced in root after pos.
func (o *Oracle) UsedAfter(v *types.Var, root inspector.Cursor, pos token.Pos) bool {
	for ci := range root.Preorder((*ast.Ident)(nil)) {
		if id := ci.Node().(*ast.Ident); id.Pos() >= pos && o.Info.Uses[id] == v {
			return true
		}
	}

	return false
}

// UsedBefore reports whether v is referenced in root before pos.
func (o *Oracle) UsedBefore(v *types.Var, root inspector.Cursor, pos token.Pos) bool {
	for ci := range root.Preorder((*ast.Ident)(nil)) {
		if id := ci.Node().(*ast.Ident); id.Pos() < pos && o.Info.Uses[id] == v {
			return true
		}
	}

	return false
}

// Assigned reports whether v is written or address-taken in the given subtrees.
func (o *Oracle) Assigned(v *types.Var, cs ...inspector.Cursor) bool {
	for _, c := range cs {
		for ci := range c.Preorder((*ast.Ident)(nil)) {
			if o.Info.Uses[ci.Node().(*ast.Ident)] == v && o.isLvalue(ci) {
				return true
			}
		}
	}

	return false
}

// Mutated returns the local variables written or address-taken in the given subtree.
func (o *Oracle) Mutated(c inspector.Cursor) map[*types.Var]struct{} {
	mutated := make(map[*types.Var]struct{})

	for ci := range c.Preorder((*ast.Ident)(nil)) {
		v, ok := o.Info.Uses[ci.Node().(*ast.Ident)].(*types.Var)
		if !ok || v.IsField() {
			continue
		}

		if o.isLvalue(ci) {
			mutated[v] = struct{}{}
		}
	}

	return mutated
}

// isLvalue reports whether the identifier is address-taken or appears on the left side of an assignment.
func (o *Oracle) isLvalue(ci inspector.Cursor) bool {
	cur := ci

	// Strip enclosing parens.
	kind, _ := cur.ParentEdge()
	for kind == edge.ParenExpr_X {
		cur = cur.Parent()
		kind, _ = cur.ParentEdge()
	}

	switch kind {
	case edge.AssignStmt_Lhs, // i = j
		edge.IncDecStmt_X,  // i++, i--
		edge.RangeStmt_Key, // for i = range
		edge.RangeStmt_Value:
		return true

	case edge.UnaryExpr_X:
		return cur.Parent().Node().(*ast.UnaryExpr).Op == token.AND // &i

	case edge.SelectorExpr_X: // i.f = j or i.m() with pointer receiver
		return o.selectorWrites(cur.Parent())

	case edge.IndexExpr_X: // a[i] = j on arrays
		if _, ok := underlying(o.TypeOf(cur.Node().(ast.Expr))).(*types.Array); ok {
			return o.isLvalue(cur.Parent())
		}

	case edge.SliceExpr_X: // a[:] on arrays
		if _, ok := underlying(o.TypeOf(cur.Node().(ast.Expr))).(*types.Array); ok {
			return true
		}
	}

	return false
}

// selectorWrites reports whether the selector expression writes to its operand.
func (o *Oracle) selectorWrites(sc inspector.Cursor) bool {
	sel := sc.Node().(*ast.SelectorExpr)

	selection, ok := o.Info.Selections[sel]
	if !ok {
		return false
	}

	switch selection.Kind() {
	case types.FieldVal:
		if _, ok := underlying(o.TypeOf(sel.X)).(*types.Pointer); ok {
			return false
		}

		return o.isLvalue(sc)

	case types.MethodVal:
		if _, ok := underlying(o.TypeOf(sel.X)).(*types.Pointer); ok {
			return false
		}

		sig, ok := selection.Obj().Type().(*types.Signature)
		if !ok || sig.Recv() == nil {
			return false
		}

		_, ptr := sig.Recv().Type().(*types.Pointer)

		return ptr

	default:
		return false
	}
}

func underlying(t types.Type) types.Type {
	if t == nil {
		return nil
	}

	return t.Underlying()
}
