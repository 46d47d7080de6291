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
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopchain/internal/oracle"
)

// SourceKind describes how the ranged collection is turned into a sequence.
type SourceKind uint8

//go:generate go tool stringer -type SourceKind -linecomment
const (
	// SourceSlice is a slice, wrapped as seq.Of(x).
	SourceSlice SourceKind = iota + 1 // slice
	// SourceArray is an addressable array variable, wrapped as seq.Of(x[:]).
	SourceArray // array
	// SourceFunc is an iter.Seq function, used as is.
	SourceFunc // func
)

// Loop is a range statement that is a candidate for conversion.
type Loop struct {
	Stmt   *ast.RangeStmt
	Cursor inspector.Cursor // the range statement
	Body   inspector.Cursor // the loop body
	Func   inspector.Cursor // body of the enclosing function
	Sig    *types.Signature // signature of the enclosing function
	Source SourceKind
	Input  *types.Var // element variable, nil when absent or blank
	Index  *types.Var // index variable, nil when absent or blank
	Elem   types.Type // element type
}

// ExtractLoop checks whether c is a range loop the matchers can handle.
func ExtractLoop(o *oracle.Oracle, c inspector.Cursor) (*Loop, bool) {
	stmt, ok := c.Node().(*ast.RangeStmt)
	if !ok || stmt.Tok == token.ASSIGN || !o.RangeOverFunc() {
		return nil, false
	}

	switch kind, _ := c.ParentEdge(); kind {
	case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:

	default: // labeled loops, among others
		return nil, false
	}

	fn, sig, ok := enclosingFunc(o, c)
	if !ok {
		return nil, false
	}

	body := c.ChildAt(edge.RangeStmt_Body, -1)
	if hasLabels(body) {
		return nil, false
	}

	l := &Loop{Stmt: stmt, Cursor: c, Body: body, Func: fn, Sig: sig}

	if !l.source(o) {
		return nil, false
	}

	return l, true
}

// source determines the kind of the ranged collection and the loop variables.
func (l *Loop) source(o *oracle.Oracle) bool {
	t := o.TypeOf(l.Stmt.X)
	if t == nil {
		return false
	}

	switch u := t.Underlying().(type) {
	case *types.Slice:
		l.Source, l.Elem = SourceSlice, u.Elem()
		l.Index, l.Input = defined(o, l.Stmt.Key), defined(o, l.Stmt.Value)

	case *types.Array:
		// The range copies the array, so it must not change while the sequence reads it
		v := o.Var(l.Stmt.X)
		if v == nil || o.Used(v, l.Body) {
			return false
		}

		l.Source, l.Elem = SourceArray, u.Elem()
		l.Index, l.Input = defined(o, l.Stmt.Key), defined(o, l.Stmt.Value)

	case *types.Signature:
		elem, ok := SeqElem(t)
		if !ok || l.Stmt.Value != nil {
			return false
		}

		l.Source, l.Elem = SourceFunc, elem
		l.Input = defined(o, l.Stmt.Key)

	default: // maps, strings, channels, integers
		return false
	}

	return true
}

// SeqElem returns the element type of an iter.Seq shaped function type.
// Named function types other than iter.Seq do not convert to it and are rejected.
func SeqElem(t types.Type) (types.Type, bool) {
	if named, ok := types.Unalias(t).(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() == nil || obj.Pkg().Path() != "iter" || obj.Name() != "Seq" {
			return nil, false
		}
	}

	sig, ok := t.Underlying().(*types.Signature)
	if !ok || sig.Params().Len() != 1 || sig.Results().Len() != 0 || sig.Variadic() {
		return nil, false
	}

	yield, ok := sig.Params().At(0).Type().Underlying().(*types.Signature)
	if !ok || yield.Params().Len() != 1 || yield.Results().Len() != 1 {
		return nil, false
	}

	if !types.Identical(yield.Results().At(0).Type(), types.Typ[types.Bool]) {
		return nil, false
	}

	return yield.Params().At(0).Type(), true
}

// IsSeq reports whether t is an instance of iter.Seq.
func IsSeq(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	_, ok = SeqElem(named)

	return ok
}

// defined returns the variable declared by a range variable, nil for blank or absent ones.
func defined(o *oracle.Oracle, e ast.Expr) *types.Var {
	id, ok := e.(*ast.Ident)
	if !ok || id.Name == "_" {
		return nil
	}

	v, _ := o.Info.Defs[id].(*types.Var)

	return v
}

// enclosingFunc returns the body and signature of the function containing c.
func enclosingFunc(o *oracle.Oracle, c inspector.Cursor) (inspector.Cursor, *types.Signature, bool) {
	for p := range c.Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		switch n := p.Node().(type) {
		case *ast.FuncDecl:
			obj := o.Info.Defs[n.Name]
			if obj == nil {
				return inspector.Cursor{}, nil, false
			}

			sig, ok := obj.Type().(*types.Signature)

			return p.ChildAt(edge.FuncDecl_Body, -1), sig, ok

		case *ast.FuncLit:
			sig, ok := o.TypeOf(n).(*types.Signature)

			return p.ChildAt(edge.FuncLit_Body, -1), sig, ok
		}
	}

	return inspector.Cursor{}, nil, false
}

// hasLabels reports whether the subtree contains labeled statements or goto.
func hasLabels(c inspector.Cursor) bool {
	for n := range c.Preorder((*ast.LabeledStmt)(nil), (*ast.BranchStmt)(nil)) {
		switch n := n.Node().(type) {
		case *ast.LabeledStmt:
			return true

		case *ast.BranchStmt:
			if n.Tok == token.GOTO || n.Label != nil {
				return true
			}
		}
	}

	return false
}
