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
	"go/constant"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopchain/internal/chain"
)

type sequenceMatcher struct {
	name         string
	indexAllowed bool // applies while an index variable is live
	affectsIndex bool // invalidates a live index variable
	jumpSafe     bool // may change the number of embedded jumps
	match        func(e *env, s State) (State, bool)
}

// sequenceMatchers in the order they are tried.
var sequenceMatchers = [...]sequenceMatcher{
	{name: "IntroduceIndex", affectsIndex: true, match: (*env).introduceIndex},
	{name: "Filter", indexAllowed: true, affectsIndex: true, jumpSafe: true, match: (*env).filter},
	{name: "TakeWhile", indexAllowed: true, jumpSafe: true, match: (*env).takeWhile},
	{name: "Map", indexAllowed: true, match: (*env).mapping},
	{name: "FlatMap", affectsIndex: true, jumpSafe: true, match: (*env).flatMap},
}

// filter matches a leading `if c { continue }` guard, or a sole `if c { ... }`.
func (e *env) filter(s State) (State, bool) {
	if len(s.residual) == 0 {
		return s, false
	}

	first := s.residual[0]

	stmt, ok := first.Node().(*ast.IfStmt)
	if !ok || stmt.Init != nil || stmt.Else != nil {
		return s, false
	}

	cond, negated := unnegate(stmt.Cond)

	var (
		keep bool
		rest []inspector.Cursor
	)

	switch {
	case isBranch(stmt.Body, token.CONTINUE):
		keep, rest = negated, s.residual[1:]

	case len(s.residual) == 1:
		keep, rest = !negated, children(first.ChildAt(edge.IfStmt_Body, -1))

	default:
		return s, false
	}

	fn, ok := e.lambda(s, cond, "bool", chain.Copy(e.o, cond))
	if !ok {
		return s, false
	}

	kind := chain.Reject
	if keep {
		kind = chain.Filter
	}

	if fn.Index != "" {
		kind = kind.WithIndex()
	}

	return s.withStage(chain.Transformation{Kind: kind, Fn: fn}).withResidual(rest), true
}

// takeWhile matches a leading `if c { break }` guard.
func (e *env) takeWhile(s State) (State, bool) {
	if len(s.residual) == 0 {
		return s, false
	}

	stmt, ok := s.residual[0].Node().(*ast.IfStmt)
	if !ok || stmt.Init != nil || stmt.Else != nil || !isBranch(stmt.Body, token.BREAK) {
		return s, false
	}

	fn, ok := e.lambda(s, stmt.Cond, "bool", e.negate(stmt.Cond))
	if !ok || fn.Index != "" {
		return s, false
	}

	return s.withStage(chain.Transformation{Kind: chain.TakeWhile, Fn: fn}).withResidual(s.residual[1:]), true
}

// mapping matches a leading declaration of a single variable, which becomes the new input.
func (e *env) mapping(s State) (State, bool) {
	if len(s.residual) < 2 {
		return s, false
	}

	v, value, ok := e.declaration(s.residual[0])
	if !ok {
		return s, false
	}

	rest := s.residual[1:]
	if s.input != nil && e.o.Used(s.input, rest...) || e.o.Assigned(v, rest...) {
		return s, false
	}

	result, ok := e.typeString(v.Type())
	if !ok {
		return s, false
	}

	fn, ok := e.lambda(s, value, result, chain.Copy(e.o, value))
	if !ok {
		return s, false
	}

	kind := chain.Map
	if fn.Index != "" {
		kind = kind.WithIndex()
	}

	return s.withStage(chain.Transformation{Kind: kind, Fn: fn}).withInput(v, v.Type()).withResidual(rest), true
}

// flatMap matches a sole nested range loop over a slice or iter.Seq.
func (e *env) flatMap(s State) (State, bool) {
	if len(s.residual) != 1 {
		return s, false
	}

	rc := s.residual[0]

	inner, ok := rc.Node().(*ast.RangeStmt)
	if !ok || inner.Tok == token.ASSIGN {
		return s, false
	}

	t := e.o.TypeOf(inner.X)
	if t == nil {
		return s, false
	}

	var (
		kind  chain.Kind
		input *types.Var
		elem  types.Type
	)

	switch u := t.Underlying().(type) {
	case *types.Slice:
		if defined(e.o, inner.Key) != nil {
			return s, false
		}

		kind, input, elem = chain.FlatMapSlice, defined(e.o, inner.Value), u.Elem()

	case *types.Signature:
		el, ok := SeqElem(t)
		if !ok || !IsSeq(t) || inner.Value != nil {
			return s, false
		}

		kind, input, elem = chain.FlatMap, defined(e.o, inner.Key), el

	default:
		return s, false
	}

	body := rc.ChildAt(edge.RangeStmt_Body, -1)
	stmts := children(body)

	if s.input != nil && e.o.Used(s.input, body) {
		return s, false
	}

	for _, j := range loopJumps(rc, stmts) {
		if j.Node().(*ast.BranchStmt).Tok == token.BREAK {
			return s, false
		}
	}

	result, ok := e.typeString(t)
	if !ok {
		return s, false
	}

	fn, ok := e.lambda(s, inner.X, result, chain.Copy(e.o, inner.X))
	if !ok || fn.Index != "" {
		return s, false
	}

	next := s.withStage(chain.Transformation{Kind: kind, Fn: fn}).
		withAnchor(rc).
		withInput(input, elem).
		withResidual(stmts)

	return next, true
}

// introduceIndex matches the first top-level increment of a counter that starts at zero.
// The counter becomes the index of the elements reaching the increment.
func (e *env) introduceIndex(s State) (State, bool) {
	for k, c := range s.residual {
		if v, ok := e.increment(c); ok {
			return e.index(s, k, v)
		}

		if !jumpFree(c, s.anchor) {
			break
		}
	}

	return s, false
}

func (e *env) index(s State, k int, v *types.Var) (State, bool) {
	init, ok := e.inits[v]
	if !ok || !types.Identical(v.Type(), types.Typ[types.Int]) {
		return s, false
	}

	if init.Value != nil && (!e.o.IsCompileTimeConstant(init.Value) || !e.o.IsZeroValue(init.Value)) {
		return s, false
	}

	rest := without(s.residual, k)

	// all uses are in the statements before the increment
	if e.o.Used(v, s.residual[k+1:]...) || e.o.Assigned(v, rest...) {
		return s, false
	}

	if e.o.Uses(v, e.loop.Func) != e.o.Uses(v, s.residual...) {
		return s, false
	}

	return s.withIndex(v).withResidual(rest).withDelete(init.Stmt), true
}

// increment returns the local variable a statement increments by one.
func (e *env) increment(c inspector.Cursor) (*types.Var, bool) {
	var x ast.Expr

	switch stmt := c.Node().(type) {
	case *ast.IncDecStmt:
		if stmt.Tok != token.INC {
			return nil, false
		}

		x = stmt.X

	case *ast.AssignStmt:
		if stmt.Tok != token.ADD_ASSIGN || len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 || !e.isOne(stmt.Rhs[0]) {
			return nil, false
		}

		x = stmt.Lhs[0]

	default:
		return nil, false
	}

	v := e.o.Var(x)

	return v, v != nil
}

func (e *env) isOne(x ast.Expr) bool {
	tv, ok := e.o.Info.Types[x]

	return ok && tv.Value != nil && constant.Compare(tv.Value, token.EQL, constant.MakeInt64(1))
}

// declaration returns the variable and value of a single variable declaration.
func (e *env) declaration(c inspector.Cursor) (*types.Var, ast.Expr, bool) {
	var (
		name  *ast.Ident
		value ast.Expr
	)

	switch stmt := c.Node().(type) {
	case *ast.AssignStmt:
		if stmt.Tok != token.DEFINE || len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
			return nil, nil, false
		}

		name, _ = stmt.Lhs[0].(*ast.Ident)
		value = stmt.Rhs[0]

	case *ast.DeclStmt:
		decl, ok := stmt.Decl.(*ast.GenDecl)
		if !ok || decl.Tok != token.VAR || len(decl.Specs) != 1 || decl.Lparen.IsValid() {
			return nil, nil, false
		}

		spec := decl.Specs[0].(*ast.ValueSpec)
		if len(spec.Names) != 1 || len(spec.Values) != 1 {
			return nil, nil, false
		}

		name, value = spec.Names[0], spec.Values[0]

	default:
		return nil, nil, false
	}

	if name == nil || name.Name == "_" {
		return nil, nil, false
	}

	v, ok := e.o.Info.Defs[name].(*types.Var)

	return v, value, ok
}

// negate returns the negation of cond, removing a leading `!`.
func (e *env) negate(cond ast.Expr) chain.Code {
	if x, negated := unnegate(cond); negated {
		return chain.Copy(e.o, x)
	}

	switch cond.(type) {
	case *ast.Ident, *ast.SelectorExpr, *ast.CallExpr, *ast.IndexExpr, *ast.IndexListExpr, *ast.ParenExpr:
		return chain.Concat(chain.Text("!"), chain.Copy(e.o, cond))

	default:
		return chain.Concat(chain.Text("!("), chain.Copy(e.o, cond), chain.Text(")"))
	}
}

// unnegate strips a logical not.
func unnegate(cond ast.Expr) (ast.Expr, bool) {
	if u, ok := cond.(*ast.UnaryExpr); ok && u.Op == token.NOT {
		return u.X, true
	}

	return cond, false
}

// isBranch reports whether the block consists of a single unlabeled jump.
func isBranch(block *ast.BlockStmt, tok token.Token) bool {
	if len(block.List) != 1 {
		return false
	}

	br, ok := block.List[0].(*ast.BranchStmt)

	return ok && br.Tok == tok && br.Label == nil
}
