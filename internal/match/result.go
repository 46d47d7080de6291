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
	"slices"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopchain/internal/chain"
)

// Commit is the strategy for replacing the loop with the chain.
type Commit uint8

//go:generate go tool stringer -type Commit -linecomment
const (
	// InPlace replaces the loop with the chain as expression statement.
	InPlace Commit = iota + 1 // in place
	// Declare replaces the loop with a declaration of the result variable and deletes its initializer.
	Declare // declare
	// Return replaces the loop and the following return statement with a return of the chain.
	Return // return
	// Assign replaces the loop with an assignment to the result variable.
	Assign // assign
)

// Result is a successful match.
type Result struct {
	Loop     *Loop
	Calls    []chain.Transformation // sequence stages followed by exactly one result
	Commit   Commit
	Var      *types.Var         // declared or assigned variable
	Init     *Initialization    // initialization replaced by the declaration
	Deletes  []inspector.Cursor // initializer statements to delete
	Trailing inspector.Cursor   // return statement replaced by [Return]
	Prefix   string             // text in front of the chain
	Suffix   string             // text after the chain
}

// Presentation describes the chain, like "Filter{}.Map{}.Collect()".
func (r *Result) Presentation() string { return chain.Presentation(r.Calls) }

type resultMatcher struct {
	name         string
	indexAllowed bool // can use a live index variable
	match        func(e *env, s State) (*Result, bool)
}

// resultMatchers in the order they are tried.
var resultMatchers = [...]resultMatcher{
	{name: "ForEach", indexAllowed: true, match: (*env).forEach},
	{name: "FindAndReturn", match: (*env).findAndReturn},
	{name: "FindAndAssign", match: (*env).findAndAssign},
	{name: "Count", match: (*env).count},
	{name: "AddToCollection", match: (*env).addToCollection},
}

func (e *env) result(s State, commit Commit, calls ...chain.Transformation) *Result {
	return &Result{
		Loop:    e.loop,
		Calls:   slices.Concat(s.stages, calls),
		Commit:  commit,
		Deletes: s.deletes,
	}
}

// forEach matches a single statement that can run in a function literal.
func (e *env) forEach(s State) (*Result, bool) {
	if len(s.residual) != 1 || len(s.stages) == 0 && s.index == nil {
		return nil, false
	}

	c := s.residual[0]

	if stmt, ok := c.Node().(*ast.IfStmt); ok && stmt.Init == nil && stmt.Else == nil {
		return nil, false // a filter
	}

	if !hoistable(c, s.anchor) {
		return nil, false
	}

	elem := "_"
	if s.input != nil {
		elem = s.input.Name()
	}

	typ, ok := e.typeString(s.elem)
	if !ok {
		return nil, false
	}

	fn := &chain.Lambda{Elem: elem, Type: typ, Body: chain.Copy(e.o, c.Node()), Stmt: true}

	kind := chain.ForEach
	if s.index != nil {
		fn.Index, kind = s.index.Name(), chain.ForEachIndexed
	}

	return e.result(s, InPlace, chain.Transformation{Kind: kind, Fn: fn}), true
}

// findAndReturn matches `[if c {] return e [}]` followed by a return after the loop.
func (e *env) findAndReturn(s State) (*Result, bool) {
	trailing, ok := e.loop.Cursor.NextSibling()
	if !ok {
		return nil, false
	}

	after, ok := trailing.Node().(*ast.ReturnStmt)
	if !ok {
		return nil, false
	}

	cond, body := e.guarded(s)
	if len(body) != 1 {
		return nil, false
	}

	ret, ok := body[0].Node().(*ast.ReturnStmt)
	if !ok {
		return nil, false
	}

	results := e.loop.Sig.Results()
	if results.Len() != len(ret.Results) || results.Len() != len(after.Results) {
		return nil, false
	}

	calls, ok := e.guard(s, cond)
	if !ok {
		return nil, false
	}

	var terminal []chain.Transformation

	switch results.Len() {
	case 1:
		terminal, ok = e.findValue(s, results.At(0).Type(), ret.Results[0], after.Results[0])

	case 2:
		terminal, ok = e.findCommaOk(s, results, ret.Results, after.Results)

	default:
		return nil, false
	}

	if !ok {
		return nil, false
	}

	r := e.result(s, Return, slices.Concat(calls, terminal)...)
	r.Trailing = trailing

	return r, true
}

func (e *env) findValue(s State, rt types.Type, found, missing ast.Expr) ([]chain.Transformation, bool) {
	if isBool(rt) {
		f, ok1 := e.boolConst(found)
		m, ok2 := e.boolConst(missing)

		if ok1 && ok2 && f != m {
			kind := chain.None
			if f {
				kind = chain.Any
			}

			return []chain.Transformation{{Kind: kind}}, true
		}
	}

	if !e.stable(missing) {
		return nil, false
	}

	calls, ok := e.project(s, found, rt)
	if !ok {
		return nil, false
	}

	def := chain.Copy(e.o, missing)

	return append(calls, chain.Transformation{Kind: chain.FirstOr, Arg: &def}), true
}

func (e *env) findCommaOk(s State, results *types.Tuple, found, missing []ast.Expr) ([]chain.Transformation, bool) {
	if !isBool(results.At(1).Type()) {
		return nil, false
	}

	if f, ok := e.boolConst(found[1]); !ok || !f {
		return nil, false
	}

	if m, ok := e.boolConst(missing[1]); !ok || m {
		return nil, false
	}

	if !e.o.IsZeroValue(missing[0]) {
		return nil, false
	}

	calls, ok := e.project(s, found[0], results.At(0).Type())
	if !ok {
		return nil, false
	}

	return append(calls, chain.Transformation{Kind: chain.First}), true
}

// findAndAssign matches `[if c {] v = e [; break] [}]` for a variable with a constant initializer.
func (e *env) findAndAssign(s State) (*Result, bool) {
	cond, body := e.guarded(s)

	var first bool

	switch len(body) {
	case 1:

	case 2:
		br, ok := body[1].Node().(*ast.BranchStmt)
		if !ok || br.Tok != token.BREAK || br.Label != nil {
			return nil, false
		}

		first = true

	default:
		return nil, false
	}

	stmt, ok := body[0].Node().(*ast.AssignStmt)
	if !ok || stmt.Tok != token.ASSIGN || len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
		return nil, false
	}

	init, ok := e.accumulator(e.o.Var(stmt.Lhs[0]), 1)
	if !ok || !init.Constant(e.o) {
		return nil, false
	}

	v := init.Var

	var def chain.Code

	if init.Value != nil {
		def = chain.Copy(e.o, init.Value)
	} else {
		zero, ok := e.o.ZeroLiteral(v.Type(), e.loop.Stmt.Pos())
		if !ok {
			return nil, false
		}

		def = chain.Text(zero)
	}

	calls, ok := e.guard(s, cond)
	if !ok {
		return nil, false
	}

	mapping, ok := e.project(s, stmt.Rhs[0], v.Type())
	if !ok {
		return nil, false
	}

	kind := chain.LastOr
	if first {
		kind = chain.FirstOr
	}

	r := e.result(s, Declare, slices.Concat(calls, mapping, []chain.Transformation{{Kind: kind, Arg: &def}})...)
	r.Var, r.Init = v, init
	r.Deletes = append(slices.Clip(r.Deletes), init.Stmt)

	return r, true
}

// count matches `[if c {] n++ [}]` for an integer variable with a constant initializer.
func (e *env) count(s State) (*Result, bool) {
	cond, body := e.guarded(s)
	if len(body) != 1 {
		return nil, false
	}

	v, ok := e.increment(body[0])
	if !ok {
		return nil, false
	}

	init, ok := e.accumulator(v, 1)
	if !ok || !init.Constant(e.o) {
		return nil, false
	}

	if b, ok := v.Type().Underlying().(*types.Basic); !ok || b.Info()&types.IsInteger == 0 {
		return nil, false
	}

	calls, ok := e.guard(s, cond)
	if !ok {
		return nil, false
	}

	r := e.result(s, Declare, append(calls, chain.Transformation{Kind: chain.Count})...)
	r.Var, r.Init = v, init
	r.Deletes = append(slices.Clip(r.Deletes), init.Stmt)

	if !types.Identical(v.Type(), types.Typ[types.Int]) {
		conv, ok := e.typeString(v.Type())
		if !ok {
			return nil, false
		}

		r.Prefix, r.Suffix = conv+"(", ")"
	}

	if init.Value != nil && !e.o.IsZeroValue(init.Value) {
		r.Prefix = e.o.Text(init.Value) + " + " + r.Prefix
	}

	return r, true
}

// addToCollection matches `[if c {] s = append(s, e) [}]`.
func (e *env) addToCollection(s State) (*Result, bool) {
	cond, body := e.guarded(s)
	if len(body) != 1 {
		return nil, false
	}

	stmt, ok := body[0].Node().(*ast.AssignStmt)
	if !ok || stmt.Tok != token.ASSIGN || len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
		return nil, false
	}

	dst := e.o.Var(stmt.Lhs[0])
	if dst == nil || !e.isAppend(stmt.Rhs[0], dst) {
		return nil, false
	}

	slice, ok := dst.Type().Underlying().(*types.Slice)
	if !ok || e.o.Uses(dst, e.loop.Body) != 2 || e.refers(e.loop.Stmt.X, dst) {
		return nil, false
	}

	calls, ok := e.guard(s, cond)
	if !ok {
		return nil, false
	}

	mapping, ok := e.project(s, stmt.Rhs[0].(*ast.CallExpr).Args[1], slice.Elem())
	if !ok {
		return nil, false
	}

	calls = slices.Concat(calls, mapping)

	if init, ok := e.inits[dst]; ok && init.IsNil(e.o) && isUnnamedSlice(dst.Type()) && e.declarable(dst) {
		r := e.result(s, Declare, append(calls, chain.Transformation{Kind: chain.Collect})...)
		r.Var, r.Init = dst, init
		r.Deletes = append(slices.Clip(r.Deletes), init.Stmt)

		return r, true
	}

	arg := chain.Text(dst.Name())

	r := e.result(s, Assign, append(calls, chain.Transformation{Kind: chain.AppendTo, Arg: &arg})...)
	r.Var = dst

	return r, true
}

// isAppend reports whether x is `append(dst, e)` with the builtin append.
func (e *env) isAppend(x ast.Expr, dst *types.Var) bool {
	call, ok := x.(*ast.CallExpr)
	if !ok || len(call.Args) != 2 || call.Ellipsis.IsValid() {
		return false
	}

	fun, ok := ast.Unparen(call.Fun).(*ast.Ident)
	if !ok {
		return false
	}

	if b, ok := e.o.Info.Uses[fun].(*types.Builtin); !ok || b.Name() != "append" {
		return false
	}

	return e.o.Var(call.Args[0]) == dst
}

// accumulator returns the initialization of v, when v is referenced uses
// times in the loop and its declaration can move to the loop.
func (e *env) accumulator(v *types.Var, uses int) (*Initialization, bool) {
	init, ok := e.inits[v]
	if !ok || e.o.Uses(v, e.loop.Body) != uses || !e.declarable(v) {
		return nil, false
	}

	return init, true
}

// declarable reports whether v is not referenced before the loop body, so its
// declaration can move to the loop.
func (e *env) declarable(v *types.Var) bool {
	return !e.o.UsedBefore(v, e.loop.Func, e.loop.Body.Node().Pos())
}

// guarded splits a sole `if c { ... }` into condition and body.
func (e *env) guarded(s State) (ast.Expr, []inspector.Cursor) {
	if len(s.residual) != 1 {
		return nil, s.residual
	}

	stmt, ok := s.residual[0].Node().(*ast.IfStmt)
	if !ok || stmt.Init != nil || stmt.Else != nil {
		return nil, s.residual
	}

	return stmt.Cond, children(s.residual[0].ChildAt(edge.IfStmt_Body, -1))
}

// guard turns an optional condition into a filter stage.
func (e *env) guard(s State, cond ast.Expr) ([]chain.Transformation, bool) {
	if cond == nil {
		return nil, true
	}

	fn, ok := e.lambda(s, cond, "bool", chain.Copy(e.o, cond))
	if !ok || fn.Index != "" {
		return nil, false
	}

	return []chain.Transformation{{Kind: chain.Filter, Fn: fn}}, true
}

// project maps the element to x, converted to t. The map is omitted when x is the element itself.
func (e *env) project(s State, x ast.Expr, t types.Type) ([]chain.Transformation, bool) {
	if s.input != nil && e.o.Var(x) == s.input && types.Identical(s.elem, t) {
		return nil, true
	}

	result, ok := e.typeString(t)
	if !ok {
		return nil, false
	}

	fn, ok := e.lambda(s, x, result, chain.Copy(e.o, x))
	if !ok || fn.Index != "" {
		return nil, false
	}

	return []chain.Transformation{{Kind: chain.Map, Fn: fn}}, true
}

// stable reports whether x has the same value before and after the loop.
func (e *env) stable(x ast.Expr) bool {
	if e.o.IsCompileTimeConstant(x) || e.o.IsNil(x) {
		return true
	}

	v := e.o.Var(x)

	return v != nil && !e.o.Assigned(v, e.loop.Body)
}

func (e *env) boolConst(x ast.Expr) (bool, bool) {
	tv, ok := e.o.Info.Types[x]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.Bool {
		return false, false
	}

	return constant.BoolVal(tv.Value), true
}

func isBool(t types.Type) bool {
	return types.Identical(t, types.Typ[types.Bool])
}

func isUnnamedSlice(t types.Type) bool {
	_, ok := types.Unalias(t).(*types.Slice)

	return ok
}
