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

package oracle

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
)

// Inert reports whether a statement is a declaration without observable side effects.
//
// Pure declarations (var, const, type) and short variable declarations of new
// variables initialized with constant expressions or new/make with constant
// arguments are considered inert. Moving the loop past them or deleting
// them cannot change the behavior of the program.
func (o *Oracle) Inert(stmt ast.Stmt) bool {
	switch stmt := stmt.(type) {
	case *ast.AssignStmt:
		return o.inertShortDecl(stmt)

	case *ast.DeclStmt:
		decl, ok := stmt.Decl.(*ast.GenDecl)

		return ok && o.inertVarDecl(decl)

	case *ast.EmptyStmt:
		return true

	default:
		return false
	}
}

// inertShortDecl analyzes an assignment statement to determine if it declares a
// constant expression without side effects.
//
// It ensures that:
// 1. It is a short variable declaration (:=).
// 2. All identifiers on the LHS are *new* definitions (no reassignments).
// 3. All expressions on the RHS are inert (constants or safe built-ins).
func (o *Oracle) inertShortDecl(stmt *ast.AssignStmt) bool {
	if stmt.Tok != token.DEFINE {
		return false
	}

	for _, id := range stmt.Lhs {
		id, ok := id.(*ast.Ident)
		if !ok {
			return false
		}

		if id.Name == "_" {
			continue
		}

		// A missing definition is a reassignment of an existing variable
		if obj, ok := o.Info.Defs[id]; !ok || obj == nil {
			return false
		}
	}

	for _, expr := range stmt.Rhs {
		if !o.inertExpr(expr) {
			return false
		}
	}

	return true
}

// inertVarDecl checks whether a var declaration only has inert initialization values.
func (o *Oracle) inertVarDecl(decl *ast.GenDecl) bool {
	if decl.Tok != token.VAR { // type declaration and const are safe
		return true
	}

	for _, spec := range decl.Specs {
		if spec, ok := spec.(*ast.ValueSpec); ok {
			for _, expr := range spec.Values {
				if !o.inertExpr(expr) {
					return false
				}
			}
		}
	}

	return true
}

// inertExpr determines if an expression has no side effects, such as being a constant or involving `new` with constant arguments.
func (o *Oracle) inertExpr(expr ast.Expr) bool {
	if tv, ok := o.Info.Types[expr]; ok && (tv.Value != nil || tv.IsNil()) {
		return true
	}

	// composite literals of constants, like []string{} or T{}
	if lit, ok := ast.Unparen(expr).(*ast.CompositeLit); ok {
		_, isStruct := o.Info.TypeOf(lit).Underlying().(*types.Struct)

		for _, elt := range lit.Elts {
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				if !isStruct && !o.inertExpr(kv.Key) {
					return false
				}

				elt = kv.Value
			}

			if !o.inertExpr(elt) {
				return false
			}
		}

		return true
	}

	// conversions of inert values, like []int(nil)
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok {
		return false
	}

	if tv, ok := o.Info.Types[call.Fun]; ok && tv.IsType() {
		return len(call.Args) == 1 && o.inertExpr(call.Args[0])
	}

	if !o.builtin(call.Fun) {
		return false
	}

	for _, arg := range call.Args {
		// Check for type or constant argument
		if tv, ok := o.Info.Types[arg]; !ok || !tv.IsType() && tv.Value == nil {
			return false
		}
	}

	return true
}

// builtin checks if the call expression is a call to the built-in `new` or `make` function.
func (o *Oracle) builtin(fun ast.Expr) bool {
	id, ok := ast.Unparen(fun).(*ast.Ident)
	if !ok || id.Name != "new" && id.Name != "make" {
		return false
	}

	_, ok = o.Info.Uses[id].(*types.Builtin)

	return ok
}

// IsZeroValue reports whether e denotes the zero value of its type.
func (o *Oracle) IsZeroValue(e ast.Expr) bool {
	tv, ok := o.Info.Types[e]
	if !ok {
		return false
	}

	if tv.IsNil() {
		return true
	}

	if v := tv.Value; v != nil {
		switch v.Kind() {
		case constant.Bool:
			return !constant.BoolVal(v)

		case constant.String:
			return constant.StringVal(v) == ""

		case constant.Int, constant.Float, constant.Complex:
			return constant.Sign(v) == 0

		default:
			return false
		}
	}

	lit, ok := ast.Unparen(e).(*ast.CompositeLit)
	if !ok || len(lit.Elts) > 0 {
		return false
	}

	switch tv.Type.Underlying().(type) {
	case *types.Struct, *types.Array:
		return true

	default:
		return false
	}
}
