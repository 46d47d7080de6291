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

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopchain/internal/oracle"
)

// Initialization pairs a variable with its declaration in the run of inert
// declarations directly preceding the loop.
type Initialization struct {
	Var    *types.Var
	Stmt   inspector.Cursor // the declaring statement
	Define bool             // declared with :=
	Type   ast.Expr         // declared type, nil when inferred
	Value  ast.Expr         // initial value, nil for the zero value
}

// Constant reports whether the initial value is a constant, nil or the zero value.
func (i *Initialization) Constant(o *oracle.Oracle) bool {
	return i.Value == nil || o.IsCompileTimeConstant(i.Value) || o.IsNil(i.Value)
}

// IsNil reports whether the variable starts as nil.
func (i *Initialization) IsNil(o *oracle.Oracle) bool {
	if i.Value == nil {
		return true
	}

	if o.IsNil(i.Value) {
		return true
	}

	// []T(nil)
	call, ok := ast.Unparen(i.Value).(*ast.CallExpr)
	if !ok || len(call.Args) != 1 {
		return false
	}

	tv, ok := o.Info.Types[call.Fun]

	return ok && tv.IsType() && o.IsNil(call.Args[0])
}

// initializations collects the single-variable declarations among the inert
// statements preceding the loop.
func initializations(o *oracle.Oracle, loop inspector.Cursor) map[*types.Var]*Initialization {
	inits := make(map[*types.Var]*Initialization)

	for c, ok := loop.PrevSibling(); ok; c, ok = c.PrevSibling() {
		stmt, isStmt := c.Node().(ast.Stmt)
		if !isStmt || !o.Inert(stmt) {
			break
		}

		if i := initialization(o, c); i != nil {
			inits[i.Var] = i
		}
	}

	return inits
}

func initialization(o *oracle.Oracle, c inspector.Cursor) *Initialization {
	var (
		name   *ast.Ident
		define bool
		typ    ast.Expr
		value  ast.Expr
	)

	switch stmt := c.Node().(type) {
	case *ast.AssignStmt:
		if len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
			return nil
		}

		name, _ = stmt.Lhs[0].(*ast.Ident)
		define, value = true, stmt.Rhs[0]

	case *ast.DeclStmt:
		decl, ok := stmt.Decl.(*ast.GenDecl)
		if !ok || decl.Tok != token.VAR || len(decl.Specs) != 1 || decl.Lparen.IsValid() {
			return nil
		}

		spec := decl.Specs[0].(*ast.ValueSpec)
		if len(spec.Names) != 1 || len(spec.Values) > 1 {
			return nil
		}

		name, typ = spec.Names[0], spec.Type
		if len(spec.Values) == 1 {
			value = spec.Values[0]
		}

	default:
		return nil
	}

	if name == nil {
		return nil
	}

	v, ok := o.Info.Defs[name].(*types.Var)
	if !ok {
		return nil
	}

	return &Initialization{Var: v, Stmt: c, Define: define, Type: typ, Value: value}
}
