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

package verify

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"runtime/trace"
	"sync"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/loopchain/internal/chain"
	"fillmore-labs.com/loopchain/internal/oracle"
)

// ErrNotPreserved is returned when a conversion does not type check or changes the meaning of copied code.
var ErrNotPreserved = errors.New("conversion does not preserve semantics")

// Package is the type checked package conversions are verified against.
type Package struct {
	Fset     *token.FileSet
	Files    []*ast.File
	Types    *types.Package
	Sizes    types.Sizes
	ReadFile func(filename string) ([]byte, error)
}

// Candidate is a conversion of a loop in one file.
type Candidate struct {
	Expr     chain.Rendered      // expression replacing the loop
	Pos      token.Pos           // position the expression is evaluated at
	Want     types.Type          // type of Expr, nil for statements
	Exact    bool                // Expr must have type Want, not only be assignable
	Edits    []analysis.TextEdit // all edits of the conversion
	Chain    int                 // index of the edit containing Expr
	Offset   int                 // offset of Expr in the text of that edit
	Imports  bool                // the edits add an import
	Declares bool                // the edits change declarations
}

// Verifier checks candidates of one package.
type Verifier struct {
	pkg     Package
	seqPath string
	strict  bool

	load    sync.Once
	fset    *token.FileSet
	files   []*ast.File
	names   []string
	loadErr error
}

// New creates a [Verifier] for a package. The runtime package is expected at seqPath.
// With strict set, every candidate gets the decisive check.
func New(pkg Package, seqPath string, strict bool) *Verifier {
	return &Verifier{pkg: pkg, seqPath: seqPath, strict: strict}
}

// Verify checks a candidate. It returns an error wrapping [ErrNotPreserved] when
// the conversion must not be offered.
func (v *Verifier) Verify(ctx context.Context, o *oracle.Oracle, c *Candidate) error {
	defer trace.StartRegion(ctx, "Verify").End()

	if !c.Imports {
		if err := v.quick(o, c); err != nil {
			return err
		}

		if !c.Declares && !v.strict {
			return nil
		}
	}

	return v.decisive(o, c)
}

// quick evaluates the expression in the scope of the loop.
func (v *Verifier) quick(o *oracle.Oracle, c *Candidate) error {
	fset := token.NewFileSet()

	expr, err := parser.ParseExprFrom(fset, "", c.Expr.Text, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return fmt.Errorf("parse chain: %v: %w", err, ErrNotPreserved)
	}

	info := newInfo()

	if err := types.CheckExpr(fset, o.Pkg, c.Pos, expr, info); err != nil {
		return fmt.Errorf("check chain: %v: %w", err, ErrNotPreserved)
	}

	if got := info.Types[expr].Type; !fits(got, c.Want, c.Exact) {
		return fmt.Errorf("chain has type %v, want %v: %w", got, c.Want, ErrNotPreserved)
	}

	base := expr.Pos()
	end := base + token.Pos(len(c.Expr.Text))

	cmp := comparison{
		orig: o.Info,
		info: info,
		same: func(orig, obj types.Object) bool {
			if replaced(c, orig) {
				return base <= obj.Pos() && obj.Pos() < end && obj.Name() == orig.Name()
			}

			return origin(orig) == origin(obj)
		},
	}

	return cmp.copies(expr, base, c.Expr.Copies)
}

// replaced reports whether obj is declared in code replaced or deleted by the conversion.
func replaced(c *Candidate, obj types.Object) bool {
	pos := obj.Pos()

	for _, e := range c.Edits {
		if e.Pos <= pos && pos < e.End {
			return true
		}
	}

	return false
}

// fits reports whether an expression of type got can be used where want is expected.
func fits(got, want types.Type, exact bool) bool {
	switch {
	case want == nil:
		return true

	case got == nil:
		return false

	case exact:
		return types.Identical(got, want)
	}

	gt, gok := got.(*types.Tuple)
	wt, wok := want.(*types.Tuple)

	switch {
	case gok && wok:
		if gt.Len() != wt.Len() {
			return false
		}

		for i := range gt.Len() {
			if !types.AssignableTo(gt.At(i).Type(), wt.At(i).Type()) {
				return false
			}
		}

		return true

	case gok || wok:
		return false

	default:
		return types.AssignableTo(got, want)
	}
}

func newInfo() *types.Info {
	return &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}
}
