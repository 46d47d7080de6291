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
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"slices"

	"fillmore-labs.com/loopchain/internal/fix"
	"fillmore-labs.com/loopchain/internal/oracle"
)

const parseMode = parser.ParseComments | parser.SkipObjectResolution

// decisive applies the edits to a copy of the file and type checks the package again.
func (v *Verifier) decisive(o *oracle.Oracle, c *Candidate) error {
	if err := v.parseAll(); err != nil {
		return err
	}

	if c.Chain < 0 || c.Chain >= len(c.Edits) {
		return fmt.Errorf("chain edit %d of %d: %w", c.Chain, len(c.Edits), ErrNotPreserved)
	}

	name := o.Filename()

	idx := slices.Index(v.names, name)
	if idx < 0 {
		return fmt.Errorf("file %s not in package: %w", name, ErrNotPreserved)
	}

	edits, err := fix.Offsets(o.Fset.File(o.File.FileStart), c.Edits)
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrNotPreserved)
	}

	applied, err := fix.Apply(o.Source(), edits)
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrNotPreserved)
	}

	start, ok := applied.Moved(edits[c.Chain])
	if !ok {
		return fmt.Errorf("chain edit not applied: %w", ErrNotPreserved)
	}

	f, err := parser.ParseFile(v.fset, name, applied.Src, parseMode)
	if err != nil {
		return fmt.Errorf("parse converted file: %v: %w", err, ErrNotPreserved)
	}

	files := slices.Clone(v.files)
	files[idx] = f

	info := newInfo()

	conf := types.Config{
		Importer:  v.importer(),
		GoVersion: v.pkg.Types.GoVersion(),
		Sizes:     v.pkg.Sizes,
	}

	if _, err := conf.Check(v.pkg.Types.Path(), v.fset, files, info); err != nil {
		return fmt.Errorf("check converted package: %v: %w", err, ErrNotPreserved)
	}

	tf := v.fset.File(f.FileStart)
	base := tf.Pos(start + c.Offset)
	end := base + token.Pos(len(c.Expr.Text))

	if c.Want != nil {
		expr := outermost(f, base, end)
		if expr == nil {
			return fmt.Errorf("chain expression not found: %w", ErrNotPreserved)
		}

		if got := info.Types[expr].Type; !fits(got, c.Want, c.Exact) {
			return fmt.Errorf("chain has type %v, want %v: %w", got, c.Want, ErrNotPreserved)
		}
	}

	cmp := comparison{
		orig: o.Info,
		info: info,
		same: func(orig, obj types.Object) bool {
			orig, obj = origin(orig), origin(obj)

			if orig.Name() != obj.Name() {
				return false
			}

			if orig.Pkg() != v.pkg.Types {
				return orig == obj
			}

			if replaced(c, orig) {
				return base <= obj.Pos() && obj.Pos() < end
			}

			return v.samePosition(o, applied, orig.Pos(), obj.Pos())
		},
	}

	return cmp.copies(f, base, c.Expr.Copies)
}

// samePosition reports whether pos in the converted package is where orig moved to.
func (v *Verifier) samePosition(o *oracle.Oracle, applied *fix.Applied, orig, pos token.Pos) bool {
	if !orig.IsValid() || !pos.IsValid() {
		return orig.IsValid() == pos.IsValid()
	}

	op := v.pkg.Fset.PositionFor(orig, false)
	np := v.fset.PositionFor(pos, false)

	if op.Filename != np.Filename {
		return false
	}

	offset := op.Offset
	if op.Filename == o.Filename() {
		var ok bool
		if offset, ok = applied.Map(offset); !ok {
			return false
		}
	}

	return offset == np.Offset
}

// parseAll parses every file of the package once into the verifiers file set.
func (v *Verifier) parseAll() error {
	v.load.Do(func() {
		v.fset = token.NewFileSet()

		for _, f := range v.pkg.Files {
			name := v.pkg.Fset.File(f.FileStart).Name()

			src, err := v.pkg.ReadFile(name)
			if err != nil {
				v.loadErr = fmt.Errorf("read %s: %w", name, err)

				return
			}

			nf, err := parser.ParseFile(v.fset, name, src, parseMode)
			if err != nil {
				v.loadErr = fmt.Errorf("parse %s: %w", name, err)

				return
			}

			v.files = append(v.files, nf)
			v.names = append(v.names, name)
		}
	})

	return v.loadErr
}

// outermost returns the largest expression spanning [pos, end).
func outermost(root ast.Node, pos, end token.Pos) ast.Expr {
	var found ast.Expr

	ast.Inspect(root, func(n ast.Node) bool {
		if found != nil || n == nil || n.End() < pos || end < n.Pos() {
			return false
		}

		if e, ok := n.(ast.Expr); ok && n.Pos() == pos && n.End() == end {
			found = e

			return false
		}

		return true
	})

	return found
}
