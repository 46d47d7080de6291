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
	"go/token"
	"go/types"
	"reflect"

	"fillmore-labs.com/loopchain/internal/chain"
)

// comparison matches copied nodes with their originals.
type comparison struct {
	orig, info *types.Info
	same       func(orig, obj types.Object) bool
}

// copies compares every copy in the rendered code starting at base with its original.
func (c *comparison) copies(root ast.Node, base token.Pos, copies []chain.Placed) error {
	for _, cp := range copies {
		pos := base + token.Pos(cp.Offset)

		n := locate(root, pos, pos+token.Pos(cp.Len), cp.Node)
		if n == nil {
			return fmt.Errorf("copy of %T not found: %w", cp.Node, ErrNotPreserved)
		}

		if err := c.node(cp.Node, n); err != nil {
			return err
		}
	}

	return nil
}

// node compares two trees of the same source text.
func (c *comparison) node(orig, repl ast.Node) error {
	a, b := flatten(orig), flatten(repl)
	if len(a) != len(b) {
		return fmt.Errorf("copy of %T has a different structure: %w", orig, ErrNotPreserved)
	}

	for i, n := range a {
		m := b[i]
		if reflect.TypeOf(n) != reflect.TypeOf(m) {
			return fmt.Errorf("%T copied as %T: %w", n, m, ErrNotPreserved)
		}

		if id, ok := n.(*ast.Ident); ok {
			if err := c.ident(id, m.(*ast.Ident)); err != nil {
				return err
			}
		}

		e, ok := n.(ast.Expr)
		if !ok {
			continue
		}

		tv, ok := c.orig.Types[e]
		if !ok || tv.Type == nil {
			continue
		}

		nv, ok := c.info.Types[m.(ast.Expr)]
		if !ok || !sameType(tv.Type, nv.Type) {
			return fmt.Errorf("expression %s changed type from %v to %v: %w", types.ExprString(e), tv.Type, nv.Type, ErrNotPreserved)
		}
	}

	return nil
}

func (c *comparison) ident(orig, repl *ast.Ident) error {
	o, n := c.orig.ObjectOf(orig), c.info.ObjectOf(repl)

	switch {
	case o == nil && n == nil:
		return nil

	case o == nil || n == nil || !c.same(o, n):
		return fmt.Errorf("identifier %s refers to a different object: %w", orig.Name, ErrNotPreserved)

	case !sameType(o.Type(), n.Type()):
		return fmt.Errorf("identifier %s changed type from %v to %v: %w", orig.Name, o.Type(), n.Type(), ErrNotPreserved)

	default:
		return nil
	}
}

// origin returns the generic object of an instantiated function or field.
func origin(obj types.Object) types.Object {
	switch obj := obj.(type) {
	case *types.Func:
		return obj.Origin()

	case *types.Var:
		return obj.Origin()

	default:
		return obj
	}
}

// sameType compares types by their package path qualified spelling, so types of different type checks compare equal.
func sameType(a, b types.Type) bool {
	if a == nil || b == nil {
		return a == b
	}

	if types.Identical(a, b) {
		return true
	}

	qualifier := (*types.Package).Path

	return types.TypeString(types.Default(a), qualifier) == types.TypeString(types.Default(b), qualifier)
}

// locate finds the node of the same kind as like spanning [pos, end).
func locate(root ast.Node, pos, end token.Pos, like ast.Node) ast.Node {
	var found ast.Node

	want := reflect.TypeOf(like)

	ast.Inspect(root, func(n ast.Node) bool {
		if found != nil || n == nil || n.End() < pos || end < n.Pos() {
			return false
		}

		if n.Pos() == pos && n.End() == end && reflect.TypeOf(n) == want {
			found = n

			return false
		}

		return true
	})

	return found
}

// flatten lists the nodes of a tree in preorder, without comments.
func flatten(root ast.Node) []ast.Node {
	var nodes []ast.Node

	ast.Inspect(root, func(n ast.Node) bool {
		switch n.(type) {
		case nil, *ast.CommentGroup, *ast.Comment:
			return false
		}

		nodes = append(nodes, n)

		return true
	})

	return nodes
}
