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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// targets reports whether the unlabeled break or continue at c leaves or restarts the loop anchor.
func targets(c, anchor inspector.Cursor) bool {
	br := c.Node().(*ast.BranchStmt)
	if br.Label != nil {
		return false
	}

	for p := c.Parent(); p.Node() != nil; p = p.Parent() {
		if p == anchor {
			return true
		}

		switch p.Node().(type) {
		case *ast.ForStmt, *ast.RangeStmt, *ast.FuncLit:
			return false

		case *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
			if br.Tok == token.BREAK {
				return false
			}
		}
	}

	return false
}

// loopJumps yields the break and continue statements targeting anchor in the given statements.
func loopJumps(anchor inspector.Cursor, stmts []inspector.Cursor) []inspector.Cursor {
	var jumps []inspector.Cursor

	for _, s := range stmts {
		for c := range s.Preorder((*ast.BranchStmt)(nil)) {
			if tok := c.Node().(*ast.BranchStmt).Tok; tok != token.BREAK && tok != token.CONTINUE {
				continue
			}

			if targets(c, anchor) {
				jumps = append(jumps, c)
			}
		}
	}

	return jumps
}

// embeddedJumps counts the jumps targeting anchor that are not a top-level
// statement or the sole body of a top-level if statement.
func embeddedJumps(anchor inspector.Cursor, stmts []inspector.Cursor) int {
	top := make(map[inspector.Cursor]bool, len(stmts))
	for _, s := range stmts {
		top[s] = true
	}

	n := 0

	for _, j := range loopJumps(anchor, stmts) {
		if top[j] || guard(j, top) {
			continue
		}

		n++
	}

	return n
}

// guard reports whether the jump is the only statement of a top-level if statement without else.
func guard(j inspector.Cursor, top map[inspector.Cursor]bool) bool {
	block := j.Parent()
	if kind, _ := block.ParentEdge(); kind != edge.IfStmt_Body {
		return false
	}

	if len(block.Node().(*ast.BlockStmt).List) != 1 {
		return false
	}

	ifc := block.Parent()

	return top[ifc] && ifc.Node().(*ast.IfStmt).Else == nil
}

// jumpFree reports whether control always continues after the statement:
// there is no return, goto, labeled jump or jump targeting anchor outside of
// function literals.
func jumpFree(c, anchor inspector.Cursor) bool {
	free := true

	// Inspect continues with the siblings of a pruned node, so free is only ever cleared.
	c.Inspect([]ast.Node{(*ast.FuncLit)(nil), (*ast.ReturnStmt)(nil), (*ast.BranchStmt)(nil)}, func(c inspector.Cursor) bool {
		if !free {
			return false
		}

		switch n := c.Node().(type) {
		case *ast.FuncLit:
			return false

		case *ast.ReturnStmt:
			free = false

		case *ast.BranchStmt:
			switch {
			case n.Tok == token.GOTO, n.Label != nil:
				free = false

			case n.Tok == token.BREAK, n.Tok == token.CONTINUE:
				if targets(c, anchor) {
					free = false
				}
			}
		}

		return free
	})

	return free
}

// hoistable reports whether a statement can be moved into a function literal.
func hoistable(c, anchor inspector.Cursor) bool {
	if !jumpFree(c, anchor) {
		return false
	}

	ok := true

	c.Inspect([]ast.Node{(*ast.FuncLit)(nil), (*ast.DeferStmt)(nil), (*ast.LabeledStmt)(nil)}, func(c inspector.Cursor) bool {
		switch c.Node().(type) {
		case *ast.FuncLit:
			return false

		default:
			ok = false
		}

		return ok
	})

	return ok
}
