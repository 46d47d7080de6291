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
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopchain/internal/chain"
)

// State is an immutable snapshot of what remains to be explained: the residual
// statements, the current input and index variables and the sequence stages matched so far.
type State struct {
	anchor   inspector.Cursor   // loop whose iteration the residual statements run in
	residual []inspector.Cursor // statements not yet explained
	input    *types.Var         // element variable, nil when unused
	elem     types.Type         // element type
	index    *types.Var         // index variable, nil when dead
	stages   []chain.Transformation
	deletes  []inspector.Cursor // statements removed on commit
}

// Residual returns the statements not yet explained.
func (s State) Residual() []inspector.Cursor { return s.residual }

// Input returns the current element variable.
func (s State) Input() *types.Var { return s.input }

// Index returns the current index variable.
func (s State) Index() *types.Var { return s.index }

// Stages returns the sequence transformations matched so far.
func (s State) Stages() []chain.Transformation { return s.stages }

func (s State) withResidual(residual []inspector.Cursor) State {
	s.residual = residual

	return s
}

func (s State) withStage(t chain.Transformation) State {
	s.stages = append(slices.Clip(s.stages), t)

	return s
}

func (s State) withInput(v *types.Var, elem types.Type) State {
	s.input, s.elem = v, elem

	return s
}

func (s State) withIndex(v *types.Var) State {
	s.index = v

	return s
}

func (s State) withAnchor(anchor inspector.Cursor) State {
	s.anchor = anchor

	return s
}

func (s State) withDelete(c inspector.Cursor) State {
	s.deletes = append(slices.Clip(s.deletes), c)

	return s
}

// extent is the accumulated source size of the residual statements.
func (s State) extent() token.Pos {
	var n token.Pos
	for _, c := range s.residual {
		n += c.Node().End() - c.Node().Pos()
	}

	return n
}

// without returns the statements with the k-th removed.
func without(stmts []inspector.Cursor, k int) []inspector.Cursor {
	return slices.Delete(slices.Clone(stmts), k, k+1)
}

// children returns the statements of a block.
func children(block inspector.Cursor) []inspector.Cursor {
	return slices.Collect(block.Children())
}
