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
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopchain/internal/chain"
	"fillmore-labs.com/loopchain/internal/oracle"
)

// ErrInvariant is returned when a matcher violates its contract.
var ErrInvariant = errors.New("matcher invariant violated")

// Match checks whether the range loop at c can be expressed as a chain.
// It returns nil without an error when the loop is not convertible.
func Match(o *oracle.Oracle, c inspector.Cursor) (*Result, error) {
	loop, ok := ExtractLoop(o, c)
	if !ok {
		return nil, nil
	}

	return newEnv(o, loop).run()
}

func (e *env) run() (*Result, error) {
	o, loop := e.o, e.loop
	s := e.initial()

	inputUsed := o.Used(loop.Input, loop.Body) || o.Used(loop.Index, loop.Body)

	for {
		s = e.refresh(s)

		if r, ok := e.matchResult(s); ok {
			if !inputUsed && slices.ContainsFunc(r.Calls, chain.Transformation.RequiresInput) {
				return nil, nil
			}

			return r, nil
		}

		next, name, ok := e.matchSequence(s)
		if !ok {
			return nil, nil
		}

		if next.extent() >= s.extent() {
			return nil, fmt.Errorf("%s at %s: residual statements did not shrink: %w",
				name, o.Fset.Position(loop.Stmt.Pos()), ErrInvariant)
		}

		s = next
	}
}

type env struct {
	o        *oracle.Oracle
	loop     *Loop
	inits    map[*types.Var]*Initialization
	mutated  map[*types.Var]struct{}
	sequence []sequenceMatcher
}

func newEnv(o *oracle.Oracle, loop *Loop) *env {
	return &env{
		o:        o,
		loop:     loop,
		inits:    initializations(o, loop.Cursor),
		mutated:  o.Mutated(loop.Body),
		sequence: sequenceMatchers[:],
	}
}

func (e *env) initial() State {
	return State{
		anchor:   e.loop.Cursor,
		residual: children(e.loop.Body),
		input:    e.loop.Input,
		elem:     e.loop.Elem,
		index:    e.loop.Index,
	}
}

// refresh unwraps nested blocks and retires a dead index variable.
func (e *env) refresh(s State) State {
	for len(s.residual) == 1 {
		if _, ok := s.residual[0].Node().(*ast.BlockStmt); !ok {
			break
		}

		s = s.withResidual(children(s.residual[0]))
	}

	if s.index != nil && !e.o.Used(s.index, s.residual...) {
		s = s.withIndex(nil)
	}

	return s
}

func (e *env) matchResult(s State) (*Result, bool) {
	for _, m := range resultMatchers {
		if s.index != nil && !m.indexAllowed {
			continue
		}

		if r, ok := m.match(e, s); ok {
			return r, true
		}
	}

	return nil, false
}

func (e *env) matchSequence(s State) (State, string, bool) {
	jumps := embeddedJumps(s.anchor, s.residual)

	for _, m := range e.sequence {
		if s.index != nil && !m.indexAllowed {
			continue
		}

		next, ok := m.match(e, s)
		if !ok {
			continue
		}

		if m.affectsIndex && s.index != nil && e.o.Used(s.index, next.residual...) {
			continue
		}

		if !m.jumpSafe && embeddedJumps(next.anchor, next.residual) != jumps {
			continue
		}

		return next, m.name, true
	}

	return s, "", false
}

// lambda builds a function literal over the current element for the expression x.
func (e *env) lambda(s State, x ast.Expr, result string, body chain.Code) (*chain.Lambda, bool) {
	if e.captures(s, x) {
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

	fn := &chain.Lambda{Elem: elem, Type: typ, Result: result, Body: body}

	if s.index != nil && e.refers(x, s.index) {
		fn.Index = s.index.Name()
	}

	return fn, true
}

// captures reports whether x reads a variable that is written in the loop,
// other than the current element and index.
func (e *env) captures(s State, x ast.Node) bool {
	found := false

	ast.Inspect(x, func(n ast.Node) bool {
		id, ok := n.(*ast.Ident)
		if !ok {
			return !found
		}

		v, ok := e.o.Info.Uses[id].(*types.Var)
		if !ok || v == s.input || v == s.index {
			return true
		}

		if _, ok := e.mutated[v]; ok {
			found = true
		}

		return !found
	})

	return found
}

// refers reports whether the subtree x references v.
func (e *env) refers(x ast.Node, v *types.Var) bool {
	found := false

	ast.Inspect(x, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && e.o.Info.Uses[id] == v {
			found = true
		}

		return !found
	})

	return found
}

// typeString renders t as spelled at the loop.
func (e *env) typeString(t types.Type) (string, bool) {
	if t == nil {
		return "", false
	}

	return e.o.TypeString(t, e.loop.Stmt.Pos())
}
