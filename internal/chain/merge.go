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

package chain

import (
	"go/ast"
	"go/token"
	"slices"
)

type pair struct{ prev, next Kind }

type mergeFunc func(prev, next Transformation) (Transformation, bool)

// merges is the dispatch table of merge rules, keyed by adjacent kinds.
var merges = map[pair]mergeFunc{
	{Filter, Filter}:  junction(token.LAND),
	{Reject, Reject}:  junction(token.LOR),
	{Filter, First}:   predicate(Find),
	{Filter, FirstOr}: predicate(FindOr),
	{Filter, LastOr}:  predicate(FindLastOr),
	{Filter, Any}:     predicate(AnyFunc),
	{Filter, None}:    predicate(NoneFunc),
	{Filter, Count}:   predicate(CountFunc),
}

// Merge collapses adjacent transformations into single equivalent calls.
//
// The list is scanned from the left; after every merge the scan restarts. The
// rules are pairwise-local and never undo each other, so the result does not
// depend on the scan order.
func Merge(ts []Transformation) []Transformation {
	ts = slices.Clone(ts)

	for {
		i, merged, ok := mergeFirst(ts)
		if !ok {
			return ts
		}

		ts = slices.Replace(ts, i, i+2, merged)
	}
}

func mergeFirst(ts []Transformation) (int, Transformation, bool) {
	for i := range len(ts) - 1 {
		rule, ok := merges[pair{ts[i].Kind, ts[i+1].Kind}]
		if !ok {
			continue
		}

		if merged, ok := rule(ts[i], ts[i+1]); ok {
			return i, merged, true
		}
	}

	return 0, Transformation{}, false
}

// predicate moves the filter predicate into the following result.
func predicate(kind Kind) mergeFunc {
	return func(prev, next Transformation) (Transformation, bool) {
		if prev.Fn == nil || next.Fn != nil {
			return Transformation{}, false
		}

		return Transformation{Kind: kind, Fn: prev.Fn, Arg: next.Arg}, true
	}
}

// junction combines two predicates with op.
func junction(op token.Token) mergeFunc {
	return func(prev, next Transformation) (Transformation, bool) {
		a, b := prev.Fn, next.Fn
		if a == nil || b == nil || a.Elem != b.Elem || a.Type != b.Type || a.Stmt || b.Stmt {
			return Transformation{}, false
		}

		sep := Text(" " + op.String() + " ")
		body := Concat(operand(a.Body, op), sep, operand(b.Body, op))

		fn := *a
		fn.Body = body

		return Transformation{Kind: prev.Kind, Fn: &fn}, true
	}
}

// operand parenthesizes c when it binds weaker than op.
func operand(c Code, op token.Token) Code {
	if e, ok := c.Node().(*ast.BinaryExpr); ok && e.Op.Precedence() < op.Precedence() {
		return Concat(Text("("), c, Text(")"))
	}

	return c
}
