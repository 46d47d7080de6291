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

package convert

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/loopchain/internal/match"
)

// commit is one way of writing the chain in place of the loop.
type commit struct {
	lhs      string     // text in front of the chain
	want     types.Type // required type of the chain, nil for statements
	exact    bool
	trailing ast.Node // statement after the loop that is replaced, too
}

// commits lists the forms of a result in the order they are tried.
func (cv *Converter) commits(r *match.Result) []commit {
	switch r.Commit {
	case match.InPlace:
		return []commit{{}}

	case match.Declare:
		name, typ := r.Var.Name(), r.Var.Type()
		define := commit{lhs: name + " := ", want: typ, exact: true}

		switch {
		case r.Init == nil:
			return nil

		case r.Init.Define:
			return []commit{define}

		case r.Init.Type != nil:
			spelled := "var " + name + " " + cv.o.Text(r.Init.Type) + " = "

			return []commit{define, {lhs: spelled, want: typ}}

		default:
			return []commit{{lhs: "var " + name + " = ", want: typ, exact: true}}
		}

	case match.Return:
		results := r.Loop.Sig.Results()

		var want types.Type = results
		if results.Len() == 1 {
			want = results.At(0).Type()
		}

		return []commit{{lhs: "return ", want: want, trailing: r.Trailing.Node()}}

	case match.Assign:
		return []commit{{lhs: r.Var.Name() + " = ", want: r.Var.Type()}}

	default:
		return nil
	}
}
