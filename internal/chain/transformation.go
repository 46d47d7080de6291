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

import "strings"

// Lambda is a function literal argument of a transformation.
type Lambda struct {
	Index  string // name of the index parameter, empty when the lambda is not indexed
	Elem   string // name of the element parameter
	Type   string // element type
	Result string // result type, empty for statement bodies
	Body   Code
	Stmt   bool // Body is a statement instead of a returned expression
}

// Transformation is one call of a chain.
type Transformation struct {
	Kind Kind
	Fn   *Lambda // function argument, for kinds with a lambda
	Arg  *Code   // default value, or destination of [AppendTo]
}

// Sequence reports whether t is a non-terminal stage.
func (t Transformation) Sequence() bool { return t.Kind.Sequence() }

// Result reports whether t terminates a chain.
func (t Transformation) Result() bool { return t.Kind.Result() }

// RequiresInput reports whether t only makes sense when the loop reads its elements.
func (t Transformation) RequiresInput() bool { return t.Fn != nil }

// Presentation describes the transformations the way they are offered, like "Filter{}.Map{}.Collect()".
func Presentation(ts []Transformation) string {
	var b strings.Builder

	for i, t := range ts {
		if i > 0 {
			b.WriteByte('.')
		}

		b.WriteString(t.Kind.String())

		if t.Kind.HasLambda() {
			b.WriteString("{}")
		} else {
			b.WriteString("()")
		}
	}

	return b.String()
}
