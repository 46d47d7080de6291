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

package fix

import (
	"go/ast"
	"go/token"
	"slices"
	"strings"

	"fillmore-labs.com/loopchain/internal/chain"
	"fillmore-labs.com/loopchain/internal/oracle"
)

// Capture returns the comment groups inside [pos, end) that are not part of one of the kept nodes.
func Capture(f *ast.File, pos, end token.Pos, keep []ast.Node) []*ast.CommentGroup {
	// find the first comment starting inside the range
	i, _ := slices.BinarySearchFunc(f.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })

	var groups []*ast.CommentGroup

	for _, g := range f.Comments[i:] {
		if g.End() > end {
			break
		}

		if !slices.ContainsFunc(keep, func(n ast.Node) bool { return n.Pos() <= g.Pos() && g.End() <= n.End() }) {
			groups = append(groups, g)
		}
	}

	return groups
}

// Restore renders comment groups as lines to put in front of a statement at indent.
// Every line, including the last one, ends with a line break followed by indent.
func Restore(o *oracle.Oracle, groups []*ast.CommentGroup, indent string) string {
	var b strings.Builder

	for _, g := range groups {
		text := chain.Reindent(o.Text(g), o.Indent(g.Pos()), indent)

		b.WriteString(text)   // ignore error
		b.WriteByte('\n')     // ignore error
		b.WriteString(indent) // ignore error
	}

	return b.String()
}
