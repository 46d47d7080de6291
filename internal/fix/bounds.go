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

	"fillmore-labs.com/loopchain/internal/oracle"
)

// StatementBounds returns the start and end positions of a statement, including comments.
//
// For var declarations, this includes doc comments before the declaration and line comments after it.
func StatementBounds(stmt ast.Node) (pos, end token.Pos) {
	pos, end = stmt.Pos(), stmt.End()

	if declStmt, ok := stmt.(*ast.DeclStmt); ok {
		if g, ok := declStmt.Decl.(*ast.GenDecl); ok {
			// Include doc comments that appear before the var keyword
			if doc := g.Doc; doc != nil && doc.Pos() < pos {
				pos = doc.Pos()
			}

			// Include line comments that appear after the declaration
			if vspec, ok := g.Specs[len(g.Specs)-1].(*ast.ValueSpec); ok {
				if comment := vspec.Comment; comment != nil && end < comment.End() {
					end = comment.End()
				}
			}
		}
	}

	return pos, end
}

// LineBounds extends the range [pos, end) to whole lines, including the line
// break, when nothing but white space shares the lines with it.
func LineBounds(o *oracle.Oracle, pos, end token.Pos) (token.Pos, token.Pos) {
	src := o.Source()
	start, stop := o.Offset(pos), o.Offset(end)

	before := start
	for before > 0 && isBlank(src[before-1]) {
		before--
	}

	if before > 0 && src[before-1] != '\n' {
		return pos, end
	}

	after := stop
	for after < len(src) && isBlank(src[after]) {
		after++
	}

	switch {
	case after == len(src):

	case src[after] == '\n':
		after++

	default:
		return pos, end
	}

	return o.Pos(before), o.Pos(after)
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' || b == '\r' }
