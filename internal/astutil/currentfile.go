// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/loopchain/internal/oracle"
)

const loopchain = "loopchain"

// CurrentFile is the file a range loop is matched in. It supplies the
// source for rendering chains and the //nolint suppressions.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile looks up the handle of file in fset. The result is invalid
// when file is nil or not part of fset.
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid reports whether loops in this file can be matched.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated reports whether the file carries a "Code generated" header.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Oracle reads the file through the pass and builds the [oracle.Oracle]
// that the matchers query for types, uses and source text.
func (c CurrentFile) Oracle(p *analysis.Pass) (*oracle.Oracle, error) {
	src, err := p.ReadFile(c.handle.Name())
	if err != nil {
		return nil, err
	}

	return oracle.New(p.Fset, p.TypesInfo, p.Pkg, c.file, src)
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLintComment reports whether the range statement at pos is suppressed by a
// //nolint:loopchain comment on its first line.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// first comment after the for keyword
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i].List[0]

	if c.line(comment.Pos()) != c.line(pos) {
		return false // comment belongs to a later line
	}

	return CommentHasNoLint(comment)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint reports whether comment disables loopchain, either by name
// or through nolint:all.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == loopchain || l == "all" {
			return true
		}
	}

	return false
}
