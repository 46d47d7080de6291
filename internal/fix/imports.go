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
	"go/types"
	"path"
	"strconv"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/loopchain/internal/oracle"
)

// Import returns the name under which the package with the import path pkgPath
// can be referred to at pos. When the file does not import it yet, the
// returned edit adds the import with a name that is not taken at pos.
func Import(o *oracle.Oracle, pkgPath string, pos token.Pos) (name string, edit *analysis.TextEdit, ok bool) {
	if name, found := o.ImportName(pkgPath); found {
		if name == "." {
			return "", nil, false
		}

		if _, isPkg := o.LookupAt(name, pos).(*types.PkgName); !isPkg {
			return "", nil, false // shadowed
		}

		return name, nil, true
	}

	base := path.Base(pkgPath)

	name, ok = uniqueName(o, base, pos)
	if !ok {
		return "", nil, false
	}

	spec := strconv.Quote(pkgPath)
	if name != base {
		spec = name + " " + spec
	}

	return name, importEdit(o.File, spec), true
}

// uniqueName generates a deterministic name not declared in scope at pos or any of its parents.
// Package level declarations of other files are visible at pos, so they are covered too.
func uniqueName(o *oracle.Oracle, base string, pos token.Pos) (string, bool) {
	scope := o.Scope(pos)
	if scope == nil {
		return "", false
	}

	if !checkParents(scope, base) && !checkChildren(o.Info.Scopes[o.File], base) {
		return base, true
	}

	const maxTries = 99

	for c := 1; c <= maxTries; c++ {
		name := base + "_" + strconv.Itoa(c)

		// Check if this name conflicts with any existing declaration in the scope hierarchy
		if checkParents(scope, name) || checkChildren(o.Info.Scopes[o.File], name) {
			continue
		}

		return name, true
	}

	return "", false
}

// checkParents checks if the name is already defined in the scope or any of its parent scopes.
func checkParents(scope *types.Scope, name string) bool {
	for parent := scope; parent != nil; parent = parent.Parent() {
		if parent.Lookup(name) != nil {
			return true
		}
	}

	return false
}

// checkChildren recursively checks if the name is defined in any of the child scopes.
//
// An import shadowed anywhere in the file would make later conversions in
// the shadowing scope choose a different name, so those names are avoided.
func checkChildren(scope *types.Scope, name string) bool {
	if scope == nil {
		return false
	}

	for child := range scope.Children() {
		if child.Lookup(name) != nil {
			return true
		}

		if checkChildren(child, name) {
			return true
		}
	}

	return false
}

// importEdit inserts an import spec into the file.
func importEdit(f *ast.File, spec string) *analysis.TextEdit {
	var last *ast.GenDecl

	for _, decl := range f.Decls {
		g, ok := decl.(*ast.GenDecl)
		if !ok || g.Tok != token.IMPORT {
			break
		}

		last = g
	}

	switch {
	case last == nil:
		return &analysis.TextEdit{Pos: f.Name.End(), End: f.Name.End(), NewText: []byte("\n\nimport " + spec)}

	case last.Lparen.IsValid() && len(last.Specs) > 0:
		s := last.Specs[len(last.Specs)-1].(*ast.ImportSpec)

		end := s.End()
		if s.Comment != nil {
			end = s.Comment.End()
		}

		return &analysis.TextEdit{Pos: end, End: end, NewText: []byte("\n\t" + spec)}

	case last.Lparen.IsValid():
		return &analysis.TextEdit{Pos: last.Lparen + 1, End: last.Lparen + 1, NewText: []byte("\n\t" + spec + "\n")}

	default:
		return &analysis.TextEdit{Pos: last.End(), End: last.End(), NewText: []byte("\nimport " + spec)}
	}
}
