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

// Package oracle answers type and reference questions about a single type checked file.
package oracle

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"go/version"
)

// ErrSourceMismatch is returned when the file content does not match the parsed file.
var ErrSourceMismatch = errors.New("source does not match parsed file")

// MinVersion is the minimum language version of files with range-over-func support.
const MinVersion = "go1.23"

// Oracle provides type information, source text and reference search for one file.
type Oracle struct {
	Fset *token.FileSet
	Info *types.Info
	Pkg  *types.Package
	File *ast.File

	handle *token.File
	src    []byte
}

// New creates an [Oracle] for file, with src being the file content.
func New(fset *token.FileSet, info *types.Info, pkg *types.Package, file *ast.File, src []byte) (*Oracle, error) {
	handle := fset.File(file.FileStart)
	if handle == nil {
		return nil, fmt.Errorf("file %s: %w", file.Name.Name, ErrSourceMismatch)
	}

	if handle.Size() != len(src) {
		return nil, fmt.Errorf("%s: size %d != %d: %w", handle.Name(), handle.Size(), len(src), ErrSourceMismatch)
	}

	return &Oracle{Fset: fset, Info: info, Pkg: pkg, File: file, handle: handle, src: src}, nil
}

// Source returns the content of the file.
func (o *Oracle) Source() []byte { return o.src }

// Filename returns the name of the file.
func (o *Oracle) Filename() string { return o.handle.Name() }

// Offset returns the byte offset of pos in the file.
func (o *Oracle) Offset(pos token.Pos) int { return o.handle.Offset(pos) }

// Pos returns the position of a byte offset in the file.
func (o *Oracle) Pos(offset int) token.Pos { return o.handle.Pos(offset) }

// Text returns the source text of a node.
func (o *Oracle) Text(n ast.Node) string {
	return string(o.src[o.Offset(n.Pos()):o.Offset(n.End())])
}

// Line returns the line number of pos.
func (o *Oracle) Line(pos token.Pos) int {
	return o.handle.PositionFor(pos, false).Line
}

// Indent returns the leading white space of the line containing pos.
func (o *Oracle) Indent(pos token.Pos) string {
	start := o.handle.Offset(o.handle.LineStart(o.Line(pos)))

	end := start
	for end < len(o.src) && (o.src[end] == ' ' || o.src[end] == '\t') {
		end++
	}

	return string(o.src[start:end])
}

// GoVersion returns the language version of the file.
func (o *Oracle) GoVersion() string {
	if v, ok := o.Info.FileVersions[o.File]; ok && v != "" {
		return v
	}

	return o.Pkg.GoVersion()
}

// RangeOverFunc reports whether the file supports range-over-func and the iter package.
func (o *Oracle) RangeOverFunc() bool {
	v := o.GoVersion()

	return version.IsValid(v) && version.Compare(v, MinVersion) >= 0
}

// TypeOf returns the type of an expression, or nil.
func (o *Oracle) TypeOf(e ast.Expr) types.Type {
	return o.Info.TypeOf(e)
}

// IsSubtype reports whether a value of type t can be used where u is expected.
func (o *Oracle) IsSubtype(t, u types.Type) bool {
	return types.AssignableTo(t, u)
}

// IsCompileTimeConstant reports whether e is a constant expression.
func (o *Oracle) IsCompileTimeConstant(e ast.Expr) bool {
	tv, ok := o.Info.Types[e]

	return ok && tv.Value != nil
}

// IsNil reports whether e is the predeclared nil.
func (o *Oracle) IsNil(e ast.Expr) bool {
	tv, ok := o.Info.Types[e]

	return ok && tv.IsNil()
}

// Var returns the local variable an expression refers to, or nil.
func (o *Oracle) Var(e ast.Expr) *types.Var {
	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok {
		return nil
	}

	v, ok := o.Info.ObjectOf(id).(*types.Var)
	if !ok || v.IsField() || v.Pkg() == nil || v.Parent() == v.Pkg().Scope() {
		return nil
	}

	return v
}

// Scope returns the innermost scope containing pos.
func (o *Oracle) Scope(pos token.Pos) *types.Scope {
	fileScope, ok := o.Info.Scopes[o.File]
	if !ok {
		return nil
	}

	return fileScope.Innermost(pos)
}

// LookupAt returns the object name denotes at pos, or nil.
func (o *Oracle) LookupAt(name string, pos token.Pos) types.Object {
	scope := o.Scope(pos)
	if scope == nil {
		return nil
	}

	_, obj := scope.LookupParent(name, pos)

	return obj
}
