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

// Package playground converts the range loops of a source snippet.
//
// A snippet is either a complete file or a sequence of statements, which is
// wrapped in a function of package main. Statements can use the packages
// fmt, slices and strings without importing them.
package playground

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"runtime"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopchain/internal/convert"
	"fillmore-labs.com/loopchain/internal/fix"
	"fillmore-labs.com/loopchain/internal/oracle"
	"fillmore-labs.com/loopchain/internal/verify"
)

const (
	filename  = "playground.go"
	goVersion = "go1.24"
	wrapHead  = "package main\n\nimport (\n\t\"fmt\"\n\t\"slices\"\n\t\"strings\"\n)\n\n" +
		"var (\n\t_ = fmt.Sprint\n\t_ = slices.Collect[int]\n\t_ = strings.Cut\n)\n\nfunc _() {\n"
	wrapTail = "\n}\n"
)

// ErrSnippet is returned when a snippet does not parse or type check.
var ErrSnippet = errors.New("invalid snippet")

// Options configure [Convert].
type Options struct {
	SeqPath string // import path of the runtime package
	Strict  bool   // re-check the file for every conversion
}

// Result is the outcome of converting a snippet.
type Result struct {
	Messages []string // one per converted loop
	Source   []byte   // the formatted snippet with all conversions applied
}

// Convert replaces all convertible range loops of src.
func Convert(ctx context.Context, src string, opts Options) (*Result, error) {
	text, wrapped := src, !isFile(src)
	if wrapped {
		text = wrapHead + src + wrapTail
	}

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, text, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnippet, err)
	}

	info := &types.Info{
		Types:        make(map[ast.Expr]types.TypeAndValue),
		Defs:         make(map[*ast.Ident]types.Object),
		Uses:         make(map[*ast.Ident]types.Object),
		Implicits:    make(map[ast.Node]types.Object),
		Selections:   make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:       make(map[ast.Node]*types.Scope),
		FileVersions: make(map[*ast.File]string),
	}

	sizes := types.SizesFor("gc", runtime.GOARCH)
	conf := types.Config{
		Importer:  importer.ForCompiler(fset, "source", nil),
		GoVersion: goVersion,
		Sizes:     sizes,
	}

	pkg, err := conf.Check("main", fset, []*ast.File{f}, info)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnippet, err)
	}

	o, err := oracle.New(fset, info, pkg, f, []byte(text))
	if err != nil {
		return nil, err
	}

	v := verify.New(verify.Package{
		Fset:  fset,
		Files: []*ast.File{f},
		Types: pkg,
		Sizes: sizes,
		ReadFile: func(name string) ([]byte, error) {
			if name != filename {
				return nil, fs.ErrNotExist
			}

			return []byte(text), nil
		},
	}, opts.SeqPath, opts.Strict)

	cv := convert.New(o, v, convert.Options{SeqPath: opts.SeqPath, AddImport: true})

	var errs []error

	root := inspector.New([]*ast.File{f}).Root()
	conversions := cv.ConvertLoops(ctx, root, func(n ast.Node, err error) {
		errs = append(errs, fmt.Errorf("%s: %w", fset.Position(n.Pos()), err))
	})

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	result := &Result{Messages: make([]string, 0, len(conversions))}

	var edits []analysis.TextEdit
	for _, c := range conversions {
		result.Messages = append(result.Messages, fmt.Sprintf("%s: %s", fset.Position(c.Pos), c.Message))
		edits = append(edits, c.Edits...)
	}

	offsets, err := fix.Offsets(fset.File(f.FileStart), edits)
	if err != nil {
		return nil, err
	}

	applied, err := fix.Apply([]byte(text), offsets)
	if err != nil {
		return nil, err
	}

	out, err := format.Source(applied.Src)
	if err != nil {
		return nil, fmt.Errorf("formatting converted snippet: %w", err)
	}

	result.Source = out

	return result, nil
}

func isFile(src string) bool {
	for line := range strings.Lines(src) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		return strings.HasPrefix(line, "package ")
	}

	return false
}
