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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopchain/internal/astutil"
	"fillmore-labs.com/loopchain/internal/config"
	"fillmore-labs.com/loopchain/internal/convert"
	"fillmore-labs.com/loopchain/internal/report"
	"fillmore-labs.com/loopchain/internal/verify"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the loopchain analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("loopchain: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "LoopChain")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Shared by all files, the package is parsed again at most once
	v := verify.New(verify.Package{
		Fset:     p.Fset,
		Files:    p.Files,
		Types:    p.Pkg,
		Sizes:    p.TypesSizes,
		ReadFile: p.ReadFile,
	}, r.SeqPath, r.Verify.Strict())

	opts := convert.Options{
		SeqPath:   r.SeqPath,
		AddImport: r.Behavior.Enabled(config.AddImport),
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(ctx, p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		o, err := currentFile.Oracle(p)
		if err != nil {
			astutil.InternalError(ctx, p, file, "Can't read source: %v", err)

			continue
		}

		cv := convert.New(o, v, opts)

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if fun.Body == nil {
				continue
			}

			// Skip functions with nolint comment
			if fun.Doc != nil && astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1]) {
				continue
			}

			body := c.ChildAt(edge.FuncDecl_Body, -1)

			conversions := cv.ConvertLoops(ctx, body, func(n ast.Node, err error) {
				astutil.InternalError(ctx, p, n, "Can't convert loop: %v", err)
			})

			report.Conversions(ctx, p, currentFile, conversions)
		}
	}

	return nil, nil
}
