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
	"cmp"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/loopchain/internal/chain"
	"fillmore-labs.com/loopchain/internal/fix"
	"fillmore-labs.com/loopchain/internal/match"
	"fillmore-labs.com/loopchain/internal/oracle"
	"fillmore-labs.com/loopchain/internal/verify"
)

// Options configure a [Converter].
type Options struct {
	// SeqPath is the import path of the runtime package the chain calls.
	SeqPath string

	// AddImport permits adding an import of SeqPath to the file.
	AddImport bool
}

// Converter converts range loops of one file.
type Converter struct {
	o    *oracle.Oracle
	v    *verify.Verifier
	opts Options
}

// New creates a [Converter] for the file of o, verifying conversions with v.
func New(o *oracle.Oracle, v *verify.Verifier, opts Options) *Converter {
	return &Converter{o: o, v: v, opts: opts}
}

// Conversion is a verified replacement of a range loop.
type Conversion struct {
	Pos, End     token.Pos // the range statement
	Presentation string    // the chain, like "Filter{}.Map{}.Collect()"
	Message      string
	Edits        []analysis.TextEdit
}

// TryConvert checks whether the range statement at c can be replaced by a chain.
// It returns nil without an error when it can not.
func (cv *Converter) TryConvert(ctx context.Context, c inspector.Cursor) (*Conversion, error) {
	defer trace.StartRegion(ctx, "TryConvert").End()

	r, err := match.Match(cv.o, c)
	if err != nil || r == nil {
		return nil, err
	}

	loop := r.Loop.Stmt

	pkg, imp, ok := cv.runtime(loop.Pos())
	if !ok {
		trace.Log(ctx, "skip", "runtime package not available")

		return nil, nil
	}

	calls := chain.Merge(r.Calls)
	presentation := chain.Presentation(calls)

	expr := chain.Chain{
		Package:  pkg,
		Receiver: cv.receiver(r.Loop, pkg),
		Calls:    calls,
	}.Render(cv.o.Indent(loop.Pos())).Wrap(r.Prefix, r.Suffix)

	for _, cm := range cv.commits(r) {
		candidate := cv.candidate(r, cm, expr, imp)

		err := cv.v.Verify(ctx, cv.o, candidate)
		if errors.Is(err, verify.ErrNotPreserved) {
			trace.Logf(ctx, "verify", "%s: %v", presentation, err)

			continue
		}

		if err != nil {
			return nil, err
		}

		return &Conversion{
			Pos:          loop.Pos(),
			End:          loop.End(),
			Presentation: presentation,
			Message:      fmt.Sprintf("Range loop can be replaced by %s (lc:%s)", presentation, r.Commit),
			Edits:        candidate.Edits,
		}, nil
	}

	return nil, nil
}

// runtime returns the name of the runtime package at pos and the edit importing it, if needed.
func (cv *Converter) runtime(pos token.Pos) (string, *analysis.TextEdit, bool) {
	name, imp, ok := fix.Import(cv.o, cv.opts.SeqPath, pos)
	if !ok || imp != nil && !cv.opts.AddImport {
		return "", nil, false
	}

	return name, imp, true
}

// receiver renders the ranged collection as a sequence.
func (cv *Converter) receiver(l *match.Loop, pkg string) chain.Code {
	x := chain.Copy(cv.o, l.Stmt.X)

	switch l.Source {
	case match.SourceSlice:
		return chain.Concat(chain.Text(pkg+".Of("), x, chain.Text(")"))

	case match.SourceArray:
		return chain.Concat(chain.Text(pkg+".Of("), x, chain.Text("[:])"))

	default:
		return x
	}
}

// candidate builds the edits of a commit and describes them for verification.
func (cv *Converter) candidate(r *match.Result, cm commit, expr chain.Rendered, imp *analysis.TextEdit) *verify.Candidate {
	loop := r.Loop.Stmt
	indent := cv.o.Indent(loop.Pos())

	end := loop.End()
	if cm.trailing != nil {
		end = cm.trailing.End()
	}

	keep := make([]ast.Node, 0, len(expr.Copies))
	for _, cp := range expr.Copies {
		keep = append(keep, cp.Node)
	}

	comments := fix.Capture(cv.o.File, loop.Pos(), end, keep)

	var deletes []analysis.TextEdit

	for _, d := range r.Deletes {
		pos, end := fix.StatementBounds(d.Node())
		end = cv.lineComment(end)

		comments = append(comments, fix.Capture(cv.o.File, pos, end, nil)...)

		pos, end = fix.LineBounds(cv.o, pos, end)
		deletes = append(deletes, analysis.TextEdit{Pos: pos, End: end})
	}

	slices.SortFunc(comments, func(a, b *ast.CommentGroup) int { return cmp.Compare(a.Pos(), b.Pos()) })

	lead := fix.Restore(cv.o, comments, indent) + cm.lhs

	edits := make([]analysis.TextEdit, 0, 2+len(deletes))
	edits = append(edits, analysis.TextEdit{Pos: loop.Pos(), End: end, NewText: []byte(lead + expr.Text)})
	edits = append(edits, deletes...)

	if imp != nil {
		edits = append(edits, *imp)
	}

	return &verify.Candidate{
		Expr:     expr,
		Pos:      loop.Pos(),
		Want:     cm.want,
		Exact:    cm.exact,
		Edits:    edits,
		Chain:    0,
		Offset:   len(lead),
		Imports:  imp != nil,
		Declares: r.Commit == match.Declare || len(r.Deletes) > 0,
	}
}

// lineComment extends end over a comment on the same line.
func (cv *Converter) lineComment(end token.Pos) token.Pos {
	src := cv.o.Source()

	for _, g := range cv.o.File.Comments {
		if g.Pos() < end {
			continue
		}

		for i := cv.o.Offset(end); i < cv.o.Offset(g.Pos()); i++ {
			if src[i] != ' ' && src[i] != '\t' {
				return end
			}
		}

		return g.End()
	}

	return end
}
