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

package commands

import (
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/loopchain/analyzer"
)

// ErrFindings is returned by lint when convertible loops remain.
var ErrFindings = errors.New("convertible loops found")

// ErrLoad is returned when packages can not be loaded.
var ErrLoad = errors.New("loading packages failed")

var (
	lintFix       bool
	lintChanged   bool
	lintTests     bool
	lintGenerated bool
	lintAddImport bool
)

var lintCmd = &cobra.Command{
	Use:   "lint [packages]",
	Short: "Report range loops that can be replaced by chains",
	Long: `Lint loads the given packages (default ./...) and reports every range
loop that can be replaced by a chain.

Examples:
  loopchain lint ./...              Report convertible loops
  loopchain lint --fix ./...        Replace the loops in place
  loopchain lint --changed ./...    Only files modified in the git worktree
  loopchain lint --verify=strict    Type check every replacement`,
	RunE: runLint,
}

func init() {
	flags := lintCmd.Flags()
	flags.BoolVar(&lintFix, "fix", false, "Apply the replacements")
	flags.BoolVar(&lintChanged, "changed", false, "Only report files modified in the git worktree")
	flags.BoolVar(&lintTests, "test", true, "Include test files")
	flags.BoolVar(&lintGenerated, "generated", false, "Include generated files")
	flags.BoolVar(&lintAddImport, "add-import", true, "Add an import of the runtime package where needed")
}

// finding is a diagnostic with its resolved position.
type finding struct {
	position   token.Position
	diagnostic analysis.Diagnostic
	fset       *token.FileSet
}

func runLint(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"./..."}
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts := s.analyzerOptions()
	slog.LogAttrs(cmd.Context(), slog.LevelDebug, "Running analyzer", opts.LogAttr())

	cfg := &packages.Config{
		Mode:    packages.LoadAllSyntax,
		Context: cmd.Context(),
		Tests:   lintTests,
	}

	pkgs, err := packages.Load(cfg, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if n := packages.PrintErrors(pkgs); n > 0 {
		return fmt.Errorf("%w: %d errors", ErrLoad, n)
	}

	slog.Debug("Loaded packages", "count", len(pkgs))

	graph, err := checker.Analyze([]*analysis.Analyzer{analyzer.New(opts...)}, pkgs, &checker.Options{})
	if err != nil {
		return err
	}

	var keep func(string) bool
	if lintChanged {
		changed, err := changedFiles(".")
		if err != nil {
			return err
		}

		keep = func(filename string) bool { return changed[filename] }
	}

	var (
		findings []finding
		errs     []error
	)

	for _, act := range graph.Roots {
		if act.Err != nil {
			errs = append(errs, act.Err)

			continue
		}

		fset := act.Package.Fset
		for _, d := range act.Diagnostics {
			position := fset.Position(d.Pos)
			if keep != nil && !keep(position.Filename) {
				continue
			}

			findings = append(findings, finding{position: position, diagnostic: d, fset: fset})
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	findings = sortFindings(findings)

	out := cmd.OutOrStdout()
	for _, f := range findings {
		fmt.Fprintf(out, "%s: %s\n", f.position, f.diagnostic.Message)
	}

	if len(findings) == 0 {
		return nil
	}

	if !lintFix {
		return fmt.Errorf("%w: %d", ErrFindings, len(findings))
	}

	return applyFixes(findings)
}

// sortFindings orders by position and drops duplicates of test variants.
func sortFindings(findings []finding) []finding {
	slices.SortFunc(findings, func(a, b finding) int {
		return cmp.Or(
			cmp.Compare(a.position.Filename, b.position.Filename),
			cmp.Compare(a.position.Offset, b.position.Offset),
			cmp.Compare(a.diagnostic.Message, b.diagnostic.Message),
		)
	})

	return slices.CompactFunc(findings, func(a, b finding) bool {
		return a.position == b.position && a.diagnostic.Message == b.diagnostic.Message
	})
}
