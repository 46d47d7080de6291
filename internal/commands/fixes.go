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
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log/slog"
	"os"

	"fillmore-labs.com/loopchain/internal/fix"
)

// applyFixes rewrites the files of the findings. Fixes conflicting with an
// earlier fix in the same file are skipped.
func applyFixes(findings []finding) error {
	var (
		order []string
		edits = make(map[string][]fix.Edit)
		errs  []error
	)

	for _, f := range findings {
		if len(f.diagnostic.SuggestedFixes) == 0 {
			continue
		}

		name := f.position.Filename

		file := f.fset.File(f.diagnostic.Pos)
		if file == nil {
			errs = append(errs, fmt.Errorf("%s: no file for fix", f.position))

			continue
		}

		fe, err := fix.Offsets(file, f.diagnostic.SuggestedFixes[0].TextEdits)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.position, err))

			continue
		}

		accepted, seen := edits[name]
		if !seen {
			order = append(order, name)
		}

		if conflicts(accepted, fe) {
			slog.Warn("Skipping conflicting fix", "position", f.position)

			continue
		}

		edits[name] = append(accepted, fe...)
	}

	for _, name := range order {
		if err := rewrite(name, edits[name]); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func conflicts(accepted, edits []fix.Edit) bool {
	for _, e := range edits {
		for _, a := range accepted {
			if a.Start == e.Start && a.End == e.End && bytes.Equal(a.Text, e.Text) {
				continue
			}

			if a.Start == e.Start || a.Start < e.End && e.Start < a.End {
				return true
			}
		}
	}

	return false
}

func rewrite(name string, edits []fix.Edit) error {
	fi, err := os.Stat(name)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	applied, err := fix.Apply(src, edits)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	out, err := format.Source(applied.Src)
	if err != nil {
		slog.Warn("Can't format fixed file", "file", name, "error", err)

		out = applied.Src
	}

	if err := os.WriteFile(name, out, fi.Mode().Perm()); err != nil {
		return err
	}

	slog.Info("Applied fixes", "file", name, "edits", len(edits))

	return nil
}
