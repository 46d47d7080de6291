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

package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/loopchain/internal/astutil"
	"fillmore-labs.com/loopchain/internal/convert"
)

// Conversions emits a diagnostic for every loop that can be replaced by a chain.
//
// The diagnostic carries the replacement as suggested fix, except in generated
// files. Loops with a nolint comment on the same line are skipped.
func Conversions(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, conversions []*convert.Conversion) {
	if len(conversions) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "ReportConversions").End()

	fixes := !currentFile.Generated()

	for _, c := range conversions {
		if currentFile.NoLintComment(c.Pos) {
			continue
		}

		diagnostic := analysis.Diagnostic{
			Pos:     c.Pos,
			End:     c.End,
			Message: c.Message,
		}

		if fixes {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
				Message:   "Replace loop with " + c.Presentation,
				TextEdits: c.Edits,
			}}
		}

		p.Report(diagnostic)
	}
}
