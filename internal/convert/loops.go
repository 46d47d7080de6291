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
	"context"
	"go/ast"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/ast/inspector"
)

// ConvertLoops tries every range loop below root, outer loops first.
// Loops inside a converted loop are left alone. Errors are passed to fail
// together with the loop, the remaining loops are still tried.
func (cv *Converter) ConvertLoops(ctx context.Context, root inspector.Cursor, fail func(ast.Node, error)) []*Conversion {
	defer trace.StartRegion(ctx, "ConvertLoops").End()

	var (
		conversions []*Conversion
		converted   token.Pos
	)

	for c := range root.Preorder((*ast.RangeStmt)(nil)) {
		loop := c.Node()
		if loop.Pos() < converted {
			continue
		}

		conversion, err := cv.TryConvert(ctx, c)
		if err != nil {
			fail(loop, err)

			continue
		}

		if conversion == nil {
			continue
		}

		conversions = append(conversions, conversion)
		converted = conversion.End
	}

	return conversions
}
