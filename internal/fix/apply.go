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
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// ErrOverlap is returned when edits to be applied overlap.
var ErrOverlap = errors.New("overlapping edits")

// Edit is a text edit in byte offsets.
type Edit struct {
	Start, End int
	Text       []byte
}

// Offsets converts analysis edits into byte offsets of file.
func Offsets(file *token.File, edits []analysis.TextEdit) ([]Edit, error) {
	result := make([]Edit, 0, len(edits))

	for _, e := range edits {
		end := e.End
		if !end.IsValid() {
			end = e.Pos
		}

		base, size := token.Pos(file.Base()), file.Size()
		if e.Pos < base || end < e.Pos || int(end-base) > size {
			return nil, fmt.Errorf("edit %d-%d outside of %s", e.Pos, end, file.Name())
		}

		result = append(result, Edit{Start: file.Offset(e.Pos), End: file.Offset(end), Text: e.NewText})
	}

	return result, nil
}

// Applied is the result of applying edits.
type Applied struct {
	Src   []byte
	edits []Edit // sorted, deduplicated
	moved []int  // moved[i] is the new offset of edits[i]
}

// Apply returns src with the edits applied. Identical edits are applied once.
func Apply(src []byte, edits []Edit) (*Applied, error) {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b Edit) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})

	sorted = slices.CompactFunc(sorted, func(a, b Edit) bool {
		return a.Start == b.Start && a.End == b.End && bytes.Equal(a.Text, b.Text)
	})

	var (
		out   bytes.Buffer
		moved = make([]int, len(sorted))
		last  = 0
	)

	out.Grow(len(src))

	for i, e := range sorted {
		if e.Start < last || e.End > len(src) {
			return nil, fmt.Errorf("edit at %d-%d: %w", e.Start, e.End, ErrOverlap)
		}

		out.Write(src[last:e.Start]) // ignore error
		moved[i] = out.Len()
		out.Write(e.Text) // ignore error

		last = e.End
	}

	out.Write(src[last:]) // ignore error

	return &Applied{Src: out.Bytes(), edits: sorted, moved: moved}, nil
}

// Moved returns the new offset of the text inserted by an edit equal to e.
func (a *Applied) Moved(e Edit) (int, bool) {
	for i, s := range a.edits {
		if s.Start == e.Start && s.End == e.End && bytes.Equal(s.Text, e.Text) {
			return a.moved[i], true
		}
	}

	return 0, false
}

// Map returns the new offset of an original offset outside of all replaced ranges.
func (a *Applied) Map(offset int) (int, bool) {
	delta := 0

	for _, e := range a.edits {
		if offset < e.Start {
			break
		}

		if offset < e.End {
			return 0, false // replaced
		}

		delta += len(e.Text) - (e.End - e.Start)
	}

	return offset + delta, true
}
