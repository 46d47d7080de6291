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

package playground_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/loopchain/internal/playground"
	"fillmore-labs.com/loopchain/seq"
)

func TestConvertStatements(t *testing.T) {
	t.Parallel()

	const src = `list := []string{"a", "long", "longer"}
n := 0
for _, s := range list {
	if len(s) > 3 {
		n++
	}
}
fmt.Println(n)`

	r, err := Convert(t.Context(), src, Options{SeqPath: seq.ImportPath})
	require.NoError(t, err)

	require.Len(t, r.Messages, 1)
	assert.Contains(t, r.Messages[0], "CountFunc{}")

	out := string(r.Source)
	assert.Contains(t, out, `"fillmore-labs.com/loopchain/seq"`)
	assert.Contains(t, out, "n := seq.CountFunc(seq.Of(list), func(s string) bool { return len(s) > 3 })")
	assert.NotContains(t, out, "for _, s := range list")
}

func TestConvertFile(t *testing.T) {
	t.Parallel()

	const src = `package main

func sum(list []int) int {
	total := 0
	for _, x := range list {
		total += x
	}

	return total
}
`

	r, err := Convert(t.Context(), src, Options{SeqPath: seq.ImportPath, Strict: true})
	require.NoError(t, err)

	assert.Empty(t, r.Messages)
	assert.Equal(t, src, string(r.Source))
}

func TestConvertInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, src string
	}{
		{"syntax", "for {"},
		{"types", "x := 1 + \"a\"\n_ = x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Convert(t.Context(), tt.src, Options{SeqPath: seq.ImportPath})
			assert.ErrorIs(t, err, ErrSnippet)
		})
	}
}
