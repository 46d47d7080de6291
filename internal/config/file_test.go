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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/loopchain/analyzer/level"
	. "fillmore-labs.com/loopchain/internal/config"
)

func TestParse(t *testing.T) {
	t.Parallel()

	const data = `
generated: true
add-import: false
seq-package: example.com/seq
verify: strict
`

	f, err := Parse([]byte(data), "test")
	require.NoError(t, err)

	require.NotNil(t, f.Generated)
	assert.True(t, *f.Generated)
	require.NotNil(t, f.AddImport)
	assert.False(t, *f.AddImport)
	require.NotNil(t, f.SeqPackage)
	assert.Equal(t, "example.com/seq", *f.SeqPackage)
	require.NotNil(t, f.Verify)
	assert.Equal(t, level.VerifyStrict, *f.Verify)

	b := DefaultBehavior()
	f.Apply(&b)
	assert.True(t, b.Enabled(IncludeGenerated))
	assert.False(t, b.Enabled(AddImport))
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	f, err := Parse(nil, "empty")
	require.NoError(t, err)

	b := DefaultBehavior()
	f.Apply(&b)
	assert.Equal(t, DefaultBehavior(), b)
	assert.Nil(t, f.Verify)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, data string
	}{
		{"unknown_key", "fix: true\n"},
		{"bad_level", "verify: sometimes\n"},
		{"bad_bool", "generated: maybe\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data), tt.name)
			assert.ErrorContains(t, err, "config "+tt.name)
		})
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	want := filepath.Join(root, FileName)
	require.NoError(t, os.WriteFile(want, []byte("verify: auto\n"), 0o644))

	path, ok := Find(sub)
	require.True(t, ok)
	assert.Equal(t, want, path)

	f, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, f.Verify)
	assert.Equal(t, level.VerifyAuto, *f.Verify)
}
