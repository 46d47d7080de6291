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
	"slices"
	"testing"

	. "fillmore-labs.com/loopchain/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()

	if b.Enabled(IncludeGenerated) || !b.Enabled(AddImport) {
		t.Fatalf("Unexpected default behavior %v", b)
	}

	b.Set(IncludeGenerated, true)
	b.Set(AddImport, false)

	if !b.Enabled(IncludeGenerated) || b.Enabled(AddImport) {
		t.Errorf("Set failed: %v", b)
	}
}

func TestBitMaskOverride(t *testing.T) {
	t.Parallel()

	b := NewBitMask(IncludeGenerated)
	b.Override(NewBitMask(AddImport), NewBitMask(AddImport, IncludeGenerated))

	if !b.Enabled(IncludeGenerated) || !b.Enabled(AddImport) {
		t.Errorf("Override failed: %v", Names(b))
	}

	b.Override(NewBitMask(IncludeGenerated), NewBitMask[Config]())

	if got, want := Names(b), []string{"add-import"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %q, want %q", got, want)
	}
}
