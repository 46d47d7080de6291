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

package level

import (
	"fmt"
	"strings"
)

// Verify specifies how conversions are checked before they are offered.
type Verify uint8

const (
	// VerifyAuto re-checks the package only when a conversion changes declarations or imports.
	VerifyAuto Verify = iota

	// VerifyStrict re-checks the package for every conversion.
	VerifyStrict
)

// Strict reports whether every conversion gets a full package check.
func (v Verify) Strict() bool { return v == VerifyStrict }

// String implements [fmt.Stringer].
func (v Verify) String() string {
	b, err := v.MarshalText()
	if err != nil {
		return fmt.Sprintf("Verify(%d)", uint8(v))
	}

	return string(b)
}

// MarshalText implements [encoding.TextMarshaler].
func (v Verify) MarshalText() ([]byte, error) {
	switch v {
	case VerifyAuto:
		return []byte("auto"), nil

	case VerifyStrict:
		return []byte("strict"), nil

	default:
		return nil, fmt.Errorf("unknown verify level %d", v)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Verify) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "auto", "default":
		*v = VerifyAuto

	case "strict", "full":
		*v = VerifyStrict

	default:
		return fmt.Errorf("unknown verify level %q", string(text))
	}

	return nil
}
