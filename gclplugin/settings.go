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

package gclplugin

import (
	loopchain "fillmore-labs.com/loopchain/analyzer"
	"fillmore-labs.com/loopchain/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// AddImport permits importing the runtime package into files that don't have it.
	AddImport *bool `json:"add-import,omitzero"`
	// SeqPackage sets the import path of the runtime package.
	SeqPackage *string `json:"seq-package,omitzero"`
	// Verify selects when conversions get a full package type check.
	Verify *level.Verify `json:"verify,omitzero"`
}

// Options converts [Settings] into a list of [loopchain.Option] for the loopchain analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []loopchain.Option {
	var opts []loopchain.Option

	opts = appendOption(opts, s.AddImport, loopchain.WithAddImport)
	opts = appendOption(opts, s.SeqPackage, loopchain.WithSeqPackage)
	opts = appendOption(opts, s.Verify, loopchain.WithVerify)

	return opts
}

// appendOption appends a non-nil setting to a [loopchain.Option] list.
func appendOption[T any](opts []loopchain.Option, value *T, constructor func(T) loopchain.Option) []loopchain.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
