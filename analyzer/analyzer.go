// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/loopchain/internal/run"
)

const (
	name = "loopchain"
	doc  = `loopchain reports range loops that can be written as a chain of sequence operations

Each diagnostic names the chain, for example Filter{}.Map{}.Collect{}, and
carries a suggested fix that replaces the loop, together with the
initialization it consumes, by a single call expression on the seq package.`
	url  = "https://pkg.go.dev/fillmore-labs.com/loopchain"
)

// New returns a loop-to-chain analyzer configured by opts.
//
// Options set here become the defaults of the analyzer flags, so a driver
// may still override them on the command line.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.Run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer reports convertible range loops using the default options.
var Analyzer = New()
