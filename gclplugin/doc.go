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

/*
Package gclplugin registers the [loopchain] analyzer as golangci-lint module plugin.

# Building

Custom golangci-lint binaries are built from a `.custom-gcl.yaml`:

	---
	version: v2.7.0
	name: golangci-lint
	destination: .
	plugins:
	  - module: fillmore-labs.com/loopchain
	    import: fillmore-labs.com/loopchain/gclplugin
	    version: v0.0.1

`golangci-lint custom` then writes the binary to the destination.

# Settings

The linter is enabled as custom module linter in `.golangci.yaml`. All settings
are optional:

	---
	version: "2"
	linters:
	  enable:
	    - loopchain
	  settings:
	    custom:
	      loopchain:
	        type: module
	        description: "Replace range loops by sequence chains."
	        settings:
	          add-import: true    # import the runtime package where missing
	          seq-package: fillmore-labs.com/loopchain/seq
	          verify: auto        # or strict: type check the package for every fix

Generated files are handled by golangci-lint's own exclusion rules.

[loopchain]: https://pkg.go.dev/fillmore-labs.com/loopchain/analyzer
*/
package gclplugin
