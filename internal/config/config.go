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

package config

import "fmt"

// Config represents behavioral options of the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// AddImport permits adding an import of the runtime package to files that don't have one.
	AddImport
)

// Behavior holds the enabled [Config] flags.
type Behavior = BitMask[Config]

// DefaultBehavior returns the flags enabled by default.
func DefaultBehavior() Behavior {
	return NewBitMask(AddImport)
}

// String returns the flag name used in configuration files and on the command line.
func (c Config) String() string {
	switch c {
	case IncludeGenerated:
		return "generated"

	case AddImport:
		return "add-import"

	default:
		return fmt.Sprintf("Config(%d)", uint8(c))
	}
}

// Names returns the names of the flags enabled in b.
func Names(b Behavior) []string {
	var names []string
	for flag := range b.All() {
		names = append(names, flag.String())
	}

	return names
}
