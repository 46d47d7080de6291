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

// Package match recognizes range loops that are equivalent to a chain of sequence operations.
//
// [Match] drives an immutable [State] through a fixed, ordered registry of
// sequence matchers (filter, take-while, map, flat-map, index introduction) until
// one of the result matchers (for-each, find, count, collect) explains the
// remaining statements.
package match
