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

// Package seq provides the declarative sequence operations that loopchain rewrites range loops into.
//
// Stages take an [iter.Seq] and return a lazily evaluated [iter.Seq]; terminal operations consume
// a sequence and stop pulling elements as soon as their result is known. Every callback is invoked
// in element order, at most once per element, and only for elements reaching its stage, so a chain
// has the same side effects as the loop it replaces.
//
// Indexed variants count the elements reaching their own stage, starting at zero.
//
// Example:
//
//	var lengths []int
//	for _, s := range names {
//		if s == "" {
//			continue
//		}
//		lengths = append(lengths, len(s))
//	}
//
// is equivalent to
//
//	lengths := seq.Collect(
//		seq.Map(
//			seq.Reject(seq.Of(names), func(s string) bool { return s == "" }),
//			func(s string) int { return len(s) },
//		),
//	)
package seq
