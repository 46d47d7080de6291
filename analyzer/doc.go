// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the loopchain static analysis pass.
//
// # Overview
//
// Loopchain detects range loops whose behavior is a chain of sequence
// operations and offers to replace them with calls into the [seq] package.
//
// # Example
//
// Before:
//
//	func names(users []User) []string {
//	    var result []string
//	    for _, u := range users {
//	        if u.Active {
//	            result = append(result, u.Name)
//	        }
//	    }
//	    return result
//	}
//
// After applying loopchain's suggested fix:
//
//	func names(users []User) []string {
//	    result := seq.Collect(
//	        seq.Map(
//	            seq.Filter(seq.Of(users), func(u User) bool { return u.Active }),
//	            func(u User) string { return u.Name },
//	        ),
//	    )
//	    return result
//	}
//
// # Recognized Loops
//
// The loop body is taken apart statement by statement into filters, maps and
// flat maps, ending in one of:
//
//   - a statement run for every element (ForEach)
//   - a search returning or assigning the first or last match (FirstOr, FindOr, Any, None)
//   - a counter (Count, CountFunc)
//   - an append to a slice (Collect, AppendTo)
//
// Every fix is type checked before it is offered.
//
// # Usage
//
//	go run fillmore-labs.com/loopchain/cmd/loopchain@latest lint ./...
//
// The analyzer is also available as golangci-lint module plugin, see package gclplugin.
//
// [seq]: https://pkg.go.dev/fillmore-labs.com/loopchain/seq
package analyzer
