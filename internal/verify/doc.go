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

// Package verify checks that a conversion type checks in place of the loop and
// that every copied expression keeps its type and the objects it refers to.
//
// The quick check evaluates the chain expression with [types.CheckExpr] in the
// lexical scope of the loop. The decisive check applies the edits to a copy
// of the file and type checks the whole package again. Nothing is written back.
package verify
