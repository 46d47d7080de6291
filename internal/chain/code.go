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

package chain

import (
	"go/ast"
	"go/token"
	"strings"
)

// Source provides the text of nodes that are copied into generated code.
type Source interface {
	Text(n ast.Node) string
	Indent(pos token.Pos) string
}

// Part is a fragment of generated code: literal text, or the source text of a node.
type Part struct {
	Text   string
	Node   ast.Node // node Text was copied from, or nil
	Indent string   // indentation of the source line Node starts on
}

// Code is a sequence of [Part] values.
type Code struct {
	parts []Part
}

// Text returns literal code.
func Text(s string) Code {
	return Code{parts: []Part{{Text: s}}}
}

// Copy returns the source text of n. The node is recorded, so its type can be
// compared after the copy has been type checked in its new place.
func Copy(src Source, n ast.Node) Code {
	return Code{parts: []Part{{Text: src.Text(n), Node: n, Indent: src.Indent(n.Pos())}}}
}

// Concat joins code fragments.
func Concat(cs ...Code) Code {
	var parts []Part
	for _, c := range cs {
		parts = append(parts, c.parts...)
	}

	return Code{parts: parts}
}

// Parts returns the fragments of c.
func (c Code) Parts() []Part { return c.parts }

// Empty reports whether c has no text.
func (c Code) Empty() bool {
	for _, p := range c.parts {
		if p.Text != "" {
			return false
		}
	}

	return true
}

// Node returns the copied node when c consists of exactly one copy.
func (c Code) Node() ast.Node {
	if len(c.parts) != 1 {
		return nil
	}

	return c.parts[0].Node
}

func (c Code) String() string {
	var b strings.Builder
	for _, p := range c.parts {
		b.WriteString(p.Text)
	}

	return b.String()
}
