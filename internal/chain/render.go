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
	"go/scanner"
	"go/token"
	"strings"
)

// maxLine is the size up to which a function literal stays on one line, like gofmt does.
const maxLine = 100

// Chain is a receiver expression with calls applied to it, first-applied first.
type Chain struct {
	Package  string // name the runtime package is referred to by
	Receiver Code
	Calls    []Transformation
}

// Placed locates a copied node in rendered code.
type Placed struct {
	Node   ast.Node
	Offset int // byte offset of the node text in the rendered code
	Len    int // length of the node text after re-indentation
}

// Rendered is the text of a chain, together with the positions of copied nodes.
type Rendered struct {
	Text   string
	Copies []Placed
}

// Wrap surrounds r with prefix and suffix.
func (r Rendered) Wrap(prefix, suffix string) Rendered {
	copies := make([]Placed, len(r.Copies))
	for i, c := range r.Copies {
		copies[i] = Placed{Node: c.Node, Offset: c.Offset + len(prefix), Len: c.Len}
	}

	return Rendered{Text: prefix + r.Text + suffix, Copies: copies}
}

// Render generates the call chain. Continuation lines start with indent.
//
// A chain with a single call stays on one line. For longer chains every outer
// call puts its arguments on separate lines, while the innermost call is inline.
func (c Chain) Render(indent string) Rendered {
	g := generator{pkg: c.Package, indent: indent}
	g.call(c.Calls, c.Receiver, len(c.Calls)-1, 0)

	return Rendered{Text: g.buf.String(), Copies: g.copies}
}

type generator struct {
	pkg    string
	indent string
	buf    strings.Builder
	copies []Placed
}

func (g *generator) call(calls []Transformation, recv Code, i, depth int) {
	if i < 0 {
		g.code(recv, depth)

		return
	}

	t := calls[i]

	receiver := func(d int) { g.call(calls, recv, i-1, d) }

	var args []func(d int)

	switch t.Kind {
	case AppendTo:
		args = append(args, g.arg(t), receiver)

	case Invalid:
		panic("not implemented: " + t.Kind.String())

	default:
		args = append(args, receiver)
		if t.Fn != nil {
			args = append(args, func(d int) { g.lambda(t.Fn, d) })
		}

		if t.Arg != nil {
			args = append(args, g.arg(t))
		}
	}

	g.buf.WriteString(g.pkg)
	g.buf.WriteByte('.')
	g.buf.WriteString(t.Kind.String())
	g.buf.WriteByte('(')

	if i == 0 {
		for j, arg := range args {
			if j > 0 {
				g.buf.WriteString(", ")
			}

			arg(depth)
		}
	} else {
		for _, arg := range args {
			g.newline(depth + 1)
			arg(depth + 1)
			g.buf.WriteByte(',')
		}

		g.newline(depth)
	}

	g.buf.WriteByte(')')
}

func (g *generator) arg(t Transformation) func(d int) {
	if t.Arg == nil {
		panic("not implemented: " + t.Kind.String() + " without argument")
	}

	return func(d int) { g.code(*t.Arg, d) }
}

func (g *generator) lambda(fn *Lambda, depth int) {
	var header strings.Builder

	header.WriteString("func(")

	if fn.Index != "" {
		header.WriteString(fn.Index)
		header.WriteString(" int, ")
	}

	header.WriteString(fn.Elem)
	header.WriteByte(' ')
	header.WriteString(fn.Type)
	header.WriteByte(')')

	if fn.Result != "" {
		header.WriteByte(' ')
		header.WriteString(fn.Result)
	}

	g.buf.WriteString(header.String())

	body := fn.Body.String()
	if !fn.Stmt && !strings.Contains(body, "\n") && header.Len()+len(body)+len(" { return  }") <= maxLine {
		g.buf.WriteString(" { return ")
		g.code(fn.Body, depth)
		g.buf.WriteString(" }")

		return
	}

	g.buf.WriteString(" {")
	g.newline(depth + 1)

	if !fn.Stmt {
		g.buf.WriteString("return ")
	}

	g.code(fn.Body, depth+1)
	g.newline(depth)
	g.buf.WriteByte('}')
}

func (g *generator) code(c Code, depth int) {
	for _, p := range c.parts {
		if p.Node == nil {
			g.buf.WriteString(p.Text)

			continue
		}

		text := Reindent(p.Text, p.Indent, g.indent+strings.Repeat("\t", depth))

		g.copies = append(g.copies, Placed{Node: p.Node, Offset: g.buf.Len(), Len: len(text)})
		g.buf.WriteString(text)
	}
}

func (g *generator) newline(depth int) {
	g.buf.WriteByte('\n')
	g.buf.WriteString(g.indent)

	for range depth {
		g.buf.WriteByte('\t')
	}
}

// Reindent replaces the indentation from with to on all lines of text but the first.
// Lines starting inside a raw string or a block comment are left alone.
func Reindent(text, from, to string) string {
	if from == to || !strings.Contains(text, "\n") {
		return text
	}

	protected := protectedLines(text)

	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		if protected[i] {
			continue
		}

		if rest, ok := strings.CutPrefix(lines[i], from); ok {
			lines[i] = to + rest
		}
	}

	return strings.Join(lines, "\n")
}

// protectedLines returns the indices of lines that start inside a multi-line token.
func protectedLines(text string) map[int]bool {
	fset := token.NewFileSet()
	file := fset.AddFile("", -1, len(text))

	var s scanner.Scanner
	s.Init(file, []byte(text), nil, scanner.ScanComments)

	protected := make(map[int]bool)

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		if tok != token.STRING && tok != token.COMMENT {
			continue
		}

		// line numbers are 1-based, the token continues on the following lines
		first := file.Line(pos)
		for l := range strings.Count(lit, "\n") {
			protected[first+l] = true
		}
	}

	return protected
}
