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

package oracle

import (
	"go/token"
	"go/types"
	"strconv"
)

// ImportName returns the name under which the file imports path.
func (o *Oracle) ImportName(path string) (string, bool) {
	for _, spec := range o.File.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil || p != path {
			continue
		}

		pkgName := o.Info.PkgNameOf(spec)
		if pkgName == nil || pkgName.Name() == "_" {
			continue
		}

		return pkgName.Name(), true
	}

	return "", false
}

// TypeString renders t as it has to be spelled at pos. It fails when t
// refers to a package the file does not import, or when the package name
// is shadowed at pos.
func (o *Oracle) TypeString(t types.Type, pos token.Pos) (string, bool) {
	if !o.visible(t, pos, make(map[types.Type]bool)) {
		return "", false
	}

	ok := true

	qualifier := func(p *types.Package) string {
		if p == o.Pkg {
			return ""
		}

		name, found := o.ImportName(p.Path())
		if !found {
			ok = false

			return p.Name()
		}

		if name == "." {
			return ""
		}

		if _, isPkg := o.LookupAt(name, pos).(*types.PkgName); !isPkg {
			ok = false
		}

		return name
	}

	s := types.TypeString(t, qualifier)
	if !ok {
		return "", false
	}

	return s, true
}

// ZeroLiteral renders the zero value of t, if there is a literal for it.
func (o *Oracle) ZeroLiteral(t types.Type, pos token.Pos) (string, bool) {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		switch {
		case u.Info()&types.IsBoolean != 0:
			return "false", true

		case u.Info()&types.IsString != 0:
			return `""`, true

		case u.Info()&types.IsNumeric != 0:
			return "0", true

		case u.Kind() == types.UnsafePointer:
			return "nil", true

		default:
			return "", false
		}

	case *types.Pointer, *types.Slice, *types.Map, *types.Chan, *types.Signature:
		return "nil", true

	case *types.Interface:
		if _, ok := t.(*types.TypeParam); ok {
			return "", false
		}

		return "nil", true

	case *types.Struct, *types.Array:
		s, ok := o.TypeString(t, pos)
		if !ok {
			return "", false
		}

		return s + "{}", true

	default:
		return "", false
	}
}

// visible reports whether local types and type parameters t refers to are in scope at pos.
func (o *Oracle) visible(t types.Type, pos token.Pos, seen map[types.Type]bool) bool {
	if seen[t] {
		return true
	}

	seen[t] = true

	switch t := t.(type) {
	case *types.Alias:
		return o.visibleObj(t.Obj(), pos) && o.visible(types.Unalias(t), pos, seen)

	case *types.Named:
		if !o.visibleObj(t.Obj(), pos) {
			return false
		}

		for targ := range t.TypeArgs().Types() {
			if !o.visible(targ, pos, seen) {
				return false
			}
		}

		return true

	case *types.TypeParam:
		return o.visibleObj(t.Obj(), pos)

	case *types.Pointer:
		return o.visible(t.Elem(), pos, seen)

	case *types.Slice:
		return o.visible(t.Elem(), pos, seen)

	case *types.Array:
		return o.visible(t.Elem(), pos, seen)

	case *types.Chan:
		return o.visible(t.Elem(), pos, seen)

	case *types.Map:
		return o.visible(t.Key(), pos, seen) && o.visible(t.Elem(), pos, seen)

	case *types.Signature:
		return o.visibleTuple(t.Params(), pos, seen) && o.visibleTuple(t.Results(), pos, seen)

	case *types.Struct:
		for f := range t.Fields() {
			if !o.visible(f.Type(), pos, seen) {
				return false
			}
		}

		return true

	case *types.Interface:
		for m := range t.ExplicitMethods() {
			if !o.visible(m.Type(), pos, seen) {
				return false
			}
		}

		for e := range t.EmbeddedTypes() {
			if !o.visible(e, pos, seen) {
				return false
			}
		}

		return true

	default:
		return true
	}
}

func (o *Oracle) visibleTuple(t *types.Tuple, pos token.Pos, seen map[types.Type]bool) bool {
	for v := range t.Variables() {
		if !o.visible(v.Type(), pos, seen) {
			return false
		}
	}

	return true
}

// visibleObj checks function-local type names, package level names are qualified.
func (o *Oracle) visibleObj(obj *types.TypeName, pos token.Pos) bool {
	if obj.Pkg() == nil || obj.Pkg() != o.Pkg || obj.Parent() == o.Pkg.Scope() {
		return true
	}

	return o.LookupAt(obj.Name(), pos) == obj
}
