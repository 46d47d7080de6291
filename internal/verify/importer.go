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

package verify

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"sync"

	"fillmore-labs.com/loopchain/seq"
)

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) { return f(path) }

// importer resolves the imports of the package to the packages the original
// check used, so imported objects stay identical.
func (v *Verifier) importer() types.Importer {
	pkgs := make(map[string]*types.Package)
	for _, p := range v.pkg.Types.Imports() {
		pkgs[p.Path()] = p
	}

	return importerFunc(func(path string) (*types.Package, error) {
		if p, ok := pkgs[path]; ok {
			return p, nil
		}

		if path == "unsafe" {
			return types.Unsafe, nil
		}

		if path == v.seqPath && path == seq.ImportPath {
			return sourcePackage(findPackage(v.pkg.Types, "iter"))
		}

		return nil, fmt.Errorf("package %s is not imported by %s", path, v.pkg.Types.Path())
	})
}

// findPackage searches the transitive imports of pkg.
func findPackage(pkg *types.Package, path string) *types.Package {
	seen := make(map[*types.Package]bool)
	queue := []*types.Package{pkg}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for _, i := range p.Imports() {
			if i.Path() == path {
				return i
			}

			if !seen[i] {
				seen[i] = true
				queue = append(queue, i)
			}
		}
	}

	return nil
}

var sources = struct {
	sync.Mutex
	pkgs map[*types.Package]*types.Package
}{pkgs: make(map[*types.Package]*types.Package)}

// sourcePackage type checks the bundled runtime package against iterPkg.
// Without iterPkg the standard library export data is used.
func sourcePackage(iterPkg *types.Package) (*types.Package, error) {
	sources.Lock()
	defer sources.Unlock()

	if p, ok := sources.pkgs[iterPkg]; ok {
		return p, nil
	}

	fset := token.NewFileSet()

	entries, err := fs.ReadDir(seq.Sources, ".")
	if err != nil {
		return nil, err
	}

	files := make([]*ast.File, 0, len(entries))

	for _, e := range entries {
		src, err := fs.ReadFile(seq.Sources, e.Name())
		if err != nil {
			return nil, err
		}

		f, err := parser.ParseFile(fset, e.Name(), src, parser.SkipObjectResolution)
		if err != nil {
			return nil, err
		}

		files = append(files, f)
	}

	imp := importer.Default()
	if iterPkg != nil {
		imp = importerFunc(func(path string) (*types.Package, error) {
			if path == iterPkg.Path() {
				return iterPkg, nil
			}

			return nil, fmt.Errorf("unexpected import %s", path)
		})
	}

	conf := types.Config{Importer: imp, GoVersion: "go1.23"}

	pkg, err := conf.Check(seq.ImportPath, fset, files, nil)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", seq.ImportPath, err)
	}

	sources.pkgs[iterPkg] = pkg

	return pkg, nil
}
