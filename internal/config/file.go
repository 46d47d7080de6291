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

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/loopchain/analyzer/level"
)

// FileName is the name of a project configuration file.
const FileName = ".loopchain.yaml"

// userFile is the configuration file below the XDG config directories.
const userFile = "loopchain/config.yaml"

// File is the content of a configuration file. Unset fields keep their defaults.
type File struct {
	Generated  *bool         `yaml:"generated"`
	AddImport  *bool         `yaml:"add-import"`
	SeqPackage *string       `yaml:"seq-package"`
	Verify     *level.Verify `yaml:"verify"`
}

// Find returns the configuration file for dir. It looks for [FileName] in dir and its
// parents, then for loopchain/config.yaml in the XDG config directories.
func Find(dir string) (string, bool) {
	for {
		path := filepath.Join(dir, FileName)
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	path, err := xdg.SearchConfigFile(userFile)
	if err != nil {
		return "", false
	}

	return path, true
}

// Load reads a configuration file. Unknown keys are an error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data, path)
}

// Parse decodes configuration data, name is used in error messages.
func Parse(data []byte, name string) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}

	return &f, nil
}

// Apply sets the behavior flags present in the file.
func (f *File) Apply(b *Behavior) {
	var mask, values Behavior

	for flag, value := range map[Config]*bool{
		IncludeGenerated: f.Generated,
		AddImport:        f.AddImport,
	} {
		if value != nil {
			mask.Enable(flag)
			values.Set(flag, *value)
		}
	}

	b.Override(mask, values)
}
