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

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// changedFiles returns the absolute names of files that are modified, staged or
// untracked in the git worktree containing dir.
func changedFiles(dir string) (map[string]bool, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening git worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading git status: %w", err)
	}

	root, err := filepath.Abs(wt.Filesystem.Root())
	if err != nil {
		return nil, err
	}

	files := make(map[string]bool, len(status))

	for path, s := range status {
		if s.Worktree == git.Deleted || s.Worktree == git.Unmodified && s.Staging == git.Unmodified {
			continue
		}

		files[filepath.Join(root, filepath.FromSlash(path))] = true
	}

	return files, nil
}
