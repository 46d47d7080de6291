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
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"fillmore-labs.com/loopchain/analyzer"
	"fillmore-labs.com/loopchain/analyzer/level"
	"fillmore-labs.com/loopchain/internal/config"
	"fillmore-labs.com/loopchain/seq"
)

// settings are the defaults, overridden by the configuration file, overridden by flags.
type settings struct {
	behavior config.Behavior
	seqPath  string
	verify   level.Verify
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	s := settings{
		behavior: config.DefaultBehavior(),
		seqPath:  seq.ImportPath,
		verify:   level.VerifyAuto,
	}

	path := configPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path, _ = config.Find(wd)
		}
	}

	if path != "" {
		f, err := config.Load(path)
		if err != nil {
			return s, fmt.Errorf("loading configuration: %w", err)
		}

		slog.Debug("Loaded configuration", "path", path)

		f.Apply(&s.behavior)

		if f.SeqPackage != nil {
			s.seqPath = *f.SeqPackage
		}

		if f.Verify != nil {
			s.verify = *f.Verify
		}
	}

	flags := cmd.Flags()

	if flags.Changed("seq-package") {
		s.seqPath = seqPackage
	}

	if flags.Changed("verify") {
		s.verify = verifyLevel
	}

	if flags.Changed("generated") {
		s.behavior.Set(config.IncludeGenerated, lintGenerated)
	}

	if flags.Changed("add-import") {
		s.behavior.Set(config.AddImport, lintAddImport)
	}

	slog.Debug("Settings", "behavior", config.Names(s.behavior), "seq-package", s.seqPath, "verify", s.verify)

	return s, nil
}

func (s settings) analyzerOptions() analyzer.Options {
	return analyzer.Options{
		analyzer.WithGenerated(s.behavior.Enabled(config.IncludeGenerated)),
		analyzer.WithAddImport(s.behavior.Enabled(config.AddImport)),
		analyzer.WithSeqPackage(s.seqPath),
		analyzer.WithVerify(s.verify),
	}
}
