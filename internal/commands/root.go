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

// Package commands provides the CLI commands for the loopchain tool.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"fillmore-labs.com/loopchain/analyzer/level"
	"fillmore-labs.com/loopchain/seq"
)

var (
	configPath  string
	verbose     bool
	workDir     string
	seqPackage  string
	verifyLevel level.Verify
)

var rootCmd = &cobra.Command{
	Use:   "loopchain",
	Short: "Replace range loops by declarative chains",
	Long: `loopchain finds range loops that compute something a chain of
Filter, Map, Count, Find or ForEach calls expresses directly, and
offers the chain as a replacement.

Usage:
  loopchain lint ./...          Report convertible loops
  loopchain lint --fix ./...    Replace them
  loopchain try                 Convert snippets interactively
  loopchain version             Print version

Settings are read from .loopchain.yaml in the working directory or one
of its parents, or from loopchain/config.yaml in the XDG config directories.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logLevel := slog.LevelInfo
		if verbose {
			logLevel = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel})))

		if workDir != "" {
			if err := os.Chdir(workDir); err != nil {
				return fmt.Errorf("changing directory: %w", err)
			}
		}

		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(tryCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to the configuration file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	flags.StringVarP(&workDir, "dir", "C", "", "Change to this directory before running")
	flags.StringVar(&seqPackage, "seq-package", seq.ImportPath, "Import path of the runtime package")
	flags.TextVar(&verifyLevel, "verify", level.VerifyAuto, "Verification level (auto, strict)")
}
