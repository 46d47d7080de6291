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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fillmore-labs.com/loopchain/internal/playground"
)

var history = filepath.Join(xdg.DataHome, "loopchain", "history")

var tryCmd = &cobra.Command{
	Use:   "try [file.go]",
	Short: "Convert the range loops of a snippet",
	Long: `Try converts the range loops of a Go snippet and prints the result.

A snippet is a complete file or a list of statements. The packages fmt,
slices and strings are available to statements without an import.

Without an argument, snippets are read from a terminal interactively:
finish a snippet with an empty line, Ctrl-D quits. When standard input
is not a terminal it is read as a single snippet.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTry,
}

func runTry(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts := playground.Options{SeqPath: s.seqPath, Strict: s.verify.Strict()}

	switch {
	case len(args) == 1:
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		return trySnippet(cmd, string(src), opts)

	case !isTerminal(cmd.InOrStdin()):
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}

		return trySnippet(cmd, string(src), opts)

	default:
		return runPrompt(cmd, opts)
	}
}

func trySnippet(cmd *cobra.Command, src string, opts playground.Options) error {
	r, err := playground.Convert(cmd.Context(), src, opts)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), r)

	return nil
}

func printResult(w io.Writer, r *playground.Result) {
	if len(r.Messages) == 0 {
		fmt.Fprintln(w, "// no convertible loops")

		return
	}

	for _, m := range r.Messages {
		fmt.Fprintln(w, "//", m)
	}

	fmt.Fprintln(w)
	_, _ = w.Write(r.Source)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func runPrompt(cmd *cobra.Command, opts playground.Options) error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), 0o700); err != nil {
			slog.Warn("Can't create history directory", "error", err)
		}

		if f, err := os.Create(history); err == nil {
			defer f.Close()

			if _, err := line.WriteHistory(f); err != nil {
				slog.Warn("Can't write history", "error", err)
			}
		}

		line.Close()
	}()

	line.SetCtrlCAborts(true)

	if f, err := os.Open(history); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			slog.Warn("Can't read history", "error", err)
		}

		f.Close()
	}

	out := cmd.OutOrStdout()

	for {
		src, err := readSnippet(line)
		switch {
		case errors.Is(err, io.EOF):
			return nil

		case errors.Is(err, liner.ErrPromptAborted):
			continue

		case err != nil:
			return err
		}

		if strings.TrimSpace(src) == "" {
			continue
		}

		r, err := playground.Convert(cmd.Context(), src, opts)
		if err != nil {
			fmt.Fprintln(out, "Error:", err)

			continue
		}

		printResult(out, r)
	}
}

// readSnippet reads lines up to an empty line. Every line is added to the history.
func readSnippet(line *liner.State) (string, error) {
	var b strings.Builder

	prompt := "> "

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return b.String(), nil
			}

			return "", err
		}

		if input == "" {
			return b.String(), nil
		}

		line.AppendHistory(input)
		b.WriteString(input)
		b.WriteByte('\n')

		prompt = ". "
	}
}
