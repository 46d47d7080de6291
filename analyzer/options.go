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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/loopchain/analyzer/level"
	"fillmore-labs.com/loopchain/internal/config"
	"fillmore-labs.com/loopchain/internal/run"
)

// Option configures specific behavior of a [New] loopchain analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithAddImport is an [Option] to configure whether the runtime package may be imported into files that lack it.
func WithAddImport(addImport bool) Option { return addImportOption{addImport: addImport} }

type addImportOption struct{ addImport bool }

func (o addImportOption) apply(r *run.Options) {
	r.Behavior.Set(config.AddImport, o.addImport)
}

func (o addImportOption) LogAttr() slog.Attr {
	return slog.Bool("add-import", o.addImport)
}

// WithSeqPackage is an [Option] to configure the import path of the runtime package chains call.
func WithSeqPackage(path string) Option { return seqPackageOption{path: path} }

type seqPackageOption struct{ path string }

func (o seqPackageOption) apply(r *run.Options) {
	r.SeqPath = o.path
}

func (o seqPackageOption) LogAttr() slog.Attr {
	return slog.String("seq-package", o.path)
}

// WithVerify is an [Option] to configure when conversions get a full package type check.
func WithVerify(verify level.Verify) Option { return verifyOption{verify: verify} }

type verifyOption struct{ verify level.Verify }

func (o verifyOption) apply(r *run.Options) {
	r.Verify = o.verify
}

func (o verifyOption) LogAttr() slog.Attr {
	return slog.String("verify", o.verify.String())
}
