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

// Kind identifies a transformation and the runtime function it is rendered as.
type Kind uint8

//go:generate go tool stringer -type Kind
const (
	Invalid Kind = iota

	// Sequence stages.
	Filter
	FilterIndexed
	Reject
	RejectIndexed
	TakeWhile
	Map
	MapIndexed
	FlatMap
	FlatMapSlice

	// Results.
	ForEach
	ForEachIndexed
	First
	Find
	FirstOr
	FindOr
	LastOr
	FindLastOr
	Any
	AnyFunc
	None
	NoneFunc
	Count
	CountFunc
	Collect
	AppendTo
)

// Sequence reports whether k is a non-terminal stage.
func (k Kind) Sequence() bool { return Filter <= k && k <= FlatMapSlice }

// Result reports whether k terminates a chain.
func (k Kind) Result() bool { return ForEach <= k && k <= AppendTo }

// Indexed reports whether the lambda of k receives the element index.
func (k Kind) Indexed() bool {
	switch k {
	case FilterIndexed, RejectIndexed, MapIndexed, ForEachIndexed:
		return true

	default:
		return false
	}
}

// HasLambda reports whether k takes a function argument.
func (k Kind) HasLambda() bool {
	switch k {
	case First, FirstOr, LastOr, Any, None, Count, Collect, AppendTo, Invalid:
		return false

	default:
		return true
	}
}

// WithIndex returns the indexed variant of k, or k if there is none.
func (k Kind) WithIndex() Kind {
	switch k {
	case Filter:
		return FilterIndexed

	case Reject:
		return RejectIndexed

	case Map:
		return MapIndexed

	case ForEach:
		return ForEachIndexed

	default:
		return k
	}
}

// AffectsIndex reports whether the position of an element can differ before and after a stage of kind k.
func (k Kind) AffectsIndex() bool {
	switch k {
	case Filter, FilterIndexed, Reject, RejectIndexed, FlatMap, FlatMapSlice:
		return true

	default:
		return false
	}
}
