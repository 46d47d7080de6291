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

import "iter"

// BitMask is a set of flags of type T, each flag a distinct bit.
type BitMask[T ~uint8 | ~uint16 | ~uint32 | ~uint64] struct {
	value T
}

// NewBitMask returns a [BitMask] with the given flags enabled.
func NewBitMask[T ~uint8 | ~uint16 | ~uint32 | ~uint64](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, flag := range flags {
		b.value |= flag
	}

	return b
}

// Set enables or disables flag.
func (b *BitMask[T]) Set(flag T, value bool) {
	if value {
		b.value |= flag
	} else {
		b.value &^= flag
	}
}

// Enable enables flag.
func (b *BitMask[T]) Enable(flag T) { b.value |= flag }

// Disable disables flag.
func (b *BitMask[T]) Disable(flag T) { b.value &^= flag }

// Enabled reports whether flag is enabled.
func (b BitMask[T]) Enabled(flag T) bool { return b.value&flag != 0 }

// Override copies the flags selected by mask from values, other flags stay.
func (b *BitMask[T]) Override(mask, values BitMask[T]) {
	b.value = b.value&^mask.value | values.value&mask.value
}

// All yields the enabled flags, lowest bit first.
func (b BitMask[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for rest := b.value; rest != 0; rest &= rest - 1 {
			if !yield(rest & -rest) {
				return
			}
		}
	}
}
