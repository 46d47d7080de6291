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

package seq

import "iter"

// Of yields the elements of s in order. Elements are read when they are reached,
// like a range loop over s would do.
func Of[S ~[]E, E any](s S) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Filter yields the elements of s satisfying pred.
func Filter[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// FilterIndexed is like [Filter], but pred also receives the index of the element in s.
func FilterIndexed[T any](s iter.Seq[T], pred func(int, T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range s {
			if pred(i, v) && !yield(v) {
				return
			}
			i++
		}
	}
}

// Reject yields the elements of s not satisfying pred.
func Reject[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !pred(v) && !yield(v) {
				return
			}
		}
	}
}

// RejectIndexed is like [Reject], but pred also receives the index of the element in s.
func RejectIndexed[T any](s iter.Seq[T], pred func(int, T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range s {
			if !pred(i, v) && !yield(v) {
				return
			}
			i++
		}
	}
}

// TakeWhile yields the leading elements of s satisfying pred and stops at the first one that does not.
func TakeWhile[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}
}

// Map yields the result of f for every element of s.
func Map[T, U any](s iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// MapIndexed is like [Map], but f also receives the index of the element in s.
func MapIndexed[T, U any](s iter.Seq[T], f func(int, T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		i := 0
		for v := range s {
			if !yield(f(i, v)) {
				return
			}
			i++
		}
	}
}

// FlatMap yields the elements of the sequences f returns for every element of s.
func FlatMap[T, U any](s iter.Seq[T], f func(T) iter.Seq[U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			for w := range f(v) {
				if !yield(w) {
					return
				}
			}
		}
	}
}

// FlatMapSlice yields the elements of the slices f returns for every element of s.
func FlatMapSlice[T any, S ~[]U, U any](s iter.Seq[T], f func(T) S) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			for _, w := range f(v) {
				if !yield(w) {
					return
				}
			}
		}
	}
}
