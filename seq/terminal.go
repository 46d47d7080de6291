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

// ForEach calls f for every element of s.
func ForEach[T any](s iter.Seq[T], f func(T)) {
	for v := range s {
		f(v)
	}
}

// ForEachIndexed calls f for every element of s and its index.
func ForEachIndexed[T any](s iter.Seq[T], f func(int, T)) {
	i := 0
	for v := range s {
		f(i, v)
		i++
	}
}

// First returns the first element of s. The boolean is false when s is empty.
func First[T any](s iter.Seq[T]) (T, bool) {
	for v := range s {
		return v, true
	}

	var zero T

	return zero, false
}

// Find returns the first element of s satisfying pred. The boolean is false when there is none.
func Find[T any](s iter.Seq[T], pred func(T) bool) (T, bool) {
	return First(Filter(s, pred))
}

// FirstOr returns the first element of s, or def when s is empty.
func FirstOr[T any](s iter.Seq[T], def T) T {
	for v := range s {
		return v
	}

	return def
}

// FindOr returns the first element of s satisfying pred, or def when there is none.
func FindOr[T any](s iter.Seq[T], pred func(T) bool, def T) T {
	return FirstOr(Filter(s, pred), def)
}

// LastOr returns the last element of s, or def when s is empty.
func LastOr[T any](s iter.Seq[T], def T) T {
	last := def
	for v := range s {
		last = v
	}

	return last
}

// FindLastOr returns the last element of s satisfying pred, or def when there is none.
func FindLastOr[T any](s iter.Seq[T], pred func(T) bool, def T) T {
	return LastOr(Filter(s, pred), def)
}

// Any reports whether s yields at least one element.
func Any[T any](s iter.Seq[T]) bool {
	for range s {
		return true
	}

	return false
}

// AnyFunc reports whether some element of s satisfies pred.
func AnyFunc[T any](s iter.Seq[T], pred func(T) bool) bool {
	return Any(Filter(s, pred))
}

// None reports whether s yields no elements.
func None[T any](s iter.Seq[T]) bool {
	return !Any(s)
}

// NoneFunc reports whether no element of s satisfies pred.
func NoneFunc[T any](s iter.Seq[T], pred func(T) bool) bool {
	return !AnyFunc(s, pred)
}

// Count returns the number of elements of s.
func Count[T any](s iter.Seq[T]) int {
	n := 0
	for range s {
		n++
	}

	return n
}

// CountFunc returns the number of elements of s satisfying pred.
func CountFunc[T any](s iter.Seq[T], pred func(T) bool) int {
	return Count(Filter(s, pred))
}

// Collect returns the elements of s in a new slice. The result is nil when s is empty.
func Collect[T any](s iter.Seq[T]) []T {
	return AppendTo([]T(nil), s)
}

// AppendTo appends the elements of s to dst and returns the extended slice.
func AppendTo[S ~[]E, E any](dst S, s iter.Seq[E]) S {
	for v := range s {
		dst = append(dst, v)
	}

	return dst
}
