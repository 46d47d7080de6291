// Package seq provides the chain operations used by the test packages.
package seq

import "iter"

func Of[S ~[]E, E any](s S) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s {
			if !yield(e) {
				return
			}
		}
	}
}

func CountFunc[T any](s iter.Seq[T], pred func(T) bool) int {
	n := 0
	for e := range s {
		if pred(e) {
			n++
		}
	}

	return n
}
