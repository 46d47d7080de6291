package strict

import "test/seq"

var _ = seq.Of[[]int]

func countLong(list []string) int {
	n := 0
	for _, s := range list { // want "can be replaced by CountFunc"
		if len(s) > 3 {
			n++
		}
	}

	return n
}
