package nofix

func sum(list []int) int {
	total := 0
	for _, x := range list {
		total += x
	}

	return total
}

func keys(m map[string]int) []string {
	var result []string
	for k := range m {
		result = append(result, k)
	}

	return result
}

func suppressed(list []string) int {
	n := 0
	for _, s := range list { //nolint:loopchain
		if s != "" {
			n++
		}
	}

	return n
}

//nolint:loopchain
func suppressedFunc(list []string) int {
	n := 0
	for range list {
		n++
	}

	return n
}

func labeled(list [][]int) int {
	n := 0
outer:
	for _, row := range list {
		for _, x := range row {
			if x < 0 {
				continue outer
			}
		}
		n++
	}

	return n
}
