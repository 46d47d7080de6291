package noimport

func count(list []string) int {
	n := 0
	for _, s := range list {
		if s != "" {
			n++
		}
	}

	return n
}
