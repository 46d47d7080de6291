// Code generated by hand. DO NOT EDIT.

package nofix

func generated(list []string) int {
	n := 0
	for range list {
		n++
	}

	return n
}
