package a

import "strings"

func upper(list []string) []string {
	var result []string
	for _, s := range list { // want "can be replaced by Filter"
		if s != "" {
			result = append(result, strings.ToUpper(s))
		}
	}

	return result
}
