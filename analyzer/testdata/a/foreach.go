package a

import "fmt"

func show(list []string) {
	for i, s := range list { // want "can be replaced by ForEachIndexed"
		fmt.Println(i, s)
	}
}
