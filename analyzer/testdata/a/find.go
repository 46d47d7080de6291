package a

func hasNegative(list []int) bool {
	for _, x := range list { // want "can be replaced by AnyFunc"
		if x < 0 {
			return true
		}
	}

	return false
}
