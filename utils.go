package mahjong

// contains checks if a slice contains a specific comparable value.
func contains[T comparable](slice []T, val T) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}

// countOf counts how many elements of slice equal val.
func countOf[T comparable](slice []T, val T) int {
	n := 0
	for _, item := range slice {
		if item == val {
			n++
		}
	}
	return n
}

// allSame reports whether every tile equals the first one.
func allSame(tiles []Tile) bool {
	for _, t := range tiles {
		if t != tiles[0] {
			return false
		}
	}
	return len(tiles) > 0
}

// ceilHundred rounds a payment up to the next multiple of 100.
func ceilHundred(v int) int {
	return (v + 99) / 100 * 100
}

// ceilTen rounds fu up to the next multiple of 10.
func ceilTen(v int) int {
	return (v + 9) / 10 * 10
}

// If returns a when cond is true, otherwise b.
func If[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
