package utils

// Replace swaps the first occurrence of old in slice for repl, reporting whether old
// was found.
func Replace[T comparable](slice []T, old, repl T) bool {
	for i, v := range slice {
		if v == old {
			slice[i] = repl
			return true
		}
	}
	return false
}
