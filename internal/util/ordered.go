package util

import "sort"

// OrderedKeys returns the keys of m sorted ascending, for walking a map in a
// deterministic order (Go map iteration order is randomized).
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// InSlice reports whether needle is present in haystack.
func InSlice[E comparable](needle E, haystack []E) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
