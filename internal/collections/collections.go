package collections

// Contains returns true if elem is one of elements.
func Contains[T comparable](elem T, elements []T) bool {
	for _, e := range elements {
		if elem == e {
			return true
		}
	}
	return false
}

// FirstDuplicate returns the first key produced twice by keyFn over elements,
// in element order. The boolean is false when all keys are unique.
func FirstDuplicate[T any, K comparable](elements []T, keyFn func(T) K) (K, bool) {
	seen := make(map[K]struct{}, len(elements))
	for _, e := range elements {
		key := keyFn(e)
		if _, ok := seen[key]; ok {
			return key, true
		}
		seen[key] = struct{}{}
	}

	var zero K
	return zero, false
}
