package util

// PermutateFunc calls fn for every ordered pair of elements at distinct positions of a.
// Equal values at different positions are still paired.
func PermutateFunc[T any](a []T, fn func(x, y T)) {
	for i, x := range a {
		for j, y := range a {
			if i != j {
				fn(x, y)
			}
		}
	}
}

// Last returns the last element of a, or false if a is empty.
func Last[T any](a []T) (T, bool) {
	if len(a) == 0 {
		var zero T
		return zero, false
	}
	return a[len(a)-1], true
}

// First returns the first element of a, or false if a is empty.
func First[T any](a []T) (T, bool) {
	if len(a) == 0 {
		var zero T
		return zero, false
	}
	return a[0], true
}
