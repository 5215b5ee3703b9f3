package vec

import "golang.org/x/exp/constraints"

// Equal reports whether a and b have the same size and element-wise equal
// contents in order. Capacity does not participate.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if *a.Ref(i) != *b.Ref(i) {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Less reports whether a precedes b lexicographically.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		x, y := *a.Ref(i), *b.Ref(i)
		if x < y {
			return true
		}
		if y < x {
			return false
		}
	}
	return a.Len() < b.Len()
}

// LessEqual reports a <= b lexicographically.
func LessEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports a > b lexicographically.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterEqual reports a >= b lexicographically.
func GreaterEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
