package dynarray

import (
	"cmp"
	"slices"
)

// A nil *Array compares as an empty array in all functions below.

// EqualFunc reports whether a and b have the same length and eq holds for
// every pair of corresponding elements.
func EqualFunc[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	x, y := a.Data(), b.Data()
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !eq(x[i], y[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Array[T]) bool {
	return !Equal(a, b)
}

// LexicographicalLess reports whether a orders before b. Elements are
// compared pairwise with less; the first position where one is less than
// the other decides. If every compared pair is equivalent, the shorter
// array orders first.
func LexicographicalLess[T any](a, b *Array[T], less func(x, y T) bool) bool {
	x, y := a.Data(), b.Data()
	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		if less(x[i], y[i]) {
			return true
		}
		if less(y[i], x[i]) {
			return false
		}
	}
	return len(x) < len(y)
}

// Less reports whether a orders lexicographically before b, comparing
// elements with the < operator. Elements that are unordered with respect to
// each other, such as NaN and any float, are equivalent.
func Less[T cmp.Ordered](a, b *Array[T]) bool {
	return LexicographicalLess(a, b, less[T])
}

func less[T cmp.Ordered](x, y T) bool {
	return x < y
}

// Greater reports whether a orders lexicographically after b.
func Greater[T cmp.Ordered](a, b *Array[T]) bool {
	return Less(b, a)
}

// LessOrEqual reports whether a does not order after b.
func LessOrEqual[T cmp.Ordered](a, b *Array[T]) bool {
	return !Greater(a, b)
}

// GreaterOrEqual reports whether a does not order before b.
func GreaterOrEqual[T cmp.Ordered](a, b *Array[T]) bool {
	return !Less(a, b)
}

// CompareFunc compares a and b lexicographically using compare on each
// pair of elements. The result is the first non-zero result of compare, or
// -1, 0, +1 by length when one array is a prefix of the other.
func CompareFunc[T any](a, b *Array[T], compare func(x, y T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), compare)
}

// Compare is the tri-state form of Less; it returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case y < x:
			return +1
		}
		return 0
	})
}
