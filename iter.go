package dynarray

import "iter"

// The iterators below are views over the live elements as they are when
// iteration starts. Mutating the array's length or capacity during
// iteration is not detected and leaves the view reading stale storage.

// All returns an iterator over index-value pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.Data() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.Data() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from the last element
// to the first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := a.Data()
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}

// Refs returns an iterator over index-pointer pairs in order. Writes
// through the pointers modify the array.
func (a *Array[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		data := a.Data()
		for i := range data {
			if !yield(i, &data[i]) {
				return
			}
		}
	}
}

// BackwardRefs is Refs from the last element to the first.
func (a *Array[T]) BackwardRefs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		data := a.Data()
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, &data[i]) {
				return
			}
		}
	}
}
