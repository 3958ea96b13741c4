package dynarray

import "github.com/cockroachdb/errors"

// Every operation below that needs new storage builds it on the side and
// only then calls commit, so a failure before the commit leaves the array
// untouched.

// commit installs buf as the array's storage with the given length.
func (a *Array[T]) commit(buf []T, length int) {
	a.buf = buf
	a.length = length
	a.reallocs++
}

// relocate returns a fresh buffer of n slots holding the live elements.
func (a *Array[T]) relocate(n int) ([]T, error) {
	buf, err := allocate[T](n)
	if err != nil {
		return nil, err
	}
	copy(buf, a.buf[:a.length])
	return buf, nil
}

// Reserve ensures capacity for at least n elements, reallocating to exactly
// n when the current capacity is smaller. On failure the array is unchanged.
func (a *Array[T]) Reserve(n int) error {
	if n <= len(a.buf) {
		return nil
	}
	buf, err := a.relocate(n)
	if err != nil {
		return errors.Wrapf(err, "reserving %d", n)
	}
	a.commit(buf, a.length)
	return nil
}

// ShrinkToFit reduces the capacity to Len, releasing the storage entirely
// when the array is empty. On failure the array is unchanged.
func (a *Array[T]) ShrinkToFit() error {
	if a.length == len(a.buf) {
		return nil
	}
	buf, err := a.relocate(a.length)
	if err != nil {
		return errors.Wrap(err, "shrinking")
	}
	a.commit(buf, a.length)
	return nil
}

// Resize sets the length to n. New elements are zero values; dropped
// elements are released.
func (a *Array[T]) Resize(n int) error {
	return a.resize(n, func(dst []T, _ int) error {
		clear(dst)
		return nil
	})
}

// ResizeValue sets the length to n, filling new elements with copies of
// value.
//
// When n fits the current capacity the new slots are filled in place; if a
// copy fails the length stays at its old value and the error is returned.
// When n exceeds the capacity the array grows by the doubling policy and a
// failure leaves it exactly as it was.
func (a *Array[T]) ResizeValue(n int, value T) error {
	return a.resize(n, func(dst []T, off int) error {
		return fill(dst, off, value)
	})
}

func (a *Array[T]) resize(n int, fillTail func(dst []T, off int) error) error {
	if n < 0 {
		return negativeLength(n)
	}
	if n == a.length {
		return nil
	}
	if n < a.length {
		clear(a.buf[n:a.length])
		a.length = n
		return nil
	}
	if n <= len(a.buf) {
		if err := fillTail(a.buf[a.length:n], a.length); err != nil {
			return err
		}
		a.length = n
		return nil
	}
	buf, err := a.relocate(grownCap(len(a.buf), n))
	if err != nil {
		return errors.Wrapf(err, "resizing to %d", n)
	}
	if err := fillTail(buf[a.length:n], a.length); err != nil {
		return err
	}
	a.commit(buf, n)
	return nil
}

// Clear removes all elements. The capacity is kept.
func (a *Array[T]) Clear() {
	clear(a.buf[:a.length])
	a.length = 0
}

// PushBack appends a copy of value, growing the storage when it is full.
// If the copy or the growth fails the array is left exactly as it was,
// including its capacity and storage.
func (a *Array[T]) PushBack(value T) error {
	v, err := copyElem(value)
	if err != nil {
		return errors.Wrapf(err, "copying element %d", a.length)
	}
	return a.PushBackOwned(v)
}

// PushBackOwned appends value without copying it; the array takes
// ownership. It fails only if growing the storage fails, in which case the
// array is unchanged.
func (a *Array[T]) PushBackOwned(value T) error {
	if a.length < len(a.buf) {
		a.buf[a.length] = value
		a.length++
		return nil
	}
	buf, err := a.relocate(grownCap(len(a.buf), a.length+1))
	if err != nil {
		return errors.Wrap(err, "growing for append")
	}
	buf[a.length] = value
	a.commit(buf, a.length+1)
	return nil
}

// PopBack removes the last element. The array must not be empty.
func (a *Array[T]) PopBack() {
	var zero T
	a.buf[a.length-1] = zero
	a.length--
}

// Swap exchanges the contents of a and other in O(1).
func (a *Array[T]) Swap(other *Array[T]) {
	a.buf, other.buf = other.buf, a.buf
	a.length, other.length = other.length, a.length
}
