package dynarray

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Array is a contiguous, growable sequence of T that exclusively owns its
// storage. The zero value is an empty array ready for use.
// Not goroutine-safe.
type Array[T any] struct {
	buf      []T // len(buf) is the capacity; nil when the capacity is 0
	length   int // live elements occupy buf[:length]
	reallocs int
}

// New returns an empty array with no storage.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// Make returns an array of n zero values.
func Make[T any](n int) (*Array[T], error) {
	a := New[T]()
	if err := a.Resize(n); err != nil {
		return nil, err
	}
	return a, nil
}

// MakeFilled returns an array of n copies of value.
func MakeFilled[T any](n int, value T) (*Array[T], error) {
	a := New[T]()
	if err := a.ResizeValue(n, value); err != nil {
		return nil, err
	}
	return a, nil
}

// Of returns an array holding copies of values, with capacity exactly
// len(values). If a copy fails the partially built storage is dropped and no
// array is returned.
func Of[T any](values ...T) (*Array[T], error) {
	buf, err := allocate[T](len(values))
	if err != nil {
		return nil, err
	}
	if err := cloneInto(buf, 0, values); err != nil {
		return nil, err
	}
	return &Array[T]{buf: buf, length: len(values)}, nil
}

// Collect returns an array holding copies of the values produced by seq,
// with capacity equal to the number of values. seq is walked once, so
// single-use sequences such as ones draining a channel are collected in
// full. If a copy fails no array is returned.
func Collect[T any](seq iter.Seq[T]) (*Array[T], error) {
	var scratch []T
	n := 0
	var err error
	for v := range seq {
		c, cerr := copyElem(v)
		if cerr != nil {
			err = errors.Wrapf(cerr, "copying element %d", n)
			break
		}
		if n == len(scratch) {
			grown, aerr := allocate[T](grownCap(len(scratch), n+1))
			if aerr != nil {
				err = aerr
				break
			}
			copy(grown, scratch)
			scratch = grown
		}
		scratch[n] = c
		n++
	}
	if err != nil {
		return nil, err
	}
	buf, err := allocate[T](n)
	if err != nil {
		return nil, err
	}
	copy(buf, scratch[:n])
	return &Array[T]{buf: buf, length: n}, nil
}

// Clone returns a deep copy of a with the same capacity. If an element copy
// fails no array is returned and a is unaffected.
func (a *Array[T]) Clone() (*Array[T], error) {
	buf, err := allocate[T](a.Cap())
	if err != nil {
		return nil, err
	}
	if err := cloneInto(buf, 0, a.Data()); err != nil {
		return nil, err
	}
	return &Array[T]{buf: buf, length: a.Len()}, nil
}

// Take transfers a's storage to a new array in O(1) and leaves a empty.
func (a *Array[T]) Take() *Array[T] {
	t := &Array[T]{buf: a.buf, length: a.length}
	a.buf, a.length = nil, 0
	return t
}

// Assign replaces the contents of a with a copy of src. The copy is built
// in full before a is touched, so on failure a is left exactly as it was.
func (a *Array[T]) Assign(src *Array[T]) error {
	if a == src {
		return nil
	}
	tmp, err := src.Clone()
	if err != nil {
		return err
	}
	a.commit(tmp.buf, tmp.length)
	return nil
}

// MoveFrom takes over src's storage, releasing a's previous storage and
// leaving src empty.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	src.Take().Swap(a)
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.length
}

// Cap returns the number of allocated element slots.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return len(a.buf)
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.Len() == 0
}

// Front returns the first element. The array must not be empty.
func (a *Array[T]) Front() T {
	return a.buf[0]
}

// Back returns the last element. The array must not be empty.
func (a *Array[T]) Back() T {
	return a.buf[a.length-1]
}

// Get returns the element at i without checking i against Len.
func (a *Array[T]) Get(i int) T {
	return a.buf[i]
}

// Ref returns a pointer to the element at i without checking i against Len.
// The pointer is invalidated by any operation that reallocates storage.
func (a *Array[T]) Ref(i int) *T {
	return &a.buf[i]
}

// At returns the element at i, or an error marked ErrOutOfRange when i is
// outside [0, Len()).
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.Len() {
		var zero T
		return zero, outOfRange(i, a.Len())
	}
	return a.buf[i], nil
}

// Data returns the live elements as a slice aliasing the array's storage.
// Writes through it are visible in the array. It is invalidated by any
// operation that changes the length or reallocates.
func (a *Array[T]) Data() []T {
	if a == nil {
		return nil
	}
	return a.buf[:a.length:a.length]
}
