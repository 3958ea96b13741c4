package dynarray

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Cloner is implemented by element types whose copies must be made
// explicitly and may fail, for example values that hold a handle to an
// external resource. Copying operations (Clone, Assign, Of, Collect,
// PushBack, ResizeValue, MakeFilled) go through Clone when T implements it.
// Moves never call Clone.
type Cloner[T any] interface {
	Clone() (T, error)
}

// copyElem returns a copy of v, using Clone when T provides one.
func copyElem[T any](v T) (T, error) {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v, nil
}

// allocate returns a zeroed buffer of exactly n elements, or nil for n == 0.
// The runtime reports impossible sizes by panicking with a runtime.Error;
// those panics are returned as ErrAllocation instead.
func allocate[T any](n int) (buf []T, err error) {
	if n < 0 {
		return nil, negativeLength(n)
	}
	if n == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf = nil
			err = errors.Wrapf(ErrAllocation, "%d elements of %d bytes: %v", n, elemSize[T](), re)
		}
	}()
	return make([]T, n), nil
}

// cloneInto copies src into dst[off:] element by element. On failure the
// already written slots of dst are left as they are; callers own dst and
// decide whether it is discarded.
func cloneInto[T any](dst []T, off int, src []T) error {
	for i, v := range src {
		c, err := copyElem(v)
		if err != nil {
			return errors.Wrapf(err, "copying element %d", off+i)
		}
		dst[off+i] = c
	}
	return nil
}

// fill writes copies of value into dst.
func fill[T any](dst []T, off int, value T) error {
	for i := range dst {
		c, err := copyElem(value)
		if err != nil {
			return errors.Wrapf(err, "filling element %d", off+i)
		}
		dst[i] = c
	}
	return nil
}

// grownCap returns the capacity to grow to when at least required slots are
// needed and capacity is exhausted: double the current capacity, or required
// if that is larger. Doubling saturates rather than overflowing.
func grownCap(capacity, required int) int {
	doubled := math.MaxInt
	if capacity <= math.MaxInt/2 {
		doubled = 2 * capacity
	}
	return max(doubled, required)
}

// elemSize returns the size in bytes of a single T.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
