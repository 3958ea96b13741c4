package dynarray

import "github.com/cockroachdb/errors"

var (
	// ErrOutOfRange is reported by checked access with an index outside
	// [0, Len()).
	ErrOutOfRange = errors.New("dynarray: index out of range")

	// ErrAllocation is reported when element storage cannot be allocated.
	ErrAllocation = errors.New("dynarray: allocation failed")

	// ErrNegativeLength is reported when a length argument is negative.
	ErrNegativeLength = errors.New("dynarray: negative length")
)

func outOfRange(i, n int) error {
	return errors.Mark(errors.Newf("dynarray: index %d out of range [0:%d]", i, n), ErrOutOfRange)
}

func negativeLength(n int) error {
	return errors.Mark(errors.Newf("dynarray: negative length %d", n), ErrNegativeLength)
}
