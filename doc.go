// Package dynarray implements a generic, contiguous, growable array that
// owns its storage and rolls back on failure.
//
// # Overview
//
// Array[T] keeps its elements in a single buffer whose size (the capacity)
// is managed explicitly, separately from the number of live elements (the
// length). It offers:
//
//   - Amortized O(1) append through a doubling growth policy
//   - Manual capacity control with Reserve and ShrinkToFit
//   - Checked (At) and unchecked (Get, Ref, Front, Back) access
//   - Deep copy (Clone, Assign) and O(1) ownership transfer (Take, MoveFrom)
//   - Lexicographic ordering and equality
//   - Forward and reverse, read-only and mutable iterators
//
// # Basic Usage
//
//	a := dynarray.New[int]()
//	if err := a.Reserve(16); err != nil {
//		return err
//	}
//	for i := range 10 {
//		if err := a.PushBack(i); err != nil {
//			return err
//		}
//	}
//	last := a.Back()
//	v, err := a.At(3) // checked
//	for i, v := range a.All() {
//		fmt.Println(i, v)
//	}
//
// # Failure Model
//
// Copying a Go value cannot fail, so element types that need a fallible
// copy implement Cloner. Every operation that copies elements calls Clone
// for such types. Growing the storage moves elements and never calls Clone.
// Allocation requests the runtime rejects are reported as ErrAllocation.
//
// Operations that allocate build the new storage on the side and install it
// only once it is complete. When they fail, the array keeps its previous
// length, capacity, storage and values. This covers Reserve, ShrinkToFit,
// growing Resize and ResizeValue, PushBack, PushBackOwned and Assign.
// Constructors that fail return no array.
//
// ResizeValue within the current capacity fills the new slots in place. If
// a copy fails part way, the length is left unchanged; slots already written
// beyond it stay written but are not visible.
//
// # Growth Policy
//
// When an append or resize needs more room than the capacity provides, the
// new capacity is the larger of twice the old capacity and the required
// length. Appending to an empty array with no storage allocates exactly one
// slot. Reserve allocates exactly what it is asked for.
//
// # Aliasing
//
// Data, Ref and the iterators return views into the array's storage. They
// are invalidated by any operation that changes the length or capacity.
// Nothing detects the use of a stale view.
//
// # Thread Safety
//
// Array is not safe for concurrent use. Concurrent reads are safe only while
// no goroutine mutates the array.
package dynarray
