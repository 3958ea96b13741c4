package dynarray

// Metrics contains storage statistics for an array.
type Metrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated element slots
	ElemSize      int     // Size of one element in bytes
	BytesInUse    int     // Bytes occupied by live elements
	BytesReserved int     // Bytes of allocated storage
	Reallocations int     // Times the storage was replaced
	Utilization   float64 // Len / Cap (0.0-1.0)
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the array has no capacity.
func (a *Array[T]) Utilization() float64 {
	if a.Cap() == 0 {
		return 0
	}
	return float64(a.Len()) / float64(a.Cap())
}

// Reallocations returns how many times the array's storage has been
// replaced by growth, Reserve, ShrinkToFit or Assign. The count belongs to
// the receiver: Swap, Take and MoveFrom move storage without moving or
// incrementing it.
func (a *Array[T]) Reallocations() int {
	if a == nil {
		return 0
	}
	return a.reallocs
}

// Metrics returns a snapshot of the array's storage statistics.
func (a *Array[T]) Metrics() Metrics {
	size := elemSize[T]()
	return Metrics{
		Len:           a.Len(),
		Cap:           a.Cap(),
		ElemSize:      size,
		BytesInUse:    a.Len() * size,
		BytesReserved: a.Cap() * size,
		Reallocations: a.Reallocations(),
		Utilization:   a.Utilization(),
	}
}
