package dynarray

import "github.com/cockroachdb/redact"

// String renders the array as [e0 e1 ...].
func (a *Array[T]) String() string {
	return redact.StringWithoutMarkers(a)
}

// SafeFormat implements redact.SafeFormatter. Elements are printed as
// unsafe values.
func (a *Array[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('[')
	for i, v := range a.Data() {
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Print(v)
	}
	w.SafeRune(']')
}
