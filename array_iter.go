//go:build go1.23

package dstruct

import "iter"

// All returns an iterator over index-element pairs of the array in
// order. The array must not be mutated during iteration.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range a.size {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of the array in order.
// The array must not be mutated during iteration.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range a.size {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}
