package dstruct

// Policy constants controlling when and how an Array reallocates its
// backing buffer.
const (
	// InitCapacity is the capacity of a freshly initialized Array and
	// the floor below which contraction never shrinks it.
	InitCapacity = 10

	// ExpansionPoint is the load at or above which an insert grows
	// the buffer before inserting.
	ExpansionPoint = 1.0

	// ContractionPoint is the load at or below which a removal
	// shrinks the buffer afterwards.
	ContractionPoint = 0.3

	// ExpansionFactor scales the capacity on growth.
	ExpansionFactor = 2.0

	// ContractionFactor scales the capacity on contraction.
	ContractionFactor = 0.5
)

// An Array is a growable, contiguous, index-addressable sequence. It
// grows by doubling when full and contracts by halving when its load
// drops to ContractionPoint, never below InitCapacity. The wide band
// between the two thresholds keeps alternating inserts and removals
// at a capacity boundary from thrashing the allocator, so appends and
// tail removals are amortized O(1).
//
// A zero value Array is ready to use. An Array exclusively owns its
// backing buffer and must not be copied after first use. It is not
// safe for concurrent use; callers that share one across goroutines
// must serialize access themselves.
type Array[T comparable] struct {
	noCopy noCopy

	data []T
	size int
	load float64
}

// New returns a new empty Array with capacity InitCapacity.
func New[T comparable]() *Array[T] {
	a := new(Array[T])
	a.init()
	return a
}

func (a *Array[T]) init() {
	if a.data == nil {
		a.data = make([]T, InitCapacity)
		a.recalcLoad()
	}
}

func (a *Array[T]) recalcLoad() {
	a.load = float64(a.size) / float64(len(a.data))
}

// realloc swaps the backing buffer for a fresh one of newCap slots,
// preserving the live elements in order.
func (a *Array[T]) realloc(newCap int) {
	data := make([]T, newCap)
	copy(data, a.data[:a.size])
	a.data = data
	a.recalcLoad()
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the capacity of the backing buffer.
func (a *Array[T]) Cap() int {
	a.init()
	return len(a.data)
}

// Load returns the array's load factor, Len divided by Cap.
func (a *Array[T]) Load() float64 {
	a.init()
	return a.load
}

// At returns the element at index i, or the zero value and false if i
// is out of range.
func (a *Array[T]) At(i int) (v T, ok bool) {
	if i < 0 || i >= a.size {
		return v, false
	}
	return a.data[i], true
}

// Set replaces the element at index i. It reports whether i was in
// range.
func (a *Array[T]) Set(i int, v T) bool {
	if i < 0 || i >= a.size {
		return false
	}
	a.data[i] = v
	return true
}

// Insert makes v the new element at index i, shifting the elements at
// [i, Len) one slot toward the tail. Valid indices are 0 through Len
// inclusive; any other index returns ErrIndexOutOfRange and leaves
// the array unchanged. If the array is full, it reallocates to
// ExpansionFactor times its capacity before inserting.
//
// Any previously obtained element reference is invalidated by a
// successful Insert.
func (a *Array[T]) Insert(i int, v T) error {
	a.init()
	if i < 0 || i > a.size {
		return ErrIndexOutOfRange
	}

	if a.load >= ExpansionPoint {
		a.realloc(int(float64(len(a.data)) * ExpansionFactor))
	}

	copy(a.data[i+1:a.size+1], a.data[i:a.size])
	a.data[i] = v
	a.size++
	a.recalcLoad()
	return nil
}

// Add appends v to the end of the array.
func (a *Array[T]) Add(v T) {
	a.Insert(a.size, v)
}

// Remove deletes the element at index i, shifting the elements after
// it one slot toward the head. Valid indices are 0 through Len-1; any
// other index returns ErrIndexOutOfRange. Once the removal has
// committed, the array contracts to ContractionFactor times its
// capacity if its load has dropped to ContractionPoint or below and
// its capacity is still above InitCapacity.
func (a *Array[T]) Remove(i int) error {
	if i < 0 || i >= a.size {
		return ErrIndexOutOfRange
	}

	copy(a.data[i:a.size-1], a.data[i+1:a.size])
	var zero T
	a.data[a.size-1] = zero // release the dead slot for the GC
	a.size--
	a.recalcLoad()

	if a.load <= ContractionPoint && len(a.data) > InitCapacity {
		newCap := int(float64(len(a.data)) * ContractionFactor)
		if newCap < InitCapacity {
			newCap = InitCapacity
		}
		a.realloc(newCap)
	}
	return nil
}

// RemoveValue removes the first element equal to v, shifting the
// elements after it toward the head. It reports whether an element
// was removed; when v is absent the array is unchanged.
func (a *Array[T]) RemoveValue(v T) bool {
	for i := range a.size {
		if a.data[i] == v {
			a.Remove(i)
			return true
		}
	}
	return false
}

// Contains reports whether the array holds an element equal to v.
func (a *Array[T]) Contains(v T) bool {
	for i := range a.size {
		if a.data[i] == v {
			return true
		}
	}
	return false
}

// Clear resets the array to its freshly constructed state: length 0
// and a new backing buffer of capacity InitCapacity.
func (a *Array[T]) Clear() {
	a.data = make([]T, InitCapacity)
	a.size = 0
	a.recalcLoad()
}
