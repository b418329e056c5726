package rawvec

import "math"

// Vec is a growable contiguous array of T that manages its own slot buffer.
// Not goroutine-safe; guard a shared Vec with an external mutex.
//
// The zero value is an empty vector with no allocation.
type Vec[T any] struct {
	data     *T // first slot; nil iff capacity == 0
	length   int
	capacity int
	borrow   int
	released bool
	stats    allocStats
}

// New creates an empty vector. No allocation is performed.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// WithCapacity creates an empty vector with room for exactly n elements.
// If n <= 0, no allocation is performed.
// It panics if n elements of T would overflow the maximum allocation size.
func WithCapacity[T any](n int) *Vec[T] {
	v := &Vec[T]{}
	if n > 0 {
		v.data = allocSlots[T](n)
		v.capacity = n
		v.stats.allocs++
	}
	return v
}

// Of creates a vector holding values, in order, sized exactly to len(values).
func Of[T any](values ...T) *Vec[T] {
	v := WithCapacity[T](len(values))
	copy(slots(v.data, len(values)), values)
	v.length = len(values)
	return v
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.length
}

// Cap returns the number of allocated slots.
func (v *Vec[T]) Cap() int {
	return v.capacity
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.length == 0
}

// Push appends value, growing the buffer first if it is full.
func (v *Vec[T]) Push(value T) {
	v.mutating()
	if v.length == v.capacity {
		v.grow()
	}
	*slotAt(v.data, v.length) = value
	v.length++
}

// Extend pushes values in order.
func (v *Vec[T]) Extend(values ...T) {
	for _, value := range values {
		v.Push(value)
	}
}

// Pop removes the last element and returns it.
// Returns false if the vector is empty.
func (v *Vec[T]) Pop() (T, bool) {
	v.mutating()
	if v.length == 0 {
		var zero T
		return zero, false
	}
	v.length--
	p := slotAt(v.data, v.length)
	value := *p
	vacate(p)
	return value, true
}

// Get returns the element at index.
// Returns false if index is out of range.
func (v *Vec[T]) Get(index int) (T, bool) {
	v.reading()
	if index < 0 || index >= v.length {
		var zero T
		return zero, false
	}
	return *slotAt(v.data, index), true
}

// GetMut returns a pointer to the element at index.
// Returns false if index is out of range.
// The pointer must not be used after the next structural change
// (Push, Insert, Remove, Pop, Clear, ShrinkToFit, Reserve, Release).
func (v *Vec[T]) GetMut(index int) (*T, bool) {
	v.mutating()
	if index < 0 || index >= v.length {
		return nil, false
	}
	return slotAt(v.data, index), true
}

// GetUnchecked returns the element at index without a bounds check.
// The caller must guarantee 0 <= index < Len(); otherwise the behavior
// is undefined.
func (v *Vec[T]) GetUnchecked(index int) T {
	return *slotAt(v.data, index)
}

// GetUncheckedMut is the pointer-returning form of GetUnchecked and carries
// the same caller obligation.
func (v *Vec[T]) GetUncheckedMut(index int) *T {
	return slotAt(v.data, index)
}

// Insert places value at index, shifting the elements at [index, Len())
// one slot to the right. Inserting at Len() appends.
// Returns false, leaving the vector unchanged, if index > Len().
func (v *Vec[T]) Insert(index int, value T) bool {
	v.mutating()
	if index < 0 || index > v.length {
		return false
	}
	if v.length == v.capacity {
		v.grow()
	}
	p := slotAt(v.data, index)
	if index < v.length {
		relocate(slotAt(v.data, index+1), p, v.length-index)
	}
	*p = value
	v.length++
	return true
}

// Remove takes the element at index out of the vector, shifting the
// elements after it one slot to the left.
// Returns false if index is out of range.
func (v *Vec[T]) Remove(index int) (T, bool) {
	v.mutating()
	if index < 0 || index >= v.length {
		var zero T
		return zero, false
	}
	p := slotAt(v.data, index)
	value := *p
	if tail := v.length - index - 1; tail > 0 {
		relocate(p, slotAt(v.data, index+1), tail)
	}
	v.length--
	vacate(slotAt(v.data, v.length))
	return value, true
}

// Swap exchanges the elements at i and j.
// Returns false if either index is out of range.
func (v *Vec[T]) Swap(i, j int) bool {
	v.mutating()
	if i < 0 || i >= v.length || j < 0 || j >= v.length {
		return false
	}
	pi, pj := slotAt(v.data, i), slotAt(v.data, j)
	*pi, *pj = *pj, *pi
	return true
}

// Clear destroys every element in index order and sets the length to zero.
// The allocation is kept for reuse.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Truncate destroys the elements at [n, Len()) in index order.
// It does nothing if n >= Len(); a negative n is treated as 0.
func (v *Vec[T]) Truncate(n int) {
	v.mutating()
	if n < 0 {
		n = 0
	}
	if n >= v.length {
		return
	}
	for i := n; i < v.length; i++ {
		destroy(slotAt(v.data, i))
	}
	v.length = n
}

// Reserve ensures room for at least additional more elements, doubling the
// capacity until the request fits. At most one allocation is made.
func (v *Vec[T]) Reserve(additional int) {
	v.mutating()
	if additional <= 0 || v.capacity-v.length >= additional {
		return
	}
	if additional > math.MaxInt-v.length {
		panic("rawvec: capacity overflow")
	}
	need := v.length + additional
	newCap := max(1, v.capacity)
	for newCap < need {
		newCap = doubled(newCap)
	}
	v.reallocate(newCap)
	v.stats.growths++
}

// ShrinkToFit reallocates the buffer to exactly Len() slots. An empty vector
// gives its allocation back entirely.
func (v *Vec[T]) ShrinkToFit() {
	v.mutating()
	if v.capacity == 0 || v.capacity == v.length {
		return
	}
	if v.length == 0 {
		v.free()
		return
	}
	v.reallocate(v.length)
}

// AsSlice returns the live elements as a slice with len == cap == Len().
// It aliases the vector's buffer and must not be written to or kept past the
// next structural change.
func (v *Vec[T]) AsSlice() []T {
	v.reading()
	return slots(v.data, v.length)
}

// AsMutSlice is AsSlice for callers that overwrite elements in place.
func (v *Vec[T]) AsMutSlice() []T {
	v.mutating()
	return slots(v.data, v.length)
}

// Release destroys every element in index order and gives the allocation
// back. The vector is unusable afterwards; any subsequent operation other
// than Len, Cap, IsEmpty, String, Dump or Release will panic.
// Release is idempotent.
func (v *Vec[T]) Release() {
	if v.released {
		return
	}
	v.checkUnborrowed()
	for i := 0; i < v.length; i++ {
		destroy(slotAt(v.data, i))
	}
	v.length = 0
	v.free()
	v.released = true
}

// grow makes room for one more element: capacity becomes max(1, 2*capacity).
func (v *Vec[T]) grow() {
	newCap := 1
	if v.capacity != 0 {
		newCap = doubled(v.capacity)
	}
	v.reallocate(newCap)
	v.stats.growths++
}

// reallocate moves the live elements into a fresh buffer of newCap slots.
func (v *Vec[T]) reallocate(newCap int) {
	data := allocSlots[T](newCap)
	v.stats.allocs++
	relocate(data, v.data, v.length)
	v.stats.relocated += v.length
	if v.capacity != 0 {
		v.stats.frees++
	}
	v.data = data
	v.capacity = newCap
}

// free drops the allocation, if any.
func (v *Vec[T]) free() {
	if v.capacity != 0 {
		v.stats.frees++
	}
	v.data = nil
	v.capacity = 0
}

func doubled(n int) int {
	if n > math.MaxInt/2 {
		panic("rawvec: capacity overflow")
	}
	return n * 2
}
