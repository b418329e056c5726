package rawvec

import "iter"

// Iter walks the live elements of a Vec forward or backward, yielding
// copies. It holds a shared borrow of the vector from creation until Next
// reports the end or Close is called; while any Iter is open the vector
// cannot be mutated.
type Iter[T any] struct {
	vec     *Vec[T]
	index   int
	reverse bool
	end     bool
	closed  bool
}

// Iter returns a view that yields elements from index 0 upwards.
func (v *Vec[T]) Iter() *Iter[T] {
	v.reading()
	v.borrowShared()
	return &Iter[T]{vec: v}
}

// Reverse returns a view that yields elements from the last index down to 0.
// On an empty vector the view is exhausted from the start.
func (v *Vec[T]) Reverse() *Iter[T] {
	v.reading()
	v.borrowShared()
	return &Iter[T]{vec: v, index: v.length - 1, reverse: true, end: v.length == 0}
}

// Next yields the next element. It returns false once the view is
// exhausted, and keeps returning false on every later call.
func (it *Iter[T]) Next() (T, bool) {
	p, ok := advance(it.vec, &it.index, it.reverse, &it.end)
	if !ok {
		it.Close()
		var zero T
		return zero, false
	}
	return *p, true
}

// Close ends the view early and gives its borrow back. It is safe to call
// more than once.
func (it *Iter[T]) Close() {
	it.end = true
	if !it.closed {
		it.closed = true
		it.vec.releaseShared()
	}
}

// IterMut walks the live elements of a Vec forward or backward, yielding
// pointers into the vector's buffer so elements can be overwritten in place.
// It holds the vector's only borrow until Next reports the end or Close is
// called. No element can be added or removed through it.
type IterMut[T any] struct {
	vec     *Vec[T]
	index   int
	reverse bool
	end     bool
	closed  bool
}

// IterMut returns a mutable view that yields elements from index 0 upwards.
func (v *Vec[T]) IterMut() *IterMut[T] {
	v.panicIfReleased()
	v.borrowExclusive()
	return &IterMut[T]{vec: v}
}

// ReverseMut returns a mutable view that yields elements from the last index
// down to 0. On an empty vector the view is exhausted from the start.
func (v *Vec[T]) ReverseMut() *IterMut[T] {
	v.panicIfReleased()
	v.borrowExclusive()
	return &IterMut[T]{vec: v, index: v.length - 1, reverse: true, end: v.length == 0}
}

// Next yields a pointer to the next element. The pointer is valid until the
// vector is next changed structurally.
func (it *IterMut[T]) Next() (*T, bool) {
	p, ok := advance(it.vec, &it.index, it.reverse, &it.end)
	if !ok {
		it.Close()
		return nil, false
	}
	return p, true
}

// Close ends the view early and gives the vector back. It is safe to call
// more than once.
func (it *IterMut[T]) Close() {
	it.end = true
	if !it.closed {
		it.closed = true
		it.vec.releaseExclusive()
	}
}

// advance implements the shared cursor: Ready(index) -> ... -> Done.
// Going backward, yielding index 0 moves the cursor to Done.
func advance[T any](v *Vec[T], index *int, reverse bool, end *bool) (*T, bool) {
	if *end {
		return nil, false
	}
	if *index >= v.length {
		*end = true
		return nil, false
	}
	p := slotAt(v.data, *index)
	switch {
	case !reverse:
		*index++
	case *index == 0:
		*end = true
	default:
		*index--
	}
	return p, true
}

// All returns an iterator over index/value pairs in increasing index order.
// The vector is borrowed for the duration of the range loop.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := v.Iter()
		defer it.Close()
		for i := 0; ; i++ {
			value, ok := it.Next()
			if !ok || !yield(i, value) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs in decreasing index
// order.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := v.Reverse()
		defer it.Close()
		for i := v.length - 1; ; i-- {
			value, ok := it.Next()
			if !ok || !yield(i, value) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in index order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// AllMut returns an iterator over index/pointer pairs in increasing index
// order. The vector is exclusively borrowed for the duration of the loop.
func (v *Vec[T]) AllMut() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		it := v.IterMut()
		defer it.Close()
		for i := 0; ; i++ {
			p, ok := it.Next()
			if !ok || !yield(i, p) {
				return
			}
		}
	}
}
