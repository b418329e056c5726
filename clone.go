package rawvec

// Clone returns an independent vector holding copies of the live elements in
// order. Its capacity equals v.Len(), not v.Cap().
// Elements are copied by assignment; use CloneFunc when T refers to data that
// must be duplicated as well. A shallow clone of Releaser elements that are
// pointers shares each resource with v, so releasing both vectors releases
// it twice; give such types a CloneFunc that duplicates the resource.
func (v *Vec[T]) Clone() *Vec[T] {
	v.reading()
	c := WithCapacity[T](v.length)
	relocate(c.data, v.data, v.length)
	c.length = v.length
	return c
}

// CloneFunc is like Clone but duplicates every element with fn.
func (v *Vec[T]) CloneFunc(fn func(T) T) *Vec[T] {
	v.reading()
	c := WithCapacity[T](v.length)
	for i := 0; i < v.length; i++ {
		c.Push(fn(*slotAt(v.data, i)))
	}
	return c
}

// ToSlice copies the live elements into a new Go slice with
// len == cap == v.Len().
func (v *Vec[T]) ToSlice() []T {
	v.reading()
	out := make([]T, v.length)
	copy(out, slots(v.data, v.length))
	return out
}
