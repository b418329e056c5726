package rawvec

import (
	"math"
	"reflect"
	"unsafe"
)

// maxAlloc is the largest byte size a single slot allocation may request.
const maxAlloc = math.MaxInt

// Releaser is implemented by element types that hold resources which must be
// freed when the vector destroys the element (Clear, Truncate, Release).
// Elements moved out through Pop or Remove are owned by the caller and are
// never released by the vector.
type Releaser interface {
	Release()
}

// elemSize returns the size in bytes of one slot of T.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// layoutSize returns the byte size of n slots of T.
// It panics if the size cannot be represented.
func layoutSize[T any](n int) uintptr {
	if n < 0 {
		panic("rawvec: capacity overflow")
	}
	size := elemSize[T]()
	if size != 0 && uintptr(n) > uintptr(maxAlloc)/size {
		panic("rawvec: capacity overflow")
	}
	return size * uintptr(n)
}

// allocSlots allocates n contiguous slots of T and returns the first one.
// The slots hold the zero value of T, which stands for uninitialized memory:
// the vector never reads a slot at or past its length.
// n must be > 0.
func allocSlots[T any](n int) *T {
	layoutSize[T](n)
	buf := make([]T, n)
	return unsafe.SliceData(buf)
}

// slotAt returns a pointer to slot i of the buffer starting at base.
// i is not checked against the buffer's capacity.
func slotAt[T any](base *T, i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(base), uintptr(i)*elemSize[T]()))
}

// slots views the first n slots starting at base as a slice with len == cap == n.
// Returns nil if n == 0.
func slots[T any](base *T, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice(base, n)
}

// relocate moves n live elements from src to dst. The ranges may overlap.
func relocate[T any](dst, src *T, n int) {
	if n <= 0 {
		return
	}
	copy(unsafe.Slice(dst, n), unsafe.Slice(src, n))
}

// vacate turns a slot back into uninitialized memory after its value has
// been moved out, so the slot no longer keeps anything reachable.
func vacate[T any](p *T) {
	var zero T
	*p = zero
}

// destroy releases the element held by a live slot, then vacates it.
// A nil element holds nothing and is not released.
func destroy[T any](p *T) {
	if r, ok := any(*p).(Releaser); ok {
		if !isNil(r) {
			r.Release()
		}
	} else if r, ok := any(p).(Releaser); ok {
		r.Release()
	}
	vacate(p)
}

// isNil reports whether x is nil or a typed nil of a nilable kind.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	switch rv := reflect.ValueOf(x); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
