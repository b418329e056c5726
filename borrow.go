package rawvec

// exclusive marks a Vec whose single mutable borrow is outstanding.
const exclusive = -1

// The borrow counter enforces one mutable borrow xor any number of shared
// borrows. It is a plain int: Vec is not goroutine-safe and the counter
// only catches misuse within a single goroutine.

func (v *Vec[T]) borrowShared() {
	if v.borrow == exclusive {
		panic("rawvec: already mutably borrowed")
	}
	v.borrow++
}

func (v *Vec[T]) releaseShared() {
	if v.borrow > 0 {
		v.borrow--
	}
}

func (v *Vec[T]) borrowExclusive() {
	v.checkUnborrowed()
	v.borrow = exclusive
}

func (v *Vec[T]) releaseExclusive() {
	if v.borrow == exclusive {
		v.borrow = 0
	}
}

// checkUnborrowed panics if any view is outstanding.
func (v *Vec[T]) checkUnborrowed() {
	switch {
	case v.borrow == exclusive:
		panic("rawvec: already mutably borrowed")
	case v.borrow > 0:
		panic("rawvec: already borrowed")
	}
}

// checkReadable panics if a mutable view is outstanding.
func (v *Vec[T]) checkReadable() {
	if v.borrow == exclusive {
		panic("rawvec: already mutably borrowed")
	}
}

// panicIfReleased panics if the vector has been released.
func (v *Vec[T]) panicIfReleased() {
	if v.released {
		panic("rawvec: use after Release()")
	}
}

// mutating guards every operation that changes the vector or hands out
// a writable reference into it.
func (v *Vec[T]) mutating() {
	v.panicIfReleased()
	v.checkUnborrowed()
}

// reading guards every operation that reads live elements.
func (v *Vec[T]) reading() {
	v.panicIfReleased()
	v.checkReadable()
}

// Borrowed reports whether any view over the vector is still outstanding.
func (v *Vec[T]) Borrowed() bool {
	return v.borrow != 0
}
