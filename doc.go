// Package rawvec implements a growable contiguous array (vector) that manages
// its own slot buffer instead of relying on append.
//
// # Overview
//
// A Vec owns one contiguous buffer of slots. Slots [0, Len()) hold live
// elements; slots [Len(), Cap()) are allocated but never read. When a push
// finds the buffer full the vector grows to max(1, 2*Cap()), relocating the
// live elements in index order. Growth is never speculative.
//
// # Basic Usage
//
//	v := rawvec.New[string]() // No allocation yet
//	defer v.Release()         // Destroy elements, drop the buffer
//
//	v.Push("Hello")
//	v.Push("World")
//	s, ok := v.Get(1)    // "World", true
//	last, ok := v.Pop()  // "World", true
//	v.Insert(0, "Oh")    // Shift right, then write
//	first, ok := v.Remove(0)
//
// # Iteration
//
// Views borrow the vector. Shared views (Iter, Reverse) may coexist;
// a mutable view (IterMut, ReverseMut) must be the only borrow:
//
//	it := v.Reverse()
//	for s, ok := it.Next(); ok; s, ok = it.Next() {
//		fmt.Println(s)
//	}
//
//	for _, p := range v.AllMut() {
//		*p = strings.ToUpper(*p)
//	}
//
// A view gives its borrow back when Next reports the end or Close is called.
// Mutating the vector while a view is open panics.
//
// # Thread Safety
//
// Vec is not thread-safe. Guard a shared vector with an external mutex.
//
// # Element Lifecycle
//
// Clear, Truncate and Release destroy elements in index order, calling
// Release on elements that implement Releaser. Pop and Remove move the
// element out to the caller instead. Vacated slots are reset to the zero
// value so the vector never keeps a removed element reachable.
//
// # Important Notes
//
//   - Slices from AsSlice and pointers from GetMut alias the buffer and are
//     invalidated by any structural change (push, insert, remove, grow)
//   - GetUnchecked and GetUncheckedMut skip the bounds check; an out of range
//     index is undefined behavior
//   - A released vector panics on use, except Len, Cap, IsEmpty and Release
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Growths: %d, relocated: %d\n", m.Growths, m.Relocated)
package rawvec
