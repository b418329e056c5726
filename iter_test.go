package rawvec

import (
	"strings"
	"testing"
)

func collect[T any](it *Iter[T]) []T {
	var out []T
	for value, ok := it.Next(); ok; value, ok = it.Next() {
		out = append(out, value)
	}
	return out
}

func TestIterDirections(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		forward []string
		reverse []string
	}{
		{"empty", nil, nil, nil},
		{"one", []string{"a"}, []string{"a"}, []string{"a"}},
		{"three", []string{"a", "b", "c"}, []string{"a", "b", "c"}, []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Of(tt.values...)
			if got := collect(v.Iter()); !equal(got, tt.forward) {
				t.Errorf("Iter() = %v, want %v", got, tt.forward)
			}
			if got := collect(v.Reverse()); !equal(got, tt.reverse) {
				t.Errorf("Reverse() = %v, want %v", got, tt.reverse)
			}
			if v.Borrowed() {
				t.Error("exhausted views still hold a borrow")
			}
		})
	}
}

func TestIterExhaustionIsSticky(t *testing.T) {
	v := Of(1, 2)
	for _, it := range []*Iter[int]{v.Iter(), v.Reverse()} {
		collect(it)
		for i := 0; i < 3; i++ {
			if value, ok := it.Next(); ok {
				t.Errorf("Next() after end = %d, true", value)
			}
		}
	}
	if v.borrow != 0 {
		t.Errorf("borrow = %d after exhaustion, want 0", v.borrow)
	}
}

func TestIterHoldsBorrowUntilEnd(t *testing.T) {
	v := Of(1, 2)
	it := v.Iter()
	it.Next()
	it.Next()
	if !v.Borrowed() {
		t.Fatal("view released its borrow before reporting the end")
	}
	if _, ok := it.Next(); ok {
		t.Fatal("Next() past the end reported a value")
	}
	if v.Borrowed() {
		t.Error("view kept its borrow after reporting the end")
	}
}

func TestIterClose(t *testing.T) {
	v := Of(1, 2, 3)
	it := v.Iter()
	it.Next()
	it.Close()
	it.Close()
	if v.Borrowed() {
		t.Error("Close did not give the borrow back")
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() after Close reported a value")
	}
	v.Push(4)
}

func TestSharedViewsCoexist(t *testing.T) {
	v := Of(1, 2, 3)
	a := v.Iter()
	b := v.Reverse()
	if v.borrow != 2 {
		t.Errorf("borrow = %d, want 2", v.borrow)
	}
	x, _ := a.Next()
	y, _ := b.Next()
	if x != 1 || y != 3 {
		t.Errorf("interleaved views yielded %d, %d, want 1, 3", x, y)
	}
	if got, ok := v.Get(1); !ok || got != 2 {
		t.Errorf("Get(1) under shared borrow = %d, %v", got, ok)
	}
	a.Close()
	b.Close()
}

func TestIterMut(t *testing.T) {
	v := Of("a", "b", "c")
	it := v.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p = strings.ToUpper(*p)
	}
	if want := []string{"A", "B", "C"}; !equal(v.ToSlice(), want) {
		t.Errorf("after IterMut = %v, want %v", v.ToSlice(), want)
	}

	var order []string
	rit := v.ReverseMut()
	for p, ok := rit.Next(); ok; p, ok = rit.Next() {
		order = append(order, *p)
		*p += "!"
	}
	if want := []string{"C", "B", "A"}; !equal(order, want) {
		t.Errorf("ReverseMut order = %v, want %v", order, want)
	}
	if want := []string{"A!", "B!", "C!"}; !equal(v.ToSlice(), want) {
		t.Errorf("after ReverseMut = %v, want %v", v.ToSlice(), want)
	}
	if v.Borrowed() {
		t.Error("exhausted mutable views still hold the borrow")
	}
}

func TestReverseMutEmpty(t *testing.T) {
	v := New[int]()
	it := v.ReverseMut()
	if p, ok := it.Next(); ok || p != nil {
		t.Errorf("ReverseMut on empty yielded %v, %v", p, ok)
	}
	if v.Borrowed() {
		t.Error("borrow kept after end")
	}
}

func TestRangeAdapters(t *testing.T) {
	v := Of(10, 20, 30)

	var idx, vals []int
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	if !equal(idx, []int{0, 1, 2}) || !equal(vals, []int{10, 20, 30}) {
		t.Errorf("All() = %v %v", idx, vals)
	}

	idx, vals = nil, nil
	for i, x := range v.Backward() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	if !equal(idx, []int{2, 1, 0}) || !equal(vals, []int{30, 20, 10}) {
		t.Errorf("Backward() = %v %v", idx, vals)
	}

	vals = nil
	for x := range v.Values() {
		if x == 20 {
			break
		}
		vals = append(vals, x)
	}
	if !equal(vals, []int{10}) {
		t.Errorf("Values() with break = %v", vals)
	}
	if v.Borrowed() {
		t.Error("break out of range loop kept the borrow")
	}

	for i, p := range v.AllMut() {
		*p += i
	}
	if want := []int{10, 21, 32}; !equal(v.ToSlice(), want) {
		t.Errorf("after AllMut = %v, want %v", v.ToSlice(), want)
	}

	for range New[int]().Backward() {
		t.Error("Backward() on empty yielded")
	}
}
