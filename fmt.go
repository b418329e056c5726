package rawvec

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// String renders the live elements in index order, each in its Go-syntax
// form, e.g. ["Hello", "World"].
func (v *Vec[T]) String() string {
	v.checkReadable()
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < v.length; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%#v", *slotAt(v.data, i))
	}
	b.WriteByte(']')
	return b.String()
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump returns a deep, multi-line rendering of the vector for debugging:
// a header with length and capacity followed by every live slot.
func (v *Vec[T]) Dump() string {
	v.checkReadable()
	var b strings.Builder
	fmt.Fprintf(&b, "Vec[%v] len=%d cap=%d\n", reflect.TypeFor[T](), v.length, v.capacity)
	for i := 0; i < v.length; i++ {
		fmt.Fprintf(&b, "[%d] %s", i, dumpConfig.Sdump(*slotAt(v.data, i)))
	}
	return b.String()
}
