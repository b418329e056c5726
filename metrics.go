package rawvec

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// allocStats counts buffer events over the lifetime of a Vec.
type allocStats struct {
	allocs    int
	frees     int
	growths   int
	relocated int
}

// ElemSize returns the size in bytes of one slot.
func (v *Vec[T]) ElemSize() int {
	return int(elemSize[T]())
}

// SizeInUse returns the number of bytes held by live elements.
func (v *Vec[T]) SizeInUse() int {
	return v.length * v.ElemSize()
}

// SizeAllocated returns the number of bytes held by all allocated slots.
func (v *Vec[T]) SizeAllocated() int {
	return v.capacity * v.ElemSize()
}

// Utilization returns the ratio of live elements to allocated slots (0.0 to 1.0).
// Returns 0.0 if nothing is allocated.
func (v *Vec[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.length) / float64(v.capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vec[T]) Metrics() VecMetrics {
	return VecMetrics{
		Len:           v.length,
		Cap:           v.capacity,
		ElemSize:      v.ElemSize(),
		SizeInUse:     v.SizeInUse(),
		SizeAllocated: v.SizeAllocated(),
		Utilization:   v.Utilization(),
		Allocs:        v.stats.allocs,
		Frees:         v.stats.frees,
		Growths:       v.stats.growths,
		Relocated:     v.stats.relocated,
	}
}

// VecMetrics contains statistical information about a vector.
type VecMetrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated slots
	ElemSize      int     // Bytes per slot
	SizeInUse     int     // Bytes held by live elements
	SizeAllocated int     // Bytes held by all slots
	Utilization   float64 // Ratio of live elements to slots (0.0-1.0)
	Allocs        int     // Buffer allocations
	Frees         int     // Buffer releases
	Growths       int     // Capacity increases
	Relocated     int     // Elements moved between buffers
}

func (m VecMetrics) String() string {
	return fmt.Sprintf("len=%d cap=%d in-use=%s allocated=%s utilization=%.1f%% allocs=%d frees=%d growths=%d relocated=%d",
		m.Len, m.Cap,
		humanize.IBytes(uint64(m.SizeInUse)), humanize.IBytes(uint64(m.SizeAllocated)),
		m.Utilization*100, m.Allocs, m.Frees, m.Growths, m.Relocated)
}
