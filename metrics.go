package vec

// Unused returns the number of allocated slots beyond the live range.
func (v *Vector[T]) Unused() int {
	return v.capacity - v.size
}

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 for a vector with no allocation.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Metrics returns a snapshot of occupancy statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.size,
		Cap:         v.capacity,
		Unused:      v.Unused(),
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains occupancy statistics for a vector.
type VectorMetrics struct {
	Len         int     // Live elements
	Cap         int     // Allocated slots
	Unused      int     // Allocated slots beyond the live range
	Utilization float64 // Ratio of live to allocated (0.0-1.0)
}
