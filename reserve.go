package vec

// CapacityHint is an immutable reservation request carrying only a desired
// capacity. It exists to be consumed by NewReserved and has no other use.
type CapacityHint struct {
	capacity int
}

// Reserve builds a CapacityHint requesting n pre-allocated slots.
func Reserve(n int) CapacityHint {
	return CapacityHint{capacity: n}
}
