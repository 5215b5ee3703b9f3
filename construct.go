package vec

// New returns an empty vector. No memory is allocated.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize returns a vector of n zero-valued elements with size and capacity
// both n. If n == 0 no memory is allocated.
func NewSize[T any](n int) *Vector[T] {
	if n < 0 {
		panic("vec: negative size")
	}
	return &Vector[T]{items: NewHandle[T](n), size: n, capacity: n}
}

// NewFill returns a vector of n copies of fill with size and capacity both n.
func NewFill[T any](n int, fill T) *Vector[T] {
	v := NewSize[T](n)
	buf := v.items.Get()
	for i := range buf {
		buf[i] = fill
	}
	return v
}

// Of returns a vector holding vals in order, with size and capacity both
// len(vals). The values are copied; the argument slice is not adopted.
func Of[T any](vals ...T) *Vector[T] {
	v := NewSize[T](len(vals))
	copy(v.items.Get(), vals)
	return v
}

// NewReserved returns an empty vector with capacity pre-allocated per hint.
// No live elements are created.
func NewReserved[T any](hint CapacityHint) *Vector[T] {
	v := New[T]()
	v.Reserve(hint.capacity)
	return v
}
