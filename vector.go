package vec

import "github.com/pkg/errors"

// Vector is a dynamic array over a single owned Handle. Elements at
// positions [0, Len()) are live; positions [Len(), Cap()) are allocated but
// logically absent and are reused on growth without reallocating.
// Not goroutine-safe.
type Vector[T any] struct {
	items    Handle[T]
	size     int
	capacity int
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Ref returns a reference to element i without checking i against Len().
// This is the fast path; the caller guarantees the index. Indexing outside
// the allocation panics.
func (v *Vector[T]) Ref(i int) *T {
	return v.items.Ref(i)
}

// Set assigns val to element i. Same contract as Ref.
func (v *Vector[T]) Set(i int, val T) {
	*v.items.Ref(i) = val
}

// At returns element i, or an error wrapping ErrIndexOutOfRange when i is
// outside [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d with size %d", i, v.size)
	}
	return *v.items.Ref(i), nil
}

// Clear drops all live elements without touching the capacity or the
// allocation. Slots keep their previous contents until overwritten.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize changes the logical size to n. Shrinking only moves the size down.
// Growing within capacity zero-fills the newly exposed slots, overwriting
// whatever stale content was there. Growing past capacity reallocates to
// max(n, capacity*2), preserving the live elements and zero-filling the rest.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic("vec: negative size")
	}
	switch {
	case n <= v.size:
		v.size = n
	case n <= v.capacity:
		clear(v.items.Get()[v.size:n])
		v.size = n
	default:
		newCap := max(n, v.capacity*2)
		next := NewHandle[T](newCap)
		copy(next.Get(), v.live())
		v.items.Swap(&next)
		v.size = n
		v.capacity = newCap
	}
}

// Reserve grows the capacity to exactly n, copying the live elements into
// the new block. Len is unchanged. A no-op when n <= Cap().
func (v *Vector[T]) Reserve(n int) {
	if n <= v.capacity {
		return
	}
	next := NewHandle[T](n)
	copy(next.Get(), v.live())
	v.items.Swap(&next)
	v.capacity = n
}

// PushBack appends val, doubling the capacity when full (capacity 1 when
// growing from empty). Amortized O(1).
func (v *Vector[T]) PushBack(val T) {
	if v.size > v.capacity {
		panic("vec: size exceeds capacity")
	}
	if v.size < v.capacity {
		*v.items.Ref(v.size) = val
		v.size++
		return
	}
	v.Resize(v.capacity + 1)
	*v.items.Ref(v.size - 1) = val
}

// Insert places val at position pos, shifting later elements right, and
// returns the cursor of the inserted element. pos must lie in [0, Len()];
// pos == Len() appends. When full, the capacity grows to
// max(Len()+1, capacity*2).
func (v *Vector[T]) Insert(pos int, val T) int {
	if pos < 0 || pos > v.size {
		panic("vec: insert position out of range")
	}
	switch {
	case v.capacity == 0:
		next := NewHandle[T](1)
		*next.Ref(0) = val
		v.items.Swap(&next)
		v.capacity = 1
	case v.size < v.capacity:
		buf := v.items.Get()
		copy(buf[pos+1:v.size+1], buf[pos:v.size])
		buf[pos] = val
	default:
		newCap := max(v.size+1, v.capacity*2)
		next := NewHandle[T](newCap)
		buf := next.Get()
		copy(buf, v.items.Get()[:pos])
		buf[pos] = val
		copy(buf[pos+1:], v.items.Get()[pos:v.size])
		v.items.Swap(&next)
		v.capacity = newCap
	}
	v.size++
	return pos
}

// PopBack removes the last element. The slot keeps its contents until
// overwritten. Panics when the vector is empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.size--
}

// Erase removes the element at pos, shifting later elements left, and
// returns the cursor now holding the next element (Len() if the erased
// element was last). pos must lie in [0, Len()).
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic("vec: erase position out of range")
	}
	buf := v.items.Get()
	copy(buf[pos:v.size-1], buf[pos+1:v.size])
	v.size--
	return pos
}

// Swap exchanges storage, size, and capacity with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// Clone returns an independent copy. The copy's capacity equals its size
// regardless of v's capacity; mutating either vector never affects the other.
func (v *Vector[T]) Clone() *Vector[T] {
	c := NewSize[T](v.size)
	copy(c.items.Get(), v.live())
	return c
}

// Assign replaces v's contents with a copy of other. The copy is built fully
// in a temporary and swapped in, so a failure while copying leaves v
// unmodified. Assigning a vector to itself is a no-op.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}
	tmp := other.Clone()
	v.Swap(tmp)
}

// MoveFrom steals other's storage, size, and capacity, dropping v's previous
// block. other is left empty (size and capacity zero, no allocation). Moving
// a vector into itself is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.items.MoveFrom(&other.items)
	v.size, other.size = other.size, 0
	v.capacity, other.capacity = other.capacity, 0
}

// Move returns a new vector owning v's storage and leaves v empty.
func (v *Vector[T]) Move() *Vector[T] {
	m := New[T]()
	m.MoveFrom(v)
	return m
}

// live returns the window of live elements. Valid even when the handle is
// empty, since size is zero then.
func (v *Vector[T]) live() []T {
	return v.items.Get()[:v.size]
}
