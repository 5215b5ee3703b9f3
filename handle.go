package vec

// Handle is the sole owner of one heap-allocated block of elements. It knows
// only the allocation it owns, not any logical length; Vector layers size and
// capacity on top of it.
//
// Ownership is never duplicated. A Handle must be held by pointer or embedded
// uniquely; copying a Handle value aliases the block and is not supported.
// A nil backing block is the "owns nothing" state.
type Handle[T any] struct {
	buf []T
}

// NewHandle allocates a block of n zero-valued elements and returns a Handle
// owning it. If n == 0 no allocation is performed and the empty handle is
// returned.
func NewHandle[T any](n int) Handle[T] {
	if n == 0 {
		return Handle[T]{}
	}
	return Handle[T]{buf: make([]T, n)}
}

// AdoptHandle takes ownership of caller-supplied memory without allocating.
func AdoptHandle[T any](buf []T) Handle[T] {
	return Handle[T]{buf: buf}
}

// Ref returns a reference to element i. The index is not checked against any
// logical length; the caller guarantees i is within the owned allocation.
// Indexing outside the allocation (or an empty handle) panics.
func (h *Handle[T]) Ref(i int) *T {
	return &h.buf[i]
}

// Release hands the owned block to the caller and empties the handle. After
// Release the handle no longer references the block and can never release it
// again; a second call returns nil.
func (h *Handle[T]) Release() []T {
	buf := h.buf
	h.buf = nil
	return buf
}

// IsSet reports whether the handle owns an allocation.
func (h *Handle[T]) IsSet() bool {
	return h.buf != nil
}

// Get returns the owned block without transferring ownership.
func (h *Handle[T]) Get() []T {
	return h.buf
}

// Swap exchanges the owned blocks of h and other in O(1). No elements move.
func (h *Handle[T]) Swap(other *Handle[T]) {
	h.buf, other.buf = other.buf, h.buf
}

// MoveFrom drops h's block, steals other's, and empties other. Moving a
// handle into itself is a no-op.
func (h *Handle[T]) MoveFrom(other *Handle[T]) {
	if h == other {
		return
	}
	h.buf = other.Release()
}
