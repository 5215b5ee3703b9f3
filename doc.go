// Package vec implements a growable array container with manually managed
// backing storage.
//
// # Overview
//
// Vector is a dynamic array built on top of Handle, a single-owner wrapper
// around one heap-allocated block of elements. The Vector layers a logical
// size and a capacity on the raw block and implements the growth policy,
// positional insertion and removal, explicit capacity reservation, and copy
// and move value semantics. This is useful for:
//
//   - Code ported from languages with explicit vector/ownership semantics
//   - Workloads that want explicit control over when reallocation happens
//   - Amortized O(1) append with a documented doubling policy
//   - Minimal-footprint copies (a clone allocates exactly its size)
//
// # Basic Usage
//
//	v := vec.Of(1, 2, 3)
//	v.PushBack(4)           // [1 2 3 4]
//	v.Insert(0, 0)          // [0 1 2 3 4]
//	v.Erase(2)              // [0 1 3 4]
//
//	x, err := v.At(10)      // checked access, reports ErrIndexOutOfRange
//	p := v.Ref(1)           // unchecked access, caller guarantees the index
//
//	w := vec.NewReserved[int](vec.Reserve(128)) // capacity 128, size 0
//	w.MoveFrom(v)           // steal v's storage; v is left empty
//
// # Ownership Model
//
// Handle owns at most one allocation at a time. Ownership moves, it is never
// duplicated: Release hands the block to the caller exactly once and leaves
// the handle empty, Swap exchanges blocks in O(1), and MoveFrom steals the
// source's block. Handles must be held by pointer or embedded uniquely;
// copying a Handle value would alias ownership and is not supported.
//
// Each Vector owns exactly one Handle. Elements at positions [0, size) are
// live; positions [size, capacity) are allocated but logically absent and
// are reused on growth without reallocating.
//
// # Growth Policy
//
// A reallocating append or insert doubles the capacity (growing from zero
// yields capacity 1). Resize and Reserve that exceed the current capacity
// allocate max(requested, capacity*2) and exactly the requested amount
// respectively. Over N sequential appends the container performs O(log N)
// reallocations.
//
// # Thread Safety
//
// Vector is single-owner and single-threaded. No operation synchronizes;
// callers that share a Vector across goroutines must coordinate externally.
//
// # Error Model
//
// At is the only operation that reports failure to the caller; it wraps
// ErrIndexOutOfRange. Contract violations — popping an empty vector, erasing
// past the end, inserting outside [0, Len()] — panic.
package vec
