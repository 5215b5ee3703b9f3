package vec

import "testing"

func TestNew(t *testing.T) {
	v := New[int]()

	if v.Len() != 0 || v.Cap() != 0 {
		t.Errorf("Len, Cap = %d, %d; want 0, 0", v.Len(), v.Cap())
	}
	if !v.IsEmpty() {
		t.Error("IsEmpty = false, want true")
	}
}

func TestNewSize(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"one", 1},
		{"many", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSize[int](tt.n)
			if v.Len() != tt.n || v.Cap() != tt.n {
				t.Errorf("Len, Cap = %d, %d; want %d, %d", v.Len(), v.Cap(), tt.n, tt.n)
			}
			for i := 0; i < tt.n; i++ {
				if *v.Ref(i) != 0 {
					t.Errorf("element %d = %d, want 0", i, *v.Ref(i))
				}
			}
		})
	}

	mustPanic(t, "NewSize(-1)", func() { NewSize[int](-1) })
}

func TestNewFill(t *testing.T) {
	v := NewFill(4, "x")

	if v.Len() != 4 || v.Cap() != 4 {
		t.Errorf("Len, Cap = %d, %d; want 4, 4", v.Len(), v.Cap())
	}
	for i := 0; i < 4; i++ {
		if *v.Ref(i) != "x" {
			t.Errorf("element %d = %q, want \"x\"", i, *v.Ref(i))
		}
	}
}

func TestOf(t *testing.T) {
	v := Of(1, 2, 3)

	if v.Len() != 3 || v.Cap() != 3 {
		t.Errorf("Len, Cap = %d, %d; want 3, 3", v.Len(), v.Cap())
	}
	if got := contents(v); !equalSlices(got, []int{1, 2, 3}) {
		t.Errorf("contents = %v, want [1 2 3]", got)
	}
}

func TestOfCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	v := Of(src...)
	src[0] = 99

	if *v.Ref(0) != 1 {
		t.Error("Of should copy the values, not adopt the argument slice")
	}
}

func TestNewReserved(t *testing.T) {
	v := NewReserved[int](Reserve(16))

	if v.Len() != 0 {
		t.Errorf("Len = %d, want 0 (no live elements)", v.Len())
	}
	if v.Cap() != 16 {
		t.Errorf("Cap = %d, want 16", v.Cap())
	}

	// A zero hint leaves the vector without an allocation.
	w := NewReserved[int](Reserve(0))
	if w.Cap() != 0 {
		t.Errorf("Cap = %d, want 0", w.Cap())
	}
}

func TestClone(t *testing.T) {
	v := NewReserved[int](Reserve(10))
	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)

	c := v.Clone()

	// Minimal-footprint copy: capacity shrinks to the size.
	if c.Len() != 3 || c.Cap() != 3 {
		t.Errorf("clone Len, Cap = %d, %d; want 3, 3", c.Len(), c.Cap())
	}
	if got := contents(c); !equalSlices(got, []int{1, 2, 3}) {
		t.Errorf("clone contents = %v, want [1 2 3]", got)
	}

	// Independence: mutating the clone never affects the original.
	c.Set(0, 99)
	c.PushBack(4)
	if *v.Ref(0) != 1 || v.Len() != 3 {
		t.Error("mutating the clone changed the original")
	}
}

func TestCloneEmpty(t *testing.T) {
	c := New[int]().Clone()

	if c.Len() != 0 || c.Cap() != 0 {
		t.Errorf("Len, Cap = %d, %d; want 0, 0", c.Len(), c.Cap())
	}
}

func TestAssign(t *testing.T) {
	dst := Of(9, 9)
	src := Of(1, 2, 3)

	dst.Assign(src)

	if got := contents(dst); !equalSlices(got, []int{1, 2, 3}) {
		t.Errorf("contents = %v, want [1 2 3]", got)
	}
	if dst.Cap() != 3 {
		t.Errorf("Cap = %d, want source size 3", dst.Cap())
	}

	// Independence from the source after assignment.
	dst.Set(0, 7)
	if *src.Ref(0) != 1 {
		t.Error("mutating the destination changed the source")
	}
}

func TestAssignSelf(t *testing.T) {
	v := Of(1, 2, 3)
	v.Assign(v)

	if got := contents(v); !equalSlices(got, []int{1, 2, 3}) {
		t.Errorf("contents after self-assign = %v, want [1 2 3]", got)
	}
}

func TestMoveFrom(t *testing.T) {
	src := Of(1, 2, 3)
	src.Reserve(8)
	dst := Of(9)

	dst.MoveFrom(src)

	if src.Len() != 0 || src.Cap() != 0 {
		t.Errorf("source Len, Cap = %d, %d; want 0, 0", src.Len(), src.Cap())
	}
	if dst.Len() != 3 || dst.Cap() != 8 {
		t.Errorf("destination Len, Cap = %d, %d; want 3, 8", dst.Len(), dst.Cap())
	}
	if got := contents(dst); !equalSlices(got, []int{1, 2, 3}) {
		t.Errorf("destination contents = %v, want [1 2 3]", got)
	}
}

func TestMoveFromSelf(t *testing.T) {
	v := Of(1, 2, 3)
	v.MoveFrom(v)

	if got := contents(v); !equalSlices(got, []int{1, 2, 3}) {
		t.Errorf("contents after self-move = %v, want [1 2 3]", got)
	}
	if v.Cap() != 3 {
		t.Errorf("Cap after self-move = %d, want 3", v.Cap())
	}
}

func TestMove(t *testing.T) {
	v := Of(1, 2)
	m := v.Move()

	if v.Len() != 0 || v.Cap() != 0 {
		t.Errorf("moved-from Len, Cap = %d, %d; want 0, 0", v.Len(), v.Cap())
	}
	if got := contents(m); !equalSlices(got, []int{1, 2}) {
		t.Errorf("moved-to contents = %v, want [1 2]", got)
	}
}
