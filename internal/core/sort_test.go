package core

import (
	"testing"
)

func TestSortByKey_Empty(t *testing.T) {
	out := SortByKey(nil, func(n int) int { return n })
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %v", out)
	}
}

func TestSortByKey_SingleElement(t *testing.T) {
	out := SortByKey([]int{42}, func(n int) int { return n })
	if len(out) != 1 || out[0] != 42 {
		t.Fatalf("expected [42], got %v", out)
	}
}

func TestSortByKey_OrdersAscending(t *testing.T) {
	in := []int{5, 3, 8, 1, 9, 2}
	out := SortByKey(in, func(n int) int { return n })

	want := []int{1, 2, 3, 5, 8, 9}
	for i, v := range want {
		if out[i] != v {
			t.Fatalf("position %d: expected %d, got %d (full: %v)", i, v, out[i], out)
		}
	}
}

func TestSortByKey_InputUntouched(t *testing.T) {
	in := []int{3, 1, 2}
	_ = SortByKey(in, func(n int) int { return n })
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Fatalf("input was modified: %v", in)
	}
}

func TestSortByKey_StableOnEqualKeys(t *testing.T) {
	type pair struct {
		key int
		seq int
	}
	in := []pair{
		{key: 2, seq: 0},
		{key: 1, seq: 1},
		{key: 2, seq: 2},
		{key: 1, seq: 3},
		{key: 2, seq: 4},
	}

	out := SortByKey(in, func(p pair) int { return p.key })

	wantSeq := []int{1, 3, 0, 2, 4}
	for i, want := range wantSeq {
		if out[i].seq != want {
			t.Fatalf("position %d: expected seq %d, got %d (full: %v)", i, want, out[i].seq, out)
		}
	}
}
