package heap

import "testing"

func intLess(a, b any) bool { return a.(int) < b.(int) }

func TestInsertExtractOrdering(t *testing.T) {
	h := New(8, intLess)
	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		if err := h.Insert(v); err != nil {
			t.Fatalf("Insert(%d): %v", v, err)
		}
	}

	var got []int
	for h.Len() > 0 {
		got = append(got, h.Extract().(int))
	}
	want := []int{1, 2, 3, 5, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("extracted %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("extract order = %v, want %v", got, want)
		}
	}
}

func TestInsertRejectsOverCapacity(t *testing.T) {
	h := New(2, intLess)
	h.Insert(1)
	h.Insert(2)
	if err := h.Insert(3); err == nil {
		t.Fatal("expected error inserting beyond capacity, got nil")
	}
}

func TestBuildHeapifiesArbitraryOrder(t *testing.T) {
	h := New(5, intLess)
	arr := h.Backing()
	for i, v := range []int{4, 1, 3, 2, 0} {
		arr[i] = v
	}
	h.SetLen(5)
	h.Build()
	if got := h.Extract().(int); got != 0 {
		t.Fatalf("min after Build = %d, want 0", got)
	}
}

func TestSearchFindsInsertedValue(t *testing.T) {
	h := New(4, intLess)
	h.Insert(10)
	h.Insert(20)
	h.Insert(30)
	if idx := h.Search(20); idx < 0 {
		t.Fatal("Search did not find inserted value 20")
	}
	if idx := h.Search(99); idx >= 0 {
		t.Fatalf("Search found absent value at index %d", idx)
	}
}
