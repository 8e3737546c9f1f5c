package queue

import "testing"

func TestPushPop(t *testing.T) {
	q := New[int]()
	q.Push(1, 2, 3)

	if q.Len() != 3 {
		t.Fatalf("len = %d", q.Len())
	}

	v, ok := q.Pop()
	if !ok || v != 1 {
		t.Errorf("Pop = %d, %v", v, ok)
	}
	if q.Len() != 2 {
		t.Errorf("len after pop = %d", q.Len())
	}
}

func TestPop_Empty(t *testing.T) {
	q := New[string]()
	v, ok := q.Pop()
	if ok || v != "" {
		t.Errorf("Pop on empty = %q, %v", v, ok)
	}
}

func TestPopLatest_DiscardsSuperseded(t *testing.T) {
	q := New[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	v, ok := q.PopLatest()
	if !ok || v != 3 {
		t.Errorf("PopLatest = %d, %v", v, ok)
	}
	if q.Len() != 0 {
		t.Errorf("queue not drained, len = %d", q.Len())
	}
}

func TestPopLatest_Empty(t *testing.T) {
	q := New[int]()
	if _, ok := q.PopLatest(); ok {
		t.Error("PopLatest on empty reported an item")
	}
}

func TestClear(t *testing.T) {
	q := New[int]()
	q.Push(1, 2)
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("len after clear = %d", q.Len())
	}
}
