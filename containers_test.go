package aoc

import "testing"

func TestMinQueueTies(t *testing.T) {
	q := MinQueue[string]()
	for _, it := range []struct {
		v string
		p int
	}{{"c", 2}, {"a", 1}, {"b", 1}, {"d", 2}, {"e", 0}} {
		q.Push(&PQI[string]{V: it.v, P: it.p})
	}
	var got string
	for q.Len() > 0 {
		got += q.Pop().V
	}
	if got != "eabcd" {
		t.Errorf("pop order = %s, want eabcd", got)
	}
}

func TestMaxQueue(t *testing.T) {
	q := MaxQueue[int]()
	items := map[int]*PQI[int]{}
	for _, p := range []int{3, 9, 1} {
		items[p] = &PQI[int]{V: p, P: p}
		q.Push(items[p])
	}
	items[1].P = 10
	q.Update(items[1])
	if got := q.Peek().V; got != 1 {
		t.Errorf("Peek after Update = %d, want 1", got)
	}
	if got := q.Pop(); got.V != 1 || got.Index() != -1 {
		t.Errorf("Pop = %v (index %d)", got, got.Index())
	}
	if got := q.Pop().V; got != 9 {
		t.Errorf("second Pop = %d, want 9", got)
	}
}

func TestStackQueue(t *testing.T) {
	var s Stack[int]
	q := NewQueue(1)
	for i := 2; i <= 3; i++ {
		s.Push(i)
		q.Push(i)
	}
	if v, _ := s.Peek(); v != 3 {
		t.Errorf("Peek = %d, want 3", v)
	}
	var order []int
	s.While(func(v int) bool { order = append(order, v); return true })
	q.While(func(v int) bool { order = append(order, v); return true })
	if len(order) != 5 || order[0] != 3 || order[2] != 1 || order[4] != 3 {
		t.Errorf("order = %v, want [3 2 1 2 3]", order)
	}
	if _, ok := s.Pop(); ok {
		t.Errorf("Pop on empty stack succeeded")
	}
}
