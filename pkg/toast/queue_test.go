package toast

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := newQueue(2)

	a, _ := NewRequest("A", KindInfo, Options{})
	b, _ := NewRequest("B", KindInfo, Options{})
	if !q.push(a) {
		t.Fatal("push(A) refused")
	}
	if !q.push(b) {
		t.Fatal("push(B) refused")
	}

	got, ok := q.pop()
	if !ok || got.Message != "A" {
		t.Fatalf("first pop = %q, %v; want A, true", got.Message, ok)
	}
	got, ok = q.pop()
	if !ok || got.Message != "B" {
		t.Fatalf("second pop = %q, %v; want B, true", got.Message, ok)
	}
	if _, ok := q.pop(); ok {
		t.Fatal("pop on empty queue succeeded")
	}
}

func TestQueueRefusesOverflow(t *testing.T) {
	q := newQueue(2)

	a, _ := NewRequest("A", KindInfo, Options{})
	b, _ := NewRequest("B", KindInfo, Options{})
	c, _ := NewRequest("C", KindInfo, Options{})
	q.push(a)
	q.push(b)

	if q.push(c) {
		t.Fatal("push beyond capacity accepted")
	}
	if q.len() != 2 {
		t.Fatalf("len = %d, want 2", q.len())
	}
}

func TestQueueRefusesBlankMessage(t *testing.T) {
	q := newQueue(2)
	if q.push(Request{Message: ""}) {
		t.Fatal("push of blank request accepted")
	}
	if q.len() != 0 {
		t.Fatalf("len = %d, want 0", q.len())
	}
}

func TestQueueZeroCapacityDropsEverything(t *testing.T) {
	q := newQueue(0)
	a, _ := NewRequest("A", KindInfo, Options{})
	if q.push(a) {
		t.Fatal("push accepted on zero-capacity queue")
	}
}
