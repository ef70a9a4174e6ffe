package queue

import (
	"errors"
	"sync"
	"testing"
)

func TestWriteQueue_FIFO(t *testing.T) {
	q := NewWriteQueue(3)
	for _, m := range []string{"a", "b", "c"} {
		if err := q.Push([]byte(m)); err != nil {
			t.Fatalf("Push(%q): %v", m, err)
		}
	}
	if err := q.Push([]byte("d")); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}

	msg, ok := q.Pop()
	if !ok || string(msg) != "a" {
		t.Fatalf("Pop = %q, %v", msg, ok)
	}
	// wraps around the ring
	if err := q.Push([]byte("d")); err != nil {
		t.Fatalf("Push after Pop: %v", err)
	}
	for _, want := range []string{"b", "c", "d"} {
		msg, ok := q.Pop()
		if !ok || string(msg) != want {
			t.Fatalf("Pop = %q, %v; want %q", msg, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("expected empty queue")
	}
}

func TestWriteQueue_PendingCoalesces(t *testing.T) {
	q := NewWriteQueue(8)
	_ = q.Push([]byte("1"))
	_ = q.Push([]byte("2"))

	select {
	case <-q.Pending():
	default:
		t.Fatal("expected a pending token")
	}
	select {
	case <-q.Pending():
		t.Fatal("expected tokens to coalesce")
	default:
	}

	_, _ = q.Pop()
	_ = q.Push([]byte("3"))
	select {
	case <-q.Pending():
	default:
		t.Fatal("expected a push after the token was taken to re-arm pending")
	}
}

func TestWriteQueue_Clear(t *testing.T) {
	q := NewWriteQueue(2)
	_ = q.Push([]byte("1"))
	_ = q.Push([]byte("2"))
	if dropped := q.Clear(); dropped != 2 {
		t.Fatalf("expected 2 dropped, got %d", dropped)
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}
	if err := q.Push([]byte("3")); err != nil {
		t.Fatalf("Push after Clear: %v", err)
	}
}

func TestWriteQueue_ConcurrentProducers(t *testing.T) {
	q := NewWriteQueue(1000)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = q.Push([]byte{byte(j)})
			}
		}()
	}
	wg.Wait()

	if q.Len() != 1000 {
		t.Fatalf("expected 1000 messages, got %d", q.Len())
	}
	if err := q.Push([]byte{0}); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull at capacity, got %v", err)
	}
}
