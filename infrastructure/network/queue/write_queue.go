package queue

import (
	"errors"
	"sync"
)

var ErrQueueFull = errors.New("write queue is full")

// WriteQueue is a bounded FIFO of outbound messages shared by the client and
// whichever I/O loop currently owns the socket.
// It is a ring buffer; Push never blocks and Pending coalesces wake-ups.
type WriteQueue struct {
	mu      sync.Mutex
	buf     [][]byte
	head    int
	count   int
	pending chan struct{}
}

func NewWriteQueue(capacity int) *WriteQueue {
	if capacity <= 0 {
		capacity = 1
	}
	return &WriteQueue{
		buf:     make([][]byte, capacity),
		pending: make(chan struct{}, 1),
	}
}

// Push appends msg without copying. The caller must not modify msg afterwards.
func (q *WriteQueue) Push(msg []byte) error {
	q.mu.Lock()
	if q.count == len(q.buf) {
		q.mu.Unlock()
		return ErrQueueFull
	}
	q.buf[(q.head+q.count)%len(q.buf)] = msg
	q.count++
	q.mu.Unlock()

	q.signal()
	return nil
}

// Pop removes the oldest message. ok is false when the queue is empty.
func (q *WriteQueue) Pop() (msg []byte, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return nil, false
	}
	msg = q.buf[q.head]
	q.buf[q.head] = nil
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return msg, true
}

func (q *WriteQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Clear drops every queued message and returns how many were dropped.
func (q *WriteQueue) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	dropped := q.count
	for i := range q.buf {
		q.buf[i] = nil
	}
	q.head = 0
	q.count = 0
	return dropped
}

// Pending delivers at most one token per burst of pushes. Receivers must drain
// the queue with Pop after every token.
func (q *WriteQueue) Pending() <-chan struct{} {
	return q.pending
}

func (q *WriteQueue) signal() {
	select {
	case q.pending <- struct{}{}:
	default:
	}
}
