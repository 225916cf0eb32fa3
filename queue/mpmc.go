// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// enqueueRetryBudget bounds Enqueue's CAS retry loop; ordinary
// contention resolves well before this, a full queue or a stalled
// peer producer/consumer does not.
const enqueueRetryBudget = 64

// dequeueRetryBudget mirrors enqueueRetryBudget for Dequeue.
const dequeueRetryBudget = 64

// pad is cache line padding to prevent false sharing between the
// producer and consumer cursors.
type pad [64]byte

// Queue is a bounded multi-producer multi-consumer FIFO queue.
//
// Capacity is fixed at construction and rounds up to the next power
// of 2. The zero value is not usable; construct with [New].
type Queue[T any] struct {
	_        pad
	tail     atomix.Uint64 // producer cursor
	_        pad
	head     atomix.Uint64 // consumer cursor
	_        pad
	buffer   []slot[T]
	mask     uint64
	capacity uint64
}

type slot[T any] struct {
	seq  atomix.Uint64
	data T
}

// New creates a Queue with room for at least capacity elements.
// Panics if capacity < 2.
func New[T any](capacity int) *Queue[T] {
	if capacity < 2 {
		panic("queue: capacity must be >= 2")
	}
	n := uint64(roundToPow2(capacity))
	q := &Queue[T]{
		buffer:   make([]slot[T], n),
		mask:     n - 1,
		capacity: n,
	}
	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}
	return q
}

// Enqueue appends the value pointed to by elem to the queue, copying
// it into the internal buffer. Returns ErrWouldBlock if the queue is
// full or the retry budget is exhausted under contention.
//
// The linearization point is the CAS on the producer cursor.
func (q *Queue[T]) Enqueue(elem *T) error {
	sw := spin.Wait{}
	for attempt := 0; attempt < enqueueRetryBudget; attempt++ {
		tail := q.tail.LoadAcquire()
		s := &q.buffer[tail&q.mask]
		seq := s.seq.LoadAcquire()
		diff := int64(seq) - int64(tail)

		switch {
		case diff == 0:
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				s.data = *elem
				s.seq.StoreRelease(tail + 1)
				return nil
			}
		case diff < 0:
			return ErrWouldBlock
		}
		sw.Once()
	}
	return ErrWouldBlock
}

// Dequeue removes and returns the oldest value. Returns ErrWouldBlock
// if the queue is empty or the retry budget is exhausted.
//
// The linearization point is the CAS on the consumer cursor.
func (q *Queue[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for attempt := 0; attempt < dequeueRetryBudget; attempt++ {
		head := q.head.LoadAcquire()
		s := &q.buffer[head&q.mask]
		seq := s.seq.LoadAcquire()
		diff := int64(seq) - int64(head+1)

		switch {
		case diff == 0:
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				value := s.data
				var zero T
				s.data = zero
				s.seq.StoreRelease(head + q.capacity)
				return value, nil
			}
		case diff < 0:
			var zero T
			return zero, ErrWouldBlock
		}
		sw.Once()
	}
	var zero T
	return zero, ErrWouldBlock
}

// Front returns the value at the head of the queue without removing
// it. Under concurrent dequeues the returned value may already have
// been consumed by another goroutine by the time the caller observes
// it; treat the result as advisory.
func (q *Queue[T]) Front() (T, error) {
	head := q.head.LoadAcquire()
	s := &q.buffer[head&q.mask]
	seq := s.seq.LoadAcquire()
	if int64(seq)-int64(head+1) != 0 {
		var zero T
		return zero, ErrWouldBlock
	}
	return s.data, nil
}

// Len returns a snapshot of the number of queued elements. Under
// concurrent access this is approximate.
func (q *Queue[T]) Len() int {
	tail := q.tail.LoadAcquire()
	head := q.head.LoadAcquire()
	if tail < head {
		return 0
	}
	return int(tail - head)
}

// Empty reports whether the queue held no elements at the moment of
// the call.
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}

// Full reports whether the queue held no free slots at the moment of
// the call.
func (q *Queue[T]) Full() bool {
	return q.Len() >= int(q.capacity)
}

// Cap returns the queue's capacity.
func (q *Queue[T]) Cap() int {
	return int(q.capacity)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
