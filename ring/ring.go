// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Ring is a general-path MPMC circular buffer.
//
// Each slot holds a heap pointer to a constructed value and an atomic
// validity flag. Push claims a slot by CASing the tail cursor forward
// once it observes the slot is not valid (empty); Pop claims a slot by
// CASing the head cursor forward once it observes the slot is valid.
// An approximate length counter is updated last, with relaxed ordering,
// to support a cheap Len query without putting it on the commit path.
//
// Safe for any number of concurrent producers and consumers. For the
// single-producer/single-consumer case, [SPSCRing] avoids the CAS
// entirely and is faster.
type Ring[T any] struct {
	_    pad
	tail atomix.Uint64
	_    pad
	head atomix.Uint64
	_    pad
	length atomix.Int64
	_    pad
	slots []ringSlot[T]
	mask  uint64
}

type ringSlot[T any] struct {
	valid atomix.Bool
	value atomic.Pointer[T]
}

// New creates a new general-path ring buffer.
// Capacity rounds up to the next power of 2. Panics if capacity < 2.
func New[T any](capacity int) *Ring[T] {
	if capacity < 2 {
		panic("ring: capacity must be >= 2")
	}
	n := uint64(roundToPow2(capacity))
	return &Ring[T]{
		slots: make([]ringSlot[T], n),
		mask:  n - 1,
	}
}

// Push adds an element to the ring. Safe for multiple concurrent producers.
// Returns ErrWouldBlock if the ring is full.
func (r *Ring[T]) Push(elem *T) error {
	sw := spin.Wait{}
	for {
		tail := r.tail.LoadAcquire()
		slot := &r.slots[tail&r.mask]
		if slot.valid.LoadAcquire() {
			return ErrWouldBlock
		}
		if r.tail.CompareAndSwapAcqRel(tail, tail+1) {
			v := *elem
			slot.value.Store(&v)
			slot.valid.StoreRelease(true)
			r.length.Add(1)
			return nil
		}
		sw.Once()
	}
}

// Pop removes and returns an element from the ring. Safe for multiple
// concurrent consumers. Returns (zero-value, ErrWouldBlock) if empty.
func (r *Ring[T]) Pop() (T, error) {
	sw := spin.Wait{}
	for {
		head := r.head.LoadAcquire()
		slot := &r.slots[head&r.mask]
		if !slot.valid.LoadAcquire() {
			var zero T
			return zero, ErrWouldBlock
		}
		if r.head.CompareAndSwapAcqRel(head, head+1) {
			p := slot.value.Load()
			slot.value.Store(nil)
			slot.valid.StoreRelease(false)
			r.length.Add(-1)
			return *p, nil
		}
		sw.Once()
	}
}

// Len returns an approximate element count. Under concurrent access the
// value may already be stale by the time the caller observes it.
func (r *Ring[T]) Len() int {
	n := r.length.LoadRelaxed()
	if n < 0 {
		return 0
	}
	return int(n)
}

// Cap returns the ring's capacity.
func (r *Ring[T]) Cap() int {
	return int(r.mask + 1)
}
