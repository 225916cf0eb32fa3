// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/atomix"

// SPSCRing is a single-producer/single-consumer ring buffer.
//
// No CAS is used at all: the producer maintains a cached view of the
// consumer's head and the consumer maintains a cached view of the
// producer's tail, refreshing only when the cache suggests the ring is
// full or empty.
//
// Using Push from more than one goroutine, or Pop from more than one
// goroutine, is undefined behavior — the single-producer/single-
// consumer constraint is enforced by documentation, not at runtime.
type SPSCRing[T any] struct {
	_          pad
	head       atomix.Uint64
	_          pad
	cachedTail uint64
	_          pad
	tail       atomix.Uint64
	_          pad
	cachedHead uint64
	_          pad
	buffer     []T
	mask       uint64
}

// NewSPSC creates a new single-producer/single-consumer ring buffer.
// Capacity rounds up to the next power of 2. Panics if capacity < 2.
func NewSPSC[T any](capacity int) *SPSCRing[T] {
	if capacity < 2 {
		panic("ring: capacity must be >= 2")
	}
	n := uint64(roundToPow2(capacity))
	return &SPSCRing[T]{
		buffer: make([]T, n),
		mask:   n - 1,
	}
}

// Push adds an element (producer only). Returns ErrWouldBlock if full.
func (r *SPSCRing[T]) Push(elem *T) error {
	tail := r.tail.LoadRelaxed()
	if tail-r.cachedHead > r.mask {
		r.cachedHead = r.head.LoadAcquire()
		if tail-r.cachedHead > r.mask {
			return ErrWouldBlock
		}
	}
	r.buffer[tail&r.mask] = *elem
	r.tail.StoreRelease(tail + 1)
	return nil
}

// Pop removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if empty.
func (r *SPSCRing[T]) Pop() (T, error) {
	head := r.head.LoadRelaxed()
	if head >= r.cachedTail {
		r.cachedTail = r.tail.LoadAcquire()
		if head >= r.cachedTail {
			var zero T
			return zero, ErrWouldBlock
		}
	}
	elem := r.buffer[head&r.mask]
	var zero T
	r.buffer[head&r.mask] = zero
	r.head.StoreRelease(head + 1)
	return elem, nil
}

// Cap returns the ring's capacity.
func (r *SPSCRing[T]) Cap() int {
	return int(r.mask + 1)
}
