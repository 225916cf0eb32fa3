// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hashset

import (
	"hash/maphash"
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// insertRetryBudget bounds Insert's head-CAS retries before it reports a
// transient failure.
const insertRetryBudget = 100

type node[T comparable] struct {
	value   T
	next    atomic.Pointer[node[T]]
	deleted atomix.Bool
}

type bucket[T comparable] struct {
	head atomic.Pointer[node[T]]
}

// Set is a fixed-bucket-count, separate-chaining lock-free hash set.
//
// The zero value is not usable; construct with [New] or [NewHash].
type Set[T comparable] struct {
	buckets []bucket[T]
	hashFn  func(T) uint64
	size    atomix.Int64
}

// New creates a Set with bucketCount chain heads, hashing elements with
// the standard library's generic comparable hash
// (hash/maphash.Comparable). bucketCount is fixed for the lifetime of
// the set; this package does not resize.
func New[T comparable](bucketCount int) *Set[T] {
	s := &Set[T]{}
	s.init(bucketCount)
	seed := maphash.MakeSeed()
	s.hashFn = func(v T) uint64 { return maphash.Comparable(seed, v) }
	return s
}

// NewHash creates a Set with a caller-supplied hash function.
func NewHash[T comparable](bucketCount int, hash func(T) uint64) *Set[T] {
	s := &Set[T]{hashFn: hash}
	s.init(bucketCount)
	return s
}

func (s *Set[T]) init(bucketCount int) {
	if bucketCount < 1 {
		panic("hashset: bucketCount must be >= 1")
	}
	s.buckets = make([]bucket[T], bucketCount)
}

func (s *Set[T]) bucketIndex(value T) int {
	return int(s.hashFn(value) % uint64(len(s.buckets)))
}

// Insert adds value if not already present.
//
// Returns ErrDuplicate if value is already present. Returns
// ErrWouldBlock if the retry budget is exhausted under contention — the
// caller may retry. See [code.hybscloud.com/lockfree/hashmap].Map.Insert
// for how the duplicate check stays correct under concurrent inserts.
func (s *Set[T]) Insert(value T) error {
	idx := s.bucketIndex(value)
	b := &s.buckets[idx]
	sw := spin.Wait{}
	for attempt := 0; attempt < insertRetryBudget; attempt++ {
		head := b.head.Load()
		for cur := head; cur != nil; cur = cur.next.Load() {
			if cur.value == value && !cur.deleted.LoadAcquire() {
				return ErrDuplicate
			}
		}
		n := &node[T]{value: value}
		n.next.Store(head)
		if b.head.CompareAndSwap(head, n) {
			s.size.Add(1)
			return nil
		}
		sw.Once()
	}
	return ErrWouldBlock
}

// Contains reports whether value is present and not deleted.
func (s *Set[T]) Contains(value T) bool {
	idx := s.bucketIndex(value)
	for cur := s.buckets[idx].head.Load(); cur != nil; cur = cur.next.Load() {
		if cur.value == value && !cur.deleted.LoadAcquire() {
			return true
		}
	}
	return false
}

// Erase logically deletes value. Returns true if value was present and
// this call performed the deletion, false if value was absent or
// already deleted by another goroutine.
func (s *Set[T]) Erase(value T) bool {
	idx := s.bucketIndex(value)
	for cur := s.buckets[idx].head.Load(); cur != nil; cur = cur.next.Load() {
		if cur.value == value {
			if cur.deleted.CompareAndSwapAcqRel(false, true) {
				s.size.Add(-1)
				return true
			}
			return false
		}
	}
	return false
}

// Range calls fn for every live value, in unspecified order, stopping
// early if fn returns false. Range does not observe a single consistent
// snapshot under concurrent mutation.
func (s *Set[T]) Range(fn func(T) bool) {
	for i := range s.buckets {
		for cur := s.buckets[i].head.Load(); cur != nil; cur = cur.next.Load() {
			if cur.deleted.LoadAcquire() {
				continue
			}
			if !fn(cur.value) {
				return
			}
		}
	}
}

// Len returns the number of live (non-erased) elements.
func (s *Set[T]) Len() int {
	return int(s.size.Load())
}

// LoadFactor returns Len() divided by the fixed bucket count.
func (s *Set[T]) LoadFactor() float64 {
	return float64(s.Len()) / float64(len(s.buckets))
}
