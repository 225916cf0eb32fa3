// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package skiplist

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/lockfree/internal/randlevel"
)

const (
	insertRetryBudget = 1000
	levelRetryBudget  = 100
)

type node[K any, V any] struct {
	key    K
	value  V
	next   []atomic.Pointer[node[K, V]]
	marked atomix.Bool
}

// Store is a lock-free ordered map keyed by K, ordered by a
// caller-supplied three-way comparator.
//
// The zero value is not usable; construct with [New].
type Store[K any, V any] struct {
	head *node[K, V]
	tail *node[K, V]
	cmp  func(a, b K) int
}

// New creates an empty Store ordered by cmp, which must return a
// negative number, zero, or a positive number as a is less than, equal
// to, or greater than b — the same contract as [cmp.Compare].
func New[K any, V any](cmp func(a, b K) int) *Store[K, V] {
	head := &node[K, V]{next: make([]atomic.Pointer[node[K, V]], MaxLevel)}
	tail := &node[K, V]{next: make([]atomic.Pointer[node[K, V]], MaxLevel)}
	for i := range head.next {
		head.next[i].Store(tail)
	}
	return &Store[K, V]{head: head, tail: tail, cmp: cmp}
}

// findPredecessors returns, for each level, the last live node whose
// key is less than key. It helps unlink marked nodes it passes over.
func (s *Store[K, V]) findPredecessors(key K) []*node[K, V] {
	preds := make([]*node[K, V], MaxLevel)
	cur := s.head
	for level := MaxLevel - 1; level >= 0; level-- {
		for {
			next := cur.next[level].Load()
			if next == s.tail || s.cmp(key, next.key) <= 0 {
				break
			}
			if next.marked.LoadAcquire() {
				skip := next.next[level].Load()
				cur.next[level].CompareAndSwap(next, skip)
				continue
			}
			cur = next
		}
		preds[level] = cur
	}
	return preds
}

// Insert adds key/value if key is not already present.
//
// Returns ErrDuplicate if key is present. Returns ErrWouldBlock if the
// retry budget is exhausted under contention — the caller may retry.
func (s *Store[K, V]) Insert(key K, value V) error {
	sw := spin.Wait{}
	for attempt := 0; attempt < insertRetryBudget; attempt++ {
		if _, ok := s.Find(key); ok {
			return ErrDuplicate
		}

		level := randlevel.Generate(MaxLevel)
		n := &node[K, V]{key: key, value: value, next: make([]atomic.Pointer[node[K, V]], level+1)}
		preds := s.findPredecessors(key)

		successor := preds[0].next[0].Load()
		if successor != s.tail && s.cmp(key, successor.key) == 0 {
			sw.Once()
			continue
		}

		for i := 0; i <= level; i++ {
			n.next[i].Store(preds[i].next[i].Load())
		}

		expected := n.next[0].Load()
		if !preds[0].next[0].CompareAndSwap(expected, n) {
			sw.Once()
			continue
		}

		for i := 1; i <= level; i++ {
			lsw := spin.Wait{}
			for la := 0; la < levelRetryBudget; la++ {
				levelExpected := n.next[i].Load()
				if preds[i].next[i].CompareAndSwap(levelExpected, n) {
					break
				}
				newPreds := s.findPredecessors(key)
				preds[i] = newPreds[i]
				n.next[i].Store(preds[i].next[i].Load())
				lsw.Once()
			}
		}
		return nil
	}
	return ErrWouldBlock
}

// Find returns the value for key and true if key is present and not
// erased, or the zero value and false otherwise.
func (s *Store[K, V]) Find(key K) (V, bool) {
	cur := s.head
	for level := MaxLevel - 1; level >= 0; level-- {
		for {
			next := cur.next[level].Load()
			if next == s.tail {
				break
			}
			if next.marked.LoadAcquire() {
				skip := next.next[level].Load()
				cur.next[level].CompareAndSwap(next, skip)
				continue
			}
			c := s.cmp(key, next.key)
			if c < 0 {
				break
			}
			if c == 0 {
				if !next.marked.LoadAcquire() {
					return next.value, true
				}
				skip := next.next[level].Load()
				cur.next[level].CompareAndSwap(next, skip)
				continue
			}
			cur = next
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (s *Store[K, V]) Contains(key K) bool {
	_, ok := s.Find(key)
	return ok
}

// Erase logically deletes key. Returns true if key was present and
// this call performed the deletion, false if key was absent or already
// erased by another goroutine.
//
// Erase only walks level 0; the node's higher-level forward pointers
// are cleaned up lazily by a later Find or Insert predecessor search
// that passes over the marked node at those levels.
func (s *Store[K, V]) Erase(key K) bool {
	cur := s.head
	for {
		next := cur.next[0].Load()
		if next == s.tail {
			return false
		}
		if next.marked.LoadAcquire() {
			skip := next.next[0].Load()
			cur.next[0].CompareAndSwap(next, skip)
			continue
		}
		c := s.cmp(key, next.key)
		if c < 0 {
			return false
		}
		if c == 0 {
			return next.marked.CompareAndSwapAcqRel(false, true)
		}
		cur = next
	}
}

// Range calls fn for every live key/value pair in ascending key order,
// stopping early if fn returns false.
func (s *Store[K, V]) Range(fn func(K, V) bool) {
	for cur := s.head.next[0].Load(); cur != s.tail; cur = cur.next[0].Load() {
		if cur.marked.LoadAcquire() {
			continue
		}
		if !fn(cur.key, cur.value) {
			return
		}
	}
}

// Len returns the number of live (non-erased) entries via an O(n)
// traversal at level 0.
func (s *Store[K, V]) Len() int {
	n := 0
	for cur := s.head.next[0].Load(); cur != s.tail; cur = cur.next[0].Load() {
		if !cur.marked.LoadAcquire() {
			n++
		}
	}
	return n
}

// Empty reports whether the store currently has no live entries.
func (s *Store[K, V]) Empty() bool {
	for cur := s.head.next[0].Load(); cur != s.tail; cur = cur.next[0].Load() {
		if !cur.marked.LoadAcquire() {
			return false
		}
	}
	return true
}
