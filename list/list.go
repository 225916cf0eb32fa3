// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package list

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// insertRetryBudget bounds Insert's CAS retries before it reports a
// transient failure. Matches the original C++ source's budget.
const insertRetryBudget = 1000

type node[T any] struct {
	value  T
	next   atomic.Pointer[node[T]]
	marked atomix.Bool
}

// List is a lock-free singly linked list that rejects duplicate
// elements and preserves insertion order.
//
// The zero value is not usable; construct with [New].
type List[T any] struct {
	head  atomic.Pointer[node[T]]
	equal func(a, b T) bool
	size  atomix.Int64
}

// New creates an empty List, using equal to detect duplicate elements
// and to locate an element for Remove/Contains.
func New[T any](equal func(a, b T) bool) *List[T] {
	return &List[T]{equal: equal}
}

// search walks the list from head looking for an element equal to
// value, helping unlink any marked node it passes over. It returns the
// last live node before the match (nil if the match is the head, or if
// there is no match and the list is empty) and the matching node
// itself (nil if not found).
func (l *List[T]) search(value T) (prev, cur *node[T]) {
	prev = nil
	cur = l.head.Load()
	for cur != nil {
		if cur.marked.LoadAcquire() {
			next := cur.next.Load()
			if prev != nil {
				prev.next.CompareAndSwap(cur, next)
			} else {
				l.head.CompareAndSwap(cur, next)
			}
			cur = next
			continue
		}
		if l.equal(cur.value, value) {
			return prev, cur
		}
		prev = cur
		cur = cur.next.Load()
	}
	return prev, nil
}

// Insert appends value at the tail of the list.
//
// The bool result reports whether value was inserted; it is false,
// with a nil error, when an equal element is already present. A
// non-nil error (ErrWouldBlock) means the retry budget was exhausted
// under contention and the caller may retry.
func (l *List[T]) Insert(value T) (bool, error) {
	n := &node[T]{value: value}
	sw := spin.Wait{}
	for attempt := 0; attempt < insertRetryBudget; attempt++ {
		prev, cur := l.search(value)
		if cur != nil {
			return false, nil
		}
		n.next.Store(cur)
		var ok bool
		if prev == nil {
			ok = l.head.CompareAndSwap(cur, n)
		} else {
			ok = prev.next.CompareAndSwap(cur, n)
		}
		if ok {
			l.size.Add(1)
			return true, nil
		}
		sw.Once()
	}
	return false, ErrWouldBlock
}

// Remove logically deletes the first element equal to value. Returns
// true if value was found and this call performed the deletion, false
// if value was absent or already removed by another goroutine.
// Physical unlinking happens lazily, during a later Insert or Contains
// that passes over the marked node.
func (l *List[T]) Remove(value T) bool {
	_, cur := l.search(value)
	if cur == nil {
		return false
	}
	if cur.marked.CompareAndSwapAcqRel(false, true) {
		l.size.Add(-1)
		return true
	}
	return false
}

// Contains reports whether value is present and not removed. It helps
// unlink marked nodes it passes over.
func (l *List[T]) Contains(value T) bool {
	_, cur := l.search(value)
	return cur != nil
}

// Range calls fn for every live element, in list order, stopping early
// if fn returns false.
func (l *List[T]) Range(fn func(T) bool) {
	for cur := l.head.Load(); cur != nil; cur = cur.next.Load() {
		if cur.marked.LoadAcquire() {
			continue
		}
		if !fn(cur.value) {
			return
		}
	}
}

// Len returns the number of live (non-removed) elements.
func (l *List[T]) Len() int {
	return int(l.size.Load())
}
