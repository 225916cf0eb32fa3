// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stack

import (
	"sync/atomic"

	"code.hybscloud.com/spin"
)

// popRetryBudget bounds Pop's CAS retries under contention before it
// reports a transient failure. Matches the original C++ source's budget.
const popRetryBudget = 500

type node[T any] struct {
	value T
	next  *node[T]
}

// headRecord is the unit CASed atomically: a node pointer paired with a
// monotonically incremented generation tag. Treating (node, tag) as one
// immutable value closes the ABA window the same way a packed pointer+tag
// word would, without hiding a live pointer inside an integer.
type headRecord[T any] struct {
	top *node[T]
	tag uint64
}

// Stack is a lock-free LIFO stack.
//
// Push always succeeds (it never needs to observe another thread's
// state to make progress) and retries its CAS until it does, with
// progressive backoff. Pop retries up to a bounded budget before
// reporting a transient failure; it returns ErrEmpty immediately if it
// observes the stack as empty.
//
// The zero value is not usable; construct with [New].
type Stack[T any] struct {
	head atomic.Pointer[headRecord[T]]
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	s := &Stack[T]{}
	s.head.Store(&headRecord[T]{})
	return s
}

// Push adds v to the top of the stack. Always succeeds.
func (s *Stack[T]) Push(v T) {
	n := &node[T]{value: v}
	sw := spin.Wait{}
	for {
		old := s.head.Load()
		n.next = old.top
		next := &headRecord[T]{top: n, tag: old.tag + 1}
		if s.head.CompareAndSwap(old, next) {
			return
		}
		sw.Once()
	}
}

// Pop removes and returns the top element.
// Returns (zero-value, ErrEmpty) if the stack is empty.
// Returns (zero-value, ErrWouldBlock) if the retry budget is exhausted
// under extreme contention; the caller may retry.
func (s *Stack[T]) Pop() (T, error) {
	sw := spin.Wait{}
	for attempt := 0; attempt < popRetryBudget; attempt++ {
		old := s.head.Load()
		if old.top == nil {
			var zero T
			return zero, ErrEmpty
		}
		next := &headRecord[T]{top: old.top.next, tag: old.tag + 1}
		if s.head.CompareAndSwap(old, next) {
			return old.top.value, nil
		}
		sw.Once()
	}
	var zero T
	return zero, ErrWouldBlock
}

// Top returns the top element without removing it.
// Returns (zero-value, ErrEmpty) if the stack is empty.
func (s *Stack[T]) Top() (T, error) {
	rec := s.head.Load()
	if rec.top == nil {
		var zero T
		return zero, ErrEmpty
	}
	return rec.top.value, nil
}

// Empty reports whether the stack currently has no elements.
// The result may be immediately outdated under concurrent access.
func (s *Stack[T]) Empty() bool {
	return s.head.Load().top == nil
}

// Len returns an approximate element count via an O(n) traversal.
// Node fields are write-once at construction, and the traversal holds
// its own reference into the chain as it walks, so the Go garbage
// collector keeps every visited node alive regardless of concurrent
// pops elsewhere — no separate reclamation scheme is needed (see
// DESIGN.md). The count reflects a single head snapshot and may be
// stale the instant it is returned.
func (s *Stack[T]) Len() int {
	n := 0
	for cur := s.head.Load().top; cur != nil; cur = cur.next {
		n++
	}
	return n
}
