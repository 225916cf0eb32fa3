// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rbtree

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// insertRetryBudget bounds Insert's descend-and-CAS retries before it
// reports a transient failure.
const insertRetryBudget = 1000

// Color names the conventional red-black roles. This package stores it
// and repaints the root black after every insert, but performs no
// rotations — see the package doc comment.
type Color int32

const (
	Red Color = iota
	Black
)

type node[K any, V any] struct {
	key    K
	value  V
	color  atomix.Int32
	left   atomic.Pointer[node[K, V]]
	right  atomic.Pointer[node[K, V]]
	parent atomic.Pointer[node[K, V]]
	marked atomix.Bool
}

// Tree is a lock-free ordered map over an unbalanced binary search
// tree, keyed by K and ordered by a caller-supplied comparator.
//
// The zero value is not usable; construct with [New].
type Tree[K any, V any] struct {
	root atomic.Pointer[node[K, V]]
	cmp  func(a, b K) int
	size atomix.Int64
}

// New creates an empty Tree ordered by cmp (same contract as
// [cmp.Compare]).
func New[K any, V any](cmp func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp}
}

func (t *Tree[K, V]) insertFixup() {
	if root := t.root.Load(); root != nil {
		root.color.StoreRelease(int32(Black))
	}
}

// Insert adds key/value if key is not already present (including keys
// marked for deletion, which is an existing-key match just like a live
// one — matching the original C++ source).
//
// Returns ErrDuplicate if key is present. Returns ErrWouldBlock if the
// retry budget is exhausted under contention.
func (t *Tree[K, V]) Insert(key K, value V) error {
	n := &node[K, V]{key: key, value: value}
	n.color.Store(int32(Red))
	sw := spin.Wait{}

	for attempt := 0; attempt < insertRetryBudget; attempt++ {
		cur := t.root.Load()
		var parent *node[K, V]
		for cur != nil {
			parent = cur
			c := t.cmp(key, cur.key)
			switch {
			case c < 0:
				cur = cur.left.Load()
			case c > 0:
				cur = cur.right.Load()
			default:
				return ErrDuplicate
			}
		}
		n.parent.Store(parent)

		if parent == nil {
			if t.root.CompareAndSwap(nil, n) {
				n.color.StoreRelease(int32(Black))
				t.size.Add(1)
				return nil
			}
		} else if t.cmp(key, parent.key) < 0 {
			if parent.left.CompareAndSwap(nil, n) {
				t.insertFixup()
				t.size.Add(1)
				return nil
			}
		} else {
			if parent.right.CompareAndSwap(nil, n) {
				t.insertFixup()
				t.size.Add(1)
				return nil
			}
		}
		sw.Once()
	}
	return ErrWouldBlock
}

func (t *Tree[K, V]) findNode(key K) *node[K, V] {
	cur := t.root.Load()
	for cur != nil {
		c := t.cmp(key, cur.key)
		switch {
		case c < 0:
			cur = cur.left.Load()
		case c > 0:
			cur = cur.right.Load()
		default:
			if cur.marked.LoadAcquire() {
				return nil
			}
			return cur
		}
	}
	return nil
}

// Find returns the value for key and true if key is present and not
// erased, or the zero value and false otherwise.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	if n := t.findNode(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.findNode(key) != nil
}

// Erase logically deletes key. Returns true if key was present and
// this call performed the deletion, false if key was absent or already
// erased by another goroutine.
func (t *Tree[K, V]) Erase(key K) bool {
	n := t.findNode(key)
	if n == nil {
		return false
	}
	if n.marked.CompareAndSwapAcqRel(false, true) {
		t.size.Add(-1)
		return true
	}
	return false
}

func leftmost[K any, V any](n *node[K, V]) *node[K, V] {
	for {
		left := n.left.Load()
		if left == nil {
			return n
		}
		n = left
	}
}

func successor[K any, V any](n *node[K, V]) *node[K, V] {
	if right := n.right.Load(); right != nil {
		return leftmost(right)
	}
	parent := n.parent.Load()
	for parent != nil && n == parent.right.Load() {
		n = parent
		parent = parent.parent.Load()
	}
	return parent
}

// Range calls fn for every live key/value pair in ascending key order,
// stopping early if fn returns false.
func (t *Tree[K, V]) Range(fn func(K, V) bool) {
	root := t.root.Load()
	if root == nil {
		return
	}
	for cur := leftmost(root); cur != nil; cur = successor(cur) {
		if cur.marked.LoadAcquire() {
			continue
		}
		if !fn(cur.key, cur.value) {
			return
		}
	}
}

// Len returns the number of live (non-erased) entries.
func (t *Tree[K, V]) Len() int {
	return int(t.size.Load())
}

// Empty reports whether the tree currently has no live entries.
func (t *Tree[K, V]) Empty() bool {
	return t.Len() == 0
}
