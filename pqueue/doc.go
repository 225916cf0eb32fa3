// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pqueue provides a lock-free priority queue built on the same
// skip-list substrate as [code.hybscloud.com/lockfree/skiplist], but
// keyed purely by ordering rather than by unique key: Push admits
// duplicates and always links a new node into the position its
// priority dictates, rather than first checking for an existing equal
// element.
//
// Pop removes the node immediately after head at level 0 — the
// highest-priority live element, since the skip list's invariant keeps
// that position sorted — by marking it, then helping unlink it from
// level 0. Higher-level forward pointers for a popped node are cleaned
// up lazily by a later Push's predecessor search, matching the
// original C++ source.
package pqueue

// MaxLevel bounds the number of forward pointers a node carries. It is
// smaller than [code.hybscloud.com/lockfree/skiplist.MaxLevel] because
// the original priority queue used a shallower tower budget, tuned for
// queue-shaped (far more pops near the head than deep traversals)
// access patterns.
const MaxLevel = 16
