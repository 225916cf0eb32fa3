// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hashmap

import (
	"hash/maphash"
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// insertRetryBudget bounds Insert's head-CAS retries before it reports a
// transient failure.
const insertRetryBudget = 100

type node[K comparable, V any] struct {
	key     K
	value   V
	next    atomic.Pointer[node[K, V]]
	deleted atomix.Bool
}

type bucket[K comparable, V any] struct {
	head atomic.Pointer[node[K, V]]
}

// Map is a fixed-bucket-count, separate-chaining lock-free hash map.
//
// The zero value is not usable; construct with [New] or [NewHash].
type Map[K comparable, V any] struct {
	buckets []bucket[K, V]
	seed    maphash.Seed
	hashFn  func(K) uint64
	size    atomix.Int64
}

// New creates a Map with bucketCount chain heads, hashing keys with the
// standard library's generic comparable hash (hash/maphash.Comparable).
// bucketCount is fixed for the lifetime of the map; this package does
// not resize.
func New[K comparable, V any](bucketCount int) *Map[K, V] {
	m := &Map[K, V]{}
	m.init(bucketCount)
	seed := maphash.MakeSeed()
	m.seed = seed
	m.hashFn = func(k K) uint64 { return maphash.Comparable(seed, k) }
	return m
}

// NewHash creates a Map with a caller-supplied hash function, for keys
// whose distribution under the default hash is poor or that need a
// deterministic hash across runs.
func NewHash[K comparable, V any](bucketCount int, hash func(K) uint64) *Map[K, V] {
	m := &Map[K, V]{hashFn: hash}
	m.init(bucketCount)
	return m
}

func (m *Map[K, V]) init(bucketCount int) {
	if bucketCount < 1 {
		panic("hashmap: bucketCount must be >= 1")
	}
	m.buckets = make([]bucket[K, V], bucketCount)
}

func (m *Map[K, V]) bucketIndex(key K) int {
	return int(m.hashFn(key) % uint64(len(m.buckets)))
}

// Insert adds key/value if key is not already present.
//
// Returns ErrDuplicate if key is already present (first writer wins; an
// existing value is never overwritten). Returns ErrWouldBlock if the
// retry budget is exhausted under contention — the caller may retry.
//
// Insert scans the bucket chain for a duplicate and then CASes a new
// node onto the head it loaded before the scan. Any insert that lands in
// the same bucket in between changes the head, so the CAS fails and the
// scan is repeated; two live entries for one key never coexist (see
// DESIGN.md).
func (m *Map[K, V]) Insert(key K, value V) error {
	idx := m.bucketIndex(key)
	b := &m.buckets[idx]
	sw := spin.Wait{}
	for attempt := 0; attempt < insertRetryBudget; attempt++ {
		head := b.head.Load()
		for cur := head; cur != nil; cur = cur.next.Load() {
			if cur.key == key && !cur.deleted.LoadAcquire() {
				return ErrDuplicate
			}
		}
		n := &node[K, V]{key: key, value: value}
		n.next.Store(head)
		if b.head.CompareAndSwap(head, n) {
			m.size.Add(1)
			return nil
		}
		sw.Once()
	}
	return ErrWouldBlock
}

// Find returns the value for key and true if key is present and not
// deleted, or the zero value and false otherwise.
func (m *Map[K, V]) Find(key K) (V, bool) {
	idx := m.bucketIndex(key)
	for cur := m.buckets[idx].head.Load(); cur != nil; cur = cur.next.Load() {
		if cur.key == key && !cur.deleted.LoadAcquire() {
			return cur.value, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Find(key)
	return ok
}

// Erase logically deletes key. Returns true if key was present and this
// call performed the deletion, false if key was absent or already
// deleted by another goroutine.
func (m *Map[K, V]) Erase(key K) bool {
	idx := m.bucketIndex(key)
	for cur := m.buckets[idx].head.Load(); cur != nil; cur = cur.next.Load() {
		if cur.key == key {
			if cur.deleted.CompareAndSwapAcqRel(false, true) {
				m.size.Add(-1)
				return true
			}
			return false
		}
	}
	return false
}

// Range calls fn for every live key/value pair, in unspecified order,
// stopping early if fn returns false. Range does not observe a single
// consistent snapshot under concurrent mutation: it may miss a
// concurrent insert or observe a key that is erased mid-iteration.
func (m *Map[K, V]) Range(fn func(K, V) bool) {
	for i := range m.buckets {
		for cur := m.buckets[i].head.Load(); cur != nil; cur = cur.next.Load() {
			if cur.deleted.LoadAcquire() {
				continue
			}
			if !fn(cur.key, cur.value) {
				return
			}
		}
	}
}

// Len returns the number of live (non-erased) entries.
func (m *Map[K, V]) Len() int {
	return int(m.size.Load())
}

// LoadFactor returns Len() divided by the fixed bucket count.
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.Len()) / float64(len(m.buckets))
}
