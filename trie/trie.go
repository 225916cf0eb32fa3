// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trie

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// childRetryBudget bounds the CAS retries to create (or replace a
// deleted) child node before Insert reports a transient failure.
const childRetryBudget = 1000

type node struct {
	children  [AlphabetSize]atomic.Pointer[node]
	endOfWord atomix.Bool
	deleted   atomix.Bool
}

// Trie is a lock-free trie over byte strings.
//
// The zero value is not usable; construct with [New].
type Trie struct {
	root *node
	size atomix.Int64
}

// New creates an empty Trie.
func New() *Trie {
	return &Trie{root: &node{}}
}

func (n *node) insertChild(c byte) (*node, error) {
	sw := spin.Wait{}
	child := n.children[c].Load()
	for attempt := 0; attempt < childRetryBudget; attempt++ {
		if child == nil {
			nc := &node{}
			if n.children[c].CompareAndSwap(child, nc) {
				return nc, nil
			}
			child = n.children[c].Load()
		} else if child.deleted.LoadAcquire() {
			nc := &node{}
			if n.children[c].CompareAndSwap(child, nc) {
				return nc, nil
			}
			child = n.children[c].Load()
		} else {
			return child, nil
		}
		sw.Once()
	}
	return nil, ErrWouldBlock
}

func (n *node) insert(word string, idx int) (bool, error) {
	if n == nil || n.deleted.LoadAcquire() {
		return false, nil
	}
	if idx == len(word) {
		return n.endOfWord.CompareAndSwapAcqRel(false, true), nil
	}
	child, err := n.insertChild(word[idx])
	if err != nil {
		return false, err
	}
	return child.insert(word, idx+1)
}

// Insert adds word to the trie.
//
// Returns ErrEmptyKey for an empty word (never stored). Returns nil
// with no error wrapping a false success state when word is already
// present — callers check the bool result. Returns ErrWouldBlock if
// the retry budget for creating a path node is exhausted under
// contention.
func (t *Trie) Insert(word string) (bool, error) {
	if len(word) == 0 {
		return false, ErrEmptyKey
	}
	ok, err := t.root.insert(word, 0)
	if err != nil {
		return false, err
	}
	if ok {
		t.size.Add(1)
	}
	return ok, nil
}

func (n *node) contains(word string, idx int) bool {
	if n == nil || n.deleted.LoadAcquire() {
		return false
	}
	if idx == len(word) {
		return n.endOfWord.LoadAcquire()
	}
	return n.children[word[idx]].Load().contains(word, idx+1)
}

// Contains reports whether word is present and not erased.
func (t *Trie) Contains(word string) bool {
	if len(word) == 0 {
		return false
	}
	return t.root.contains(word, 0)
}

func hasChildren(n *node) bool {
	if n == nil {
		return false
	}
	for i := range n.children {
		c := n.children[i].Load()
		if c != nil && !c.deleted.LoadAcquire() {
			return true
		}
	}
	return false
}

func cleanupIfPossible(parent *node, c byte, child *node) {
	if child == nil || child.endOfWord.LoadAcquire() || hasChildren(child) {
		return
	}
	if child.deleted.CompareAndSwapAcqRel(false, true) {
		parent.children[c].CompareAndSwap(child, nil)
	}
}

func (n *node) erase(word string, idx int) bool {
	if n == nil || n.deleted.LoadAcquire() {
		return false
	}
	if idx == len(word) {
		return n.endOfWord.CompareAndSwapAcqRel(true, false)
	}
	c := word[idx]
	child := n.children[c].Load()
	result := child.erase(word, idx+1)
	if result && child != nil {
		cleanupIfPossible(n, c, child)
	}
	return result
}

// Erase removes word from the trie. Returns true if word was present
// and this call performed the removal, false if word was absent,
// empty, or already erased by another goroutine.
func (t *Trie) Erase(word string) bool {
	if len(word) == 0 {
		return false
	}
	if t.root.erase(word, 0) {
		t.size.Add(-1)
		return true
	}
	return false
}

// StartsWith reports whether any stored word begins with prefix. An
// empty prefix reports false.
func (t *Trie) StartsWith(prefix string) bool {
	if len(prefix) == 0 {
		return false
	}
	cur := t.root
	for i := 0; i < len(prefix); i++ {
		if cur == nil || cur.deleted.LoadAcquire() {
			return false
		}
		cur = cur.children[prefix[i]].Load()
	}
	return cur != nil && !cur.deleted.LoadAcquire()
}

func collect(n *node, buf *[]byte, result *[]string) {
	if n == nil || n.deleted.LoadAcquire() {
		return
	}
	if n.endOfWord.LoadAcquire() {
		*result = append(*result, string(*buf))
	}
	for i := range AlphabetSize {
		child := n.children[i].Load()
		if child != nil && !child.deleted.LoadAcquire() {
			*buf = append(*buf, byte(i))
			collect(child, buf, result)
			*buf = (*buf)[:len(*buf)-1]
		}
	}
}

// CollectWithPrefix returns every live word beginning with prefix. The
// result order is the ascending byte order of the trie's traversal,
// not insertion order. An empty prefix yields no words.
func (t *Trie) CollectWithPrefix(prefix string) []string {
	var result []string
	if len(prefix) == 0 {
		return result
	}
	cur := t.root
	for i := 0; i < len(prefix); i++ {
		if cur == nil || cur.deleted.LoadAcquire() {
			return result
		}
		cur = cur.children[prefix[i]].Load()
	}
	if cur == nil || cur.deleted.LoadAcquire() {
		return result
	}
	buf := []byte(prefix)
	collect(cur, &buf, &result)
	return result
}

// LongestPrefix returns the longest prefix of word that is itself a
// stored word, or "" if none is.
func (t *Trie) LongestPrefix(word string) string {
	result := ""
	cur := t.root
	for i := 0; i < len(word); i++ {
		if cur == nil || cur.deleted.LoadAcquire() {
			break
		}
		if cur.endOfWord.LoadAcquire() {
			result = word[:i]
		}
		cur = cur.children[word[i]].Load()
	}
	if cur != nil && !cur.deleted.LoadAcquire() && cur.endOfWord.LoadAcquire() {
		result = word
	}
	return result
}

func rangeNode(n *node, buf *[]byte, fn func(string) bool) bool {
	if n == nil || n.deleted.LoadAcquire() {
		return true
	}
	if n.endOfWord.LoadAcquire() {
		if !fn(string(*buf)) {
			return false
		}
	}
	for i := range AlphabetSize {
		child := n.children[i].Load()
		if child != nil && !child.deleted.LoadAcquire() {
			*buf = append(*buf, byte(i))
			cont := rangeNode(child, buf, fn)
			*buf = (*buf)[:len(*buf)-1]
			if !cont {
				return false
			}
		}
	}
	return true
}

// Range calls fn for every live word, stopping early if fn returns
// false. Traversal order is the trie's byte order, not insertion order.
func (t *Trie) Range(fn func(string) bool) {
	var buf []byte
	rangeNode(t.root, &buf, fn)
}

// Len returns the number of live (non-erased) words.
func (t *Trie) Len() int {
	return int(t.size.Load())
}

// Empty reports whether the trie currently has no live words.
func (t *Trie) Empty() bool {
	return t.Len() == 0
}
