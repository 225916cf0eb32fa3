// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stack provides a lock-free LIFO stack.
//
// Stack is a Treiber stack: push and pop both operate via a single CAS
// on a head pointer. ABA safety is provided by a generation tag paired
// with the head pointer rather than a bare pointer CAS — every successful
// CAS publishes a new (node, tag) pair with tag incremented, so a
// pop-then-push cycle that reuses the same node address is still
// distinguishable from the CAS-er's point of view.
//
// Unlike the original C++ source (which packs a 48-bit pointer and a
// 16-bit tag into one machine word), this package pairs the pointer and
// tag as fields of a small immutable record and CASes a pointer to that
// record. Packing a live Go pointer's bits into an integer field would
// hide it from the garbage collector — the record-pair approach gets the
// same "tag travels atomically with the pointer" guarantee without ever
// representing a heap pointer as an integer.
//
// Example:
//
//	s := stack.New[int]()
//	s.Push(1)
//	s.Push(2)
//	v, err := s.Pop() // v == 2
package stack
