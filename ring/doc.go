// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides power-of-two circular buffers.
//
// This is a sibling of [code.hybscloud.com/lockfree/queue] kept as a
// separate package on purpose: the single-producer/single-consumer path
// is a simpler, faster algorithm worth exposing distinctly from the
// Vyukov-style sequence-slot queues in queue.
//
// Two variants are offered:
//
//   - [Ring] is the general MPMC path: each slot holds a heap pointer to
//     a constructed value plus an atomic validity flag, claimed via CAS
//     on the head/tail cursors.
//   - [SPSCRing] is the single-producer/single-consumer fast path: no
//     CAS at all, just cached cursor views. Using it from more than one
//     producer or consumer goroutine is undefined behavior — the
//     constraint is documentation-enforced, not checked.
//
// Example:
//
//	r := ring.New[int](1024)
//	v := 42
//	if err := r.Push(&v); err != nil {
//	    // full
//	}
//	got, err := r.Pop()
//
// Both variants round capacity up to the next power of 2 and panic if
// capacity < 2, matching queue's construction contract.
package ring
