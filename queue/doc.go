// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package queue provides a bounded, multi-producer multi-consumer FIFO
// queue.
//
// [Queue] is the Vyukov-style sequence-slot algorithm: each slot carries
// its own sequence counter, and the producer/consumer cursors are
// claimed independently via CAS. This keeps enqueue and dequeue from
// contending on a shared lock while allowing any number of goroutines
// on either side.
//
// Example:
//
//	q := queue.New[int](1024)
//
//	v := 42
//	if err := q.Enqueue(&v); err != nil {
//	    // full
//	}
//
//	got, err := q.Dequeue()
//	if err != nil {
//	    // empty
//	}
//
// Capacity rounds up to the next power of 2 and panics if below 2, so
// that the slot index reduces to a mask instead of a modulo.
//
// The sibling package code.hybscloud.com/lockfree/ring's SPSCRing covers
// the single-producer/single-consumer case, kept separate because that
// access pattern admits a simpler, CAS-free algorithm.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channel, WaitGroup) but not happens-before relationships established
// purely through atomic acquire/release orderings, so it can flag false
// positives on this algorithm's cross-field synchronization. Tests that
// trip this skip themselves when [RaceEnabled] is true.
package queue
