// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pqueue_test

import (
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/lockfree/pqueue"
)

func maxLess(a, b int) bool { return a > b }

func TestQueueBasic(t *testing.T) {
	q := pqueue.New[int](maxLess)

	if !q.Empty() {
		t.Fatal("new queue should be empty")
	}
	if _, err := q.Pop(); !errors.Is(err, pqueue.ErrEmpty) {
		t.Fatalf("Pop on empty: got %v, want ErrEmpty", err)
	}

	for _, v := range []int{5, 1, 9, 3, 7} {
		if err := q.Push(v); err != nil {
			t.Fatalf("Push(%d): %v", v, err)
		}
	}
	if q.Len() != 5 {
		t.Fatalf("Len: got %d, want 5", q.Len())
	}
	if v, err := q.Top(); err != nil || v != 9 {
		t.Fatalf("Top: got (%d, %v), want (9, nil)", v, err)
	}

	for _, want := range []int{9, 7, 5, 3, 1} {
		v, err := q.Pop()
		if err != nil || v != want {
			t.Fatalf("Pop: got (%d, %v), want (%d, nil)", v, err, want)
		}
	}
	if !q.Empty() {
		t.Fatal("queue should be empty after draining")
	}
}

func TestQueueAllowsDuplicatePriorities(t *testing.T) {
	q := pqueue.New[int](maxLess)
	for range 3 {
		if err := q.Push(5); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}
	if q.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", q.Len())
	}
	for range 3 {
		v, err := q.Pop()
		if err != nil || v != 5 {
			t.Fatalf("Pop: got (%d, %v), want (5, nil)", v, err)
		}
	}
}

func TestQueueConcurrentOrdering(t *testing.T) {
	q := pqueue.New[int](maxLess)
	const (
		pushers   = 8
		perPusher = 300
		total     = pushers * perPusher
	)

	var wg sync.WaitGroup
	wg.Add(pushers)
	for p := range pushers {
		go func(p int) {
			defer wg.Done()
			for i := range perPusher {
				if err := q.Push(p*perPusher + i); err != nil {
					t.Errorf("Push: %v", err)
				}
			}
		}(p)
	}
	wg.Wait()

	last := 1 << 30
	popped := 0
	for popped < total {
		v, err := q.Pop()
		if err != nil {
			continue
		}
		if v > last {
			t.Fatalf("Pop returned %d after %d, violating priority order", v, last)
		}
		last = v
		popped++
	}
	if !q.Empty() {
		t.Fatal("queue should be empty after full drain")
	}
}
