// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stack_test

import (
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/lockfree/stack"
)

func TestStackBasic(t *testing.T) {
	s := stack.New[int]()
	if !s.Empty() {
		t.Fatal("new stack should be empty")
	}
	if _, err := s.Pop(); !errors.Is(err, stack.ErrEmpty) {
		t.Fatalf("Pop on empty: got %v, want ErrEmpty", err)
	}

	s.Push(1)
	s.Push(2)
	s.Push(3)

	if got := s.Len(); got != 3 {
		t.Fatalf("Len: got %d, want 3", got)
	}
	if v, err := s.Top(); err != nil || v != 3 {
		t.Fatalf("Top: got (%d, %v), want (3, nil)", v, err)
	}

	for _, want := range []int{3, 2, 1} {
		v, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if v != want {
			t.Fatalf("Pop: got %d, want %d", v, want)
		}
	}
	if !s.Empty() {
		t.Fatal("stack should be empty after draining")
	}
}

// TestStackConcurrent: 8 goroutines push 1000 values each; once they
// finish, a single popper drains until all 8000 values are observed. The
// multiset of popped values must equal the multiset pushed, though order
// is unconstrained.
func TestStackConcurrent(t *testing.T) {
	const (
		pushers   = 8
		perPusher = 1000
		total     = pushers * perPusher
	)
	s := stack.New[int]()

	var wg sync.WaitGroup
	wg.Add(pushers)
	for p := range pushers {
		go func(p int) {
			defer wg.Done()
			for i := range perPusher {
				s.Push(p*perPusher + i)
			}
		}(p)
	}
	wg.Wait()

	seen := make([]bool, total)
	popped := 0
	for popped < total {
		v, err := s.Pop()
		if err != nil {
			continue
		}
		if seen[v] {
			t.Fatalf("value %d popped twice", v)
		}
		seen[v] = true
		popped++
	}
	if !s.Empty() {
		t.Fatal("stack should be empty after full drain")
	}
}

func TestStackLIFOSingleProducer(t *testing.T) {
	s := stack.New[int]()
	for i := range 100 {
		s.Push(i)
	}
	for i := 99; i >= 0; i-- {
		v, err := s.Pop()
		if err != nil || v != i {
			t.Fatalf("Pop: got (%d, %v), want (%d, nil)", v, err, i)
		}
	}
}
