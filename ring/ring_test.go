// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/lockfree/ring"
)

func TestRingBasic(t *testing.T) {
	r := ring.New[int](3)
	if r.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", r.Cap())
	}

	for i := range 4 {
		v := i + 100
		if err := r.Push(&v); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	v := 999
	if err := r.Push(&v); !errors.Is(err, ring.ErrWouldBlock) {
		t.Fatalf("Push on full: got %v, want ErrWouldBlock", err)
	}

	if got := r.Len(); got != 4 {
		t.Fatalf("Len: got %d, want 4", got)
	}

	for i := range 4 {
		got, err := r.Pop()
		if err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if got != i+100 {
			t.Fatalf("Pop(%d): got %d, want %d", i, got, i+100)
		}
	}

	if _, err := r.Pop(); !errors.Is(err, ring.ErrWouldBlock) {
		t.Fatalf("Pop on empty: got %v, want ErrWouldBlock", err)
	}
	if got := r.Len(); got != 0 {
		t.Fatalf("Len after drain: got %d, want 0", got)
	}
}

func TestSPSCRingBasic(t *testing.T) {
	r := ring.NewSPSC[int](3)
	if r.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", r.Cap())
	}

	for i := range 4 {
		v := i
		if err := r.Push(&v); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	v := 99
	if err := r.Push(&v); !errors.Is(err, ring.ErrWouldBlock) {
		t.Fatalf("Push on full: got %v, want ErrWouldBlock", err)
	}
	for i := range 4 {
		got, err := r.Pop()
		if err != nil || got != i {
			t.Fatalf("Pop(%d): got (%d, %v)", i, got, err)
		}
	}
	if _, err := r.Pop(); !errors.Is(err, ring.ErrWouldBlock) {
		t.Fatalf("Pop on empty: got %v, want ErrWouldBlock", err)
	}
}

// TestRingConcurrent exercises the MPMC path with multiple concurrent
// producers and a single consumer. Skipped under the race detector: the validity-flag/value
// handoff relies on acquire-release orderings on separate atomic fields,
// which the race detector cannot observe and would flag as a false data race.
func TestRingConcurrent(t *testing.T) {
	if ring.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}

	const (
		producers  = 4
		perProduce = 2000
	)
	r := ring.New[int](256)

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := range producers {
		go func(p int) {
			defer wg.Done()
			for i := range perProduce {
				v := p*perProduce + i
				for r.Push(&v) != nil {
					// spin until a slot frees up
				}
			}
		}(p)
	}

	total := producers * perProduce
	seen := make([]bool, total)
	consumed := 0
	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	for consumed < total {
		v, err := r.Pop()
		if err != nil {
			select {
			case <-done:
				if consumed == total {
					return
				}
			default:
			}
			continue
		}
		if seen[v] {
			t.Fatalf("value %d observed twice", v)
		}
		seen[v] = true
		consumed++
	}
}
