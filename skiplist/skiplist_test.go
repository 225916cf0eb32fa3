// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package skiplist_test

import (
	"cmp"
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/lockfree/skiplist"
)

func TestStoreBasic(t *testing.T) {
	s := skiplist.New[int, string](cmp.Compare[int])

	if _, ok := s.Find(1); ok {
		t.Fatal("Find on empty store found a key")
	}
	if err := s.Insert(1, "one"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.Insert(1, "uno"); !errors.Is(err, skiplist.ErrDuplicate) {
		t.Fatalf("Insert duplicate: got %v, want ErrDuplicate", err)
	}
	v, ok := s.Find(1)
	if !ok || v != "one" {
		t.Fatalf("Find: got (%q, %v), want (\"one\", true)", v, ok)
	}
	if s.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", s.Len())
	}
	if s.Empty() {
		t.Fatal("Empty: want false")
	}
	if !s.Erase(1) {
		t.Fatal("Erase: want true")
	}
	if s.Erase(1) {
		t.Fatal("second Erase: want false")
	}
	if !s.Empty() {
		t.Fatal("Empty after Erase: want true")
	}
}

// TestStoreRangeOrder matches spec scenario 4: Range visits keys in
// ascending order even when inserted out of order and with an erased
// key interleaved.
func TestStoreRangeOrder(t *testing.T) {
	s := skiplist.New[int, int](cmp.Compare[int])
	order := []int{50, 10, 90, 30, 70, 20, 80, 40, 60, 0}
	for _, k := range order {
		if err := s.Insert(k, k*10); err != nil {
			t.Fatalf("Insert(%d): %v", k, err)
		}
	}
	s.Erase(30)

	var got []int
	s.Range(func(k, v int) bool {
		if v != k*10 {
			t.Fatalf("Range: key %d has value %d, want %d", k, v, k*10)
		}
		got = append(got, k)
		return true
	})

	want := []int{0, 10, 20, 40, 50, 60, 70, 80, 90}
	if len(got) != len(want) {
		t.Fatalf("Range visited %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Range order at %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStoreConcurrentDistinctKeys(t *testing.T) {
	s := skiplist.New[int, int](cmp.Compare[int])
	const (
		writers   = 8
		perWriter = 300
	)
	var wg sync.WaitGroup
	wg.Add(writers)
	for w := range writers {
		go func(w int) {
			defer wg.Done()
			for i := range perWriter {
				k := w*perWriter + i
				if err := s.Insert(k, k*2); err != nil {
					t.Errorf("Insert(%d): %v", k, err)
				}
			}
		}(w)
	}
	wg.Wait()

	if got, want := s.Len(), writers*perWriter; got != want {
		t.Fatalf("Len: got %d, want %d", got, want)
	}
	for w := range writers {
		for i := range perWriter {
			k := w*perWriter + i
			v, ok := s.Find(k)
			if !ok || v != k*2 {
				t.Fatalf("Find(%d): got (%d, %v), want (%d, true)", k, v, ok, k*2)
			}
		}
	}
}
