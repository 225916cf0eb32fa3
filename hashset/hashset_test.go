// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hashset_test

import (
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/lockfree/hashset"
)

func TestSetBasic(t *testing.T) {
	s := hashset.New[string](16)

	if s.Contains("a") {
		t.Fatal("Contains on empty set found a value")
	}
	if err := s.Insert("a"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.Insert("a"); !errors.Is(err, hashset.ErrDuplicate) {
		t.Fatalf("Insert duplicate: got %v, want ErrDuplicate", err)
	}
	if !s.Contains("a") {
		t.Fatal("Contains: want true")
	}
	if s.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", s.Len())
	}

	if !s.Erase("a") {
		t.Fatal("Erase: want true")
	}
	if s.Erase("a") {
		t.Fatal("second Erase of same value: want false")
	}
	if s.Contains("a") {
		t.Fatal("Contains after Erase: want false")
	}
	if s.Len() != 0 {
		t.Fatalf("Len after Erase: got %d, want 0", s.Len())
	}
}

func TestSetConcurrentDistinctValues(t *testing.T) {
	s := hashset.New[int](128)
	const (
		writers   = 8
		perWriter = 500
	)
	var wg sync.WaitGroup
	wg.Add(writers)
	for w := range writers {
		go func(w int) {
			defer wg.Done()
			for i := range perWriter {
				v := w*perWriter + i
				if err := s.Insert(v); err != nil {
					t.Errorf("Insert(%d): %v", v, err)
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
			v := w*perWriter + i
			if !s.Contains(v) {
				t.Fatalf("Contains(%d): want true", v)
			}
		}
	}
}

func TestSetRange(t *testing.T) {
	s := hashset.New[int](8)
	for i := range 50 {
		if err := s.Insert(i); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}
	s.Erase(10)

	got := map[int]bool{}
	s.Range(func(v int) bool {
		got[v] = true
		return true
	})
	if len(got) != 49 {
		t.Fatalf("Range visited %d values, want 49", len(got))
	}
	if got[10] {
		t.Fatal("Range visited erased value 10")
	}
}
