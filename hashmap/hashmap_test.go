// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hashmap_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"code.hybscloud.com/lockfree/hashmap"
)

func TestMapBasic(t *testing.T) {
	m := hashmap.New[string, int](16)

	if _, ok := m.Find("a"); ok {
		t.Fatal("Find on empty map found a key")
	}
	if err := m.Insert("a", 1); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := m.Insert("a", 2); !errors.Is(err, hashmap.ErrDuplicate) {
		t.Fatalf("Insert duplicate: got %v, want ErrDuplicate", err)
	}
	v, ok := m.Find("a")
	if !ok || v != 1 {
		t.Fatalf("Find: got (%d, %v), want (1, true)", v, ok)
	}
	if !m.Contains("a") {
		t.Fatal("Contains: want true")
	}
	if m.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", m.Len())
	}

	if !m.Erase("a") {
		t.Fatal("Erase: want true")
	}
	if m.Erase("a") {
		t.Fatal("second Erase of same key: want false")
	}
	if m.Contains("a") {
		t.Fatal("Contains after Erase: want false")
	}
	if m.Len() != 0 {
		t.Fatalf("Len after Erase: got %d, want 0", m.Len())
	}

	// A key may be reinserted after erase.
	if err := m.Insert("a", 3); err != nil {
		t.Fatalf("reinsert after erase: %v", err)
	}
	if v, ok := m.Find("a"); !ok || v != 3 {
		t.Fatalf("Find after reinsert: got (%d, %v), want (3, true)", v, ok)
	}
}

// TestMapDuplicateRejection matches spec scenario 3: concurrent inserts
// of the same key must leave exactly one winner visible.
func TestMapDuplicateRejection(t *testing.T) {
	m := hashmap.New[int, int](64)
	const writers = 16

	var wg sync.WaitGroup
	wg.Add(writers)
	successes := make([]bool, writers)
	for w := range writers {
		go func(w int) {
			defer wg.Done()
			successes[w] = m.Insert(42, w) == nil
		}(w)
	}
	wg.Wait()

	wins := 0
	for _, ok := range successes {
		if ok {
			wins++
		}
	}
	if wins != 1 {
		t.Fatalf("exactly one insert should win a race on the same key, got %d", wins)
	}
	if !m.Contains(42) {
		t.Fatal("key should be present after the race")
	}
}

func TestMapRange(t *testing.T) {
	m := hashmap.New[int, string](8)
	want := map[int]string{}
	for i := range 50 {
		want[i] = fmt.Sprintf("v%d", i)
		if err := m.Insert(i, want[i]); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}
	m.Erase(10)
	delete(want, 10)

	got := map[int]string{}
	m.Range(func(k int, v string) bool {
		got[k] = v
		return true
	})
	if len(got) != len(want) {
		t.Fatalf("Range visited %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("Range entry %d: got %q, want %q", k, got[k], v)
		}
	}
}

func TestMapConcurrentDistinctKeys(t *testing.T) {
	m := hashmap.New[int, int](128)
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
				key := w*perWriter + i
				if err := m.Insert(key, key*2); err != nil {
					t.Errorf("Insert(%d): %v", key, err)
				}
			}
		}(w)
	}
	wg.Wait()

	if got, want := m.Len(), writers*perWriter; got != want {
		t.Fatalf("Len: got %d, want %d", got, want)
	}
	for w := range writers {
		for i := range perWriter {
			key := w*perWriter + i
			v, ok := m.Find(key)
			if !ok || v != key*2 {
				t.Fatalf("Find(%d): got (%d, %v), want (%d, true)", key, v, ok, key*2)
			}
		}
	}
}

func TestMapLoadFactor(t *testing.T) {
	m := hashmap.New[int, int](10)
	for i := range 5 {
		if err := m.Insert(i, i); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if got, want := m.LoadFactor(), 0.5; got != want {
		t.Fatalf("LoadFactor: got %f, want %f", got, want)
	}
}
