// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hashmap provides a fixed-bucket lock-free hash map.
//
// Map is a separate-chaining hash table: bucket count is fixed at
// construction (no resize — see the module's Non-goals), each bucket is
// an atomic chain head, and erase is logical (a per-node deletion flag)
// rather than an immediate unlink, so a concurrent reader mid-chain-walk
// never dereferences freed memory.
//
// Insert detects duplicates by scanning the chain before linking a new
// node at the head. The head CAS expects the head the scan started from,
// so an insert by another goroutine into the same bucket in between makes
// the CAS fail and the scan is repeated: live keys stay unique under
// contention (see DESIGN.md). A production API wanting insert-or-assign
// semantics should layer that on top; this package always preserves the first value for a
// key, matching the original C++ source.
//
// Example:
//
//	m := hashmap.New[string, int](1024)
//	if err := m.Insert("answer", 42); err != nil {
//	    // duplicate key, or retry budget exhausted under contention
//	}
//	v, ok := m.Find("answer")
package hashmap
