// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hashset provides a fixed-bucket lock-free hash set.
//
// Set shares its substrate with [code.hybscloud.com/lockfree/hashmap]:
// a fixed array of atomic chain heads, logical (flag-based) deletion,
// and the same duplicate check (a chain scan followed by a head CAS that
// fails, forcing a rescan, if the bucket changed in between). It is kept as its own package, rather than a map with a
// struct{} value, so that its zero-size elements never carry an unused
// value field through the node layout.
package hashset
