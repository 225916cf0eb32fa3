// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rbtree provides a lock-free ordered map built on an
// unbalanced binary search tree.
//
// Tree carries a per-node Color field and paints the root black after
// every insert, in the shape of red-black bookkeeping — but it performs
// no rotations, so it never actually rebalances. A red-black tree's
// logarithmic-height guarantee depends on rotation under a lock or a
// carefully designed lock-free restructuring protocol; the original
// source this package is grounded on never implements that part, only
// the naming and the coloring stub. This package keeps that naming
// faithfully (see DESIGN.md) rather than silently presenting a
// balanced tree it is not: callers with adversarial or sorted insertion
// patterns will see O(n) depth, same as the original.
//
// Deletion, like the other ordered containers in this module, is
// logical: a marked flag checked by Find and skipped by Range.
package rbtree
