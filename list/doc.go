// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package list provides a lock-free singly linked list with
// Harris-style logical deletion.
//
// Remove marks a node rather than unlinking it immediately, so a
// concurrent traversal started before the mark never follows a dangling
// next pointer. Insert and Contains help unlink marked nodes they pass
// over, amortizing cleanup across callers instead of requiring a
// dedicated collector. Insert appends at the tail, after a full scan
// that rejects the value if an equal element (per a caller-supplied
// Equal function) is already present, so the list preserves insertion
// order and never holds duplicates — matching the original C++ source.
//
// Len reflects only live elements: the counter is incremented on
// Insert and decremented on Remove, the same two call sites the
// original source adjusts it at.
package list
