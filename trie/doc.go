// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package trie provides a lock-free 256-way trie over byte strings.
//
// Each Trie node holds an array of AlphabetSize atomic child pointers
// (one per possible byte value) plus an end-of-word flag and a deleted
// flag. Insert creates missing child nodes with a CAS, replacing a
// child found already marked deleted rather than reusing it. Erase
// unmarks the end-of-word flag at the word's terminal node and then
// opportunistically marks-and-unlinks any node along the path left with
// no children and no end-of-word flag of its own, walking back up one
// level of recursion at a time — so a word's nodes are reclaimed as
// soon as nothing else depends on them, without a separate GC pass.
package trie

// AlphabetSize is the number of distinct child slots per node — one
// per possible byte value.
const AlphabetSize = 256
