// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package skiplist provides a lock-free ordered map built on a
// probabilistic skip list.
//
// Each Store node carries between 1 and MaxLevel tower pointers, its
// height chosen by [code.hybscloud.com/lockfree/internal/randlevel]
// (most nodes get only a few).
// Insert links a new node at level 0 first — that CAS is the
// linearization point — then links the remaining levels as a
// best-effort pass, re-finding predecessors if a level's CAS loses a
// race. Erase is logical: a marked flag on the node, physically
// unlinked lazily by a later traversal at the levels that pass over it.
// Erase itself only walks level 0, matching the original C++ source;
// the higher levels for a just-erased node are cleaned up the next
// time Find or Insert's predecessor search passes that node at those
// levels.
package skiplist

// MaxLevel bounds the number of forward pointers a node carries.
const MaxLevel = 32
