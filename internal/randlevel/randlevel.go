// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package randlevel generates the random tower heights shared by the
// skip-list-based containers (skiplist, pqueue).
//
// No library in the retrieved corpus provides a level generator or a
// PRNG suited to this use, so Generate is built directly on
// math/rand/v2: the level distribution (geometric, p=0.5) is a handful
// of lines and math/rand/v2's generator-per-call API is already
// goroutine-safe, which is what a shared level generator needs.
package randlevel

import "math/rand/v2"

// Generate returns a random level in [0, maxLevel-1] with a geometric
// distribution: each level above 0 is chosen with probability 1/2,
// capped so the result never reaches maxLevel.
func Generate(maxLevel int) int {
	level := 0
	for level < maxLevel-1 && rand.IntN(2) == 0 {
		level++
	}
	return level
}
