// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bloom provides a lock-free Bloom filter over an arbitrary
// key type.
//
// Filter derives its k independent bit positions from a single base
// hash, XORed against k fixed seeds, rather than computing k separate
// hashes — the same double-hashing shortcut as the original C++
// source, down to its seed table. Each bit is set with an atomic OR
// (via a CAS retry loop, since the standard library has no atomic
// fetch-or), so concurrent Insert calls never lose a bit. Insert's
// bool result reports whether the call set at least one previously
// clear bit — a true value means the item is definitely new, a false
// value means it may already be present (or the filter's false
// positives coincided on every one of its bits).
//
// A Bloom filter never produces a false negative, but Contains can
// return a false positive whose probability rises with load; see
// [Filter.FalsePositiveProbability].
package bloom
