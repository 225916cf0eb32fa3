// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bloom

import (
	"hash/maphash"
	"math"
	"math/bits"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MaxHashFunctions is the largest value New/NewHash accept for
// numHashFunctions, matching the size of the fixed seed table.
const MaxHashFunctions = 8

// hashSeeds are fixed constants combined with a single base hash to
// derive MaxHashFunctions independent bit positions, avoiding the cost
// of computing that many genuinely independent hash functions.
var hashSeeds = [MaxHashFunctions]uint64{
	0x9e3779b9, 0x85ebca6b, 0xc2b2ae35, 0x27d4eb2f,
	0x165667b1, 0xd3a2646c, 0xfd7046c5, 0xb55a4f09,
}

const bitsPerWord = 64

// setBitRetryBudget bounds a single bit's CAS retry loop before
// reporting a transient failure; ordinary contention resolves in a
// handful of attempts.
const setBitRetryBudget = 1000

// Filter is a lock-free Bloom filter over key type K.
//
// The zero value is not usable; construct with [New] or [NewHash].
type Filter[K any] struct {
	words  []atomix.Uint64
	size   uint64 // total bits, a power of 2
	mask   uint64
	k      int
	hashFn func(K) uint64
	count  atomix.Int64
}

// New creates a Filter with 2^sizeBits total bits and numHashFunctions
// independent hash functions (1..MaxHashFunctions), hashing keys with
// the standard library's generic comparable hash
// (hash/maphash.Comparable).
func New[K comparable](sizeBits uint, numHashFunctions int) *Filter[K] {
	seed := maphash.MakeSeed()
	return NewHash[K](sizeBits, numHashFunctions, func(k K) uint64 {
		return maphash.Comparable(seed, k)
	})
}

// NewHash creates a Filter with a caller-supplied hash function.
func NewHash[K any](sizeBits uint, numHashFunctions int, hash func(K) uint64) *Filter[K] {
	if sizeBits == 0 {
		panic("bloom: sizeBits must be >= 1")
	}
	if numHashFunctions < 1 || numHashFunctions > MaxHashFunctions {
		panic("bloom: numHashFunctions must be between 1 and MaxHashFunctions")
	}
	size := uint64(1) << sizeBits
	return &Filter[K]{
		words:  make([]atomix.Uint64, (size+bitsPerWord-1)/bitsPerWord),
		size:   size,
		mask:   size - 1,
		k:      numHashFunctions,
		hashFn: hash,
	}
}

func (f *Filter[K]) bitPositions(key K) []uint64 {
	base := f.hashFn(key)
	positions := make([]uint64, f.k)
	for i := range positions {
		positions[i] = (base ^ hashSeeds[i]) & f.mask
	}
	return positions
}

// setBit atomically sets bit and reports whether it was already set.
func (f *Filter[K]) setBit(bit uint64) (bool, error) {
	wordIdx := bit / bitsPerWord
	bitMask := uint64(1) << (bit % bitsPerWord)
	word := &f.words[wordIdx]
	sw := spin.Wait{}
	for attempt := 0; attempt < setBitRetryBudget; attempt++ {
		old := word.LoadRelaxed()
		if old&bitMask != 0 {
			return true, nil
		}
		if word.CompareAndSwapAcqRel(old, old|bitMask) {
			return false, nil
		}
		sw.Once()
	}
	return false, ErrWouldBlock
}

func (f *Filter[K]) isBitSet(bit uint64) bool {
	wordIdx := bit / bitsPerWord
	bitMask := uint64(1) << (bit % bitsPerWord)
	return f.words[wordIdx].LoadRelaxed()&bitMask != 0
}

// Insert adds key to the filter.
//
// The bool result reports whether this call set at least one
// previously clear bit: true means key is definitely new, false means
// it may already be present. Returns ErrWouldBlock if a bit's retry
// budget is exhausted under extreme contention.
func (f *Filter[K]) Insert(key K) (bool, error) {
	wasPresent := true
	for _, bit := range f.bitPositions(key) {
		bitWasSet, err := f.setBit(bit)
		if err != nil {
			return false, err
		}
		if !bitWasSet {
			wasPresent = false
		}
	}
	if !wasPresent {
		f.count.Add(1)
	}
	return !wasPresent, nil
}

// Contains reports whether key might be present. False positives are
// possible; false negatives are not.
func (f *Filter[K]) Contains(key K) bool {
	for _, bit := range f.bitPositions(key) {
		if !f.isBitSet(bit) {
			return false
		}
	}
	return true
}

// Clear resets every bit and the approximate item count to zero. Not
// safe to call concurrently with Insert or Contains.
func (f *Filter[K]) Clear() {
	for i := range f.words {
		f.words[i].Store(0)
	}
	f.count.Store(0)
}

// ApproximateCount returns the approximate number of distinct items
// inserted, counted only when an Insert call set at least one new bit.
func (f *Filter[K]) ApproximateCount() int {
	return int(f.count.Load())
}

// bitsSet counts the total number of set bits across the filter.
func (f *Filter[K]) bitsSet() int {
	n := 0
	for i := range f.words {
		n += bits.OnesCount64(f.words[i].LoadRelaxed())
	}
	return n
}

// LoadFactor returns the fraction of bits currently set, in [0, 1].
func (f *Filter[K]) LoadFactor() float64 {
	return float64(f.bitsSet()) / float64(f.size)
}

// FalsePositiveProbability estimates the current false positive rate
// from the load factor, via (1 - e^(-k*load))^k.
func (f *Filter[K]) FalsePositiveProbability() float64 {
	load := f.LoadFactor()
	if load >= 1.0 {
		return 1.0
	}
	expPart := math.Exp(-float64(f.k) * load)
	return math.Pow(1.0-expPart, float64(f.k))
}

// Statistics summarizes the filter's current state.
type Statistics struct {
	TotalBits                int
	BitsSet                  int
	ApproximateItems         int
	HashFunctions            int
	LoadFactor               float64
	FalsePositiveProbability float64
}

// Statistics returns a snapshot of the filter's current metrics.
func (f *Filter[K]) Statistics() Statistics {
	return Statistics{
		TotalBits:                int(f.size),
		BitsSet:                  f.bitsSet(),
		ApproximateItems:         f.ApproximateCount(),
		HashFunctions:            f.k,
		LoadFactor:               f.LoadFactor(),
		FalsePositiveProbability: f.FalsePositiveProbability(),
	}
}
