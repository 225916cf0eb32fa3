// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trie

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrEmptyKey is returned by Insert for an empty word, which the trie
// never stores. Erase and Contains report false for an empty word.
var ErrEmptyKey = errors.New("trie: empty word")

// ErrWouldBlock is returned when a bounded CAS retry budget is
// exhausted under contention; the caller may retry.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err is (or wraps) ErrWouldBlock.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a semantic outcome of the operation.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err) || errors.Is(err, ErrEmptyKey)
}
