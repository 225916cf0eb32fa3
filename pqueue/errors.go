// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pqueue

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrEmpty is returned by Pop and Top when the queue has no live
// elements.
var ErrEmpty = errors.New("pqueue: empty")

// ErrWouldBlock is returned when a bounded CAS retry budget is
// exhausted under contention; the caller may retry.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err is (or wraps) ErrWouldBlock.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a semantic outcome of the operation.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err) || errors.Is(err, ErrEmpty)
}
