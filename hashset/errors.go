// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hashset

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrDuplicate is returned by Insert when the value is already present.
var ErrDuplicate = errors.New("hashset: duplicate value")

// ErrWouldBlock is returned when a bounded CAS retry budget is exhausted
// under contention; the caller may retry.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err is (or wraps) ErrWouldBlock.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a semantic outcome of the operation
// (e.g. ErrDuplicate) rather than a transient or structural failure.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err) || errors.Is(err, ErrDuplicate)
}
