// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stack

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrEmpty indicates Pop or Top found the stack empty. This is a semantic
// absence, distinct from a transient contention failure.
var ErrEmpty = errors.New("stack: empty")

// ErrWouldBlock indicates Pop exhausted its retry budget under extreme
// contention without observing the stack as definitively empty or
// definitively yielding a value. Callers may retry.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal, not a failure.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err) || errors.Is(err, ErrEmpty)
}
