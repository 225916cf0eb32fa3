// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates the operation cannot proceed immediately: the
// ring is full (Push) or empty (Pop). It is a control-flow signal, not a
// failure — callers retry with backoff rather than propagating it.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency with
// queue, hashmap, and every other package in this module.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal, not a failure.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
