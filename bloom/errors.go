// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bloom

import "code.hybscloud.com/iox"

// ErrWouldBlock is returned when a bounded CAS retry budget for
// setting a bit is exhausted under extreme contention; the caller may
// retry.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err is (or wraps) ErrWouldBlock.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
