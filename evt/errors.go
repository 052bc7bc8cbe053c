// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evt

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a try-wait found the semaphore at zero.
// A control flow signal, not a failure; retry after a post.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrTimeout indicates a timed wait expired before the semaphore was
// posted.
var ErrTimeout = errors.New("evt: timed wait expired")

// ErrMaxCount indicates a post would raise the count past the
// semaphore's maximum.
var ErrMaxCount = errors.New("evt: semaphore at max count")

// ErrDoubleOpen indicates Open was called on an already-open named
// semaphore.
var ErrDoubleOpen = errors.New("evt: semaphore already open")

// ErrNotOpen indicates the named semaphore was not opened or has been
// closed.
var ErrNotOpen = errors.New("evt: semaphore not open")

// ErrInvalidName indicates the destination id cannot form a valid
// semaphore name.
var ErrInvalidName = errors.New("evt: invalid semaphore name")

// ErrNotSupported indicates named semaphores are unavailable on this
// platform.
var ErrNotSupported = errors.New("evt: named semaphores not supported on this platform")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
