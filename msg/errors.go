// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msg

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Enqueue: the queue is full (backpressure from the slowest reader)
// For Dequeue/Peek: the queue is empty (no unread value for this consumer)
//
// ErrWouldBlock is a control flow signal, not a failure. The value is
// retained by the caller on a failed Enqueue; retry later rather than
// propagating the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrClaimed indicates the requested role is already held by a live
// handle. Safely retryable once the current holder closes its handle.
var ErrClaimed = errors.New("msg: role already claimed")

// ErrNoFreeSlot indicates every consumer slot of an SPMC queue is
// occupied. Safely retryable once a consumer closes its handle.
var ErrNoFreeSlot = errors.New("msg: no free consumer slot")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
