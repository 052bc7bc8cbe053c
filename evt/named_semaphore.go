// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evt

import (
	"fmt"
	"time"
)

// NamedSemaphore is a counting semaphore shared across process
// boundaries, addressed by a destination id. Processes that open the
// same id post to and wait on the same counter.
//
// On Linux the counter lives in a /dev/shm file and waiters block on a
// futex; see the platform files. Platforms without a backend return
// ErrNotSupported from Open.
//
// The semaphore object persists in the OS after Close; reopening the
// same id observes the prior count.
type NamedSemaphore struct {
	dstID int64
	sem   *namedSem
}

// NewNamedSemaphore creates an unopened semaphore addressed at dstID.
// Call Open before any other operation.
func NewNamedSemaphore(dstID int64) *NamedSemaphore {
	return &NamedSemaphore{dstID: dstID}
}

// DstID returns the destination id this semaphore addresses.
func (n *NamedSemaphore) DstID() int64 {
	return n.dstID
}

// Name returns the OS-level semaphore name for the destination id, or
// the empty string if the id is invalid.
func (n *NamedSemaphore) Name() string {
	if n.dstID < 0 {
		return ""
	}
	return fmt.Sprintf("moo_sem_%d", n.dstID)
}

// Open creates or attaches the OS semaphore object.
// Returns ErrDoubleOpen if already open, ErrInvalidName for a negative
// id, ErrNotSupported on platforms without a backend, or a wrapped
// system error.
func (n *NamedSemaphore) Open() error {
	if n.sem != nil {
		return ErrDoubleOpen
	}
	name := n.Name()
	if name == "" {
		return ErrInvalidName
	}

	sem, err := openNamedSem(name)
	if err != nil {
		return err
	}
	n.sem = sem
	return nil
}

// Post increments the shared count, waking one waiter in any process.
// Returns ErrNotOpen before Open, or a wrapped system error.
func (n *NamedSemaphore) Post() error {
	if n.sem == nil {
		return ErrNotOpen
	}
	return n.sem.post()
}

// TryWait decrements the shared count without blocking.
// Returns ErrWouldBlock if the count is zero, ErrNotOpen before Open.
func (n *NamedSemaphore) TryWait() error {
	if n.sem == nil {
		return ErrNotOpen
	}
	return n.sem.tryWait()
}

// Wait decrements the shared count, blocking until a post from any
// process or until timeout expires. A zero or negative timeout waits
// forever. Returns ErrTimeout on expiry, ErrNotOpen before Open.
func (n *NamedSemaphore) Wait(timeout time.Duration) error {
	if n.sem == nil {
		return ErrNotOpen
	}
	return n.sem.wait(timeout)
}

// Close detaches from the OS semaphore object. Idempotent. The shared
// counter itself is not destroyed.
func (n *NamedSemaphore) Close() {
	if n.sem == nil {
		return
	}
	n.sem.close()
	n.sem = nil
}
