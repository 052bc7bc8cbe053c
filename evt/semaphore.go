// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evt

import (
	"time"
)

// Semaphore is a local counting semaphore with a fixed maximum count.
//
// Post raises the count, Wait and TryWait lower it. The count starts at
// zero. Safe for concurrent use by any number of goroutines.
//
// The common pairing with a msg queue: the producer posts after each
// successful enqueue, the consumer waits before each dequeue attempt.
type Semaphore struct {
	tokens chan struct{}
}

// NewSemaphore creates a semaphore with the given maximum count.
// Panics if maxCount < 1.
func NewSemaphore(maxCount int) *Semaphore {
	if maxCount < 1 {
		panic("evt: maxCount must be >= 1")
	}
	return &Semaphore{tokens: make(chan struct{}, maxCount)}
}

// Post increments the count, waking one waiter if any.
// Returns ErrMaxCount if the count is already at its maximum.
func (s *Semaphore) Post() error {
	select {
	case s.tokens <- struct{}{}:
		return nil
	default:
		return ErrMaxCount
	}
}

// TryWait decrements the count without blocking.
// Returns ErrWouldBlock if the count is zero.
func (s *Semaphore) TryWait() error {
	select {
	case <-s.tokens:
		return nil
	default:
		return ErrWouldBlock
	}
}

// Wait decrements the count, blocking until a post or until timeout
// expires. A zero or negative timeout waits forever.
// Returns ErrTimeout if the timed wait expired.
func (s *Semaphore) Wait(timeout time.Duration) error {
	if timeout <= 0 {
		<-s.tokens
		return nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-s.tokens:
		return nil
	case <-timer.C:
		return ErrTimeout
	}
}
