// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package msg provides bounded lock-free message queues with claimed
// producer and consumer roles.
//
// The package offers two queue variants built on the same design: a
// monotonically increasing 64-bit write cursor, power-of-two storage
// indexed by masking the cursor, and backpressure driven by the slowest
// reader:
//
//   - SPSC: Single-Producer Single-Consumer FIFO
//   - SPMC: Single-Producer Multi-Consumer broadcast
//
// SPMC is a broadcast queue, not a work-distribution queue: every active
// consumer observes the full sequence of values pushed after it attached.
// A value is retired only once every active consumer has passed it, so a
// single slow consumer throttles the producer. That is deliberate — the
// queue trades producer liveness for guaranteed delivery to every
// attached consumer.
//
// # Roles
//
// Queue operations are reached through claimed handles rather than the
// queue itself. A handle claims its role atomically on acquisition and
// releases it on Close:
//
//	q := msg.NewSPSC[Tick](1024)
//
//	p, err := q.Producer()     // fails with ErrClaimed if already held
//	defer p.Close()
//
//	c, err := q.Consumer()
//	defer c.Close()
//
// At most one producer handle is live per queue, at most one consumer
// handle per SPSC queue, and at most maxConsumers per SPMC queue. A
// released role is immediately reclaimable.
//
// # Non-Blocking Semantics
//
// All queue operations are strictly non-blocking: a bounded sequence of
// atomic loads and stores, no locks, no syscalls. Enqueue returns
// [ErrWouldBlock] when the queue is full and Dequeue/Peek return it when
// the queue is empty. These are control flow signals, not failures —
// retry, or compose the queue with an external wakeup such as
// [github.com/houseofmoo/mootils/evt.Semaphore] when blocking semantics
// are wanted.
//
// # Payload Constraint
//
// The queues copy and overwrite slot contents without any cleanup. T must
// be a plain value type: no finalizers, no ownership semantics, nothing
// that requires a destructor-like step when a slot is overwritten or
// duplicated across consumers. Dequeued slots are not zeroed; a value
// remains in storage until the producer laps it.
//
// # Handle Lifetime
//
// Handles hold a reference back to their queue; the queue must not be
// torn down while handles are live. Using a handle after Close is a
// caller error and panics.
package msg
