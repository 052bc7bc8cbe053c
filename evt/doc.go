// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package evt provides notification primitives that complement the
// non-blocking queues in [github.com/houseofmoo/mootils/msg]:
//
//   - Event: a thread-safe subscription/callback bus
//   - Semaphore: a local counting semaphore with a maximum count
//   - NamedSemaphore: a cross-process counting semaphore (Linux)
//
// The queues themselves never block; pairing a queue with a semaphore
// adds wakeup semantics — post after a successful enqueue, wait before a
// dequeue attempt. NamedSemaphore extends the same pattern across
// process boundaries.
//
// Expected, recoverable conditions (would-block, timeout, max count)
// surface as sentinel errors; operating system failures are wrapped and
// satisfy errors.Is/As.
package evt
