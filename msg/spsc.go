// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msg

import (
	"code.hybscloud.com/atomix"
)

// SPSC is a single-producer single-consumer bounded FIFO queue.
//
// Both cursors are monotonic 64-bit counters; the storage index is
// cursor & (capacity-1). head is advanced only by the claimed producer,
// tail only by the claimed consumer, so each side needs just one
// release-store to publish and one acquire-load to observe the other.
//
// Memory: O(capacity), one slot per element.
type SPSC[T any] struct {
	_    pad
	head atomix.Uint64 // Producer cursor: next slot to write
	_    pad
	tail atomix.Uint64 // Consumer cursor: next slot to read
	_    pad
	producer atomix.Uint64 // Producer role claim gate
	consumer atomix.Uint64 // Consumer role claim gate
	_        pad
	buffer []T
	mask   uint64
}

// NewSPSC creates a new SPSC queue.
// Capacity rounds up to the next power of 2.
func NewSPSC[T any](capacity int) *SPSC[T] {
	if capacity < 2 {
		panic("msg: capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	return &SPSC[T]{
		buffer: make([]T, n),
		mask:   n - 1,
	}
}

// Producer claims the producer role and returns its handle.
// Returns ErrClaimed while a previous producer handle is still live.
func (q *SPSC[T]) Producer() (*SPSCProducer[T], error) {
	if !q.producer.CompareAndSwapAcqRel(roleFree, roleClaimed) {
		return nil, ErrClaimed
	}
	return &SPSCProducer[T]{q: q}, nil
}

// Consumer claims the consumer role and returns its handle.
// Returns ErrClaimed while a previous consumer handle is still live.
func (q *SPSC[T]) Consumer() (*SPSCConsumer[T], error) {
	if !q.consumer.CompareAndSwapAcqRel(roleFree, roleClaimed) {
		return nil, ErrClaimed
	}
	return &SPSCConsumer[T]{q: q}, nil
}

// Cap returns the queue capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.mask + 1)
}

func (q *SPSC[T]) enqueue(elem *T) error {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadAcquire()

	if head-tail > q.mask {
		return ErrWouldBlock
	}

	// Plain slot write, published by the release-store of head below.
	// The consumer's acquire-load of head guarantees it never observes
	// a half-written slot.
	q.buffer[head&q.mask] = *elem
	q.head.StoreRelease(head + 1)
	return nil
}

func (q *SPSC[T]) dequeue() (T, error) {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadRelaxed()

	if tail >= head {
		var zero T
		return zero, ErrWouldBlock
	}

	elem := q.buffer[tail&q.mask]
	q.tail.StoreRelease(tail + 1)
	return elem, nil
}

func (q *SPSC[T]) dequeueInto(out *T) error {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadRelaxed()

	if tail >= head {
		return ErrWouldBlock
	}

	*out = q.buffer[tail&q.mask]
	q.tail.StoreRelease(tail + 1)
	return nil
}

func (q *SPSC[T]) peek() (T, error) {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()

	if tail >= head {
		var zero T
		return zero, ErrWouldBlock
	}

	return q.buffer[tail&q.mask], nil
}

func (q *SPSC[T]) peekInto(out *T) error {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()

	if tail >= head {
		return ErrWouldBlock
	}

	*out = q.buffer[tail&q.mask]
	return nil
}

// count is a momentarily-stale estimate clamped to [0, cap]. The two
// cursors are loaded independently, so the raw difference can lap the
// capacity or underflow during a concurrent push/pop race.
func (q *SPSC[T]) count() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()

	if tail >= head {
		return 0
	}
	if diff := head - tail; diff <= q.mask {
		return int(diff)
	}
	return int(q.mask + 1)
}

// SPSCProducer is the claimed producer handle of an SPSC queue.
//
// Not safe for concurrent use; the single-producer contract extends to
// the handle itself.
type SPSCProducer[T any] struct {
	q *SPSC[T]
}

// Enqueue adds an element to the queue (non-blocking).
// The element is copied into the queue's storage.
// Returns ErrWouldBlock if the queue is full; the value is not queued.
func (p *SPSCProducer[T]) Enqueue(elem *T) error {
	return p.q.enqueue(elem)
}

// Count returns a best-effort snapshot of queued elements in [0, cap].
func (p *SPSCProducer[T]) Count() int {
	return p.q.count()
}

// Close releases the producer role, making it claimable again.
// Close is idempotent. The handle must not be used afterwards.
func (p *SPSCProducer[T]) Close() {
	if p.q == nil {
		return
	}
	p.q.producer.StoreRelease(roleFree)
	p.q = nil
}

// SPSCConsumer is the claimed consumer handle of an SPSC queue.
//
// Not safe for concurrent use; the single-consumer contract extends to
// the handle itself.
type SPSCConsumer[T any] struct {
	q *SPSC[T]
}

// Dequeue removes and returns the oldest element (non-blocking).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (c *SPSCConsumer[T]) Dequeue() (T, error) {
	return c.q.dequeue()
}

// DequeueInto removes the oldest element into caller-supplied storage,
// avoiding an extra copy for bulk-polling callers.
// Returns ErrWouldBlock if the queue is empty; *out is untouched.
func (c *SPSCConsumer[T]) DequeueInto(out *T) error {
	return c.q.dequeueInto(out)
}

// Peek returns the oldest element without consuming it.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (c *SPSCConsumer[T]) Peek() (T, error) {
	return c.q.peek()
}

// PeekInto reads the oldest element into caller-supplied storage without
// consuming it. Returns ErrWouldBlock if the queue is empty.
func (c *SPSCConsumer[T]) PeekInto(out *T) error {
	return c.q.peekInto(out)
}

// Count returns a best-effort snapshot of queued elements in [0, cap].
func (c *SPSCConsumer[T]) Count() int {
	return c.q.count()
}

// Close releases the consumer role, making it claimable again.
// Close is idempotent. The handle must not be used afterwards.
func (c *SPSCConsumer[T]) Close() {
	if c.q == nil {
		return
	}
	c.q.consumer.StoreRelease(roleFree)
	c.q = nil
}
