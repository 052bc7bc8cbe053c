// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msg

import (
	"code.hybscloud.com/atomix"
)

// Consumer slot lifecycle. A Free slot is unowned and invisible to the
// producer's backpressure math. Initializing is the transient attach
// state during which the slot cursor is not yet trustworthy. Only
// Active slots participate in the slowest-consumer computation.
const (
	slotFree uint64 = iota
	slotInitializing
	slotActive
)

// consumerSlot tracks one attached consumer: its lifecycle state and its
// private read cursor. Padded to a cache line so independent consumers
// never false-share.
type consumerSlot struct {
	state atomix.Uint64
	tail  atomix.Uint64
	_     padSlot
}

// SPMC is a single-producer multi-consumer broadcast queue.
//
// Every active consumer observes the identical ordered sequence of
// values pushed after its attach point. The producer refuses to
// overwrite storage still ahead of the slowest active consumer's cursor,
// so no active consumer ever silently misses a value. The cost is that
// one stalled consumer can gate the producer indefinitely; closing the
// stalled handle releases the pressure.
//
// Memory: O(capacity) storage plus one cache line per consumer slot.
type SPMC[T any] struct {
	_    pad
	head atomix.Uint64 // Producer cursor: next slot to write
	_    pad
	producer atomix.Uint64 // Producer role claim gate
	_        pad
	buffer []T
	mask   uint64
	slots  []consumerSlot
}

// NewSPMC creates a new SPMC broadcast queue with a fixed consumer
// table. Capacity rounds up to the next power of 2; maxConsumers is the
// exact number of concurrently attachable consumers.
func NewSPMC[T any](capacity, maxConsumers int) *SPMC[T] {
	if capacity < 2 {
		panic("msg: capacity must be >= 2")
	}
	if maxConsumers < 1 {
		panic("msg: maxConsumers must be >= 1")
	}

	n := uint64(roundToPow2(capacity))
	return &SPMC[T]{
		buffer: make([]T, n),
		mask:   n - 1,
		slots:  make([]consumerSlot, maxConsumers),
	}
}

// Producer claims the producer role and returns its handle.
// Returns ErrClaimed while a previous producer handle is still live.
func (q *SPMC[T]) Producer() (*SPMCProducer[T], error) {
	if !q.producer.CompareAndSwapAcqRel(roleFree, roleClaimed) {
		return nil, ErrClaimed
	}
	return &SPMCProducer[T]{q: q}, nil
}

// Consumer claims a free consumer slot and returns its handle. The new
// consumer's cursor starts at the current producer cursor: it sees only
// values pushed after this call, never the backlog.
// Returns ErrNoFreeSlot when every slot is occupied.
func (q *SPMC[T]) Consumer() (*SPMCConsumer[T], error) {
	head := q.head.LoadAcquire()

	for i := range q.slots {
		slot := &q.slots[i]
		if !slot.state.CompareAndSwapAcqRel(slotFree, slotInitializing) {
			continue
		}
		slot.tail.StoreRelaxed(head)
		slot.state.StoreRelease(slotActive)
		return &SPMCConsumer[T]{q: q, slot: slot}, nil
	}

	return nil, ErrNoFreeSlot
}

// Cap returns the queue capacity.
func (q *SPMC[T]) Cap() int {
	return int(q.mask + 1)
}

// MaxConsumers returns the size of the consumer slot table.
func (q *SPMC[T]) MaxConsumers() int {
	return len(q.slots)
}

// minTail returns the minimum cursor across active consumer slots, or
// head when no consumer is active — broadcasting into a void is allowed
// and simply means nothing is retained.
func (q *SPMC[T]) minTail(head uint64) uint64 {
	min := head
	for i := range q.slots {
		slot := &q.slots[i]
		if slot.state.LoadAcquire() != slotActive {
			continue
		}
		if t := slot.tail.LoadRelaxed(); t < min {
			min = t
		}
	}
	return min
}

func (q *SPMC[T]) enqueue(elem *T) error {
	head := q.head.LoadRelaxed()

	if head-q.minTail(head) > q.mask {
		return ErrWouldBlock
	}

	q.buffer[head&q.mask] = *elem
	q.head.StoreRelease(head + 1)
	return nil
}

func (q *SPMC[T]) dequeue(slot *consumerSlot) (T, error) {
	head := q.head.LoadAcquire()
	tail := slot.tail.LoadRelaxed()

	if tail >= head {
		var zero T
		return zero, ErrWouldBlock
	}

	elem := q.buffer[tail&q.mask]
	slot.tail.StoreRelease(tail + 1)
	return elem, nil
}

func (q *SPMC[T]) dequeueInto(out *T, slot *consumerSlot) error {
	head := q.head.LoadAcquire()
	tail := slot.tail.LoadRelaxed()

	if tail >= head {
		return ErrWouldBlock
	}

	*out = q.buffer[tail&q.mask]
	slot.tail.StoreRelease(tail + 1)
	return nil
}

func (q *SPMC[T]) peek(slot *consumerSlot) (T, error) {
	head := q.head.LoadAcquire()
	tail := slot.tail.LoadRelaxed()

	if tail >= head {
		var zero T
		return zero, ErrWouldBlock
	}

	return q.buffer[tail&q.mask], nil
}

func (q *SPMC[T]) peekInto(out *T, slot *consumerSlot) error {
	head := q.head.LoadAcquire()
	tail := slot.tail.LoadRelaxed()

	if tail >= head {
		return ErrWouldBlock
	}

	*out = q.buffer[tail&q.mask]
	return nil
}

// count clamps to [0, cap]; see SPSC.count for the race rationale.
func (q *SPMC[T]) count(tail, head uint64) int {
	if tail >= head {
		return 0
	}
	if diff := head - tail; diff <= q.mask {
		return int(diff)
	}
	return int(q.mask + 1)
}

// SPMCProducer is the claimed producer handle of an SPMC queue.
//
// Not safe for concurrent use; the single-producer contract extends to
// the handle itself.
type SPMCProducer[T any] struct {
	q *SPMC[T]
}

// Enqueue broadcasts an element to every active consumer (non-blocking).
// Returns ErrWouldBlock when the slowest active consumer is a full
// capacity behind; the value is not queued.
func (p *SPMCProducer[T]) Enqueue(elem *T) error {
	return p.q.enqueue(elem)
}

// Count returns a best-effort snapshot of elements still unread by the
// slowest active consumer, in [0, cap]. Zero when no consumer is active.
func (p *SPMCProducer[T]) Count() int {
	head := p.q.head.LoadAcquire()
	return p.q.count(p.q.minTail(head), head)
}

// Close releases the producer role, making it claimable again.
// Close is idempotent. The handle must not be used afterwards.
func (p *SPMCProducer[T]) Close() {
	if p.q == nil {
		return
	}
	p.q.producer.StoreRelease(roleFree)
	p.q = nil
}

// SPMCConsumer is one claimed consumer handle of an SPMC queue. Each
// consumer progresses independently against its own cursor, bounded
// above by the shared producer cursor.
//
// Not safe for concurrent use by multiple goroutines; attach one handle
// per consuming goroutine instead.
type SPMCConsumer[T any] struct {
	q    *SPMC[T]
	slot *consumerSlot
}

// Dequeue removes and returns this consumer's next unread element
// (non-blocking). Other consumers are unaffected.
// Returns (zero-value, ErrWouldBlock) if nothing is unread.
func (c *SPMCConsumer[T]) Dequeue() (T, error) {
	return c.q.dequeue(c.slot)
}

// DequeueInto removes the next unread element into caller-supplied
// storage. Returns ErrWouldBlock if nothing is unread; *out is untouched.
func (c *SPMCConsumer[T]) DequeueInto(out *T) error {
	return c.q.dequeueInto(out, c.slot)
}

// Peek returns the next unread element without consuming it.
// Returns (zero-value, ErrWouldBlock) if nothing is unread.
func (c *SPMCConsumer[T]) Peek() (T, error) {
	return c.q.peek(c.slot)
}

// PeekInto reads the next unread element into caller-supplied storage
// without consuming it. Returns ErrWouldBlock if nothing is unread.
func (c *SPMCConsumer[T]) PeekInto(out *T) error {
	return c.q.peekInto(out, c.slot)
}

// Count returns a best-effort snapshot of this consumer's unread
// elements in [0, cap].
func (c *SPMCConsumer[T]) Count() int {
	head := c.q.head.LoadAcquire()
	return c.q.count(c.slot.tail.LoadRelaxed(), head)
}

// Close resets the slot cursor, frees the slot for reuse, and removes
// this consumer from the producer's backpressure computation.
// Close is idempotent. The handle must not be used afterwards.
func (c *SPMCConsumer[T]) Close() {
	if c.q == nil {
		return
	}
	c.slot.tail.StoreRelaxed(0)
	c.slot.state.StoreRelease(slotFree)
	c.q = nil
	c.slot = nil
}
