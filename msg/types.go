// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msg

// Producer is the claimed-write side of a queue, satisfied by both
// SPSCProducer and SPMCProducer. Callers that only push values can
// accept this interface and stay agnostic of the queue variant.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// The element is copied into the queue's storage.
	// Returns nil on success, ErrWouldBlock if the queue is full.
	Enqueue(elem *T) error

	// Count returns a best-effort snapshot of queued elements in
	// [0, cap]. For a broadcast queue this is measured against the
	// slowest active consumer.
	Count() int

	// Close releases the claimed role. Idempotent.
	Close()
}

// Consumer is one claimed read side of a queue, satisfied by both
// SPSCConsumer and SPMCConsumer.
type Consumer[T any] interface {
	// Dequeue removes and returns the next unread element
	// (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if nothing is unread.
	Dequeue() (T, error)

	// DequeueInto removes the next unread element into caller-supplied
	// storage. Returns ErrWouldBlock if nothing is unread.
	DequeueInto(out *T) error

	// Peek returns the next unread element without consuming it.
	Peek() (T, error)

	// PeekInto reads the next unread element into caller-supplied
	// storage without consuming it.
	PeekInto(out *T) error

	// Count returns a best-effort snapshot of this consumer's unread
	// elements in [0, cap].
	Count() int

	// Close releases the claimed role or consumer slot. Idempotent.
	Close()
}

// Compile-time interface compliance.
var (
	_ Producer[int] = (*SPSCProducer[int])(nil)
	_ Consumer[int] = (*SPSCConsumer[int])(nil)
	_ Producer[int] = (*SPMCProducer[int])(nil)
	_ Consumer[int] = (*SPMCConsumer[int])(nil)
)
