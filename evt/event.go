// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evt

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// Event is a thread-safe subscription bus for values of type T.
//
// Subscribers register callbacks and receive every value emitted while
// subscribed. Emit snapshots the subscriber list under the lock and
// invokes callbacks outside it, so a callback may itself subscribe or
// unsubscribe without deadlocking. Callbacks run on the emitting
// goroutine, in subscription order.
//
// The zero value is ready to use. An Event must not be copied after
// first use. Subscriptions must not outlive the Event.
type Event[T any] struct {
	mu       sync.Mutex
	handlers []handler[T]
	nextID   atomix.Uint64
}

type handler[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns its subscription. fn is invoked
// for every subsequent Emit until Unsubscribe is called.
func (e *Event[T]) Subscribe(fn func(T)) *Subscription[T] {
	id := e.nextID.Add(1)

	e.mu.Lock()
	e.handlers = append(e.handlers, handler[T]{id: id, fn: fn})
	e.mu.Unlock()

	return &Subscription[T]{event: e, id: id}
}

// Emit delivers v to every current subscriber.
func (e *Event[T]) Emit(v T) {
	e.mu.Lock()
	snapshot := make([]handler[T], len(e.handlers))
	copy(snapshot, e.handlers)
	e.mu.Unlock()

	for i := range snapshot {
		if snapshot[i].fn != nil {
			snapshot[i].fn(v)
		}
	}
}

// SubscriberCount returns the number of live subscriptions.
func (e *Event[T]) SubscriberCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}

func (e *Event[T]) unsubscribe(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.handlers {
		if e.handlers[i].id == id {
			e.handlers = append(e.handlers[:i], e.handlers[i+1:]...)
			return
		}
	}
}

// Subscription is the scoped ownership of one registered callback.
type Subscription[T any] struct {
	event *Event[T]
	id    uint64
}

// Unsubscribe removes the callback from the event. Idempotent; an
// in-flight Emit that already snapshotted the subscriber list may still
// deliver one final value.
func (s *Subscription[T]) Unsubscribe() {
	if s.event == nil {
		return
	}
	s.event.unsubscribe(s.id)
	s.event = nil
	s.id = 0
}

// Subscribed reports whether the subscription is still registered.
func (s *Subscription[T]) Subscribed() bool {
	return s.event != nil
}
