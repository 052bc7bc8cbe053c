// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msg

// Options configures queue creation and variant selection.
type Options struct {
	// Capacity (rounds up to next power of 2)
	capacity int

	// Consumer slot table size; zero selects the SPSC variant
	maxConsumers int
}

// Builder creates queues with fluent configuration.
//
// The builder selects the queue variant from the declared consumer
// count: a single consumer gets the SPSC FIFO, more than one gets the
// SPMC broadcast queue.
//
// Example:
//
//	// SPSC queue (one producer, one consumer)
//	q := msg.BuildSPSC[Tick](msg.New(1024))
//
//	// SPMC broadcast queue with 8 consumer slots
//	q := msg.BuildSPMC[Tick](msg.New(1024).MaxConsumers(8))
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity rounds up to the next power of 2. For example, capacity=4
// results in actual capacity=4, capacity=1000 results in actual
// capacity=1024.
//
// Panics if capacity < 2.
func New(capacity int) *Builder {
	if capacity < 2 {
		panic("msg: capacity must be >= 2")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// MaxConsumers declares the number of concurrently attachable consumers
// and selects the SPMC broadcast variant.
func (b *Builder) MaxConsumers(n int) *Builder {
	if n < 1 {
		panic("msg: maxConsumers must be >= 1")
	}
	b.opts.maxConsumers = n
	return b
}

// BuildSPSC creates an SPSC queue.
// Panics if the builder declares a consumer table via MaxConsumers.
func BuildSPSC[T any](b *Builder) *SPSC[T] {
	if b.opts.maxConsumers != 0 {
		panic("msg: BuildSPSC requires a builder without MaxConsumers")
	}
	return NewSPSC[T](b.opts.capacity)
}

// BuildSPMC creates an SPMC broadcast queue.
// Panics if the builder does not declare MaxConsumers.
func BuildSPMC[T any](b *Builder) *SPMC[T] {
	if b.opts.maxConsumers == 0 {
		panic("msg: BuildSPMC requires MaxConsumers")
	}
	return NewSPMC[T](b.opts.capacity, b.opts.maxConsumers)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// Role claim gate values.
const (
	roleFree    uint64 = 0
	roleClaimed uint64 = 1
)

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padSlot is padding to fill a cache line after two 8-byte fields.
type padSlot [64 - 16]byte
