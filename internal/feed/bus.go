package feed

import (
	"sync"

	"github.com/litescript/ls-planetarium/internal/logging"
	"github.com/litescript/ls-planetarium/internal/observability"
)

// DefaultBusSize is the outbound event buffer.
const DefaultBusSize = 32

// Bus delivers outbound events to one consumer. Publish never blocks: when
// the buffer is full the event is dropped, counted and logged.
type Bus struct {
	ch      chan Event
	log     *logging.Logger
	metrics *observability.Collector

	mu     sync.Mutex
	closed bool
}

// NewBus creates a bus with the given buffer size.
func NewBus(size int, log *logging.Logger, m *observability.Collector) *Bus {
	if size <= 0 {
		size = DefaultBusSize
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Bus{
		ch:      make(chan Event, size),
		log:     log,
		metrics: m,
	}
}

// Events returns the channel consumers read from.
func (b *Bus) Events() <-chan Event {
	return b.ch
}

// Publish offers e to the consumer. It reports whether e was queued.
func (b *Bus) Publish(e Event) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return false
	}
	select {
	case b.ch <- e:
		return true
	default:
		b.metrics.EventDropped(string(e.Type))
		b.log.Warn("event consumer lagging, dropped event", "type", e.Type, "object", e.ObjectID)
		return false
	}
}

// Close stops delivery and closes the channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.ch)
	}
}
