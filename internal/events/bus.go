// Package events fans persisted-change notifications out to connected
// dashboards, standing in for the push subscriptions the realtime
// backend gives clients directly.
package events

import (
	"sync"

	"github.com/gisqo-media/tracker/internal/store"
)

const subscriberBuffer = 16

// Bus is an in-process broadcast of store changes. Slow subscribers
// drop messages rather than block writers; a dashboard that misses a
// change recovers on its next full reload.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]chan store.Change
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan store.Change)}
}

func (b *Bus) Publish(c store.Change) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- c:
		default:
		}
	}
}

func (b *Bus) Subscribe() (<-chan store.Change, func()) {
	ch := make(chan store.Change, subscriberBuffer)

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Wire forwards every store change into the bus. The returned func
// cancels the forwarding.
func Wire(s store.Store, b *Bus) func() {
	return s.Subscribe("", b.Publish)
}
