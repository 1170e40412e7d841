package store

import "sync"

// notifier is the in-process fanout shared by the backends. Callbacks
// run synchronously on the emitting goroutine.
type notifier struct {
	mu   sync.RWMutex
	next int
	subs map[int]subscription
}

type subscription struct {
	collection string
	fn         func(Change)
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]subscription)}
}

func (n *notifier) subscribe(collection string, fn func(Change)) func() {
	n.mu.Lock()
	id := n.next
	n.next++
	n.subs[id] = subscription{collection: collection, fn: fn}
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

func (n *notifier) emit(c Change) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, s := range n.subs {
		if s.collection == "" || s.collection == c.Collection {
			s.fn(c)
		}
	}
}
