// Package bus is a minimal in-process publish/subscribe channel used
// to tell cache consumers that remote data changed underneath them.
package bus

import "sync"

// Topic names a class of change event.
type Topic string

const (
	AccountsChanged Topic = "accounts.changed"
	TradesChanged   Topic = "trades.changed"
)

// Bus fans a published topic out to every subscriber of that topic.
// Delivery is synchronous: Publish returns after every handler ran.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[Topic]map[int]func()
}

func New() *Bus {
	return &Bus{subs: make(map[Topic]map[int]func())}
}

// Subscribe registers fn for topic and returns an unsubscribe func.
func (b *Bus) Subscribe(topic Topic, fn func()) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func())
	}
	key := b.next
	b.next++
	b.subs[topic][key] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], key)
	}
}

// Publish invokes every handler subscribed to topic. Handlers run
// outside the bus lock so they may subscribe or publish themselves.
func (b *Bus) Publish(topic Topic) {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
