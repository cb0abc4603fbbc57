package event

import "sync"

// Unauthorized is broadcast when the backend rejects the credentials attached
// to a request.
type Unauthorized struct {
	Message string
}

// Bus fans Unauthorized events out to every registered subscriber. Delivery
// order between subscribers is unspecified.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Unauthorized)
}

func NewBus() *Bus {
	return &Bus{
		subs: map[int]func(Unauthorized){},
	}
}

// Subscribe registers fn and returns its unsubscribe function. Unsubscribing
// more than once is a no-op.
func (b *Bus) Subscribe(fn func(Unauthorized)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish delivers e to every current subscriber on the calling goroutine.
func (b *Bus) Publish(e Unauthorized) {
	b.mu.Lock()
	fns := make([]func(Unauthorized), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
