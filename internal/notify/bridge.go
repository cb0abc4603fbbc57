package notify

import (
	"context"
	"sync"

	"go.uber.org/fx"

	"github.com/mhutchens/fleetdash/internal/event"
)

// Bridge turns unauthorized broadcasts into error notifications. Every event
// produces one notification per bridge; nothing is deduplicated.
type Bridge struct {
	once  sync.Once
	unsub func()
}

func NewBridge(bus *event.Bus, queue *Queue) *Bridge {
	b := &Bridge{}
	b.unsub = bus.Subscribe(func(e event.Unauthorized) {
		queue.Error(e.Message, "")
	})
	return b
}

// Close detaches the bridge from the bus. Safe to call more than once.
func (b *Bridge) Close() {
	b.once.Do(b.unsub)
}

// RegisterHooks should be invoked by fx
func RegisterHooks(lc fx.Lifecycle, b *Bridge) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			b.Close()
			return nil
		},
	})
}
