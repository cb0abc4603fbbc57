package notify

import (
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhutchens/fleetdash/internal/event"
)

func Test_bridgeForwardsUnauthorized(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	bus := event.NewBus()
	q := NewQueue(clockwork.NewFakeClock())

	bridge := NewBridge(bus, q)
	defer bridge.Close()

	bus.Publish(event.Unauthorized{Message: "Your session has expired. Please log in again."})

	notes := q.Snapshot()
	require.Len(notes, 1)
	assert.Equal(KindError, notes[0].Kind)
	assert.Equal("Your session has expired. Please log in again.", notes[0].Title)
}

func Test_bridgeDoesNotDeduplicate(t *testing.T) {
	assert := assert.New(t)

	bus := event.NewBus()
	q := NewQueue(clockwork.NewFakeClock())

	bridge := NewBridge(bus, q)
	defer bridge.Close()

	bus.Publish(event.Unauthorized{Message: "expired"})
	bus.Publish(event.Unauthorized{Message: "expired"})

	assert.Len(q.Snapshot(), 2)
}

func Test_oneNotificationPerActiveBridge(t *testing.T) {
	assert := assert.New(t)

	bus := event.NewBus()
	q := NewQueue(clockwork.NewFakeClock())

	first := NewBridge(bus, q)
	second := NewBridge(bus, q)
	defer second.Close()

	bus.Publish(event.Unauthorized{Message: "expired"})
	assert.Len(q.Snapshot(), 2)

	first.Close()
	first.Close()

	bus.Publish(event.Unauthorized{Message: "expired"})
	assert.Len(q.Snapshot(), 3)
}
