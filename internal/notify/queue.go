package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// DefaultDuration applies when a caller does not pick a lifetime. A duration
// of zero or less makes a notification stick until dismissed.
const DefaultDuration = 5 * time.Second

type Notification struct {
	ID       string
	Kind     Kind
	Title    string
	Message  string
	Duration time.Duration
}

type entry struct {
	note  Notification
	timer clockwork.Timer
}

// Queue holds the active notifications in insertion order and expires timed
// ones through the injected clock.
type Queue struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	entries []*entry
}

func NewQueue(clock clockwork.Clock) *Queue {
	return &Queue{clock: clock}
}

// Enqueue appends a notification and returns its id. When duration is
// positive a timer dismisses the entry after that delay.
func (q *Queue) Enqueue(kind Kind, title, message string, duration time.Duration) string {
	id := uuid.NewString()

	e := &entry{
		note: Notification{
			ID:       id,
			Kind:     kind,
			Title:    title,
			Message:  message,
			Duration: duration,
		},
	}

	q.mu.Lock()
	q.entries = append(q.entries, e)
	if duration > 0 {
		e.timer = q.clock.AfterFunc(duration, func() {
			q.Dismiss(id)
		})
	}
	q.mu.Unlock()

	return id
}

// Dismiss removes the notification with the given id if it is still present
// and stops its expiry timer. Unknown ids are ignored.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.entries {
		if e.note.ID != id {
			continue
		}
		if e.timer != nil {
			e.timer.Stop()
		}
		q.entries = append(q.entries[:i], q.entries[i+1:]...)
		return
	}
}

// Snapshot returns the active notifications in insertion order.
func (q *Queue) Snapshot() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, len(q.entries))
	for i, e := range q.entries {
		out[i] = e.note
	}
	return out
}

func (q *Queue) Success(title, message string) string {
	return q.Enqueue(KindSuccess, title, message, DefaultDuration)
}

func (q *Queue) Error(title, message string) string {
	return q.Enqueue(KindError, title, message, DefaultDuration)
}

func (q *Queue) Warning(title, message string) string {
	return q.Enqueue(KindWarning, title, message, DefaultDuration)
}

func (q *Queue) Info(title, message string) string {
	return q.Enqueue(KindInfo, title, message, DefaultDuration)
}
