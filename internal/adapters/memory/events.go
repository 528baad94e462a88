package memory

import (
    "context"
    "sync"

    "xeni/internal/ports"
)

// Events records published events instead of sending them anywhere. It is
// the publisher used when no broker is configured.
type Events struct {
    mu     sync.Mutex
    events []ports.TierChanged
    limit  int
}

var _ ports.EventPublisher = (*Events)(nil)

// NewEvents keeps at most limit events, dropping the oldest; 0 keeps all.
func NewEvents(limit int) *Events { return &Events{limit: limit} }

func (e *Events) PublishTierChanged(ctx context.Context, evt ports.TierChanged) error {
    e.mu.Lock()
    defer e.mu.Unlock()
    e.events = append(e.events, evt)
    if e.limit > 0 && len(e.events) > e.limit {
        e.events = e.events[len(e.events)-e.limit:]
    }
    return nil
}

func (e *Events) TierChanges() []ports.TierChanged {
    e.mu.Lock()
    defer e.mu.Unlock()
    return append([]ports.TierChanged(nil), e.events...)
}
