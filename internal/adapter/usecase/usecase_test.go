package usecase

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"coinpulse/internal/core/domain"
)

var (
	testNow   = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	testClock = domain.FixedClock(testNow)
	discard   = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// observed records counter notifications.
type observed struct {
	mu      sync.Mutex
	changes map[domain.Counter]int64
}

func newObserved() *observed { return &observed{changes: map[domain.Counter]int64{}} }

func (o *observed) CounterChanged(c domain.Counter, delta int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.changes[c] += delta
}

func (o *observed) get(c domain.Counter) int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.changes[c]
}
