package usecase

import (
	"context"
	"fmt"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// Page bounds applied when a client asks for a phase; they match the
// storage defaults.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// nopObserver discards counter notifications.
type nopObserver struct{}

func (nopObserver) CounterChanged(domain.Counter, int64) {}

func observerOrNop(o port.CounterObserver) port.CounterObserver {
	if o == nil {
		return nopObserver{}
	}
	return o
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", port.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// phaseScanBatch is the page size used while scanning for a phase.
const phaseScanBatch = 100

// listByPhase returns the q.Limit items after q.Offset whose resolved phase
// is q.Phase. The phase depends on the clock, so storage cannot filter on it;
// pages are fetched from the start until the requested window is filled or
// the rows run out. Without a phase it is a plain fetch.
func listByPhase[T any](
	ctx context.Context,
	q port.ListQuery,
	fetch func(context.Context, port.ListParams) ([]T, error),
	phase func(T) domain.Phase,
) ([]T, error) {
	if q.Phase == "" {
		return fetch(ctx, q.ListParams)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	skip := max(q.Offset, 0)

	out := make([]T, 0, limit)
	for offset := 0; ; offset += phaseScanBatch {
		page, err := fetch(ctx, port.ListParams{Limit: phaseScanBatch, Offset: offset})
		if err != nil {
			return nil, err
		}
		for _, it := range page {
			if phase(it) != q.Phase {
				continue
			}
			if skip > 0 {
				skip--
				continue
			}
			out = append(out, it)
			if len(out) == limit {
				return out, nil
			}
		}
		if len(page) < phaseScanBatch {
			return out, nil
		}
	}
}
