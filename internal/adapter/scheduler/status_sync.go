package scheduler

import (
	"context"
	"errors"
	"log/slog"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// SyncRecorder is told how many stored statuses a sync rewrote.
type SyncRecorder interface {
	StatusSynced(kind domain.Kind, n int64)
}

// StatusSync moves stored statuses of entities whose end date has passed
// into their terminal value. Reads never depend on it; it only keeps the
// stored column close to what the resolver reports.
type StatusSync struct {
	repo     port.StatusRepository
	clock    domain.Clock
	logger   *slog.Logger
	recorder SyncRecorder
}

func NewStatusSync(repo port.StatusRepository, clock domain.Clock, logger *slog.Logger, recorder SyncRecorder) *StatusSync {
	return &StatusSync{repo: repo, clock: clock, logger: logger, recorder: recorder}
}

func (j *StatusSync) Name() string { return "status_sync" }

// Run syncs every kind. A failing kind does not stop the others.
func (j *StatusSync) Run(ctx context.Context) error {
	now := j.clock.Now()
	var errs []error
	for _, kind := range domain.Kinds {
		n, err := j.repo.ExpireStatuses(ctx, kind, now)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if n > 0 {
			j.logger.Info("statuses expired", slog.String("kind", string(kind)), slog.Int64("rows", n))
		}
		if j.recorder != nil {
			j.recorder.StatusSynced(kind, n)
		}
	}
	return errors.Join(errs...)
}
