package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port/mocks"
)

type recorded map[domain.Kind]int64

func (r recorded) StatusSynced(kind domain.Kind, n int64) { r[kind] += n }

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestStatusSyncRun(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := mocks.NewMockStatusRepository(t)
	repo.EXPECT().ExpireStatuses(mock.Anything, domain.KindCampaign, now).Return(2, nil).Once()
	repo.EXPECT().ExpireStatuses(mock.Anything, domain.KindAirdrop, now).Return(0, nil).Once()
	repo.EXPECT().ExpireStatuses(mock.Anything, domain.KindPresale, now).Return(1, nil).Once()
	repo.EXPECT().ExpireStatuses(mock.Anything, domain.KindEvent, now).Return(3, nil).Once()

	rec := recorded{}
	job := NewStatusSync(repo, domain.FixedClock(now), discard, rec)

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, recorded{
		domain.KindCampaign: 2,
		domain.KindAirdrop:  0,
		domain.KindPresale:  1,
		domain.KindEvent:    3,
	}, rec)
}

func TestStatusSyncContinuesAfterFailure(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	boom := errors.New("boom")
	repo := mocks.NewMockStatusRepository(t)
	repo.EXPECT().ExpireStatuses(mock.Anything, domain.KindCampaign, now).Return(0, boom).Once()
	repo.EXPECT().ExpireStatuses(mock.Anything, domain.KindAirdrop, now).Return(1, nil).Once()
	repo.EXPECT().ExpireStatuses(mock.Anything, domain.KindPresale, now).Return(0, nil).Once()
	repo.EXPECT().ExpireStatuses(mock.Anything, domain.KindEvent, now).Return(0, nil).Once()

	rec := recorded{}
	err := NewStatusSync(repo, domain.FixedClock(now), discard, rec).Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(1), rec[domain.KindAirdrop])
	assert.NotContains(t, rec, domain.KindCampaign)
}

func TestSchedulerRegisterRejectsBadSpec(t *testing.T) {
	s := New(discard)
	repo := mocks.NewMockStatusRepository(t)

	err := s.Register("every now and then", NewStatusSync(repo, domain.SystemClock{}, discard, nil))
	assert.Error(t, err)
}

func TestSchedulerRunStopsWithContext(t *testing.T) {
	s := New(discard)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
