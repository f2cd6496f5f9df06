package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
	"coinpulse/internal/core/port/mocks"
)

// eventStore emulates the conditional UPDATE of the postgres repository.
type eventStore struct {
	mu    sync.Mutex
	event domain.Event
}

func (s *eventStore) wire(repo *mocks.MockEventRepository) {
	repo.EXPECT().Get(mock.Anything, s.event.ID).RunAndReturn(func(context.Context, int64) (*domain.Event, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		e := s.event
		return &e, nil
	}).Maybe()
	repo.EXPECT().Register(mock.Anything, s.event.ID, testNow).RunAndReturn(func(context.Context, int64, time.Time) (int64, bool, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.event.IsFull() {
			return s.event.CurrentParticipants, false, nil
		}
		s.event.CurrentParticipants++
		return s.event.CurrentParticipants, true, nil
	}).Maybe()
	repo.EXPECT().Unregister(mock.Anything, s.event.ID, testNow).RunAndReturn(func(context.Context, int64, time.Time) (int64, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.event.CurrentParticipants > 0 {
			s.event.CurrentParticipants--
		}
		return s.event.CurrentParticipants, nil
	}).Maybe()
}

func upcomingEvent(limit *int64) domain.Event {
	return domain.Event{
		ID:              5,
		Title:           "AMA",
		Status:          domain.StatusUpcoming,
		StartDate:       testNow.Add(24 * time.Hour),
		EndDate:         testNow.Add(26 * time.Hour),
		MaxParticipants: limit,
	}
}

func TestRegisterStopsAtCapacity(t *testing.T) {
	const capacity = 3
	limit := int64(capacity)
	store := &eventStore{event: upcomingEvent(&limit)}
	repo := mocks.NewMockEventRepository(t)
	store.wire(repo)
	uc := NewEventUseCase(repo, testClock)

	for i := 1; i <= capacity; i++ {
		p, err := uc.Register(context.Background(), 5, "u")
		require.NoError(t, err)
		assert.Equal(t, int64(i), p.CurrentParticipants)
	}

	p, err := uc.Register(context.Background(), 5, "u")
	assert.ErrorIs(t, err, port.ErrEventFull)
	require.NotNil(t, p)
	assert.Equal(t, int64(capacity), p.CurrentParticipants)
	assert.Equal(t, domain.RegistrationFull, p.RegistrationStatus)
}

func TestConcurrentRegistrationsNeverOverbook(t *testing.T) {
	limit := int64(10)
	store := &eventStore{event: upcomingEvent(&limit)}
	repo := mocks.NewMockEventRepository(t)
	store.wire(repo)
	uc := NewEventUseCase(repo, testClock)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		full int
	)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Register(context.Background(), 5, "u"); err != nil {
				mu.Lock()
				full++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), store.event.CurrentParticipants)
	assert.Equal(t, 15, full)
}

func TestUnregisterIsNoopAtZero(t *testing.T) {
	store := &eventStore{event: upcomingEvent(nil)}
	repo := mocks.NewMockEventRepository(t)
	store.wire(repo)

	p, err := NewEventUseCase(repo, testClock).Unregister(context.Background(), 5, "u")
	require.NoError(t, err)
	assert.Zero(t, p.CurrentParticipants)
	assert.Equal(t, domain.RegistrationOpen, p.RegistrationStatus)
}

func TestRegisterRules(t *testing.T) {
	repo := mocks.NewMockEventRepository(t)
	uc := NewEventUseCase(repo, testClock)

	_, err := uc.Register(context.Background(), 5, "")
	assert.ErrorIs(t, err, port.ErrUnauthenticated)

	past := upcomingEvent(nil)
	past.StartDate, past.EndDate = testNow.Add(-48*time.Hour), testNow.Add(-24*time.Hour)
	repo.EXPECT().Get(mock.Anything, int64(5)).Return(&past, nil).Once()

	_, err = uc.Register(context.Background(), 5, "u")
	assert.ErrorIs(t, err, port.ErrInvalidInput)
	repo.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestListEventsFiltersOnResolvedStatus(t *testing.T) {
	repo := mocks.NewMockEventRepository(t)
	finished := upcomingEvent(nil)
	finished.ID = 6
	finished.EndDate = testNow.Add(-time.Hour)
	finished.StartDate = testNow.Add(-2 * time.Hour)
	repo.EXPECT().List(mock.Anything, port.ListParams{Limit: phaseScanBatch}).
		Return([]domain.Event{upcomingEvent(nil), finished}, nil).Once()

	got, err := NewEventUseCase(repo, testClock).List(context.Background(),
		port.ListQuery{ListParams: port.ListParams{Limit: 10}, Phase: domain.PhaseCompleted})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(6), got[0].ID)
}
