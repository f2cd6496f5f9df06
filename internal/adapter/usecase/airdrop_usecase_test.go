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

func TestCreateAirdropDerivesSlug(t *testing.T) {
	repo := mocks.NewMockAirdropRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *domain.Airdrop) bool {
		return a.Slug == "zksync-era-drop" && a.Status == domain.StatusUpcoming
	})).Return(nil).Once()

	v, err := NewAirdropUseCase(repo, mocks.NewMockCounterRepository(t), testClock, nil).
		Create(context.Background(), domain.Airdrop{Name: "zkSync Era Drop", StartDate: testNow.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseUpcoming, v.Phase)
}

func TestCreateAirdropRejectsUnknownStatus(t *testing.T) {
	uc := NewAirdropUseCase(mocks.NewMockAirdropRepository(t), mocks.NewMockCounterRepository(t), testClock, nil)

	_, err := uc.Create(context.Background(), domain.Airdrop{Name: "x", Status: "live", StartDate: testNow})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestUpvoteRequiresUser(t *testing.T) {
	counters := mocks.NewMockCounterRepository(t)
	uc := NewAirdropUseCase(mocks.NewMockAirdropRepository(t), counters, testClock, nil)

	_, err := uc.Upvote(context.Background(), 1, "")
	assert.ErrorIs(t, err, port.ErrUnauthenticated)
	counters.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestConcurrentUpvotes ensures every upvote lands when the store increments
// atomically.
func TestConcurrentUpvotes(t *testing.T) {
	counters := mocks.NewMockCounterRepository(t)
	obs := newObserved()

	var (
		mu    sync.Mutex
		total int64
	)
	counters.EXPECT().Increment(mock.Anything, domain.AirdropUpvotes, int64(1), int64(1), testNow).
		RunAndReturn(func(_ context.Context, _ domain.Counter, _ int64, delta int64, _ time.Time) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			total += delta
			return total, nil
		})

	uc := NewAirdropUseCase(mocks.NewMockAirdropRepository(t), counters, testClock, obs)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Upvote(context.Background(), 1, "u"); err != nil {
				t.Errorf("upvote: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), total)
	assert.Equal(t, int64(50), obs.get(domain.AirdropUpvotes))
}

func TestShowAirdropBySlugCountsView(t *testing.T) {
	repo := mocks.NewMockAirdropRepository(t)
	counters := mocks.NewMockCounterRepository(t)
	repo.EXPECT().GetBySlug(mock.Anything, "drop").
		Return(&domain.Airdrop{ID: 4, Status: domain.StatusPotential, StartDate: testNow, ViewCount: 9}, nil).Once()
	counters.EXPECT().Increment(mock.Anything, domain.AirdropViews, int64(4), int64(1), testNow).Return(10, nil).Once()

	v, err := NewAirdropUseCase(repo, counters, testClock, nil).ShowBySlug(context.Background(), "drop")
	require.NoError(t, err)
	assert.Equal(t, int64(10), v.ViewCount)
	assert.Equal(t, domain.PhasePotential, v.Phase)
}

func TestShowAirdropBySlugMissing(t *testing.T) {
	repo := mocks.NewMockAirdropRepository(t)
	repo.EXPECT().GetBySlug(mock.Anything, "nope").Return(nil, port.ErrNotFound).Once()

	_, err := NewAirdropUseCase(repo, mocks.NewMockCounterRepository(t), testClock, nil).
		ShowBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestListAirdropsByPhase(t *testing.T) {
	repo := mocks.NewMockAirdropRepository(t)
	end := testNow.Add(-time.Minute)
	repo.EXPECT().List(mock.Anything, port.ListParams{Limit: phaseScanBatch}).Return([]domain.Airdrop{
		{ID: 1, Status: domain.StatusOngoing, StartDate: testNow.Add(-time.Hour)},
		{ID: 2, Status: domain.StatusOngoing, StartDate: testNow.Add(-time.Hour), EndDate: &end},
		{ID: 3, Status: domain.StatusPotential, StartDate: testNow},
	}, nil).Once()

	got, err := NewAirdropUseCase(repo, mocks.NewMockCounterRepository(t), testClock, nil).
		List(context.Background(), port.ListQuery{Phase: domain.PhaseEnded})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

// endedThenMixed serves a full page of ended airdrops followed by a short
// page where ids 101 and 103 are ongoing.
func endedThenMixed(repo *mocks.MockAirdropRepository) {
	end := testNow.Add(-time.Hour)
	first := make([]domain.Airdrop, 0, phaseScanBatch)
	for i := 1; i <= phaseScanBatch; i++ {
		first = append(first, domain.Airdrop{ID: int64(i), Status: domain.StatusEnded, StartDate: testNow.Add(-48 * time.Hour), EndDate: &end})
	}
	second := []domain.Airdrop{
		{ID: 101, Status: domain.StatusOngoing, StartDate: testNow.Add(-time.Hour)},
		{ID: 102, Status: domain.StatusEnded, StartDate: testNow.Add(-48 * time.Hour), EndDate: &end},
		{ID: 103, Status: domain.StatusOngoing, StartDate: testNow.Add(-time.Hour)},
	}
	repo.EXPECT().List(mock.Anything, port.ListParams{Limit: phaseScanBatch, Offset: 0}).Return(first, nil).Once()
	repo.EXPECT().List(mock.Anything, port.ListParams{Limit: phaseScanBatch, Offset: phaseScanBatch}).Return(second, nil).Once()
}

func TestListAirdropsByPhaseReadsPastUnmatchedPage(t *testing.T) {
	repo := mocks.NewMockAirdropRepository(t)
	endedThenMixed(repo)

	got, err := NewAirdropUseCase(repo, mocks.NewMockCounterRepository(t), testClock, nil).List(context.Background(),
		port.ListQuery{ListParams: port.ListParams{Limit: 2}, Phase: domain.PhaseOngoing})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(101), got[0].ID)
	assert.Equal(t, int64(103), got[1].ID)
}

func TestListAirdropsByPhaseOffsetCountsMatches(t *testing.T) {
	repo := mocks.NewMockAirdropRepository(t)
	endedThenMixed(repo)

	got, err := NewAirdropUseCase(repo, mocks.NewMockCounterRepository(t), testClock, nil).List(context.Background(),
		port.ListQuery{ListParams: port.ListParams{Limit: 5, Offset: 1}, Phase: domain.PhaseOngoing})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(103), got[0].ID)
}

func TestListAirdropsByPhaseStopsWhenPageIsFilled(t *testing.T) {
	repo := mocks.NewMockAirdropRepository(t)
	endedThenMixed(repo)

	got, err := NewAirdropUseCase(repo, mocks.NewMockCounterRepository(t), testClock, nil).List(context.Background(),
		port.ListQuery{ListParams: port.ListParams{Limit: 3, Offset: 98}, Phase: domain.PhaseEnded})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{99, 100, 102}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

func TestListAirdropsWithoutPhaseKeepsPaging(t *testing.T) {
	repo := mocks.NewMockAirdropRepository(t)
	repo.EXPECT().List(mock.Anything, port.ListParams{Limit: 5, Offset: 10}).
		Return([]domain.Airdrop{{ID: 11, Status: domain.StatusEnded}}, nil).Once()

	got, err := NewAirdropUseCase(repo, mocks.NewMockCounterRepository(t), testClock, nil).
		List(context.Background(), port.ListQuery{ListParams: port.ListParams{Limit: 5, Offset: 10}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.PhaseEnded, got[0].Phase)
}

// clampedCounter stores one counter value the way the database does:
// increments add, decrements stop at zero.
type clampedCounter struct {
	mu    sync.Mutex
	value int64
}

func (c *clampedCounter) wire(counters *mocks.MockCounterRepository, counter domain.Counter, id int64) {
	counters.EXPECT().Increment(mock.Anything, counter, id, int64(1), testNow).
		RunAndReturn(func(_ context.Context, _ domain.Counter, _ int64, delta int64, _ time.Time) (int64, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.value += delta
			return c.value, nil
		}).Maybe()
	counters.EXPECT().Decrement(mock.Anything, counter, id, int64(1), testNow).
		RunAndReturn(func(_ context.Context, _ domain.Counter, _ int64, delta int64, _ time.Time) (int64, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.value = max(c.value-delta, 0)
			return c.value, nil
		}).Maybe()
}

func TestWithdrawUpvoteRestoresCount(t *testing.T) {
	counters := mocks.NewMockCounterRepository(t)
	store := &clampedCounter{value: 3}
	store.wire(counters, domain.AirdropUpvotes, 1)
	obs := newObserved()
	uc := NewAirdropUseCase(mocks.NewMockAirdropRepository(t), counters, testClock, obs)

	up, err := uc.Upvote(context.Background(), 1, "u")
	require.NoError(t, err)
	assert.Equal(t, int64(4), up.UpvotesCount)

	down, err := uc.WithdrawUpvote(context.Background(), 1, "u")
	require.NoError(t, err)
	assert.Equal(t, int64(3), down.UpvotesCount)
	assert.Equal(t, int64(0), obs.get(domain.AirdropUpvotes))
}

func TestWithdrawUpvoteStopsAtZero(t *testing.T) {
	counters := mocks.NewMockCounterRepository(t)
	store := &clampedCounter{}
	store.wire(counters, domain.PresaleUpvotes, 2)
	uc := NewPresaleUseCase(mocks.NewMockPresaleRepository(t), counters, testClock, nil)

	down, err := uc.WithdrawUpvote(context.Background(), 2, "u")
	require.NoError(t, err)
	assert.Equal(t, int64(0), down.UpvotesCount)

	up, err := uc.Upvote(context.Background(), 2, "u")
	require.NoError(t, err)
	assert.Equal(t, int64(1), up.UpvotesCount)
}

func TestWithdrawUpvoteRequiresUser(t *testing.T) {
	counters := mocks.NewMockCounterRepository(t)
	_, err := NewAirdropUseCase(mocks.NewMockAirdropRepository(t), counters, testClock, nil).
		WithdrawUpvote(context.Background(), 1, "")
	assert.ErrorIs(t, err, port.ErrUnauthenticated)
}

func TestPresaleViewCarriesRemainingTime(t *testing.T) {
	repo := mocks.NewMockPresaleRepository(t)
	counters := mocks.NewMockCounterRepository(t)
	counters.EXPECT().Increment(mock.Anything, domain.PresaleViews, int64(7), int64(1), testNow).Return(1, nil).Once()
	repo.EXPECT().Get(mock.Anything, int64(7)).Return(&domain.Presale{
		ID:        7,
		Status:    domain.StatusOngoing,
		StartDate: testNow.Add(-time.Hour),
		EndDate:   testNow.Add(50 * time.Hour),
	}, nil).Once()

	v, err := NewPresaleUseCase(repo, counters, testClock, nil).Show(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseOngoing, v.Phase)
	assert.Equal(t, "2d 2h left", v.RemainingTime)
}

func TestCreatePresaleRejectsPotential(t *testing.T) {
	uc := NewPresaleUseCase(mocks.NewMockPresaleRepository(t), mocks.NewMockCounterRepository(t), testClock, nil)

	_, err := uc.Create(context.Background(), domain.Presale{
		Name:      "x",
		Status:    domain.StatusPotential,
		StartDate: testNow,
		EndDate:   testNow.Add(time.Hour),
	})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}
