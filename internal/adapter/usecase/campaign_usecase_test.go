package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
	"coinpulse/internal/core/port/mocks"
)

func passThroughTx(repo *mocks.MockCampaignRepository) {
	repo.EXPECT().InTx(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(port.CampaignRepository) error) error { return fn(repo) },
	)
}

// TestRecordClickCascades checks the click saga: campaign counter, ad space
// counter, then the stored CTR, all inside one transaction.
func TestRecordClickCascades(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	obs := newObserved()
	passThroughTx(repo)

	var order []string
	repo.EXPECT().IncrementCounter(mock.Anything, domain.CampaignClicks, int64(1), int64(1), testNow).
		Run(func(context.Context, domain.Counter, int64, int64, time.Time) { order = append(order, "campaign") }).
		Return(5, nil).Once()
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).
		Return(&domain.AdCampaign{ID: 1, AdSpaceID: 9, ImpressionCount: 200, ClickCount: 5}, nil).Once()
	repo.EXPECT().IncrementCounter(mock.Anything, domain.AdSpaceClicks, int64(9), int64(1), testNow).
		Run(func(context.Context, domain.Counter, int64, int64, time.Time) { order = append(order, "space") }).
		Return(12, nil).Once()
	repo.EXPECT().GetAdSpace(mock.Anything, int64(9)).
		Return(&domain.AdSpace{ID: 9, ImpressionCount: 800, ClickCount: 12}, nil).Once()
	repo.EXPECT().SaveCTR(mock.Anything, int64(1), 2.5).
		Run(func(context.Context, int64, float64) { order = append(order, "ctr") }).
		Return(nil).Once()

	uc := NewCampaignUseCase(repo, testClock, obs)
	got, err := uc.RecordClick(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"campaign", "space", "ctr"}, order)
	assert.Equal(t, &port.CampaignCounters{
		CampaignID:       1,
		ImpressionCount:  200,
		ClickCount:       5,
		CTR:              2.5,
		AdSpaceID:        9,
		SpaceImpressions: 800,
		SpaceClicks:      12,
	}, got)
	assert.Equal(t, int64(1), obs.get(domain.CampaignClicks))
	assert.Equal(t, int64(1), obs.get(domain.AdSpaceClicks))
}

func TestRecordImpressionDoesNotStoreCTR(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	passThroughTx(repo)
	repo.EXPECT().IncrementCounter(mock.Anything, domain.CampaignImpressions, int64(1), int64(1), testNow).Return(1, nil).Once()
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).
		Return(&domain.AdCampaign{ID: 1, AdSpaceID: 9, ImpressionCount: 1}, nil).Once()
	repo.EXPECT().IncrementCounter(mock.Anything, domain.AdSpaceImpressions, int64(9), int64(1), testNow).Return(1, nil).Once()
	repo.EXPECT().GetAdSpace(mock.Anything, int64(9)).Return(&domain.AdSpace{ID: 9, ImpressionCount: 1}, nil).Once()

	got, err := NewCampaignUseCase(repo, testClock, nil).RecordImpression(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, got.CTR)
	repo.AssertNotCalled(t, "SaveCTR", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordClickAbortsWhenSpaceFails(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	obs := newObserved()
	boom := errors.New("boom")
	passThroughTx(repo)
	repo.EXPECT().IncrementCounter(mock.Anything, domain.CampaignClicks, int64(1), int64(1), testNow).Return(1, nil).Once()
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&domain.AdCampaign{ID: 1, AdSpaceID: 9}, nil).Once()
	repo.EXPECT().IncrementCounter(mock.Anything, domain.AdSpaceClicks, int64(9), int64(1), testNow).Return(0, boom).Once()

	_, err := NewCampaignUseCase(repo, testClock, obs).RecordClick(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, obs.get(domain.CampaignClicks))
}

func TestCreateCampaign(t *testing.T) {
	start := testNow.Add(-time.Hour)
	valid := domain.AdCampaign{
		AdSpaceID: 3,
		Name:      "  Spring promo ",
		StartDate: start,
		EndDate:   start.Add(72 * time.Hour),
		Budget:    decimal.NewFromInt(100),
	}

	t.Run("defaults to pending", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		repo.EXPECT().GetAdSpace(mock.Anything, int64(3)).Return(&domain.AdSpace{ID: 3}, nil).Once()
		repo.EXPECT().CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.AdCampaign")).
			RunAndReturn(func(_ context.Context, c *domain.AdCampaign) error {
				c.ID = 42
				return nil
			}).Once()

		v, err := NewCampaignUseCase(repo, testClock, nil).Create(context.Background(), valid)
		require.NoError(t, err)
		assert.Equal(t, int64(42), v.ID)
		assert.Equal(t, "Spring promo", v.Name)
		assert.Equal(t, domain.StatusPending, v.AdCampaign.Status)
		assert.Equal(t, domain.PhasePending, v.Phase)
		assert.True(t, v.RemainingBudget().Equal(decimal.NewFromInt(100)))
	})

	t.Run("unknown ad space", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		repo.EXPECT().GetAdSpace(mock.Anything, int64(3)).Return(nil, port.ErrNotFound).Once()

		_, err := NewCampaignUseCase(repo, testClock, nil).Create(context.Background(), valid)
		assert.ErrorIs(t, err, port.ErrInvalidInput)
	})

	for name, mutate := range map[string]func(*domain.AdCampaign){
		"no name":         func(c *domain.AdCampaign) { c.Name = " " },
		"window inverted": func(c *domain.AdCampaign) { c.EndDate = c.StartDate.Add(-time.Minute) },
		"negative budget": func(c *domain.AdCampaign) { c.Budget = decimal.NewFromInt(-1) },
		"bad status":      func(c *domain.AdCampaign) { c.Status = "running" },
	} {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			_, err := NewCampaignUseCase(mocks.NewMockCampaignRepository(t), testClock, nil).Create(context.Background(), c)
			assert.ErrorIs(t, err, port.ErrInvalidInput)
		})
	}
}

func TestCampaignSetters(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	window := domain.AdCampaign{ID: 1, StartDate: testNow.Add(-time.Hour), EndDate: testNow.Add(time.Hour)}

	repo.EXPECT().SetStatus(mock.Anything, int64(1), domain.StatusPaused, testNow).Return(nil).Once()
	paused := window
	paused.Status = domain.StatusPaused
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&paused, nil).Once()

	uc := NewCampaignUseCase(repo, testClock, nil)
	v, err := uc.Pause(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.PhasePaused, v.Phase)

	repo.EXPECT().Approve(mock.Anything, int64(1), testNow).Return(nil).Once()
	active := window
	active.Status, active.IsApproved = domain.StatusActive, true
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&active, nil).Once()

	v, err = uc.Approve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseActive, v.Phase)
}

func TestGetAdSpaceComputesCTR(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetAdSpace(mock.Anything, int64(2)).
		Return(&domain.AdSpace{ID: 2, ImpressionCount: 3, ClickCount: 1}, nil).Once()

	s, err := NewCampaignUseCase(repo, testClock, nil).GetAdSpace(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 33.33, s.CTR())
}
