package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
	"coinpulse/internal/core/port/mocks"
)

func TestVoteReturnsTally(t *testing.T) {
	tests := []struct {
		name    string
		yes     bool
		counter domain.Counter
		listing domain.ExchangeListing
		wantYes int
		wantNo  int
	}{
		{"first yes", true, domain.ListingYesVotes, domain.ExchangeListing{ID: 1, YesVotes: 1}, 100, 0},
		{"thirds", false, domain.ListingNoVotes, domain.ExchangeListing{ID: 1, YesVotes: 1, NoVotes: 2}, 33, 67},
		{"halves", true, domain.ListingYesVotes, domain.ExchangeListing{ID: 1, YesVotes: 1, NoVotes: 1}, 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockListingRepository(t)
			counters := mocks.NewMockCounterRepository(t)
			counters.EXPECT().Increment(mock.Anything, tt.counter, int64(1), int64(1), testNow).Return(1, nil).Once()
			repo.EXPECT().Get(mock.Anything, int64(1)).Return(&tt.listing, nil).Once()

			got, err := NewListingUseCase(repo, counters, testClock, nil).Vote(context.Background(), 1, "u", tt.yes)
			require.NoError(t, err)
			assert.Equal(t, tt.wantYes, got.YesPercentage)
			assert.Equal(t, tt.wantNo, got.NoPercentage)
			assert.Equal(t, tt.listing.YesVotes, got.YesVotes)
			assert.Equal(t, tt.listing.NoVotes, got.NoVotes)
		})
	}
}

func TestVoteRequiresUser(t *testing.T) {
	uc := NewListingUseCase(mocks.NewMockListingRepository(t), mocks.NewMockCounterRepository(t), testClock, nil)

	_, err := uc.Vote(context.Background(), 1, "", true)
	assert.ErrorIs(t, err, port.ErrUnauthenticated)
}

func TestCreateListing(t *testing.T) {
	repo := mocks.NewMockListingRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(l *domain.ExchangeListing) bool {
		return l.Slug == "pepe-binance" && l.YesVotes == 0
	})).Return(nil).Once()

	uc := NewListingUseCase(repo, mocks.NewMockCounterRepository(t), testClock, nil)
	l, err := uc.Create(context.Background(), domain.ExchangeListing{ExchangeName: "Binance", CoinName: "Pepe", YesVotes: 99})
	require.NoError(t, err)
	assert.Equal(t, "pepe-binance", l.Slug)

	_, err = uc.Create(context.Background(), domain.ExchangeListing{CoinName: "Pepe"})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestListListingsPublishedOnly(t *testing.T) {
	repo := mocks.NewMockListingRepository(t)
	repo.EXPECT().List(mock.Anything, port.ListParams{Limit: 5}, true).Return(nil, nil).Once()

	_, err := NewListingUseCase(repo, mocks.NewMockCounterRepository(t), testClock, nil).
		List(context.Background(), port.ListParams{Limit: 5})
	assert.NoError(t, err)
}
