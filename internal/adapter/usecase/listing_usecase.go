package usecase

import (
	"context"
	"strings"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// ListingUseCase implements port.ListingUseCase.
type ListingUseCase struct {
	repo     port.ListingRepository
	counters port.CounterRepository
	clock    domain.Clock
	observer port.CounterObserver
}

// NewListingUseCase creates the usecase. observer may be nil.
func NewListingUseCase(repo port.ListingRepository, counters port.CounterRepository, clock domain.Clock, observer port.CounterObserver) *ListingUseCase {
	return &ListingUseCase{repo: repo, counters: counters, clock: clock, observer: observerOrNop(observer)}
}

// Create stores a listing poll with empty tallies. The slug is derived from
// the coin and exchange names.
func (u *ListingUseCase) Create(ctx context.Context, l domain.ExchangeListing) (*domain.ExchangeListing, error) {
	l.ExchangeName = strings.TrimSpace(l.ExchangeName)
	l.CoinName = strings.TrimSpace(l.CoinName)
	if l.ExchangeName == "" || l.CoinName == "" {
		return nil, invalid("exchange_name and coin_name are required")
	}
	l.Slug = domain.EnsureSlug(l.Slug, l.CoinName+" "+l.ExchangeName)
	l.YesVotes, l.NoVotes = 0, 0
	if err := u.repo.Create(ctx, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Get returns a listing whether or not it is published.
func (u *ListingUseCase) Get(ctx context.Context, id int64) (*domain.ExchangeListing, error) {
	return u.repo.Get(ctx, id)
}

// List returns published listings only.
func (u *ListingUseCase) List(ctx context.Context, p port.ListParams) ([]domain.ExchangeListing, error) {
	return u.repo.List(ctx, p, true)
}

// Vote counts a yes or no vote and returns the fresh tally.
func (u *ListingUseCase) Vote(ctx context.Context, id int64, userID string, yes bool) (*port.VoteTally, error) {
	if userID == "" {
		return nil, port.ErrUnauthenticated
	}
	counter := domain.ListingNoVotes
	if yes {
		counter = domain.ListingYesVotes
	}
	if _, err := u.counters.Increment(ctx, counter, id, 1, u.clock.Now()); err != nil {
		return nil, err
	}
	u.observer.CounterChanged(counter, 1)

	l, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	yesPct, noPct := l.Percentages()
	return &port.VoteTally{
		ListingID:     l.ID,
		YesVotes:      l.YesVotes,
		NoVotes:       l.NoVotes,
		YesPercentage: yesPct,
		NoPercentage:  noPct,
	}, nil
}

// Publish makes the listing visible in List.
func (u *ListingUseCase) Publish(ctx context.Context, id int64) (*domain.ExchangeListing, error) {
	if err := u.repo.Publish(ctx, id, u.clock.Now()); err != nil {
		return nil, err
	}
	return u.repo.Get(ctx, id)
}

// Delete soft-deletes the listing.
func (u *ListingUseCase) Delete(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id, u.clock.Now())
}
