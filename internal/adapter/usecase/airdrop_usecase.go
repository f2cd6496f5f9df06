package usecase

import (
	"context"
	"strings"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// AirdropUseCase implements port.AirdropUseCase.
type AirdropUseCase struct {
	repo     port.AirdropRepository
	counters port.CounterRepository
	clock    domain.Clock
	observer port.CounterObserver
}

// NewAirdropUseCase creates the usecase. observer may be nil.
func NewAirdropUseCase(repo port.AirdropRepository, counters port.CounterRepository, clock domain.Clock, observer port.CounterObserver) *AirdropUseCase {
	return &AirdropUseCase{repo: repo, counters: counters, clock: clock, observer: observerOrNop(observer)}
}

// Create stores an airdrop. A missing slug is derived from the name and a
// missing status defaults to upcoming.
func (u *AirdropUseCase) Create(ctx context.Context, a domain.Airdrop) (*port.AirdropView, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return nil, invalid("name is required")
	}
	a.Slug = domain.EnsureSlug(a.Slug, a.Name)
	if a.Status == "" {
		a.Status = domain.StatusUpcoming
	}
	if !domain.ValidStatus(domain.KindAirdrop, a.Status) {
		return nil, invalid("unknown airdrop status %q", a.Status)
	}
	if a.StartDate.IsZero() {
		return nil, invalid("start_date is required")
	}
	if a.EndDate != nil && a.EndDate.Before(a.StartDate) {
		return nil, invalid("end_date must not be before start_date")
	}
	if (a.AirdropQty != nil && a.AirdropQty.IsNegative()) || (a.TotalSupply != nil && a.TotalSupply.IsNegative()) {
		return nil, invalid("token amounts must not be negative")
	}
	if err := u.repo.Create(ctx, &a); err != nil {
		return nil, err
	}
	return u.view(a), nil
}

// Show returns the airdrop and counts one view.
func (u *AirdropUseCase) Show(ctx context.Context, id int64) (*port.AirdropView, error) {
	if _, err := u.counters.Increment(ctx, domain.AirdropViews, id, 1, u.clock.Now()); err != nil {
		return nil, err
	}
	u.observer.CounterChanged(domain.AirdropViews, 1)
	a, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.view(*a), nil
}

// ShowBySlug is Show addressed by slug.
func (u *AirdropUseCase) ShowBySlug(ctx context.Context, slug string) (*port.AirdropView, error) {
	a, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	views, err := u.counters.Increment(ctx, domain.AirdropViews, a.ID, 1, u.clock.Now())
	if err != nil {
		return nil, err
	}
	u.observer.CounterChanged(domain.AirdropViews, 1)
	a.ViewCount = views
	return u.view(*a), nil
}

// List returns a page of airdrops, optionally only those whose resolved
// status is q.Phase.
func (u *AirdropUseCase) List(ctx context.Context, q port.ListQuery) ([]port.AirdropView, error) {
	return listByPhase(ctx, q, u.page, func(v port.AirdropView) domain.Phase { return v.Phase })
}

func (u *AirdropUseCase) page(ctx context.Context, p port.ListParams) ([]port.AirdropView, error) {
	list, err := u.repo.List(ctx, p)
	if err != nil {
		return nil, err
	}
	views := make([]port.AirdropView, 0, len(list))
	for _, a := range list {
		views = append(views, *u.view(a))
	}
	return views, nil
}

// Upvote adds one upvote on behalf of userID.
func (u *AirdropUseCase) Upvote(ctx context.Context, id int64, userID string) (*port.Upvotes, error) {
	if userID == "" {
		return nil, port.ErrUnauthenticated
	}
	n, err := u.counters.Increment(ctx, domain.AirdropUpvotes, id, 1, u.clock.Now())
	if err != nil {
		return nil, err
	}
	u.observer.CounterChanged(domain.AirdropUpvotes, 1)
	return &port.Upvotes{ID: id, UpvotesCount: n}, nil
}

// WithdrawUpvote takes back one upvote. The count never drops below zero.
func (u *AirdropUseCase) WithdrawUpvote(ctx context.Context, id int64, userID string) (*port.Upvotes, error) {
	if userID == "" {
		return nil, port.ErrUnauthenticated
	}
	n, err := u.counters.Decrement(ctx, domain.AirdropUpvotes, id, 1, u.clock.Now())
	if err != nil {
		return nil, err
	}
	u.observer.CounterChanged(domain.AirdropUpvotes, -1)
	return &port.Upvotes{ID: id, UpvotesCount: n}, nil
}

// MarkAsFeatured flags the airdrop as featured from now on.
func (u *AirdropUseCase) MarkAsFeatured(ctx context.Context, id int64) (*port.AirdropView, error) {
	if err := u.repo.MarkFeatured(ctx, id, u.clock.Now()); err != nil {
		return nil, err
	}
	a, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.view(*a), nil
}

// Delete soft-deletes the airdrop.
func (u *AirdropUseCase) Delete(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id, u.clock.Now())
}

func (u *AirdropUseCase) view(a domain.Airdrop) *port.AirdropView {
	return &port.AirdropView{Airdrop: a, Phase: a.Lifecycle().Resolve(u.clock.Now())}
}
