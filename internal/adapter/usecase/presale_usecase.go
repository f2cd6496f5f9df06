package usecase

import (
	"context"
	"strings"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// PresaleUseCase implements port.PresaleUseCase.
type PresaleUseCase struct {
	repo     port.PresaleRepository
	counters port.CounterRepository
	clock    domain.Clock
	observer port.CounterObserver
}

// NewPresaleUseCase creates the usecase. observer may be nil.
func NewPresaleUseCase(repo port.PresaleRepository, counters port.CounterRepository, clock domain.Clock, observer port.CounterObserver) *PresaleUseCase {
	return &PresaleUseCase{repo: repo, counters: counters, clock: clock, observer: observerOrNop(observer)}
}

// Create stores a presale. Both dates are required and the slug is derived
// from the name when missing.
func (u *PresaleUseCase) Create(ctx context.Context, p domain.Presale) (*port.PresaleView, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, invalid("name is required")
	}
	p.Slug = domain.EnsureSlug(p.Slug, p.Name)
	if p.Status == "" {
		p.Status = domain.StatusUpcoming
	}
	if !domain.ValidStatus(domain.KindPresale, p.Status) {
		return nil, invalid("unknown presale status %q", p.Status)
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return nil, invalid("start_date and end_date are required")
	}
	if p.EndDate.Before(p.StartDate) {
		return nil, invalid("end_date must not be before start_date")
	}
	if p.Price != nil && p.Price.IsNegative() {
		return nil, invalid("price must not be negative")
	}
	if err := u.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return u.view(p), nil
}

// Show returns the presale and counts one view.
func (u *PresaleUseCase) Show(ctx context.Context, id int64) (*port.PresaleView, error) {
	if _, err := u.counters.Increment(ctx, domain.PresaleViews, id, 1, u.clock.Now()); err != nil {
		return nil, err
	}
	u.observer.CounterChanged(domain.PresaleViews, 1)
	p, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.view(*p), nil
}

// ShowBySlug is Show addressed by slug.
func (u *PresaleUseCase) ShowBySlug(ctx context.Context, slug string) (*port.PresaleView, error) {
	p, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	views, err := u.counters.Increment(ctx, domain.PresaleViews, p.ID, 1, u.clock.Now())
	if err != nil {
		return nil, err
	}
	u.observer.CounterChanged(domain.PresaleViews, 1)
	p.ViewCount = views
	return u.view(*p), nil
}

// List returns a page of presales, optionally filtered by resolved status.
func (u *PresaleUseCase) List(ctx context.Context, q port.ListQuery) ([]port.PresaleView, error) {
	return listByPhase(ctx, q, u.page, func(v port.PresaleView) domain.Phase { return v.Phase })
}

func (u *PresaleUseCase) page(ctx context.Context, p port.ListParams) ([]port.PresaleView, error) {
	list, err := u.repo.List(ctx, p)
	if err != nil {
		return nil, err
	}
	views := make([]port.PresaleView, 0, len(list))
	for _, p := range list {
		views = append(views, *u.view(p))
	}
	return views, nil
}

// Upvote adds one upvote on behalf of userID.
func (u *PresaleUseCase) Upvote(ctx context.Context, id int64, userID string) (*port.Upvotes, error) {
	if userID == "" {
		return nil, port.ErrUnauthenticated
	}
	n, err := u.counters.Increment(ctx, domain.PresaleUpvotes, id, 1, u.clock.Now())
	if err != nil {
		return nil, err
	}
	u.observer.CounterChanged(domain.PresaleUpvotes, 1)
	return &port.Upvotes{ID: id, UpvotesCount: n}, nil
}

// WithdrawUpvote takes back one upvote. The count never drops below zero.
func (u *PresaleUseCase) WithdrawUpvote(ctx context.Context, id int64, userID string) (*port.Upvotes, error) {
	if userID == "" {
		return nil, port.ErrUnauthenticated
	}
	n, err := u.counters.Decrement(ctx, domain.PresaleUpvotes, id, 1, u.clock.Now())
	if err != nil {
		return nil, err
	}
	u.observer.CounterChanged(domain.PresaleUpvotes, -1)
	return &port.Upvotes{ID: id, UpvotesCount: n}, nil
}

// MarkAsFeatured flags the presale as featured from now on.
func (u *PresaleUseCase) MarkAsFeatured(ctx context.Context, id int64) (*port.PresaleView, error) {
	if err := u.repo.MarkFeatured(ctx, id, u.clock.Now()); err != nil {
		return nil, err
	}
	p, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.view(*p), nil
}

// Delete soft-deletes the presale.
func (u *PresaleUseCase) Delete(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id, u.clock.Now())
}

func (u *PresaleUseCase) view(p domain.Presale) *port.PresaleView {
	now := u.clock.Now()
	return &port.PresaleView{
		Presale:       p,
		Phase:         p.Lifecycle().Resolve(now),
		RemainingTime: p.RemainingTime(now),
	}
}
