package usecase

import (
	"context"
	"strings"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// ArticleUseCase implements port.ArticleUseCase.
type ArticleUseCase struct {
	repo     port.ArticleRepository
	counters port.CounterRepository
	clock    domain.Clock
	observer port.CounterObserver
}

// NewArticleUseCase creates the usecase. observer may be nil.
func NewArticleUseCase(repo port.ArticleRepository, counters port.CounterRepository, clock domain.Clock, observer port.CounterObserver) *ArticleUseCase {
	return &ArticleUseCase{repo: repo, counters: counters, clock: clock, observer: observerOrNop(observer)}
}

// Create stores an article. The content type defaults to news and tags are
// normalised to slugs.
func (u *ArticleUseCase) Create(ctx context.Context, a domain.Article) (*domain.Article, error) {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return nil, invalid("title is required")
	}
	a.Slug = domain.EnsureSlug(a.Slug, a.Title)
	if a.ContentType == "" {
		a.ContentType = domain.ContentNews
	}
	if !a.ContentType.Valid() {
		return nil, invalid("unknown content type %q", a.ContentType)
	}
	a.Tags = domain.NormalizeTags(a.Tags)
	if a.PublishedAt == nil {
		now := u.clock.Now()
		a.PublishedAt = &now
	}
	if err := u.repo.Create(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ShowBySlug returns the article and counts one view.
func (u *ArticleUseCase) ShowBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	a, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	views, err := u.counters.Increment(ctx, domain.ArticleViews, a.ID, 1, u.clock.Now())
	if err != nil {
		return nil, err
	}
	u.observer.CounterChanged(domain.ArticleViews, 1)
	a.ViewCount = views
	return a, nil
}

// List returns articles matching f. The tag is compared in slug form.
func (u *ArticleUseCase) List(ctx context.Context, f port.ArticleFilter) ([]domain.Article, error) {
	if f.ContentType != "" && !f.ContentType.Valid() {
		return nil, invalid("unknown content type %q", f.ContentType)
	}
	if f.Tag != "" {
		f.Tag = domain.Slugify(f.Tag)
	}
	return u.repo.List(ctx, f)
}

// MarkAsFeatured flags the article as featured from now on.
func (u *ArticleUseCase) MarkAsFeatured(ctx context.Context, id int64) (*domain.Article, error) {
	if err := u.repo.MarkFeatured(ctx, id, u.clock.Now()); err != nil {
		return nil, err
	}
	return u.repo.Get(ctx, id)
}

// Delete soft-deletes the article.
func (u *ArticleUseCase) Delete(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id, u.clock.Now())
}
