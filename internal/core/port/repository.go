package port

import (
	"context"
	"time"

	"coinpulse/internal/core/domain"
)

// ListParams bounds a listing query.
type ListParams struct {
	Limit  int
	Offset int
}

// ArticleFilter narrows article listings. Zero values match everything.
type ArticleFilter struct {
	ListParams
	ContentType  domain.ContentType
	Tag          string
	FeaturedOnly bool
}

// CounterRepository moves declared counters atomically. Implementations must
// issue a single UPDATE ... SET col = col + n so concurrent requests never
// lose an increment. Both methods stamp updated_at with at and return the
// value after the change.
type CounterRepository interface {
	// Increment adds delta to the counter of entity id.
	Increment(ctx context.Context, c domain.Counter, id int64, delta int64, at time.Time) (int64, error)
	// Decrement subtracts delta, clamping the stored value at zero.
	Decrement(ctx context.Context, c domain.Counter, id int64, delta int64, at time.Time) (int64, error)
}

// CampaignRepository persists ad campaigns and the ad spaces they run in.
type CampaignRepository interface {
	// InTx runs fn against a repository bound to one transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(repo CampaignRepository) error) error
	CreateCampaign(ctx context.Context, c *domain.AdCampaign) error
	GetCampaign(ctx context.Context, id int64) (*domain.AdCampaign, error)
	CreateAdSpace(ctx context.Context, s *domain.AdSpace) error
	GetAdSpace(ctx context.Context, id int64) (*domain.AdSpace, error)
	// IncrementCounter atomically bumps a campaign or ad space counter.
	IncrementCounter(ctx context.Context, c domain.Counter, id int64, delta int64, at time.Time) (int64, error)
	// SaveCTR stores the recomputed click-through rate of a campaign.
	SaveCTR(ctx context.Context, id int64, ctr float64) error
	SetStatus(ctx context.Context, id int64, status string, at time.Time) error
	Approve(ctx context.Context, id int64, at time.Time) error
	DeleteCampaign(ctx context.Context, id int64, at time.Time) error
}

// AirdropRepository persists airdrops.
type AirdropRepository interface {
	Create(ctx context.Context, a *domain.Airdrop) error
	Get(ctx context.Context, id int64) (*domain.Airdrop, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Airdrop, error)
	List(ctx context.Context, p ListParams) ([]domain.Airdrop, error)
	MarkFeatured(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64, at time.Time) error
}

// PresaleRepository persists presales.
type PresaleRepository interface {
	Create(ctx context.Context, p *domain.Presale) error
	Get(ctx context.Context, id int64) (*domain.Presale, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Presale, error)
	List(ctx context.Context, p ListParams) ([]domain.Presale, error)
	MarkFeatured(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64, at time.Time) error
}

// EventRepository persists events and their participant count.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	Get(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, p ListParams) ([]domain.Event, error)
	// Register adds one participant unless the event is at capacity. ok is
	// false and nothing changes when it is full.
	Register(ctx context.Context, id int64, at time.Time) (count int64, ok bool, err error)
	// Unregister removes one participant; it is a no-op at zero.
	Unregister(ctx context.Context, id int64, at time.Time) (int64, error)
	SetStatus(ctx context.Context, id int64, status string, at time.Time) error
	Delete(ctx context.Context, id int64, at time.Time) error
}

// ListingRepository persists exchange listing polls.
type ListingRepository interface {
	Create(ctx context.Context, l *domain.ExchangeListing) error
	Get(ctx context.Context, id int64) (*domain.ExchangeListing, error)
	List(ctx context.Context, p ListParams, publishedOnly bool) ([]domain.ExchangeListing, error)
	Publish(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64, at time.Time) error
}

// CommentRepository persists comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	Get(ctx context.Context, id int64) (*domain.Comment, error)
	// ListFor returns comments of one commentable, oldest first. Hidden
	// comments (unapproved or spam) are included only on request.
	ListFor(ctx context.Context, commentableType string, commentableID int64, includeHidden bool) ([]domain.Comment, error)
	Approve(ctx context.Context, id int64, at time.Time) error
	SetSpam(ctx context.Context, id int64, spam bool, at time.Time) error
	Delete(ctx context.Context, id int64, at time.Time) error
}

// ArticleRepository persists articles and their tags.
type ArticleRepository interface {
	Create(ctx context.Context, a *domain.Article) error
	Get(ctx context.Context, id int64) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	List(ctx context.Context, f ArticleFilter) ([]domain.Article, error)
	MarkFeatured(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64, at time.Time) error
}

// VideoRepository persists videos.
type VideoRepository interface {
	Create(ctx context.Context, v *domain.Video) error
	Get(ctx context.Context, id int64) (*domain.Video, error)
	List(ctx context.Context, p ListParams) ([]domain.Video, error)
	Delete(ctx context.Context, id int64, at time.Time) error
}

// StatusRepository rewrites stored statuses whose time window has passed.
type StatusRepository interface {
	// ExpireStatuses moves entities of kind whose end is before now into
	// their terminal stored status and returns how many rows changed.
	ExpireStatuses(ctx context.Context, kind domain.Kind, now time.Time) (int64, error)
}
