package port

import (
	"context"

	"coinpulse/internal/core/domain"
)

// CampaignView is a campaign together with its resolved status.
type CampaignView struct {
	domain.AdCampaign
	Phase domain.Phase
}

// CampaignCounters is returned after an impression or click is recorded.
// CTR is recomputed from the campaign counters after the change.
type CampaignCounters struct {
	CampaignID       int64
	ImpressionCount  int64
	ClickCount       int64
	CTR              float64
	AdSpaceID        int64
	SpaceImpressions int64
	SpaceClicks      int64
}

// AirdropView is an airdrop together with its resolved status.
type AirdropView struct {
	domain.Airdrop
	Phase domain.Phase
}

// PresaleView is a presale together with its resolved status.
type PresaleView struct {
	domain.Presale
	Phase         domain.Phase
	RemainingTime string
}

// EventView is an event together with its resolved and registration status.
type EventView struct {
	domain.Event
	Phase              domain.Phase
	RegistrationStatus string
}

// Upvotes is returned after an upvote.
type Upvotes struct {
	ID           int64
	UpvotesCount int64
}

// VoteTally is returned after a listing vote.
type VoteTally struct {
	ListingID     int64
	YesVotes      int64
	NoVotes       int64
	YesPercentage int
	NoPercentage  int
}

// Participation is returned after an event registration change.
type Participation struct {
	EventID             int64
	CurrentParticipants int64
	MaxParticipants     *int64
	RegistrationStatus  string
}

// ListQuery is a listing request as received from a client. Phase, when
// set, filters on the resolved status.
type ListQuery struct {
	ListParams
	Phase domain.Phase
}

// CampaignUseCase covers ad campaigns and ad spaces.
type CampaignUseCase interface {
	Create(ctx context.Context, c domain.AdCampaign) (*CampaignView, error)
	Get(ctx context.Context, id int64) (*CampaignView, error)
	CreateAdSpace(ctx context.Context, s domain.AdSpace) (*domain.AdSpace, error)
	GetAdSpace(ctx context.Context, id int64) (*domain.AdSpace, error)
	// RecordImpression counts one impression on the campaign and its space.
	RecordImpression(ctx context.Context, id int64) (*CampaignCounters, error)
	// RecordClick counts one click on the campaign and its space, then
	// recomputes and stores the campaign CTR.
	RecordClick(ctx context.Context, id int64) (*CampaignCounters, error)
	Approve(ctx context.Context, id int64) (*CampaignView, error)
	Pause(ctx context.Context, id int64) (*CampaignView, error)
	Resume(ctx context.Context, id int64) (*CampaignView, error)
	Cancel(ctx context.Context, id int64) (*CampaignView, error)
	Complete(ctx context.Context, id int64) (*CampaignView, error)
	Delete(ctx context.Context, id int64) error
}

// AirdropUseCase covers airdrops.
type AirdropUseCase interface {
	Create(ctx context.Context, a domain.Airdrop) (*AirdropView, error)
	// Show returns the airdrop and counts a view.
	Show(ctx context.Context, id int64) (*AirdropView, error)
	ShowBySlug(ctx context.Context, slug string) (*AirdropView, error)
	List(ctx context.Context, q ListQuery) ([]AirdropView, error)
	Upvote(ctx context.Context, id int64, userID string) (*Upvotes, error)
	// WithdrawUpvote removes one upvote; the count stops at zero.
	WithdrawUpvote(ctx context.Context, id int64, userID string) (*Upvotes, error)
	MarkAsFeatured(ctx context.Context, id int64) (*AirdropView, error)
	Delete(ctx context.Context, id int64) error
}

// PresaleUseCase covers presales.
type PresaleUseCase interface {
	Create(ctx context.Context, p domain.Presale) (*PresaleView, error)
	Show(ctx context.Context, id int64) (*PresaleView, error)
	ShowBySlug(ctx context.Context, slug string) (*PresaleView, error)
	List(ctx context.Context, q ListQuery) ([]PresaleView, error)
	Upvote(ctx context.Context, id int64, userID string) (*Upvotes, error)
	// WithdrawUpvote removes one upvote; the count stops at zero.
	WithdrawUpvote(ctx context.Context, id int64, userID string) (*Upvotes, error)
	MarkAsFeatured(ctx context.Context, id int64) (*PresaleView, error)
	Delete(ctx context.Context, id int64) error
}

// EventUseCase covers events and registrations.
type EventUseCase interface {
	Create(ctx context.Context, e domain.Event) (*EventView, error)
	Get(ctx context.Context, id int64) (*EventView, error)
	List(ctx context.Context, q ListQuery) ([]EventView, error)
	Register(ctx context.Context, id int64, userID string) (*Participation, error)
	Unregister(ctx context.Context, id int64, userID string) (*Participation, error)
	Cancel(ctx context.Context, id int64) (*EventView, error)
	Complete(ctx context.Context, id int64) (*EventView, error)
	Delete(ctx context.Context, id int64) error
}

// ListingUseCase covers exchange listing polls.
type ListingUseCase interface {
	Create(ctx context.Context, l domain.ExchangeListing) (*domain.ExchangeListing, error)
	Get(ctx context.Context, id int64) (*domain.ExchangeListing, error)
	List(ctx context.Context, p ListParams) ([]domain.ExchangeListing, error)
	Vote(ctx context.Context, id int64, userID string, yes bool) (*VoteTally, error)
	Publish(ctx context.Context, id int64) (*domain.ExchangeListing, error)
	Delete(ctx context.Context, id int64) error
}

// CommentUseCase covers comments and moderation.
type CommentUseCase interface {
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	ListFor(ctx context.Context, commentableType string, commentableID int64) ([]domain.Comment, error)
	// Report counts one report against the comment and flags it as spam
	// once the moderation threshold is reached.
	Report(ctx context.Context, id int64, userID string) (*domain.Comment, error)
	Approve(ctx context.Context, id int64) (*domain.Comment, error)
	MarkSpam(ctx context.Context, id int64) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// ArticleUseCase covers articles.
type ArticleUseCase interface {
	Create(ctx context.Context, a domain.Article) (*domain.Article, error)
	ShowBySlug(ctx context.Context, slug string) (*domain.Article, error)
	List(ctx context.Context, f ArticleFilter) ([]domain.Article, error)
	MarkAsFeatured(ctx context.Context, id int64) (*domain.Article, error)
	Delete(ctx context.Context, id int64) error
}

// VideoUseCase covers videos.
type VideoUseCase interface {
	Create(ctx context.Context, v domain.Video) (*domain.Video, error)
	Show(ctx context.Context, id int64) (*domain.Video, error)
	List(ctx context.Context, p ListParams) ([]domain.Video, error)
	Delete(ctx context.Context, id int64) error
}

// CounterObserver is told about every committed counter change, e.g. to
// export it as a metric.
type CounterObserver interface {
	CounterChanged(c domain.Counter, delta int64)
}
