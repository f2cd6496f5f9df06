package usecase

import (
	"context"
	"strings"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// VideoUseCase implements port.VideoUseCase.
type VideoUseCase struct {
	repo     port.VideoRepository
	counters port.CounterRepository
	clock    domain.Clock
	observer port.CounterObserver
}

// NewVideoUseCase creates the usecase. observer may be nil.
func NewVideoUseCase(repo port.VideoRepository, counters port.CounterRepository, clock domain.Clock, observer port.CounterObserver) *VideoUseCase {
	return &VideoUseCase{repo: repo, counters: counters, clock: clock, observer: observerOrNop(observer)}
}

// Create stores a video; the YouTube URL must contain a recognisable id.
func (u *VideoUseCase) Create(ctx context.Context, v domain.Video) (*domain.Video, error) {
	v.Title = strings.TrimSpace(v.Title)
	if v.Title == "" {
		return nil, invalid("title is required")
	}
	v.YouTubeID = domain.YouTubeID(v.YouTubeURL)
	if v.YouTubeID == "" {
		return nil, invalid("youtube_url %q is not a YouTube video link", v.YouTubeURL)
	}
	v.Slug = domain.EnsureSlug(v.Slug, v.Title)
	if err := u.repo.Create(ctx, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Show returns the video and counts one view.
func (u *VideoUseCase) Show(ctx context.Context, id int64) (*domain.Video, error) {
	views, err := u.counters.Increment(ctx, domain.VideoViews, id, 1, u.clock.Now())
	if err != nil {
		return nil, err
	}
	u.observer.CounterChanged(domain.VideoViews, 1)
	v, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	v.ViewCount = views
	return v, nil
}

// List returns a page of videos, newest first.
func (u *VideoUseCase) List(ctx context.Context, p port.ListParams) ([]domain.Video, error) {
	return u.repo.List(ctx, p)
}

// Delete soft-deletes the video.
func (u *VideoUseCase) Delete(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id, u.clock.Now())
}
