package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

const maxCommentLength = 5000

// CommentUseCase implements port.CommentUseCase. Comments wait for approval
// before they are shown; reports past spamThreshold hide them as spam.
type CommentUseCase struct {
	repo          port.CommentRepository
	counters      port.CounterRepository
	clock         domain.Clock
	logger        *slog.Logger
	observer      port.CounterObserver
	spamThreshold int64
}

// NewCommentUseCase creates the usecase. A spamThreshold of 0 disables
// automatic spam flagging.
func NewCommentUseCase(
	repo port.CommentRepository,
	counters port.CounterRepository,
	clock domain.Clock,
	logger *slog.Logger,
	observer port.CounterObserver,
	spamThreshold int64,
) *CommentUseCase {
	return &CommentUseCase{
		repo:          repo,
		counters:      counters,
		clock:         clock,
		logger:        logger,
		observer:      observerOrNop(observer),
		spamThreshold: spamThreshold,
	}
}

// Create stores a comment by c.UserID. It starts unapproved, and a reply
// must stay in its parent's thread.
func (u *CommentUseCase) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	if c.UserID == "" {
		return nil, port.ErrUnauthenticated
	}
	c.Body = strings.TrimSpace(c.Body)
	if c.Body == "" {
		return nil, invalid("body is required")
	}
	if utf8.RuneCountInString(c.Body) > maxCommentLength {
		return nil, invalid("body is longer than %d characters", maxCommentLength)
	}
	if !domain.ValidCommentable(c.CommentableType) || c.CommentableID <= 0 {
		return nil, invalid("unknown commentable %s/%d", c.CommentableType, c.CommentableID)
	}
	if c.ParentID != nil {
		parent, err := u.repo.Get(ctx, *c.ParentID)
		if errors.Is(err, port.ErrNotFound) {
			return nil, invalid("parent comment %d does not exist", *c.ParentID)
		}
		if err != nil {
			return nil, err
		}
		if parent.CommentableType != c.CommentableType || parent.CommentableID != c.CommentableID {
			return nil, invalid("parent comment %d belongs to another thread", *c.ParentID)
		}
	}
	c.IsApproved, c.ApprovedAt, c.IsSpam, c.ReportCount = false, nil, false, 0
	if err := u.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListFor returns the visible comments of one entity.
func (u *CommentUseCase) ListFor(ctx context.Context, commentableType string, commentableID int64) ([]domain.Comment, error) {
	if !domain.ValidCommentable(commentableType) {
		return nil, invalid("unknown commentable type %q", commentableType)
	}
	return u.repo.ListFor(ctx, commentableType, commentableID, false)
}

// Report counts one report by userID and hides the comment as spam once the
// threshold is reached.
func (u *CommentUseCase) Report(ctx context.Context, id int64, userID string) (*domain.Comment, error) {
	if userID == "" {
		return nil, port.ErrUnauthenticated
	}
	n, err := u.counters.Increment(ctx, domain.CommentReports, id, 1, u.clock.Now())
	if err != nil {
		return nil, err
	}
	u.observer.CounterChanged(domain.CommentReports, 1)

	if u.spamThreshold > 0 && n >= u.spamThreshold {
		if err = u.repo.SetSpam(ctx, id, true, u.clock.Now()); err != nil {
			return nil, err
		}
		u.logger.Info("comment flagged as spam", slog.Int64("comment_id", id), slog.Int64("reports", n))
	}
	return u.repo.Get(ctx, id)
}

// Approve makes the comment visible.
func (u *CommentUseCase) Approve(ctx context.Context, id int64) (*domain.Comment, error) {
	if err := u.repo.Approve(ctx, id, u.clock.Now()); err != nil {
		return nil, err
	}
	return u.repo.Get(ctx, id)
}

// MarkSpam hides the comment regardless of its report count.
func (u *CommentUseCase) MarkSpam(ctx context.Context, id int64) (*domain.Comment, error) {
	if err := u.repo.SetSpam(ctx, id, true, u.clock.Now()); err != nil {
		return nil, err
	}
	return u.repo.Get(ctx, id)
}

// Delete soft-deletes the comment.
func (u *CommentUseCase) Delete(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id, u.clock.Now())
}
