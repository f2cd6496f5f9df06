package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coinpulse/internal/core/domain"
)

// CommentRepository implements port.CommentRepository.
type CommentRepository struct {
	db querier
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: pool}
}

const commentColumns = `id, commentable_type, commentable_id, parent_id, user_id, body, is_approved,
approved_at, is_spam, report_count, created_at, updated_at`

func scanComment(row pgx.Row) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(
		&c.ID, &c.CommentableType, &c.CommentableID, &c.ParentID, &c.UserID, &c.Body, &c.IsApproved,
		&c.ApprovedAt, &c.IsSpam, &c.ReportCount, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	err := r.db.QueryRow(ctx, `INSERT INTO comments
    (commentable_type, commentable_id, parent_id, user_id, body, is_approved, approved_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING id, created_at, updated_at`,
		c.CommentableType, c.CommentableID, c.ParentID, c.UserID, c.Body, c.IsApproved, c.ApprovedAt,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return wrapErr("create comment", err)
}

func (r *CommentRepository) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1 AND deleted_at IS NULL`, id))
	if err != nil {
		return nil, wrapErr("get comment", err)
	}
	return &c, nil
}

func (r *CommentRepository) ListFor(ctx context.Context, commentableType string, commentableID int64, includeHidden bool) ([]domain.Comment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+commentColumns+` FROM comments
WHERE commentable_type = $1 AND commentable_id = $2 AND deleted_at IS NULL
  AND ($3 OR (is_approved AND NOT is_spam))
ORDER BY created_at ASC, id ASC`, commentableType, commentableID, includeHidden)
	if err != nil {
		return nil, wrapErr("list comments", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Comment, error) {
		return scanComment(row)
	})
	return list, wrapErr("list comments", err)
}

func (r *CommentRepository) Approve(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE comments SET is_approved = TRUE, approved_at = $1, updated_at = $1
WHERE id = $2 AND deleted_at IS NULL`, at, id)
	return expectRow("approve comment", tag, err)
}

func (r *CommentRepository) SetSpam(ctx context.Context, id int64, spam bool, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE comments SET is_spam = $1, updated_at = $2
WHERE id = $3 AND deleted_at IS NULL`, spam, at, id)
	return expectRow("set comment spam", tag, err)
}

func (r *CommentRepository) Delete(ctx context.Context, id int64, at time.Time) error {
	return softDelete(ctx, r.db, "comments", id, at)
}
