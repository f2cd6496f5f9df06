package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// VideoRepository implements port.VideoRepository.
type VideoRepository struct {
	db querier
}

func NewVideoRepository(pool *pgxpool.Pool) *VideoRepository {
	return &VideoRepository{db: pool}
}

const videoColumns = `id, title, slug, description, youtube_url, youtube_id, view_count, created_at, updated_at`

func scanVideo(row pgx.Row) (domain.Video, error) {
	var v domain.Video
	err := row.Scan(&v.ID, &v.Title, &v.Slug, &v.Description, &v.YouTubeURL, &v.YouTubeID,
		&v.ViewCount, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func (r *VideoRepository) Create(ctx context.Context, v *domain.Video) error {
	err := r.db.QueryRow(ctx, `INSERT INTO videos (title, slug, description, youtube_url, youtube_id)
VALUES ($1,$2,$3,$4,$5) RETURNING id, created_at, updated_at`,
		v.Title, v.Slug, v.Description, v.YouTubeURL, v.YouTubeID,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	return wrapErr("create video", err)
}

func (r *VideoRepository) Get(ctx context.Context, id int64) (*domain.Video, error) {
	v, err := scanVideo(r.db.QueryRow(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE id = $1 AND deleted_at IS NULL`, id))
	if err != nil {
		return nil, wrapErr("get video", err)
	}
	return &v, nil
}

func (r *VideoRepository) List(ctx context.Context, p port.ListParams) ([]domain.Video, error) {
	limit, offset := limitOffset(p)
	rows, err := r.db.Query(ctx, `SELECT `+videoColumns+` FROM videos
WHERE deleted_at IS NULL ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, wrapErr("list videos", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Video, error) {
		return scanVideo(row)
	})
	return list, wrapErr("list videos", err)
}

func (r *VideoRepository) Delete(ctx context.Context, id int64, at time.Time) error {
	return softDelete(ctx, r.db, "videos", id, at)
}
