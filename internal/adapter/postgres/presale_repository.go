package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// PresaleRepository implements port.PresaleRepository.
type PresaleRepository struct {
	db querier
}

func NewPresaleRepository(pool *pgxpool.Pool) *PresaleRepository {
	return &PresaleRepository{db: pool}
}

const presaleColumns = `id, name, slug, token_symbol, blockchain, description, logo_path, website_url,
stage, status, start_date, end_date, price, view_count, upvotes_count, is_featured, featured_at,
created_at, updated_at`

func scanPresale(row pgx.Row) (domain.Presale, error) {
	var p domain.Presale
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.TokenSymbol, &p.Blockchain, &p.Description, &p.LogoPath, &p.WebsiteURL,
		&p.Stage, &p.Status, &p.StartDate, &p.EndDate, &p.Price, &p.ViewCount, &p.UpvotesCount,
		&p.IsFeatured, &p.FeaturedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *PresaleRepository) Create(ctx context.Context, p *domain.Presale) error {
	err := r.db.QueryRow(ctx, `INSERT INTO presales
    (name, slug, token_symbol, blockchain, description, logo_path, website_url, stage, status,
     start_date, end_date, price)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
RETURNING id, created_at, updated_at`,
		p.Name, p.Slug, p.TokenSymbol, p.Blockchain, p.Description, p.LogoPath, p.WebsiteURL, p.Stage,
		p.Status, p.StartDate, p.EndDate, p.Price,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return wrapErr("create presale", err)
}

func (r *PresaleRepository) Get(ctx context.Context, id int64) (*domain.Presale, error) {
	p, err := scanPresale(r.db.QueryRow(ctx,
		`SELECT `+presaleColumns+` FROM presales WHERE id = $1 AND deleted_at IS NULL`, id))
	if err != nil {
		return nil, wrapErr("get presale", err)
	}
	return &p, nil
}

func (r *PresaleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Presale, error) {
	p, err := scanPresale(r.db.QueryRow(ctx, `SELECT `+presaleColumns+` FROM presales
WHERE slug = $1 AND deleted_at IS NULL ORDER BY id DESC LIMIT 1`, slug))
	if err != nil {
		return nil, wrapErr("get presale by slug", err)
	}
	return &p, nil
}

// List returns presales ending soonest first, featured ones on top.
func (r *PresaleRepository) List(ctx context.Context, p port.ListParams) ([]domain.Presale, error) {
	limit, offset := limitOffset(p)
	rows, err := r.db.Query(ctx, `SELECT `+presaleColumns+` FROM presales
WHERE deleted_at IS NULL ORDER BY is_featured DESC, end_date ASC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, wrapErr("list presales", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Presale, error) {
		return scanPresale(row)
	})
	return list, wrapErr("list presales", err)
}

func (r *PresaleRepository) MarkFeatured(ctx context.Context, id int64, at time.Time) error {
	return markFeatured(ctx, r.db, "presales", id, at)
}

func (r *PresaleRepository) Delete(ctx context.Context, id int64, at time.Time) error {
	return softDelete(ctx, r.db, "presales", id, at)
}
