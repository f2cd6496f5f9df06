package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// AirdropRepository implements port.AirdropRepository.
type AirdropRepository struct {
	db querier
}

func NewAirdropRepository(pool *pgxpool.Pool) *AirdropRepository {
	return &AirdropRepository{db: pool}
}

const airdropColumns = `id, name, slug, token_symbol, blockchain, description, logo_path, website_url,
status, start_date, end_date, airdrop_qty, total_supply, view_count, upvotes_count, is_featured,
featured_at, created_at, updated_at`

func scanAirdrop(row pgx.Row) (domain.Airdrop, error) {
	var a domain.Airdrop
	err := row.Scan(
		&a.ID, &a.Name, &a.Slug, &a.TokenSymbol, &a.Blockchain, &a.Description, &a.LogoPath, &a.WebsiteURL,
		&a.Status, &a.StartDate, &a.EndDate, &a.AirdropQty, &a.TotalSupply, &a.ViewCount, &a.UpvotesCount,
		&a.IsFeatured, &a.FeaturedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *AirdropRepository) Create(ctx context.Context, a *domain.Airdrop) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airdrops
    (name, slug, token_symbol, blockchain, description, logo_path, website_url, status,
     start_date, end_date, airdrop_qty, total_supply)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
RETURNING id, created_at, updated_at`,
		a.Name, a.Slug, a.TokenSymbol, a.Blockchain, a.Description, a.LogoPath, a.WebsiteURL, a.Status,
		a.StartDate, a.EndDate, a.AirdropQty, a.TotalSupply,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return wrapErr("create airdrop", err)
}

func (r *AirdropRepository) Get(ctx context.Context, id int64) (*domain.Airdrop, error) {
	a, err := scanAirdrop(r.db.QueryRow(ctx,
		`SELECT `+airdropColumns+` FROM airdrops WHERE id = $1 AND deleted_at IS NULL`, id))
	if err != nil {
		return nil, wrapErr("get airdrop", err)
	}
	return &a, nil
}

// GetBySlug returns the most recent airdrop carrying slug.
func (r *AirdropRepository) GetBySlug(ctx context.Context, slug string) (*domain.Airdrop, error) {
	a, err := scanAirdrop(r.db.QueryRow(ctx, `SELECT `+airdropColumns+` FROM airdrops
WHERE slug = $1 AND deleted_at IS NULL ORDER BY id DESC LIMIT 1`, slug))
	if err != nil {
		return nil, wrapErr("get airdrop by slug", err)
	}
	return &a, nil
}

// List returns featured airdrops first, then by start date.
func (r *AirdropRepository) List(ctx context.Context, p port.ListParams) ([]domain.Airdrop, error) {
	limit, offset := limitOffset(p)
	rows, err := r.db.Query(ctx, `SELECT `+airdropColumns+` FROM airdrops
WHERE deleted_at IS NULL ORDER BY is_featured DESC, start_date DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, wrapErr("list airdrops", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Airdrop, error) {
		return scanAirdrop(row)
	})
	return list, wrapErr("list airdrops", err)
}

func (r *AirdropRepository) MarkFeatured(ctx context.Context, id int64, at time.Time) error {
	return markFeatured(ctx, r.db, "airdrops", id, at)
}

func (r *AirdropRepository) Delete(ctx context.Context, id int64, at time.Time) error {
	return softDelete(ctx, r.db, "airdrops", id, at)
}
