package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// ListingRepository implements port.ListingRepository.
type ListingRepository struct {
	db querier
}

func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{db: pool}
}

const listingColumns = `id, exchange_name, coin_name, coin_symbol, slug, description, logo_path,
listing_date, is_published, yes_votes, no_votes, created_at, updated_at`

func scanListing(row pgx.Row) (domain.ExchangeListing, error) {
	var l domain.ExchangeListing
	err := row.Scan(
		&l.ID, &l.ExchangeName, &l.CoinName, &l.CoinSymbol, &l.Slug, &l.Description, &l.LogoPath,
		&l.ListingDate, &l.IsPublished, &l.YesVotes, &l.NoVotes, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.ExchangeListing) error {
	err := r.db.QueryRow(ctx, `INSERT INTO crypto_exchange_listings
    (exchange_name, coin_name, coin_symbol, slug, description, logo_path, listing_date, is_published)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING id, created_at, updated_at`,
		l.ExchangeName, l.CoinName, l.CoinSymbol, l.Slug, l.Description, l.LogoPath, l.ListingDate, l.IsPublished,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	return wrapErr("create listing", err)
}

func (r *ListingRepository) Get(ctx context.Context, id int64) (*domain.ExchangeListing, error) {
	l, err := scanListing(r.db.QueryRow(ctx,
		`SELECT `+listingColumns+` FROM crypto_exchange_listings WHERE id = $1 AND deleted_at IS NULL`, id))
	if err != nil {
		return nil, wrapErr("get listing", err)
	}
	return &l, nil
}

func (r *ListingRepository) List(ctx context.Context, p port.ListParams, publishedOnly bool) ([]domain.ExchangeListing, error) {
	limit, offset := limitOffset(p)
	rows, err := r.db.Query(ctx, `SELECT `+listingColumns+` FROM crypto_exchange_listings
WHERE deleted_at IS NULL AND (is_published OR NOT $1)
ORDER BY listing_date DESC NULLS LAST, id DESC LIMIT $2 OFFSET $3`, publishedOnly, limit, offset)
	if err != nil {
		return nil, wrapErr("list listings", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExchangeListing, error) {
		return scanListing(row)
	})
	return list, wrapErr("list listings", err)
}

func (r *ListingRepository) Publish(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE crypto_exchange_listings
SET is_published = TRUE, published_at = $1, updated_at = $1
WHERE id = $2 AND deleted_at IS NULL`, at, id)
	return expectRow("publish listing", tag, err)
}

func (r *ListingRepository) Delete(ctx context.Context, id int64, at time.Time) error {
	return softDelete(ctx, r.db, "crypto_exchange_listings", id, at)
}
