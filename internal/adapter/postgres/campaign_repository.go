package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

var errNestedTx = errors.New("transaction already in progress")

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
	db   querier
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool, db: pool}
}

// InTx runs fn in a read committed transaction. Counter updates inside take
// row locks, so the cascade to the ad space is applied all or nothing.
func (r *CampaignRepository) InTx(ctx context.Context, fn func(repo port.CampaignRepository) error) (err error) {
	if r.pool == nil {
		return errNestedTx
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(&CampaignRepository{db: tx})
}

const campaignColumns = `id, ad_space_id, name, advertiser_email, target_url, banner_path, status,
start_date, end_date, is_approved, approved_at, impression_count, click_count, ctr, budget, spent,
created_at, updated_at`

func scanCampaign(row pgx.Row) (domain.AdCampaign, error) {
	var c domain.AdCampaign
	err := row.Scan(
		&c.ID,
		&c.AdSpaceID,
		&c.Name,
		&c.AdvertiserEmail,
		&c.TargetURL,
		&c.BannerPath,
		&c.Status,
		&c.StartDate,
		&c.EndDate,
		&c.IsApproved,
		&c.ApprovedAt,
		&c.ImpressionCount,
		&c.ClickCount,
		&c.CTR,
		&c.Budget,
		&c.Spent,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// CreateCampaign inserts c and fills its generated fields.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.AdCampaign) error {
	err := r.db.QueryRow(ctx, `INSERT INTO ad_campaigns
    (ad_space_id, name, advertiser_email, target_url, banner_path, status, start_date, end_date, budget, spent)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING id, created_at, updated_at`,
		c.AdSpaceID, c.Name, c.AdvertiserEmail, c.TargetURL, c.BannerPath, c.Status,
		c.StartDate, c.EndDate, c.Budget, c.Spent,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return wrapErr("create campaign", err)
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.AdCampaign, error) {
	c, err := scanCampaign(r.db.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM ad_campaigns WHERE id = $1 AND deleted_at IS NULL`, id))
	if err != nil {
		return nil, wrapErr("get campaign", err)
	}
	return &c, nil
}

// CreateAdSpace inserts s and fills its generated fields.
func (r *CampaignRepository) CreateAdSpace(ctx context.Context, s *domain.AdSpace) error {
	err := r.db.QueryRow(ctx, `INSERT INTO ad_spaces (name, slug, placement, width, height, is_active)
VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at, updated_at`,
		s.Name, s.Slug, s.Placement, s.Width, s.Height, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return wrapErr("create ad space", err)
}

// GetAdSpace returns an ad space by id.
func (r *CampaignRepository) GetAdSpace(ctx context.Context, id int64) (*domain.AdSpace, error) {
	var s domain.AdSpace
	err := r.db.QueryRow(ctx, `SELECT id, name, slug, placement, width, height, is_active,
impression_count, click_count, created_at, updated_at
FROM ad_spaces WHERE id = $1 AND deleted_at IS NULL`, id).
		Scan(&s.ID, &s.Name, &s.Slug, &s.Placement, &s.Width, &s.Height, &s.IsActive,
			&s.ImpressionCount, &s.ClickCount, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, wrapErr("get ad space", err)
	}
	return &s, nil
}

// IncrementCounter bumps a campaign or ad space counter.
func (r *CampaignRepository) IncrementCounter(ctx context.Context, c domain.Counter, id int64, delta int64, at time.Time) (int64, error) {
	if c.Table != "ad_campaigns" && c.Table != "ad_spaces" {
		return 0, fmt.Errorf("increment: counter %s.%s does not belong to campaigns", c.Table, c.Column)
	}
	return increment(ctx, r.db, c, id, delta, at)
}

// SaveCTR stores the recomputed click-through rate.
func (r *CampaignRepository) SaveCTR(ctx context.Context, id int64, ctr float64) error {
	tag, err := r.db.Exec(ctx, `UPDATE ad_campaigns SET ctr = $1 WHERE id = $2 AND deleted_at IS NULL`, ctr, id)
	return expectRow("save ctr", tag, err)
}

// SetStatus overwrites the stored status.
func (r *CampaignRepository) SetStatus(ctx context.Context, id int64, status string, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE ad_campaigns SET status = $1, updated_at = $2
WHERE id = $3 AND deleted_at IS NULL`, status, at, id)
	return expectRow("set campaign status", tag, err)
}

// Approve marks the campaign approved and active.
func (r *CampaignRepository) Approve(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE ad_campaigns
SET is_approved = TRUE, approved_at = $1, status = 'active', updated_at = $1
WHERE id = $2 AND deleted_at IS NULL`, at, id)
	return expectRow("approve campaign", tag, err)
}

// DeleteCampaign soft-deletes the campaign.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE ad_campaigns SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`, at, id)
	return expectRow("delete campaign", tag, err)
}
