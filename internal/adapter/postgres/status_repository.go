package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"coinpulse/internal/core/domain"
)

// StatusRepository implements port.StatusRepository.
type StatusRepository struct {
	db querier
}

func NewStatusRepository(pool *pgxpool.Pool) *StatusRepository {
	return &StatusRepository{db: pool}
}

// expiry describes which stored statuses become which terminal status once
// end_date has passed.
var expiry = map[domain.Kind]struct {
	table    string
	from     []string
	terminal string
}{
	domain.KindCampaign: {"ad_campaigns", []string{domain.StatusActive}, domain.StatusCompleted},
	domain.KindAirdrop:  {"airdrops", []string{domain.StatusOngoing, domain.StatusUpcoming}, domain.StatusEnded},
	domain.KindPresale:  {"presales", []string{domain.StatusOngoing, domain.StatusUpcoming}, domain.StatusEnded},
	domain.KindEvent:    {"events", []string{domain.StatusOngoing, domain.StatusUpcoming}, domain.StatusCompleted},
}

// ExpireStatuses rewrites stored statuses of entities whose end is past.
func (r *StatusRepository) ExpireStatuses(ctx context.Context, kind domain.Kind, now time.Time) (int64, error) {
	e, ok := expiry[kind]
	if !ok {
		return 0, fmt.Errorf("expire statuses: unknown kind %q", kind)
	}
	tag, err := r.db.Exec(ctx, `UPDATE `+e.table+` SET status = $1, updated_at = $2
WHERE deleted_at IS NULL AND end_date IS NOT NULL AND end_date < $2 AND status = ANY($3)`,
		e.terminal, now, e.from)
	if err != nil {
		return 0, fmt.Errorf("expire %s statuses: %w", kind, err)
	}
	return tag.RowsAffected(), nil
}
