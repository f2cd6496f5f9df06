package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"coinpulse/internal/core/port"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so repositories
// can run inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

func limitOffset(p port.ListParams) (int, int) {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// wrapErr maps pgx.ErrNoRows onto port.ErrNotFound and adds context to
// everything else.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, port.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// expectRow turns an UPDATE that touched nothing into port.ErrNotFound.
func expectRow(op string, tag pgconn.CommandTag, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, port.ErrNotFound)
	}
	return nil
}

// softDelete stamps deleted_at; table is always a package constant.
func softDelete(ctx context.Context, db querier, table string, id int64, at time.Time) error {
	tag, err := db.Exec(ctx, `UPDATE `+table+` SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`, at, id)
	return expectRow("delete from "+table, tag, err)
}

func markFeatured(ctx context.Context, db querier, table string, id int64, at time.Time) error {
	tag, err := db.Exec(ctx, `UPDATE `+table+` SET is_featured = TRUE, featured_at = $1, updated_at = $1
WHERE id = $2 AND deleted_at IS NULL`, at, id)
	return expectRow("feature "+table, tag, err)
}
