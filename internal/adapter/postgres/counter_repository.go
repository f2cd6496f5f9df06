package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"coinpulse/internal/core/domain"
)

// CounterRepository implements port.CounterRepository with single-statement
// updates, so concurrent increments never overwrite each other.
type CounterRepository struct {
	db querier
}

// NewCounterRepository returns a repository backed by pool.
func NewCounterRepository(pool *pgxpool.Pool) *CounterRepository {
	return &CounterRepository{db: pool}
}

// Increment adds delta to the counter and returns the new value.
func (r *CounterRepository) Increment(ctx context.Context, c domain.Counter, id int64, delta int64, at time.Time) (int64, error) {
	return increment(ctx, r.db, c, id, delta, at)
}

// Decrement subtracts delta, never going below zero.
func (r *CounterRepository) Decrement(ctx context.Context, c domain.Counter, id int64, delta int64, at time.Time) (int64, error) {
	if !c.Known() {
		return 0, fmt.Errorf("decrement: unknown counter %s.%s", c.Table, c.Column)
	}
	query := fmt.Sprintf(`UPDATE %[1]s SET %[2]s = GREATEST(%[2]s - $1, 0), updated_at = $3
WHERE id = $2 AND deleted_at IS NULL RETURNING %[2]s`, c.Table, c.Column)
	var v int64
	err := r.db.QueryRow(ctx, query, delta, id, at).Scan(&v)
	return v, wrapErr("decrement "+c.Table+"."+c.Column, err)
}

func increment(ctx context.Context, db querier, c domain.Counter, id int64, delta int64, at time.Time) (int64, error) {
	if !c.Known() {
		return 0, fmt.Errorf("increment: unknown counter %s.%s", c.Table, c.Column)
	}
	query := fmt.Sprintf(`UPDATE %[1]s SET %[2]s = %[2]s + $1, updated_at = $3
WHERE id = $2 AND deleted_at IS NULL RETURNING %[2]s`, c.Table, c.Column)
	var v int64
	err := db.QueryRow(ctx, query, delta, id, at).Scan(&v)
	return v, wrapErr("increment "+c.Table+"."+c.Column, err)
}
