package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// EventRepository implements port.EventRepository.
type EventRepository struct {
	db querier
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: pool}
}

const eventColumns = `id, title, slug, description, location, is_online, banner_path, status,
start_date, end_date, max_participants, current_participants, created_at, updated_at`

func scanEvent(row pgx.Row) (domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Location, &e.IsOnline, &e.BannerPath, &e.Status,
		&e.StartDate, &e.EndDate, &e.MaxParticipants, &e.CurrentParticipants, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	err := r.db.QueryRow(ctx, `INSERT INTO events
    (title, slug, description, location, is_online, banner_path, status, start_date, end_date, max_participants)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING id, created_at, updated_at`,
		e.Title, e.Slug, e.Description, e.Location, e.IsOnline, e.BannerPath, e.Status,
		e.StartDate, e.EndDate, e.MaxParticipants,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return wrapErr("create event", err)
}

func (r *EventRepository) Get(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := scanEvent(r.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1 AND deleted_at IS NULL`, id))
	if err != nil {
		return nil, wrapErr("get event", err)
	}
	return &e, nil
}

func (r *EventRepository) List(ctx context.Context, p port.ListParams) ([]domain.Event, error) {
	limit, offset := limitOffset(p)
	rows, err := r.db.Query(ctx, `SELECT `+eventColumns+` FROM events
WHERE deleted_at IS NULL ORDER BY start_date ASC, id ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, wrapErr("list events", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		return scanEvent(row)
	})
	return list, wrapErr("list events", err)
}

// Register takes a seat with a conditional update, so two requests racing
// for the last seat cannot both succeed.
func (r *EventRepository) Register(ctx context.Context, id int64, at time.Time) (int64, bool, error) {
	var count int64
	err := r.db.QueryRow(ctx, `UPDATE events
SET current_participants = current_participants + 1, updated_at = $2
WHERE id = $1 AND deleted_at IS NULL
  AND (max_participants IS NULL OR current_participants < max_participants)
RETURNING current_participants`, id, at).Scan(&count)
	if err == nil {
		return count, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, wrapErr("register participant", err)
	}
	// Either the event is missing or it is full.
	err = r.db.QueryRow(ctx, `SELECT current_participants FROM events
WHERE id = $1 AND deleted_at IS NULL`, id).Scan(&count)
	if err != nil {
		return 0, false, wrapErr("register participant", err)
	}
	return count, false, nil
}

// Unregister frees a seat; at zero it changes nothing.
func (r *EventRepository) Unregister(ctx context.Context, id int64, at time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `UPDATE events
SET current_participants = current_participants - 1, updated_at = $2
WHERE id = $1 AND deleted_at IS NULL AND current_participants > 0
RETURNING current_participants`, id, at).Scan(&count)
	if err == nil {
		return count, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, wrapErr("unregister participant", err)
	}
	err = r.db.QueryRow(ctx, `SELECT current_participants FROM events
WHERE id = $1 AND deleted_at IS NULL`, id).Scan(&count)
	return count, wrapErr("unregister participant", err)
}

func (r *EventRepository) SetStatus(ctx context.Context, id int64, status string, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE events SET status = $1, updated_at = $2
WHERE id = $3 AND deleted_at IS NULL`, status, at, id)
	return expectRow("set event status", tag, err)
}

func (r *EventRepository) Delete(ctx context.Context, id int64, at time.Time) error {
	return softDelete(ctx, r.db, "events", id, at)
}
