package usecase

import (
	"context"
	"fmt"
	"strings"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// EventUseCase implements port.EventUseCase.
type EventUseCase struct {
	repo  port.EventRepository
	clock domain.Clock
}

// NewEventUseCase creates the usecase.
func NewEventUseCase(repo port.EventRepository, clock domain.Clock) *EventUseCase {
	return &EventUseCase{repo: repo, clock: clock}
}

// Create stores an event with no participants. Status defaults to upcoming.
func (u *EventUseCase) Create(ctx context.Context, e domain.Event) (*port.EventView, error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return nil, invalid("title is required")
	}
	e.Slug = domain.EnsureSlug(e.Slug, e.Title)
	if e.Status == "" {
		e.Status = domain.StatusUpcoming
	}
	if !domain.ValidStatus(domain.KindEvent, e.Status) {
		return nil, invalid("unknown event status %q", e.Status)
	}
	if e.StartDate.IsZero() || e.EndDate.Before(e.StartDate) {
		return nil, invalid("start_date is required and end_date must not be before it")
	}
	if e.MaxParticipants != nil && *e.MaxParticipants < 0 {
		return nil, invalid("max_participants must not be negative")
	}
	e.CurrentParticipants = 0
	if err := u.repo.Create(ctx, &e); err != nil {
		return nil, err
	}
	return u.view(e), nil
}

// Get returns the event with its resolved and registration status.
func (u *EventUseCase) Get(ctx context.Context, id int64) (*port.EventView, error) {
	e, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.view(*e), nil
}

// List returns a page of events, optionally filtered by resolved status.
func (u *EventUseCase) List(ctx context.Context, q port.ListQuery) ([]port.EventView, error) {
	return listByPhase(ctx, q, u.page, func(v port.EventView) domain.Phase { return v.Phase })
}

func (u *EventUseCase) page(ctx context.Context, p port.ListParams) ([]port.EventView, error) {
	list, err := u.repo.List(ctx, p)
	if err != nil {
		return nil, err
	}
	views := make([]port.EventView, 0, len(list))
	for _, e := range list {
		views = append(views, *u.view(e))
	}
	return views, nil
}

// Register takes one seat. A full event yields port.ErrEventFull and the
// participant count is left untouched; finished events refuse sign ups.
func (u *EventUseCase) Register(ctx context.Context, id int64, userID string) (*port.Participation, error) {
	if userID == "" {
		return nil, port.ErrUnauthenticated
	}
	e, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := u.clock.Now()
	if e.Lifecycle().Over(now) {
		return nil, invalid("registration for event %d is closed", id)
	}
	count, ok, err := u.repo.Register(ctx, id, now)
	if err != nil {
		return nil, err
	}
	e.CurrentParticipants = count
	if !ok {
		return u.participation(*e), fmt.Errorf("event %d: %w", id, port.ErrEventFull)
	}
	return u.participation(*e), nil
}

// Unregister frees one seat. At zero participants it does nothing.
func (u *EventUseCase) Unregister(ctx context.Context, id int64, userID string) (*port.Participation, error) {
	if userID == "" {
		return nil, port.ErrUnauthenticated
	}
	count, err := u.repo.Unregister(ctx, id, u.clock.Now())
	if err != nil {
		return nil, err
	}
	e, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e.CurrentParticipants = count
	return u.participation(*e), nil
}

// Cancel marks the event cancelled.
func (u *EventUseCase) Cancel(ctx context.Context, id int64) (*port.EventView, error) {
	return u.setStatus(ctx, id, domain.StatusCancelled)
}

// Complete marks the event completed ahead of its end date.
func (u *EventUseCase) Complete(ctx context.Context, id int64) (*port.EventView, error) {
	return u.setStatus(ctx, id, domain.StatusCompleted)
}

func (u *EventUseCase) setStatus(ctx context.Context, id int64, status string) (*port.EventView, error) {
	if err := u.repo.SetStatus(ctx, id, status, u.clock.Now()); err != nil {
		return nil, err
	}
	return u.Get(ctx, id)
}

// Delete soft-deletes the event.
func (u *EventUseCase) Delete(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id, u.clock.Now())
}

func (u *EventUseCase) view(e domain.Event) *port.EventView {
	now := u.clock.Now()
	return &port.EventView{
		Event:              e,
		Phase:              e.Lifecycle().Resolve(now),
		RegistrationStatus: e.RegistrationStatus(now),
	}
}

func (u *EventUseCase) participation(e domain.Event) *port.Participation {
	return &port.Participation{
		EventID:             e.ID,
		CurrentParticipants: e.CurrentParticipants,
		MaxParticipants:     e.MaxParticipants,
		RegistrationStatus:  e.RegistrationStatus(u.clock.Now()),
	}
}
