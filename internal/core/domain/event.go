package domain

import "time"

// Registration states reported for events.
const (
	RegistrationFull    = "full"
	RegistrationOpen    = "open"
	RegistrationOngoing = "ongoing"
	RegistrationClosed  = "closed"
)

// Event is a conference, AMA or meetup users can register for.
// MaxParticipants nil means unlimited capacity.
type Event struct {
	ID                  int64
	Title               string
	Slug                string
	Description         string
	Location            string
	IsOnline            bool
	BannerPath          string
	Status              string // upcoming, ongoing, completed, cancelled
	StartDate           time.Time
	EndDate             time.Time
	MaxParticipants     *int64
	CurrentParticipants int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (e Event) Lifecycle() Lifecycle {
	end := e.EndDate
	return Lifecycle{Kind: KindEvent, Stored: e.Status, Start: e.StartDate, End: &end}
}

// IsFull reports whether capacity has been reached.
func (e Event) IsFull() bool {
	return e.MaxParticipants != nil && e.CurrentParticipants >= *e.MaxParticipants
}

// RegistrationStatus tells visitors whether they can still sign up.
func (e Event) RegistrationStatus(now time.Time) string {
	switch {
	case e.Status == StatusCancelled || e.Status == StatusCompleted:
		return RegistrationClosed
	case e.IsFull():
		return RegistrationFull
	case e.StartDate.After(now):
		return RegistrationOpen
	case !e.EndDate.Before(now):
		return RegistrationOngoing
	}
	return RegistrationClosed
}
