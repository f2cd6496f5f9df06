package domain

import (
	"strings"
	"time"
)

// Kind identifies which set of lifecycle rules applies to an entity.
type Kind string

const (
	KindCampaign Kind = "campaign"
	KindAirdrop  Kind = "airdrop"
	KindPresale  Kind = "presale"
	KindEvent    Kind = "event"
)

// Kinds lists every lifecycle kind.
var Kinds = []Kind{KindCampaign, KindAirdrop, KindPresale, KindEvent}

// Phase is the externally visible status of a time-bounded entity.
type Phase string

const (
	PhasePending   Phase = "Pending"
	PhaseUpcoming  Phase = "Upcoming"
	PhaseOngoing   Phase = "Ongoing"
	PhaseActive    Phase = "Active"
	PhasePotential Phase = "Potential"
	PhasePaused    Phase = "Paused"
	PhaseEnded     Phase = "Ended"
	PhaseCompleted Phase = "Completed"
	PhaseCancelled Phase = "Cancelled"
	PhaseUnknown   Phase = "Unknown"
)

// Stored status values shared by the entity kinds. Each kind accepts only a
// subset; see the Valid*Status helpers.
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusPotential = "potential"
	StatusEnded     = "ended"
)

// Lifecycle pairs the stored status flag of an entity with its time window.
// The two signals may disagree; Resolve is the only place where they are
// combined. End is nil when the entity has no known end.
type Lifecycle struct {
	Kind   Kind
	Stored string
	Start  time.Time
	End    *time.Time
}

// Ended reports whether the end of the window lies strictly before now,
// whatever the stored status says.
func (l Lifecycle) Ended(now time.Time) bool {
	return l.End != nil && l.End.Before(now)
}

func (l Lifecycle) started(now time.Time) bool {
	return !l.Start.After(now)
}

// Resolve derives the visible phase. Rules are evaluated first match wins
// and differ per kind. It never fails: anything unmatched is PhaseUnknown.
func (l Lifecycle) Resolve(now time.Time) Phase {
	switch l.Kind {
	case KindCampaign:
		return l.resolveCampaign(now)
	case KindAirdrop:
		return l.resolveAirdrop(now, true)
	case KindPresale:
		return l.resolveAirdrop(now, false)
	case KindEvent:
		return l.resolveEvent(now)
	}
	return PhaseUnknown
}

func (l Lifecycle) resolveCampaign(now time.Time) Phase {
	switch {
	case l.Stored == StatusPending:
		return PhasePending
	case l.Stored == StatusActive && l.started(now) && !l.Ended(now):
		return PhaseActive
	case l.Stored == StatusPaused:
		return PhasePaused
	case l.Stored == StatusCompleted || l.Ended(now):
		return PhaseCompleted
	case l.Stored == StatusCancelled:
		return PhaseCancelled
	}
	return PhaseUnknown
}

// resolveAirdrop covers presales too; presales have no potential state and
// always carry an end date.
func (l Lifecycle) resolveAirdrop(now time.Time, allowPotential bool) Phase {
	switch {
	case l.Stored == StatusOngoing && l.started(now) && (l.End == nil || l.End.After(now)):
		return PhaseOngoing
	case l.Stored == StatusUpcoming && l.Start.After(now):
		return PhaseUpcoming
	case allowPotential && l.Stored == StatusPotential:
		return PhasePotential
	case l.Stored == StatusEnded || l.Ended(now):
		return PhaseEnded
	}
	return PhaseUnknown
}

func (l Lifecycle) resolveEvent(now time.Time) Phase {
	switch {
	case l.Stored == StatusUpcoming && l.Start.After(now):
		return PhaseUpcoming
	case l.Stored == StatusOngoing && l.started(now) && !l.Ended(now):
		return PhaseOngoing
	case l.Stored == StatusCompleted || l.Ended(now):
		return PhaseCompleted
	case l.Stored == StatusCancelled:
		return PhaseCancelled
	}
	return PhaseUnknown
}

// Over reports whether the entity is effectively finished. Time wins over
// the stored flag: an entity whose end has passed is over even while its
// stored status still says otherwise.
func (l Lifecycle) Over(now time.Time) bool {
	if l.Ended(now) {
		return true
	}
	switch l.Resolve(now) {
	case PhaseEnded, PhaseCompleted, PhaseCancelled:
		return true
	}
	return false
}

var storedStatuses = map[Kind][]string{
	KindCampaign: {StatusPending, StatusActive, StatusPaused, StatusCompleted, StatusCancelled},
	KindAirdrop:  {StatusOngoing, StatusUpcoming, StatusPotential, StatusEnded},
	KindPresale:  {StatusUpcoming, StatusOngoing, StatusEnded},
	KindEvent:    {StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled},
}

// ValidStatus reports whether status is a stored value the kind accepts.
func ValidStatus(kind Kind, status string) bool {
	for _, s := range storedStatuses[kind] {
		if s == status {
			return true
		}
	}
	return false
}

// ParsePhase maps a query value such as "ongoing" or "Ongoing" to a Phase.
func ParsePhase(s string) (Phase, bool) {
	for _, p := range []Phase{
		PhasePending, PhaseUpcoming, PhaseOngoing, PhaseActive, PhasePotential,
		PhasePaused, PhaseEnded, PhaseCompleted, PhaseCancelled, PhaseUnknown,
	} {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	return "", false
}
