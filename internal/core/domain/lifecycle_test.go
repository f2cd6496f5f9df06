package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time { return now.Add(d) }
func ptrAt(d time.Duration) *time.Time { t := now.Add(d); return &t }

func TestResolveCampaign(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		start  time.Time
		end    *time.Time
		want   Phase
	}{
		{"pending wins over time", StatusPending, at(-48 * time.Hour), ptrAt(-24 * time.Hour), PhasePending},
		{"active inside window", StatusActive, at(-time.Hour), ptrAt(time.Hour), PhaseActive},
		{"active past end", StatusActive, at(-48 * time.Hour), ptrAt(-time.Second), PhaseCompleted},
		{"active before start", StatusActive, at(time.Hour), ptrAt(2 * time.Hour), PhaseUnknown},
		{"paused", StatusPaused, at(-time.Hour), ptrAt(time.Hour), PhasePaused},
		{"paused past end stays paused", StatusPaused, at(-48 * time.Hour), ptrAt(-time.Hour), PhasePaused},
		{"cancelled inside window", StatusCancelled, at(-time.Hour), ptrAt(time.Hour), PhaseCancelled},
		{"cancelled past end reads completed", StatusCancelled, at(-48 * time.Hour), ptrAt(-time.Hour), PhaseCompleted},
		{"garbage", "running", at(-time.Hour), ptrAt(time.Hour), PhaseUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Lifecycle{Kind: KindCampaign, Stored: tt.stored, Start: tt.start, End: tt.end}
			assert.Equal(t, tt.want, l.Resolve(now))
		})
	}
}

func TestResolveAirdrop(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		start  time.Time
		end    *time.Time
		want   Phase
	}{
		{"ongoing open ended", StatusOngoing, at(-time.Hour), nil, PhaseOngoing},
		{"ongoing until later", StatusOngoing, at(-time.Hour), ptrAt(time.Hour), PhaseOngoing},
		{"ongoing at exact end", StatusOngoing, at(-time.Hour), ptrAt(0), PhaseUnknown},
		{"ongoing past end", StatusOngoing, at(-time.Hour), ptrAt(-time.Minute), PhaseEnded},
		{"upcoming", StatusUpcoming, at(time.Hour), nil, PhaseUpcoming},
		{"upcoming already started", StatusUpcoming, at(-time.Hour), nil, PhaseUnknown},
		{"potential", StatusPotential, at(time.Hour), nil, PhasePotential},
		{"ended", StatusEnded, at(-time.Hour), nil, PhaseEnded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Lifecycle{Kind: KindAirdrop, Stored: tt.stored, Start: tt.start, End: tt.end}
			assert.Equal(t, tt.want, l.Resolve(now))
		})
	}
}

func TestResolvePresaleHasNoPotential(t *testing.T) {
	l := Lifecycle{Kind: KindPresale, Stored: StatusPotential, Start: at(time.Hour), End: ptrAt(2 * time.Hour)}
	assert.Equal(t, PhaseUnknown, l.Resolve(now))

	l.Stored = StatusUpcoming
	assert.Equal(t, PhaseUpcoming, l.Resolve(now))
}

func TestResolveEvent(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		start  time.Time
		end    time.Time
		want   Phase
	}{
		{"upcoming", StatusUpcoming, at(time.Hour), at(2 * time.Hour), PhaseUpcoming},
		{"ongoing", StatusOngoing, at(-time.Hour), at(time.Hour), PhaseOngoing},
		{"ongoing at exact end", StatusOngoing, at(-time.Hour), at(0), PhaseOngoing},
		{"ongoing past end", StatusOngoing, at(-2 * time.Hour), at(-time.Hour), PhaseCompleted},
		{"upcoming past end", StatusUpcoming, at(-2 * time.Hour), at(-time.Hour), PhaseCompleted},
		{"cancelled", StatusCancelled, at(time.Hour), at(2 * time.Hour), PhaseCancelled},
		{"completed early", StatusCompleted, at(time.Hour), at(2 * time.Hour), PhaseCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := tt.end
			l := Lifecycle{Kind: KindEvent, Stored: tt.stored, Start: tt.start, End: &end}
			assert.Equal(t, tt.want, l.Resolve(now))
		})
	}
}

func TestResolveUnknownKind(t *testing.T) {
	assert.Equal(t, PhaseUnknown, Lifecycle{Kind: "poll", Stored: StatusActive}.Resolve(now))
}

func TestOver(t *testing.T) {
	assert.True(t, Lifecycle{Kind: KindEvent, Stored: StatusUpcoming, Start: at(-2 * time.Hour), End: ptrAt(-time.Hour)}.Over(now))
	assert.True(t, Lifecycle{Kind: KindEvent, Stored: StatusCancelled, Start: at(time.Hour), End: ptrAt(2 * time.Hour)}.Over(now))
	assert.False(t, Lifecycle{Kind: KindEvent, Stored: StatusUpcoming, Start: at(time.Hour), End: ptrAt(2 * time.Hour)}.Over(now))
}

func TestParsePhase(t *testing.T) {
	p, ok := ParsePhase("ongoing")
	assert.True(t, ok)
	assert.Equal(t, PhaseOngoing, p)

	_, ok = ParsePhase("later")
	assert.False(t, ok)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(KindAirdrop, StatusPotential))
	assert.False(t, ValidStatus(KindPresale, StatusPotential))
	assert.False(t, ValidStatus(KindCampaign, StatusOngoing))
}
