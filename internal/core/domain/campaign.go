package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdCampaign is an advertiser's booking of an ad space for a time window.
// Budget and Spent are in quote currency units.
type AdCampaign struct {
	ID              int64
	AdSpaceID       int64
	Name            string
	AdvertiserEmail string
	TargetURL       string
	BannerPath      string
	Status          string // pending, active, paused, completed, cancelled
	StartDate       time.Time
	EndDate         time.Time
	IsApproved      bool
	ApprovedAt      *time.Time
	ImpressionCount int64
	ClickCount      int64
	CTR             float64 // persisted on click, see LiveCTR
	Budget          decimal.Decimal
	Spent           decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Lifecycle returns the campaign's status inputs.
func (c AdCampaign) Lifecycle() Lifecycle {
	end := c.EndDate
	return Lifecycle{Kind: KindCampaign, Stored: c.Status, Start: c.StartDate, End: &end}
}

// LiveCTR recomputes the click-through rate from the counters.
func (c AdCampaign) LiveCTR() float64 { return CTR(c.ClickCount, c.ImpressionCount) }

// RemainingBudget is Budget-Spent, never negative.
func (c AdCampaign) RemainingBudget() decimal.Decimal { return RemainingBudget(c.Budget, c.Spent) }

// AdSpace is a placement on the site that campaigns are booked into.
type AdSpace struct {
	ID              int64
	Name            string
	Slug            string
	Placement       string
	Width           int
	Height          int
	IsActive        bool
	ImpressionCount int64
	ClickCount      int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CTR is computed on every read and never stored.
func (s AdSpace) CTR() float64 { return CTR(s.ClickCount, s.ImpressionCount) }
