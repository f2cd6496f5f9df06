package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Presale is a token sale held before public listing.
type Presale struct {
	ID           int64
	Name         string
	Slug         string
	TokenSymbol  string
	Blockchain   string
	Description  string
	LogoPath     string
	WebsiteURL   string
	Stage        string
	Status       string // upcoming, ongoing, ended
	StartDate    time.Time
	EndDate      time.Time
	Price        *decimal.Decimal
	ViewCount    int64
	UpvotesCount int64
	IsFeatured   bool
	FeaturedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Presale) Lifecycle() Lifecycle {
	end := p.EndDate
	return Lifecycle{Kind: KindPresale, Stored: p.Status, Start: p.StartDate, End: &end}
}

// FormattedPrice renders the token price in dollars, or "TBA" when unset.
func (p Presale) FormattedPrice() string {
	if p.Price == nil {
		return "TBA"
	}
	if p.Price.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return "$" + p.Price.StringFixed(2)
	}
	return "$" + p.Price.String()
}

// RemainingTime describes how long is left: until the start for a sale that
// has not begun, until the end otherwise.
func (p Presale) RemainingTime(now time.Time) string {
	if p.EndDate.Before(now) {
		return "Ended"
	}
	if p.StartDate.After(now) {
		return "Starts in " + humanDuration(p.StartDate.Sub(now))
	}
	return humanDuration(p.EndDate.Sub(now)) + " left"
}

func humanDuration(d time.Duration) string {
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
