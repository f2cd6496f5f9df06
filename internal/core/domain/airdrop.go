package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Airdrop is a token distribution campaign. EndDate is nil while unknown.
type Airdrop struct {
	ID           int64
	Name         string
	Slug         string
	TokenSymbol  string
	Blockchain   string
	Description  string
	LogoPath     string
	WebsiteURL   string
	Status       string // ongoing, upcoming, potential, ended
	StartDate    time.Time
	EndDate      *time.Time
	AirdropQty   *decimal.Decimal
	TotalSupply  *decimal.Decimal
	ViewCount    int64
	UpvotesCount int64
	IsFeatured   bool
	FeaturedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a Airdrop) Lifecycle() Lifecycle {
	return Lifecycle{Kind: KindAirdrop, Stored: a.Status, Start: a.StartDate, End: a.EndDate}
}

// PercentOfSupply is the airdropped share of the total supply, nil when
// either figure is missing.
func (a Airdrop) PercentOfSupply() *decimal.Decimal {
	return PercentOfSupply(a.AirdropQty, a.TotalSupply)
}
