package domain

import "time"

// ExchangeListing is a community poll on whether an exchange will list a coin.
type ExchangeListing struct {
	ID           int64
	ExchangeName string
	CoinName     string
	CoinSymbol   string
	Slug         string
	Description  string
	LogoPath     string
	ListingDate  *time.Time
	IsPublished  bool
	YesVotes     int64
	NoVotes      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Percentages returns the yes and no shares, each rounded independently.
func (l ExchangeListing) Percentages() (yes, no int) {
	return VotePercentages(l.YesVotes, l.NoVotes)
}
