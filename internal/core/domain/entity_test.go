package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEventRegistrationStatus(t *testing.T) {
	limit := int64(2)
	base := Event{
		Status:          StatusUpcoming,
		StartDate:       at(time.Hour),
		EndDate:         at(3 * time.Hour),
		MaxParticipants: &limit,
	}

	assert.Equal(t, RegistrationOpen, base.RegistrationStatus(now))

	full := base
	full.CurrentParticipants = 2
	assert.True(t, full.IsFull())
	assert.Equal(t, RegistrationFull, full.RegistrationStatus(now))

	running := base
	running.StartDate = at(-time.Hour)
	assert.Equal(t, RegistrationOngoing, running.RegistrationStatus(now))

	over := base
	over.StartDate, over.EndDate = at(-3*time.Hour), at(-time.Hour)
	assert.Equal(t, RegistrationClosed, over.RegistrationStatus(now))

	cancelled := base
	cancelled.Status = StatusCancelled
	assert.Equal(t, RegistrationClosed, cancelled.RegistrationStatus(now))

	unlimited := base
	unlimited.MaxParticipants = nil
	unlimited.CurrentParticipants = 10000
	assert.False(t, unlimited.IsFull())
}

func TestPresaleFormattedPrice(t *testing.T) {
	assert.Equal(t, "TBA", Presale{}.FormattedPrice())

	price := decimal.RequireFromString("1.5")
	assert.Equal(t, "$1.50", Presale{Price: &price}.FormattedPrice())

	small := decimal.RequireFromString("0.012675")
	assert.Equal(t, "$0.012675", Presale{Price: &small}.FormattedPrice())
}

func TestPresaleRemainingTime(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       string
	}{
		{"running for days", at(-time.Hour), at(50 * time.Hour), "2d 2h left"},
		{"running for hours", at(-time.Hour), at(90 * time.Minute), "1h 30m left"},
		{"last minutes", at(-time.Hour), at(45 * time.Minute), "45m left"},
		{"not started", at(26 * time.Hour), at(72 * time.Hour), "Starts in 1d 2h"},
		{"finished", at(-72 * time.Hour), at(-time.Hour), "Ended"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Presale{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, p.RemainingTime(now))
		})
	}
}

func TestCampaignDerived(t *testing.T) {
	c := AdCampaign{
		ImpressionCount: 400,
		ClickCount:      9,
		Budget:          decimal.NewFromInt(1000),
		Spent:           decimal.RequireFromString("250.50"),
	}
	assert.Equal(t, 2.25, c.LiveCTR())
	assert.Equal(t, "749.5", c.RemainingBudget().String())

	s := AdSpace{ImpressionCount: 0, ClickCount: 3}
	assert.Equal(t, 0.0, s.CTR())
}

func TestListingPercentages(t *testing.T) {
	y, n := ExchangeListing{YesVotes: 3, NoVotes: 1}.Percentages()
	assert.Equal(t, 75, y)
	assert.Equal(t, 25, n)
}

func TestAirdropPercentOfSupply(t *testing.T) {
	assert.Nil(t, Airdrop{}.PercentOfSupply())

	qty, supply := decimal.NewFromInt(25), decimal.NewFromInt(1000)
	got := Airdrop{AirdropQty: &qty, TotalSupply: &supply}.PercentOfSupply()
	assert.Equal(t, "2.500000", got.StringFixed(6))
}
