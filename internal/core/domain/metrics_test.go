package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCTR(t *testing.T) {
	assert.Equal(t, 0.0, CTR(5, 0))
	assert.Equal(t, 2.5, CTR(5, 200))
	assert.Equal(t, 33.33, CTR(1, 3))
	assert.Equal(t, 66.67, CTR(2, 3))
	assert.Equal(t, 100.0, CTR(4, 4))
}

func TestVotePercentages(t *testing.T) {
	tests := []struct {
		yes, no         int64
		wantYes, wantNo int
	}{
		{0, 0, 0, 0},
		{3, 0, 100, 0},
		{1, 2, 33, 67},
		{1, 1, 50, 50},
		// independent rounding can overshoot 100
		{1, 7, 13, 88},
	}
	for _, tt := range tests {
		y, n := VotePercentages(tt.yes, tt.no)
		assert.Equal(t, tt.wantYes, y, "yes for %d/%d", tt.yes, tt.no)
		assert.Equal(t, tt.wantNo, n, "no for %d/%d", tt.yes, tt.no)
	}
}

func TestPercentOfSupply(t *testing.T) {
	qty := decimal.NewFromInt(500000)
	supply := decimal.NewFromInt(1000000000)

	got := PercentOfSupply(&qty, &supply)
	require.NotNil(t, got)
	assert.Equal(t, "0.050000", got.StringFixed(6))

	third := decimal.NewFromInt(1)
	three := decimal.NewFromInt(3)
	assert.Equal(t, "33.333333", PercentOfSupply(&third, &three).StringFixed(6))

	assert.Nil(t, PercentOfSupply(nil, &supply))
	assert.Nil(t, PercentOfSupply(&qty, nil))

	zero := decimal.Zero
	assert.True(t, PercentOfSupply(&qty, &zero).IsZero())
}

func TestRemainingBudget(t *testing.T) {
	assert.Equal(t, "40", RemainingBudget(decimal.NewFromInt(100), decimal.NewFromInt(60)).String())
	assert.True(t, RemainingBudget(decimal.NewFromInt(100), decimal.NewFromInt(160)).IsZero())
}
