package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coinpulse/internal/adapter/usecase"
	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
	"coinpulse/internal/core/port/mocks"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	counters  *mocks.MockCounterRepository
	campaigns *mocks.MockCampaignRepository
	airdrops  *mocks.MockAirdropRepository
	events    *mocks.MockEventRepository
	listings  *mocks.MockListingRepository
	handler   http.Handler
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		counters:  mocks.NewMockCounterRepository(t),
		campaigns: mocks.NewMockCampaignRepository(t),
		airdrops:  mocks.NewMockAirdropRepository(t),
		events:    mocks.NewMockEventRepository(t),
		listings:  mocks.NewMockListingRepository(t),
	}
	clock := domain.FixedClock(now)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := Services{
		Campaigns: usecase.NewCampaignUseCase(f.campaigns, clock, nil),
		Airdrops:  usecase.NewAirdropUseCase(f.airdrops, f.counters, clock, nil),
		Events:    usecase.NewEventUseCase(f.events, clock),
		Listings:  usecase.NewListingUseCase(f.listings, f.counters, clock, nil),
	}
	assets := Assets{BaseURL: "https://cdn.example.com/storage", Placeholder: "https://cdn.example.com/placeholder.png"}
	f.handler = NewHandler(svc, assets, nil, logger).Router()
	return f
}

func (f *fixture) do(method, path, user, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if user != "" {
		req.Header.Set(UserHeader, user)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestUpvoteRequiresUser(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/airdrops/1/upvote", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, unauthenticatedMessage, decodeBody(t, rec)["message"])
	f.counters.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpvoteReturnsCount(t *testing.T) {
	f := newFixture(t)
	f.counters.EXPECT().Increment(mock.Anything, domain.AirdropUpvotes, int64(1), int64(1), now).Return(6, nil).Once()

	rec := f.do(http.MethodPost, "/api/airdrops/1/upvote", "user-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["id"])
	assert.EqualValues(t, 6, body["upvotes_count"])
}

func TestWithdrawUpvote(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodDelete, "/api/airdrops/1/upvote", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	f.counters.EXPECT().Decrement(mock.Anything, domain.AirdropUpvotes, int64(1), int64(1), now).Return(5, nil).Once()
	rec = f.do(http.MethodDelete, "/api/airdrops/1/upvote", "user-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["id"])
	assert.EqualValues(t, 5, body["upvotes_count"])
}

func TestShowAirdrop(t *testing.T) {
	f := newFixture(t)
	qty := decimal.NewFromInt(500000)
	supply := decimal.NewFromInt(1000000000)
	f.counters.EXPECT().Increment(mock.Anything, domain.AirdropViews, int64(3), int64(1), now).Return(11, nil).Once()
	f.airdrops.EXPECT().Get(mock.Anything, int64(3)).Return(&domain.Airdrop{
		ID:          3,
		Name:        "Drop",
		Status:      domain.StatusOngoing,
		StartDate:   now.Add(-time.Hour),
		AirdropQty:  &qty,
		TotalSupply: &supply,
		ViewCount:   11,
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/airdrops/3", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Ongoing", body["status"])
	assert.Equal(t, "0.050000", body["percent_of_supply"])
	assert.Equal(t, "https://cdn.example.com/placeholder.png", body["logo_url"])
	assert.EqualValues(t, 11, body["view_count"])
}

func TestShowAirdropWithoutSupplyHasNullPercent(t *testing.T) {
	f := newFixture(t)
	f.counters.EXPECT().Increment(mock.Anything, domain.AirdropViews, int64(3), int64(1), now).Return(1, nil).Once()
	f.airdrops.EXPECT().Get(mock.Anything, int64(3)).Return(&domain.Airdrop{
		ID:        3,
		Status:    domain.StatusPotential,
		StartDate: now.Add(time.Hour),
		LogoPath:  "airdrops/logo.png",
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/airdrops/3", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "percent_of_supply")
	assert.Nil(t, body["percent_of_supply"])
	assert.Equal(t, "https://cdn.example.com/storage/airdrops/logo.png", body["logo_url"])
}

func TestVoteListing(t *testing.T) {
	f := newFixture(t)
	f.counters.EXPECT().Increment(mock.Anything, domain.ListingYesVotes, int64(4), int64(1), now).Return(2, nil).Once()
	f.listings.EXPECT().Get(mock.Anything, int64(4)).Return(&domain.ExchangeListing{ID: 4, YesVotes: 2, NoVotes: 1}, nil).Once()

	rec := f.do(http.MethodPost, "/api/crypto-exchange-listings/4/vote", "user-1", `{"vote":"yes"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 2, body["yes_votes"])
	assert.EqualValues(t, 1, body["no_votes"])
	assert.EqualValues(t, 67, body["yes_percentage"])
	assert.EqualValues(t, 33, body["no_percentage"])
}

func TestVoteListingValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/crypto-exchange-listings/4/vote", "", `{"vote":"yes"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodPost, "/api/crypto-exchange-listings/4/vote", "user-1", `{"vote":"maybe"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterForFullEvent(t *testing.T) {
	f := newFixture(t)
	limit := int64(2)
	f.events.EXPECT().Get(mock.Anything, int64(9)).Return(&domain.Event{
		ID:                  9,
		Status:              domain.StatusUpcoming,
		StartDate:           now.Add(24 * time.Hour),
		EndDate:             now.Add(48 * time.Hour),
		MaxParticipants:     &limit,
		CurrentParticipants: 2,
	}, nil).Once()
	f.events.EXPECT().Register(mock.Anything, int64(9), now).Return(2, false, nil).Once()

	rec := f.do(http.MethodPost, "/api/events/9/register", "user-1", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["registered"])
	assert.EqualValues(t, 2, body["current_participants"])
	assert.Equal(t, domain.RegistrationFull, body["registration_status"])
}

func TestRecordClick(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().InTx(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(port.CampaignRepository) error) error { return fn(f.campaigns) },
	).Once()
	f.campaigns.EXPECT().IncrementCounter(mock.Anything, domain.CampaignClicks, int64(7), int64(1), now).Return(1, nil).Once()
	f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(7)).Return(&domain.AdCampaign{
		ID: 7, AdSpaceID: 2, ImpressionCount: 3, ClickCount: 1,
	}, nil).Once()
	f.campaigns.EXPECT().IncrementCounter(mock.Anything, domain.AdSpaceClicks, int64(2), int64(1), now).Return(5, nil).Once()
	f.campaigns.EXPECT().GetAdSpace(mock.Anything, int64(2)).Return(&domain.AdSpace{
		ID: 2, ImpressionCount: 40, ClickCount: 5,
	}, nil).Once()
	f.campaigns.EXPECT().SaveCTR(mock.Anything, int64(7), 33.33).Return(nil).Once()

	rec := f.do(http.MethodPost, "/api/campaigns/7/click", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["click_count"])
	assert.EqualValues(t, 33.33, body["ctr"])
	assert.EqualValues(t, 5, body["ad_space_click_count"])
}

func TestErrorMapping(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(404)).Return(nil, port.ErrNotFound).Once()

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/campaigns/404", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/campaigns/abc", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/campaigns/1/approve", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/campaigns", "admin", "{").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/airdrops?status=later", "", "").Code)
}

func TestHealthzAndRequestID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}
