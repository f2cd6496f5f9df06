package httpadapter

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

type listingRequest struct {
	ExchangeName string     `json:"exchange_name"`
	CoinName     string     `json:"coin_name"`
	CoinSymbol   string     `json:"coin_symbol"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	LogoPath     string     `json:"logo_path"`
	ListingDate  *time.Time `json:"listing_date"`
}

type listingResponse struct {
	ID            int64      `json:"id"`
	ExchangeName  string     `json:"exchange_name"`
	CoinName      string     `json:"coin_name"`
	CoinSymbol    string     `json:"coin_symbol"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	LogoURL       *string    `json:"logo_url"`
	ListingDate   *time.Time `json:"listing_date"`
	IsPublished   bool       `json:"is_published"`
	YesVotes      int64      `json:"yes_votes"`
	NoVotes       int64      `json:"no_votes"`
	YesPercentage int        `json:"yes_percentage"`
	NoPercentage  int        `json:"no_percentage"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type voteRequest struct {
	Vote string `json:"vote"`
}

type voteResponse struct {
	ListingID     int64 `json:"listing_id"`
	YesVotes      int64 `json:"yes_votes"`
	NoVotes       int64 `json:"no_votes"`
	YesPercentage int   `json:"yes_percentage"`
	NoPercentage  int   `json:"no_percentage"`
}

func (h *Handler) listingResponse(l *domain.ExchangeListing) listingResponse {
	yes, no := l.Percentages()
	return listingResponse{
		ID:            l.ID,
		ExchangeName:  l.ExchangeName,
		CoinName:      l.CoinName,
		CoinSymbol:    l.CoinSymbol,
		Slug:          l.Slug,
		Description:   l.Description,
		LogoURL:       h.assetURL(l.LogoPath),
		ListingDate:   l.ListingDate,
		IsPublished:   l.IsPublished,
		YesVotes:      l.YesVotes,
		NoVotes:       l.NoVotes,
		YesPercentage: yes,
		NoPercentage:  no,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func (h *Handler) createListing(w http.ResponseWriter, r *http.Request) {
	var req listingRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	l, err := h.svc.Listings.Create(r.Context(), domain.ExchangeListing{
		ExchangeName: req.ExchangeName,
		CoinName:     req.CoinName,
		CoinSymbol:   req.CoinSymbol,
		Slug:         req.Slug,
		Description:  req.Description,
		LogoPath:     req.LogoPath,
		ListingDate:  req.ListingDate,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.listingResponse(l))
}

func (h *Handler) listListings(w http.ResponseWriter, r *http.Request) {
	p, err := listParams(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	items, err := h.svc.Listings.List(r.Context(), p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]listingResponse, 0, len(items))
	for i := range items {
		out = append(out, h.listingResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getListing(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	l, err := h.svc.Listings.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.listingResponse(l))
}

// voteListing takes {"vote": "yes"} or {"vote": "no"}.
func (h *Handler) voteListing(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	user := userFrom(r.Context())
	if user == "" {
		h.fail(w, r, port.ErrUnauthenticated)
		return
	}
	var req voteRequest
	if err = decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	var yes bool
	switch strings.ToLower(req.Vote) {
	case "yes":
		yes = true
	case "no":
	default:
		h.fail(w, r, fmt.Errorf("%w: vote must be yes or no", port.ErrInvalidInput))
		return
	}
	t, err := h.svc.Listings.Vote(r.Context(), id, user, yes)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, voteResponse{
		ListingID:     t.ListingID,
		YesVotes:      t.YesVotes,
		NoVotes:       t.NoVotes,
		YesPercentage: t.YesPercentage,
		NoPercentage:  t.NoPercentage,
	})
}

func (h *Handler) publishListing(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	l, err := h.svc.Listings.Publish(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.listingResponse(l))
}

func (h *Handler) deleteListing(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.Listings.Delete)
}
