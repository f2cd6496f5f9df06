package httpadapter

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

type airdropRequest struct {
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	TokenSymbol string           `json:"token_symbol"`
	Blockchain  string           `json:"blockchain"`
	Description string           `json:"description"`
	LogoPath    string           `json:"logo_path"`
	WebsiteURL  string           `json:"website_url"`
	Status      string           `json:"status"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	AirdropQty  *decimal.Decimal `json:"airdrop_qty"`
	TotalSupply *decimal.Decimal `json:"total_supply"`
}

type airdropResponse struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	TokenSymbol     string           `json:"token_symbol"`
	Blockchain      string           `json:"blockchain"`
	Description     string           `json:"description"`
	LogoURL         *string          `json:"logo_url"`
	WebsiteURL      string           `json:"website_url"`
	Status          domain.Phase     `json:"status"`
	StoredStatus    string           `json:"stored_status"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         *time.Time       `json:"end_date"`
	AirdropQty      *decimal.Decimal `json:"airdrop_qty"`
	TotalSupply     *decimal.Decimal `json:"total_supply"`
	PercentOfSupply *string          `json:"percent_of_supply"`
	ViewCount       int64            `json:"view_count"`
	UpvotesCount    int64            `json:"upvotes_count"`
	IsFeatured      bool             `json:"is_featured"`
	FeaturedAt      *time.Time       `json:"featured_at"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type upvotesResponse struct {
	ID           int64 `json:"id"`
	UpvotesCount int64 `json:"upvotes_count"`
}

func (h *Handler) airdropResponse(v port.AirdropView) airdropResponse {
	var pct *string
	if p := v.PercentOfSupply(); p != nil {
		s := p.StringFixed(6)
		pct = &s
	}
	return airdropResponse{
		ID:              v.ID,
		Name:            v.Name,
		Slug:            v.Slug,
		TokenSymbol:     v.TokenSymbol,
		Blockchain:      v.Blockchain,
		Description:     v.Description,
		LogoURL:         h.assetURL(v.LogoPath),
		WebsiteURL:      v.WebsiteURL,
		Status:          v.Phase,
		StoredStatus:    v.Airdrop.Status,
		StartDate:       v.StartDate,
		EndDate:         v.EndDate,
		AirdropQty:      v.AirdropQty,
		TotalSupply:     v.TotalSupply,
		PercentOfSupply: pct,
		ViewCount:       v.ViewCount,
		UpvotesCount:    v.UpvotesCount,
		IsFeatured:      v.IsFeatured,
		FeaturedAt:      v.FeaturedAt,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func (h *Handler) createAirdrop(w http.ResponseWriter, r *http.Request) {
	var req airdropRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.Airdrops.Create(r.Context(), domain.Airdrop{
		Name:        req.Name,
		Slug:        req.Slug,
		TokenSymbol: req.TokenSymbol,
		Blockchain:  req.Blockchain,
		Description: req.Description,
		LogoPath:    req.LogoPath,
		WebsiteURL:  req.WebsiteURL,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		AirdropQty:  req.AirdropQty,
		TotalSupply: req.TotalSupply,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.airdropResponse(*v))
}

func (h *Handler) listAirdrops(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	items, err := h.svc.Airdrops.List(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]airdropResponse, 0, len(items))
	for _, v := range items {
		out = append(out, h.airdropResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) showAirdrop(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.Airdrops.Show(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.airdropResponse(*v))
}

func (h *Handler) showAirdropBySlug(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Airdrops.ShowBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.airdropResponse(*v))
}

func (h *Handler) upvoteAirdrop(w http.ResponseWriter, r *http.Request) {
	h.changeUpvotes(w, r, h.svc.Airdrops.Upvote)
}

func (h *Handler) withdrawAirdropUpvote(w http.ResponseWriter, r *http.Request) {
	h.changeUpvotes(w, r, h.svc.Airdrops.WithdrawUpvote)
}

// changeUpvotes runs an upvote or its withdrawal for the current user and
// writes the new count.
func (h *Handler) changeUpvotes(w http.ResponseWriter, r *http.Request, op func(context.Context, int64, string) (*port.Upvotes, error)) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	u, err := op(r.Context(), id, userFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, upvotesResponse{ID: u.ID, UpvotesCount: u.UpvotesCount})
}

func (h *Handler) featureAirdrop(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.Airdrops.MarkAsFeatured(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.airdropResponse(*v))
}

func (h *Handler) deleteAirdrop(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.Airdrops.Delete)
}
