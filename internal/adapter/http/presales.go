package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

type presaleRequest struct {
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	TokenSymbol string           `json:"token_symbol"`
	Blockchain  string           `json:"blockchain"`
	Description string           `json:"description"`
	LogoPath    string           `json:"logo_path"`
	WebsiteURL  string           `json:"website_url"`
	Stage       string           `json:"stage"`
	Status      string           `json:"status"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	Price       *decimal.Decimal `json:"price"`
}

type presaleResponse struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Slug           string           `json:"slug"`
	TokenSymbol    string           `json:"token_symbol"`
	Blockchain     string           `json:"blockchain"`
	Description    string           `json:"description"`
	LogoURL        *string          `json:"logo_url"`
	WebsiteURL     string           `json:"website_url"`
	Stage          string           `json:"stage"`
	Status         domain.Phase     `json:"status"`
	StoredStatus   string           `json:"stored_status"`
	StartDate      time.Time        `json:"start_date"`
	EndDate        time.Time        `json:"end_date"`
	Price          *decimal.Decimal `json:"price"`
	FormattedPrice string           `json:"formatted_price"`
	RemainingTime  string           `json:"remaining_time"`
	ViewCount      int64            `json:"view_count"`
	UpvotesCount   int64            `json:"upvotes_count"`
	IsFeatured     bool             `json:"is_featured"`
	FeaturedAt     *time.Time       `json:"featured_at"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (h *Handler) presaleResponse(v port.PresaleView) presaleResponse {
	return presaleResponse{
		ID:             v.ID,
		Name:           v.Name,
		Slug:           v.Slug,
		TokenSymbol:    v.TokenSymbol,
		Blockchain:     v.Blockchain,
		Description:    v.Description,
		LogoURL:        h.assetURL(v.LogoPath),
		WebsiteURL:     v.WebsiteURL,
		Stage:          v.Stage,
		Status:         v.Phase,
		StoredStatus:   v.Presale.Status,
		StartDate:      v.StartDate,
		EndDate:        v.EndDate,
		Price:          v.Price,
		FormattedPrice: v.FormattedPrice(),
		RemainingTime:  v.RemainingTime,
		ViewCount:      v.ViewCount,
		UpvotesCount:   v.UpvotesCount,
		IsFeatured:     v.IsFeatured,
		FeaturedAt:     v.FeaturedAt,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func (h *Handler) createPresale(w http.ResponseWriter, r *http.Request) {
	var req presaleRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.Presales.Create(r.Context(), domain.Presale{
		Name:        req.Name,
		Slug:        req.Slug,
		TokenSymbol: req.TokenSymbol,
		Blockchain:  req.Blockchain,
		Description: req.Description,
		LogoPath:    req.LogoPath,
		WebsiteURL:  req.WebsiteURL,
		Stage:       req.Stage,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Price:       req.Price,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.presaleResponse(*v))
}

func (h *Handler) listPresales(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	items, err := h.svc.Presales.List(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]presaleResponse, 0, len(items))
	for _, v := range items {
		out = append(out, h.presaleResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) showPresale(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.Presales.Show(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.presaleResponse(*v))
}

func (h *Handler) showPresaleBySlug(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Presales.ShowBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.presaleResponse(*v))
}

func (h *Handler) upvotePresale(w http.ResponseWriter, r *http.Request) {
	h.changeUpvotes(w, r, h.svc.Presales.Upvote)
}

func (h *Handler) withdrawPresaleUpvote(w http.ResponseWriter, r *http.Request) {
	h.changeUpvotes(w, r, h.svc.Presales.WithdrawUpvote)
}

func (h *Handler) featurePresale(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.Presales.MarkAsFeatured(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.presaleResponse(*v))
}

func (h *Handler) deletePresale(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.Presales.Delete)
}
