package httpadapter

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

type campaignRequest struct {
	AdSpaceID       int64           `json:"ad_space_id"`
	Name            string          `json:"name"`
	AdvertiserEmail string          `json:"advertiser_email"`
	TargetURL       string          `json:"target_url"`
	BannerPath      string          `json:"banner_path"`
	Status          string          `json:"status"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	Budget          decimal.Decimal `json:"budget"`
}

type campaignResponse struct {
	ID              int64           `json:"id"`
	AdSpaceID       int64           `json:"ad_space_id"`
	Name            string          `json:"name"`
	AdvertiserEmail string          `json:"advertiser_email"`
	TargetURL       string          `json:"target_url"`
	BannerURL       *string         `json:"banner_url"`
	Status          domain.Phase    `json:"status"`
	StoredStatus    string          `json:"stored_status"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	IsApproved      bool            `json:"is_approved"`
	ApprovedAt      *time.Time      `json:"approved_at"`
	ImpressionCount int64           `json:"impression_count"`
	ClickCount      int64           `json:"click_count"`
	CTR             float64         `json:"ctr"`
	Budget          decimal.Decimal `json:"budget"`
	Spent           decimal.Decimal `json:"spent"`
	RemainingBudget decimal.Decimal `json:"remaining_budget"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (h *Handler) campaignResponse(v *port.CampaignView) campaignResponse {
	return campaignResponse{
		ID:              v.ID,
		AdSpaceID:       v.AdSpaceID,
		Name:            v.Name,
		AdvertiserEmail: v.AdvertiserEmail,
		TargetURL:       v.TargetURL,
		BannerURL:       h.assetURL(v.BannerPath),
		Status:          v.Phase,
		StoredStatus:    v.AdCampaign.Status,
		StartDate:       v.StartDate,
		EndDate:         v.EndDate,
		IsApproved:      v.IsApproved,
		ApprovedAt:      v.ApprovedAt,
		ImpressionCount: v.ImpressionCount,
		ClickCount:      v.ClickCount,
		CTR:             v.LiveCTR(),
		Budget:          v.Budget,
		Spent:           v.Spent,
		RemainingBudget: v.RemainingBudget(),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

type countersResponse struct {
	CampaignID         int64   `json:"campaign_id"`
	ImpressionCount    int64   `json:"impression_count"`
	ClickCount         int64   `json:"click_count"`
	CTR                float64 `json:"ctr"`
	AdSpaceID          int64   `json:"ad_space_id"`
	AdSpaceImpressions int64   `json:"ad_space_impression_count"`
	AdSpaceClicks      int64   `json:"ad_space_click_count"`
}

type adSpaceRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Placement string `json:"placement"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	IsActive  *bool  `json:"is_active"`
}

type adSpaceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Placement       string    `json:"placement"`
	Width           int       `json:"width"`
	Height          int       `json:"height"`
	IsActive        bool      `json:"is_active"`
	ImpressionCount int64     `json:"impression_count"`
	ClickCount      int64     `json:"click_count"`
	CTR             float64   `json:"ctr"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func adSpaceResponseFrom(s *domain.AdSpace) adSpaceResponse {
	return adSpaceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Slug:            s.Slug,
		Placement:       s.Placement,
		Width:           s.Width,
		Height:          s.Height,
		IsActive:        s.IsActive,
		ImpressionCount: s.ImpressionCount,
		ClickCount:      s.ClickCount,
		CTR:             s.CTR(),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.Campaigns.Create(r.Context(), domain.AdCampaign{
		AdSpaceID:       req.AdSpaceID,
		Name:            req.Name,
		AdvertiserEmail: req.AdvertiserEmail,
		TargetURL:       req.TargetURL,
		BannerPath:      req.BannerPath,
		Status:          req.Status,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Budget:          req.Budget,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.campaignResponse(v))
}

func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	h.campaignAction(port.CampaignUseCase.Get)(w, r)
}

// campaignAction serves the id-only campaign operations that return the
// updated campaign.
func (h *Handler) campaignAction(op func(port.CampaignUseCase, context.Context, int64) (*port.CampaignView, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		v, err := op(h.svc.Campaigns, r.Context(), id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, h.campaignResponse(v))
	}
}

func (h *Handler) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.Campaigns.Delete)
}

func (h *Handler) recordImpression(w http.ResponseWriter, r *http.Request) {
	h.recordCounter(w, r, port.CampaignUseCase.RecordImpression)
}

func (h *Handler) recordClick(w http.ResponseWriter, r *http.Request) {
	h.recordCounter(w, r, port.CampaignUseCase.RecordClick)
}

func (h *Handler) recordCounter(w http.ResponseWriter, r *http.Request, op func(port.CampaignUseCase, context.Context, int64) (*port.CampaignCounters, error)) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := op(h.svc.Campaigns, r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countersResponse{
		CampaignID:         c.CampaignID,
		ImpressionCount:    c.ImpressionCount,
		ClickCount:         c.ClickCount,
		CTR:                c.CTR,
		AdSpaceID:          c.AdSpaceID,
		AdSpaceImpressions: c.SpaceImpressions,
		AdSpaceClicks:      c.SpaceClicks,
	})
}

func (h *Handler) createAdSpace(w http.ResponseWriter, r *http.Request) {
	var req adSpaceRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	s := domain.AdSpace{
		Name:      req.Name,
		Slug:      req.Slug,
		Placement: req.Placement,
		Width:     req.Width,
		Height:    req.Height,
		IsActive:  req.IsActive == nil || *req.IsActive,
	}
	created, err := h.svc.Campaigns.CreateAdSpace(r.Context(), s)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, adSpaceResponseFrom(created))
}

func (h *Handler) getAdSpace(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := h.svc.Campaigns.GetAdSpace(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, adSpaceResponseFrom(s))
}
