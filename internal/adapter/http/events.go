package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"time"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

type eventRequest struct {
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	IsOnline        bool      `json:"is_online"`
	BannerPath      string    `json:"banner_path"`
	Status          string    `json:"status"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	MaxParticipants *int64    `json:"max_participants"`
}

type eventResponse struct {
	ID                  int64        `json:"id"`
	Title               string       `json:"title"`
	Slug                string       `json:"slug"`
	Description         string       `json:"description"`
	Location            string       `json:"location"`
	IsOnline            bool         `json:"is_online"`
	BannerURL           *string      `json:"banner_url"`
	Status              domain.Phase `json:"status"`
	StoredStatus        string       `json:"stored_status"`
	RegistrationStatus  string       `json:"registration_status"`
	StartDate           time.Time    `json:"start_date"`
	EndDate             time.Time    `json:"end_date"`
	MaxParticipants     *int64       `json:"max_participants"`
	CurrentParticipants int64        `json:"current_participants"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

type participationResponse struct {
	EventID             int64  `json:"event_id"`
	Registered          bool   `json:"registered"`
	CurrentParticipants int64  `json:"current_participants"`
	MaxParticipants     *int64 `json:"max_participants"`
	RegistrationStatus  string `json:"registration_status"`
}

func (h *Handler) eventResponse(v port.EventView) eventResponse {
	return eventResponse{
		ID:                  v.ID,
		Title:               v.Title,
		Slug:                v.Slug,
		Description:         v.Description,
		Location:            v.Location,
		IsOnline:            v.IsOnline,
		BannerURL:           h.assetURL(v.BannerPath),
		Status:              v.Phase,
		StoredStatus:        v.Event.Status,
		RegistrationStatus:  v.RegistrationStatus,
		StartDate:           v.StartDate,
		EndDate:             v.EndDate,
		MaxParticipants:     v.MaxParticipants,
		CurrentParticipants: v.CurrentParticipants,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.Events.Create(r.Context(), domain.Event{
		Title:           req.Title,
		Slug:            req.Slug,
		Description:     req.Description,
		Location:        req.Location,
		IsOnline:        req.IsOnline,
		BannerPath:      req.BannerPath,
		Status:          req.Status,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.eventResponse(*v))
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	items, err := h.svc.Events.List(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]eventResponse, 0, len(items))
	for _, v := range items {
		out = append(out, h.eventResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	h.eventAction(port.EventUseCase.Get)(w, r)
}

func (h *Handler) eventAction(op func(port.EventUseCase, context.Context, int64) (*port.EventView, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		v, err := op(h.svc.Events, r.Context(), id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, h.eventResponse(*v))
	}
}

// registerForEvent answers 409 with the current counts when the event is
// full.
func (h *Handler) registerForEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.svc.Events.Register(r.Context(), id, userFrom(r.Context()))
	if errors.Is(err, port.ErrEventFull) && p != nil {
		writeJSON(w, http.StatusConflict, participationFrom(p, false))
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, participationFrom(p, true))
}

func (h *Handler) unregisterFromEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.svc.Events.Unregister(r.Context(), id, userFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, participationFrom(p, false))
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.Events.Delete)
}

func participationFrom(p *port.Participation, registered bool) participationResponse {
	return participationResponse{
		EventID:             p.EventID,
		Registered:          registered,
		CurrentParticipants: p.CurrentParticipants,
		MaxParticipants:     p.MaxParticipants,
		RegistrationStatus:  p.RegistrationStatus,
	}
}
