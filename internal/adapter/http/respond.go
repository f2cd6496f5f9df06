package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

const unauthenticatedMessage = "You must be logged in to do that."

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fail maps use case errors onto status codes. Unexpected errors are logged
// and hidden from the client.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: unauthenticatedMessage})
	case errors.Is(err, port.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "not found"})
	case errors.Is(err, port.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, port.ErrEventFull):
		writeJSON(w, http.StatusConflict, errorResponse{Message: "event is full"})
	default:
		h.logger.Error("request failed",
			slog.String("request_id", requestIDFrom(r.Context())),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON: %s", port.ErrInvalidInput, err)
	}
	return nil
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", port.ErrInvalidInput, chi.URLParam(r, "id"))
	}
	return id, nil
}

func listParams(r *http.Request) (port.ListParams, error) {
	var p port.ListParams
	q := r.URL.Query()
	for name, dst := range map[string]*int{"limit": &p.Limit, "offset": &p.Offset} {
		s := q.Get(name)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return p, fmt.Errorf("%w: invalid %s %q", port.ErrInvalidInput, name, s)
		}
		*dst = n
	}
	return p, nil
}

// listQuery adds the optional ?status= filter on the resolved phase.
func listQuery(r *http.Request) (port.ListQuery, error) {
	p, err := listParams(r)
	if err != nil {
		return port.ListQuery{}, err
	}
	q := port.ListQuery{ListParams: p}
	if s := r.URL.Query().Get("status"); s != "" {
		phase, ok := domain.ParsePhase(s)
		if !ok {
			return q, fmt.Errorf("%w: unknown status %q", port.ErrInvalidInput, s)
		}
		q.Phase = phase
	}
	return q, nil
}

// deleteByID serves DELETE /{id} routes.
func (h *Handler) deleteByID(w http.ResponseWriter, r *http.Request, del func(context.Context, int64) error) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err = del(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) assetURL(path string) *string {
	return domain.AssetURL(h.assets.BaseURL, path, h.assets.Placeholder)
}
