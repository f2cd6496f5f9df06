package httpadapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

type commentRequest struct {
	CommentableType string `json:"commentable_type"`
	CommentableID   int64  `json:"commentable_id"`
	ParentID        *int64 `json:"parent_id"`
	Body            string `json:"body"`
}

type commentResponse struct {
	ID              int64      `json:"id"`
	CommentableType string     `json:"commentable_type"`
	CommentableID   int64      `json:"commentable_id"`
	ParentID        *int64     `json:"parent_id"`
	UserID          string     `json:"user_id"`
	Body            string     `json:"body"`
	IsApproved      bool       `json:"is_approved"`
	ApprovedAt      *time.Time `json:"approved_at"`
	IsSpam          bool       `json:"is_spam"`
	ReportCount     int64      `json:"report_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func commentResponseFrom(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:              c.ID,
		CommentableType: c.CommentableType,
		CommentableID:   c.CommentableID,
		ParentID:        c.ParentID,
		UserID:          c.UserID,
		Body:            c.Body,
		IsApproved:      c.IsApproved,
		ApprovedAt:      c.ApprovedAt,
		IsSpam:          c.IsSpam,
		ReportCount:     c.ReportCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// listComments expects ?commentable_type=article&commentable_id=1.
func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id, err := strconv.ParseInt(q.Get("commentable_id"), 10, 64)
	if err != nil {
		h.fail(w, r, fmt.Errorf("%w: invalid commentable_id", port.ErrInvalidInput))
		return
	}
	items, err := h.svc.Comments.ListFor(r.Context(), q.Get("commentable_type"), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]commentResponse, 0, len(items))
	for i := range items {
		out = append(out, commentResponseFrom(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Comments.Create(r.Context(), domain.Comment{
		CommentableType: req.CommentableType,
		CommentableID:   req.CommentableID,
		ParentID:        req.ParentID,
		UserID:          userFrom(r.Context()),
		Body:            req.Body,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, commentResponseFrom(c))
}

func (h *Handler) reportComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Comments.Report(r.Context(), id, userFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commentResponseFrom(c))
}

func (h *Handler) commentAction(op func(port.CommentUseCase, context.Context, int64) (*domain.Comment, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		c, err := op(h.svc.Comments, r.Context(), id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, commentResponseFrom(c))
	}
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.Comments.Delete)
}
