package httpadapter

import (
	"net/http"
	"time"

	"coinpulse/internal/core/domain"
)

type videoRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	YouTubeURL  string `json:"youtube_url"`
}

type videoResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	YouTubeURL   string    `json:"youtube_url"`
	YouTubeID    string    `json:"youtube_id"`
	EmbedURL     string    `json:"embed_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	ViewCount    int64     `json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func videoResponseFrom(v *domain.Video) videoResponse {
	return videoResponse{
		ID:           v.ID,
		Title:        v.Title,
		Slug:         v.Slug,
		Description:  v.Description,
		YouTubeURL:   v.YouTubeURL,
		YouTubeID:    v.YouTubeID,
		EmbedURL:     v.EmbedURL(),
		ThumbnailURL: v.ThumbnailURL(),
		ViewCount:    v.ViewCount,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func (h *Handler) createVideo(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.Videos.Create(r.Context(), domain.Video{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		YouTubeURL:  req.YouTubeURL,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, videoResponseFrom(v))
}

func (h *Handler) listVideos(w http.ResponseWriter, r *http.Request) {
	p, err := listParams(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	items, err := h.svc.Videos.List(r.Context(), p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]videoResponse, 0, len(items))
	for i := range items {
		out = append(out, videoResponseFrom(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) showVideo(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.Videos.Show(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, videoResponseFrom(v))
}

func (h *Handler) deleteVideo(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.Videos.Delete)
}
