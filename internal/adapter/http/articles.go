package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

type articleRequest struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	ContentType string     `json:"content_type"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body"`
	Author      string     `json:"author"`
	CoverPath   string     `json:"cover_path"`
	Tags        []string   `json:"tags"`
	PublishedAt *time.Time `json:"published_at"`
}

type articleResponse struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Slug        string             `json:"slug"`
	ContentType domain.ContentType `json:"content_type"`
	Excerpt     string             `json:"excerpt"`
	Body        string             `json:"body,omitempty"`
	Author      string             `json:"author"`
	CoverURL    *string            `json:"cover_url"`
	Tags        []string           `json:"tags"`
	ViewCount   int64              `json:"view_count"`
	IsFeatured  bool               `json:"is_featured"`
	FeaturedAt  *time.Time         `json:"featured_at"`
	PublishedAt *time.Time         `json:"published_at"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func (h *Handler) articleResponse(a *domain.Article, withBody bool) articleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	resp := articleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		ContentType: a.ContentType,
		Excerpt:     a.Excerpt,
		Author:      a.Author,
		CoverURL:    h.assetURL(a.CoverPath),
		Tags:        tags,
		ViewCount:   a.ViewCount,
		IsFeatured:  a.IsFeatured,
		FeaturedAt:  a.FeaturedAt,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if withBody {
		resp.Body = a.Body
	}
	return resp
}

func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	a, err := h.svc.Articles.Create(r.Context(), domain.Article{
		Title:       req.Title,
		Slug:        req.Slug,
		ContentType: domain.ContentType(req.ContentType),
		Excerpt:     req.Excerpt,
		Body:        req.Body,
		Author:      req.Author,
		CoverPath:   req.CoverPath,
		Tags:        req.Tags,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.articleResponse(a, true))
}

// listArticles accepts ?type=, ?tag= and ?featured=true on top of paging.
func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	p, err := listParams(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	featured, _ := strconv.ParseBool(q.Get("featured"))
	items, err := h.svc.Articles.List(r.Context(), port.ArticleFilter{
		ListParams:   p,
		ContentType:  domain.ContentType(q.Get("type")),
		Tag:          q.Get("tag"),
		FeaturedOnly: featured,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]articleResponse, 0, len(items))
	for i := range items {
		out = append(out, h.articleResponse(&items[i], false))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) showArticle(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Articles.ShowBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.articleResponse(a, true))
}

func (h *Handler) featureArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	a, err := h.svc.Articles.MarkAsFeatured(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.articleResponse(a, true))
}

func (h *Handler) deleteArticle(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.Articles.Delete)
}
