package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"coinpulse/internal/adapter/metrics"
	"coinpulse/internal/core/port"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Campaigns port.CampaignUseCase
	Airdrops  port.AirdropUseCase
	Presales  port.PresaleUseCase
	Events    port.EventUseCase
	Listings  port.ListingUseCase
	Comments  port.CommentUseCase
	Articles  port.ArticleUseCase
	Videos    port.VideoUseCase
}

// Assets tells the handler where stored files are served from.
type Assets struct {
	BaseURL     string
	Placeholder string
}

// Handler is the inbound HTTP adapter. All API routes live under /api;
// /healthz and /metrics sit at the root.
type Handler struct {
	svc     Services
	assets  Assets
	metrics *metrics.Metrics
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler builds the router. m may be nil, in which case requests are not
// counted and /metrics is not mounted.
func NewHandler(svc Services, assets Assets, m *metrics.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, assets: assets, metrics: m, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RealIP, h.requestID, h.logRequests, middleware.Recoverer)
	if m != nil {
		r.Use(m.Middleware)
		r.Handle("/metrics", promhttp.Handler())
	}
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authenticate)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/{id}", h.getCampaign)
			r.Post("/{id}/impression", h.recordImpression)
			r.Post("/{id}/click", h.recordClick)
			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/", h.createCampaign)
				r.Delete("/{id}", h.deleteCampaign)
				r.Post("/{id}/approve", h.campaignAction(port.CampaignUseCase.Approve))
				r.Post("/{id}/pause", h.campaignAction(port.CampaignUseCase.Pause))
				r.Post("/{id}/resume", h.campaignAction(port.CampaignUseCase.Resume))
				r.Post("/{id}/cancel", h.campaignAction(port.CampaignUseCase.Cancel))
				r.Post("/{id}/complete", h.campaignAction(port.CampaignUseCase.Complete))
			})
		})
		r.Route("/ad-spaces", func(r chi.Router) {
			r.Get("/{id}", h.getAdSpace)
			r.With(requireUser).Post("/", h.createAdSpace)
		})
		r.Route("/airdrops", func(r chi.Router) {
			r.Get("/", h.listAirdrops)
			r.Get("/{id}", h.showAirdrop)
			r.Get("/slug/{slug}", h.showAirdropBySlug)
			r.Post("/{id}/upvote", h.upvoteAirdrop)
			r.Delete("/{id}/upvote", h.withdrawAirdropUpvote)
			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/", h.createAirdrop)
				r.Post("/{id}/feature", h.featureAirdrop)
				r.Delete("/{id}", h.deleteAirdrop)
			})
		})
		r.Route("/presales", func(r chi.Router) {
			r.Get("/", h.listPresales)
			r.Get("/{id}", h.showPresale)
			r.Get("/slug/{slug}", h.showPresaleBySlug)
			r.Post("/{id}/upvote", h.upvotePresale)
			r.Delete("/{id}/upvote", h.withdrawPresaleUpvote)
			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/", h.createPresale)
				r.Post("/{id}/feature", h.featurePresale)
				r.Delete("/{id}", h.deletePresale)
			})
		})
		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.listEvents)
			r.Get("/{id}", h.getEvent)
			r.Post("/{id}/register", h.registerForEvent)
			r.Post("/{id}/unregister", h.unregisterFromEvent)
			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/", h.createEvent)
				r.Post("/{id}/cancel", h.eventAction(port.EventUseCase.Cancel))
				r.Post("/{id}/complete", h.eventAction(port.EventUseCase.Complete))
				r.Delete("/{id}", h.deleteEvent)
			})
		})
		r.Route("/crypto-exchange-listings", func(r chi.Router) {
			r.Get("/", h.listListings)
			r.Get("/{id}", h.getListing)
			r.Post("/{id}/vote", h.voteListing)
			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/", h.createListing)
				r.Post("/{id}/publish", h.publishListing)
				r.Delete("/{id}", h.deleteListing)
			})
		})
		r.Route("/comments", func(r chi.Router) {
			r.Get("/", h.listComments)
			r.Post("/", h.createComment)
			r.Post("/{id}/report", h.reportComment)
			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/{id}/approve", h.commentAction(port.CommentUseCase.Approve))
				r.Post("/{id}/spam", h.commentAction(port.CommentUseCase.MarkSpam))
				r.Delete("/{id}", h.deleteComment)
			})
		})
		r.Route("/articles", func(r chi.Router) {
			r.Get("/", h.listArticles)
			r.Get("/slug/{slug}", h.showArticle)
			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/", h.createArticle)
				r.Post("/{id}/feature", h.featureArticle)
				r.Delete("/{id}", h.deleteArticle)
			})
		})
		r.Route("/videos", func(r chi.Router) {
			r.Get("/", h.listVideos)
			r.Get("/{id}", h.showVideo)
			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/", h.createVideo)
				r.Delete("/{id}", h.deleteVideo)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
