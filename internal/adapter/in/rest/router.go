package rest

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *Handler, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.listPosts)
			r.Post("/", h.createPost)
			r.Get("/{postID}", h.getPost)
			r.Put("/{postID}", h.updatePost)
			r.Put("/{postID}/status", h.changePostStatus)
		})
		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", h.listProfiles)
			r.Get("/{profileID}", h.getProfile)
			r.Put("/{profileID}", h.updateProfile)
		})
		r.Get("/dashboard", h.dashboardSnapshot)
	})

	r.Get("/feed", h.feed)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	return r
}
