package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// service routes
	router.Get("/", h.root)
	router.Get("/version", h.getServerVersion)
	router.Method("GET", "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	router.Route("/auth", func(r chi.Router) {
		r.Use(h.withSession)

		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.With(h.auth).Get("/me", h.me)
	})

	router.Route("/projects", func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/", h.listProjects)
		r.Post("/", h.createProject)
		r.Get("/{id}", h.getProject)
		r.Patch("/{id}", h.updateProject)
	})

	return router
}
