package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-projects-api/internal/config"
	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/internal/service"
	"github.com/MKhiriev/go-projects-api/internal/store"
)

type Handler struct {
	services *service.Services

	// sessions may be nil, in which case requests run on the shared pool.
	sessions store.Sessions

	corsOrigins    []string
	requestTimeout time.Duration

	registry *prometheus.Registry
	metrics  *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions store.Sessions, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		corsOrigins:    cfg.CORS.Origins(),
		requestTimeout: cfg.Server.RequestTimeout,
		registry:       registry,
		metrics:        newMetrics(registry),
		logger:         logger,
	}
}

// RegisterCollector adds c to the registry served on /metrics.
func (h *Handler) RegisterCollector(c prometheus.Collector) error {
	return h.registry.Register(c)
}
