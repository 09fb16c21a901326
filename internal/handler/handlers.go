package handler

import (
	"github.com/MKhiriev/go-projects-api/internal/config"
	"github.com/MKhiriev/go-projects-api/internal/handler/http"
	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/internal/service"
	"github.com/MKhiriev/go-projects-api/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions store.Sessions, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, sessions, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
