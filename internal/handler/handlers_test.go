package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-projects-api/internal/config"
	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/internal/service"
)

// TestNewHandlers_HTTP verifies that a configured HTTP address produces an
// HTTP handler.
func TestNewHandlers_HTTP(t *testing.T) {
	var cfg config.StructuredConfig
	cfg.Server.HTTPAddress = ":8000"

	h, err := NewHandlers(&service.Services{}, nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that without an HTTP address
// NewHandlers returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, nil, config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
