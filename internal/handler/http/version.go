package http

import (
	"net/http"

	"github.com/MKhiriev/go-projects-api/internal/utils"
	"github.com/MKhiriev/go-projects-api/models"
)

const msgBackendRunning = "Backend running successfully"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: msgBackendRunning}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	_, _ = utils.WriteJSON(w, buildInfo, http.StatusOK)
}
