package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/internal/utils"
	"github.com/MKhiriev/go-projects-api/models"
)

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}

	project, err := h.services.ProjectService.CreateProject(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", project.ID).Msg("project created")
	_, _ = utils.WriteJSON(w, project, http.StatusCreated)
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	// an empty table is [] rather than null
	if projects == nil {
		projects = []models.Project{}
	}

	_, _ = utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := projectIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.services.ProjectService.GetProject(r.Context(), projectID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := projectIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ProjectUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}
	update.ID = projectID

	project, err := h.services.ProjectService.UpdateProject(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", project.ID).Msg("project updated")
	_, _ = utils.WriteJSON(w, project, http.StatusOK)
}

func projectIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	projectID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidProjectID, raw)
	}

	return projectID, nil
}
