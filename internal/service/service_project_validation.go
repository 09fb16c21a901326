package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-projects-api/internal/store"
	"github.com/MKhiriev/go-projects-api/internal/validators"
	"github.com/MKhiriev/go-projects-api/models"
)

// ProjectValidationService checks project requests before handing them to
// the wrapped ProjectService.
type ProjectValidationService struct {
	inner     ProjectService
	validator validators.Validator
}

func NewProjectValidationService(validator validators.Validator) ProjectServiceWrapper {
	return &ProjectValidationService{
		validator: validator,
	}
}

func (v *ProjectValidationService) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Project{}, fmt.Errorf("error during project validation before saving: %w", err)
	}

	return v.inner.CreateProject(ctx, req)
}

func (v *ProjectValidationService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return v.inner.ListProjects(ctx)
}

// Ids are assigned from 1, so a non-positive id can never match a row.
func (v *ProjectValidationService) GetProject(ctx context.Context, projectID int64) (models.Project, error) {
	if projectID <= 0 {
		return models.Project{}, fmt.Errorf("%w: project id %d", store.ErrProjectNotFound, projectID)
	}

	return v.inner.GetProject(ctx, projectID)
}

func (v *ProjectValidationService) UpdateProject(ctx context.Context, update models.ProjectUpdate) (models.Project, error) {
	if update.ID <= 0 {
		return models.Project{}, fmt.Errorf("%w: project id %d", store.ErrProjectNotFound, update.ID)
	}

	return v.inner.UpdateProject(ctx, update)
}

func (v *ProjectValidationService) Wrap(wrapped ProjectService) ProjectService {
	v.inner = wrapped
	return v
}
