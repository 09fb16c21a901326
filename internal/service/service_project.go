package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/internal/store"
	"github.com/MKhiriev/go-projects-api/models"
)

type projectService struct {
	projectRepository store.ProjectRepository

	logger *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		logger:            logger,
	}
}

func (p *projectService) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error) {
	if req.StartDate == nil {
		return models.Project{}, ErrInvalidDataProvided
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate.UTC(),
	}

	created, err := p.projectRepository.CreateProject(ctx, project)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("name", req.Name).Msg("error creating project")
		return models.Project{}, fmt.Errorf("error creating project: %w", err)
	}

	return created, nil
}

func (p *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := p.projectRepository.ListProjects(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing projects")
		return nil, fmt.Errorf("error listing projects: %w", err)
	}

	return projects, nil
}

func (p *projectService) GetProject(ctx context.Context, projectID int64) (models.Project, error) {
	project, err := p.projectRepository.GetProject(ctx, projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("error getting project %d: %w", projectID, err)
	}

	return project, nil
}

func (p *projectService) UpdateProject(ctx context.Context, update models.ProjectUpdate) (models.Project, error) {
	if update.HasStartDate() {
		startDate := update.StartDate.UTC()
		update.StartDate = &startDate
	}

	project, err := p.projectRepository.UpdateProject(ctx, update)
	if err != nil {
		return models.Project{}, fmt.Errorf("error updating project %d: %w", update.ID, err)
	}

	return project, nil
}
