package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/models"
)

// projectRepository is the SQL implementation of [ProjectRepository]
// over the "projects" table.
type projectRepository struct {
	*DB
	logger *logger.Logger
}

func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateProject inserts project and reads the stored row back. CreatedAt is
// set to the current UTC time and StartDate is stored in UTC.
func (p *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	project.StartDate = project.StartDate.UTC()
	project.CreatedAt = utcNow()

	query, args, err := p.buildCreateProjectQuery(project)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.CreateProject").Msg("failed to build query")
		return models.Project{}, err
	}

	var id int64
	err = p.write(func() error {
		return p.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.CreateProject").
			Stringer("classification", p.classify(err)).
			Msg("failed to insert project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p.GetProject(ctx, id)
}

// ListProjects returns all projects ordered by id. An empty table yields an
// empty, non-nil slice.
func (p *projectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.buildSelectProjectsQuery(nil)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.ListProjects").Msg("failed to build query")
		return nil, err
	}

	rows, err := p.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.ListProjects").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 16)
	for rows.Next() {
		var project models.Project
		if err := scanProject(rows, &project); err != nil {
			log.Err(err).Str("func", "projectRepository.ListProjects").Msg("failed to scan project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "projectRepository.ListProjects").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

// GetProject returns the project with id or [ErrProjectNotFound].
func (p *projectRepository) GetProject(ctx context.Context, id int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.buildSelectProjectsQuery(squirrel.Eq{"id": id})
	if err != nil {
		log.Err(err).Str("func", "projectRepository.GetProject").Msg("failed to build query")
		return models.Project{}, err
	}

	var project models.Project
	err = scanProject(p.conn(ctx).QueryRowContext(ctx, query, args...), &project)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "projectRepository.GetProject").Int64("project_id", id).Msg("failed to select project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return project, nil
}

// UpdateProject writes the fields update reports as present and reads the
// row back. An update with nothing to change returns the current row
// without writing.
func (p *projectRepository) UpdateProject(ctx context.Context, update models.ProjectUpdate) (models.Project, error) {
	if update.IsEmpty() {
		return p.GetProject(ctx, update.ID)
	}

	log := logger.FromContext(ctx)

	query, args, err := p.buildUpdateProjectQuery(update)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.UpdateProject").Msg("failed to build query")
		return models.Project{}, err
	}

	var affected int64
	err = p.write(func() error {
		result, err := p.conn(ctx).ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.UpdateProject").
			Int64("project_id", update.ID).
			Stringer("classification", p.classify(err)).
			Msg("failed to update project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Project{}, ErrProjectNotFound
	}

	return p.GetProject(ctx, update.ID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner, project *models.Project) error {
	return row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.StartDate,
		&project.CreatedAt,
	)
}
