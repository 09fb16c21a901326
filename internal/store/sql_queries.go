package store

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-projects-api/models"
)

var (
	userColumns    = []string{"id", "email", "password_hash", "is_active"}
	projectColumns = []string{"id", "name", "description", "start_date", "created_at"}
)

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := db.builder().
		Insert(models.User{}.TableName()).
		Columns("email", "password_hash", "is_active").
		Values(user.Email, user.PasswordHash, user.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) buildFindUserQuery(where squirrel.Eq) (string, []any, error) {
	query, args, err := db.builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) buildCreateProjectQuery(project models.Project) (string, []any, error) {
	query, args, err := db.builder().
		Insert(models.Project{}.TableName()).
		Columns("name", "description", "start_date", "created_at").
		Values(project.Name, project.Description, project.StartDate, project.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) buildSelectProjectsQuery(where squirrel.Sqlizer) (string, []any, error) {
	b := db.builder().
		Select(projectColumns...).
		From(models.Project{}.TableName()).
		OrderBy("id")
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateProjectQuery builds an UPDATE that sets only the fields
// update reports as present. It must not be called with an empty update.
func (db *DB) buildUpdateProjectQuery(update models.ProjectUpdate) (string, []any, error) {
	b := db.builder().
		Update(models.Project{}.TableName()).
		Where(squirrel.Eq{"id": update.ID})

	if update.HasName() {
		b = b.Set("name", *update.Name)
	}
	if update.HasDescription() {
		b = b.Set("description", *update.Description)
	}
	if update.HasStartDate() {
		b = b.Set("start_date", update.StartDate.UTC())
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// utcNow is replaced in tests.
var utcNow = func() time.Time {
	return time.Now().UTC()
}
