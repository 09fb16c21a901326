package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-projects-api/models"
)

// AuthService covers account registration, credential checks and the
// access token lifecycle.
type AuthService interface {
	// RegisterUser validates req, hashes the password and stores the account.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login returns the account matching req or ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken reports every failure as ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// SeedDemoUser creates the demo account if it does not exist yet.
	SeedDemoUser(ctx context.Context) error
}

// ProjectService manages project records.
type ProjectService interface {
	CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, projectID int64) (models.Project, error)

	// UpdateProject applies the non-empty fields of update. An empty update
	// returns the stored project unchanged.
	UpdateProject(ctx context.Context, update models.ProjectUpdate) (models.Project, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}
