package service

import (
	"fmt"

	"github.com/MKhiriev/go-projects-api/internal/config"
	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/internal/store"
	"github.com/MKhiriev/go-projects-api/internal/utils"
	"github.com/MKhiriev/go-projects-api/internal/validators"
	"github.com/MKhiriev/go-projects-api/models"
)

type Services struct {
	AuthService    AuthService
	ProjectService ProjectService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	tokenManager, err := utils.NewTokenManager(cfg.App.SecretKey, cfg.App.Algorithm, cfg.App.TokenTTL())
	if err != nil {
		return nil, fmt.Errorf("error creating token manager: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	authService := NewAuthService(
		storages.UserRepository,
		utils.NewPasswordHasher(cfg.App.BcryptCost),
		tokenManager,
		validator,
		logger,
	)

	projectService := NewProjectValidationService(validator).
		Wrap(NewProjectService(storages.ProjectRepository, logger))

	return &Services{
		AuthService:    authService,
		ProjectService: projectService,
		AppInfoService: appInfoService,
	}, nil
}
