package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/internal/store"
	"github.com/MKhiriev/go-projects-api/internal/validators"
	"github.com/MKhiriev/go-projects-api/models"
)

// Demo account created by SeedDemoUser.
const (
	DemoUserEmail    = "demo@example.com"
	DemoUserPassword = "Passw0rd!"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// TokenManager issues and validates signed access tokens.
type TokenManager interface {
	Issue(userID int64) (models.Token, error)
	Validate(tokenString string) (models.Token, error)
}

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and access token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks the stored bcrypt digests.
	hasher PasswordHasher

	// tokens signs new access tokens and validates presented ones.
	tokens TokenManager

	// validator checks registration requests before storage is touched.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher PasswordHasher,
	tokens TokenManager,
	validator validators.Validator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		validator:      validator,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - a *validators.ValidationError if req breaks a field rule.
//   - store.ErrEmailAlreadyExists if the email is taken. The pre-check
//     covers the common case, the UNIQUE constraint covers concurrent
//     registrations.
//   - a wrapped error for any other failure.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("registration request is invalid")
		return models.User{}, err
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Debug().Str("email", req.Email).Msg("email is already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return a.createUser(ctx, req.Email, req.Password)
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both return ErrInvalidCredentials
// so the caller cannot tell which one happened.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Debug().Msg("empty credentials provided")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", req.Email).Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, foundUser.PasswordHash) {
		log.Debug().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed access token whose subject is user.ID.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.ID).Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw token string.
//
// Any validation failure (expired, wrong signature, wrong algorithm,
// malformed, bad subject) is normalised to ErrTokenIsExpiredOrInvalid so
// that callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.tokens.Validate(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetUserByID returns the account with userID or store.ErrNoUserWasFound.
func (a *authService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// SeedDemoUser makes sure the demo account exists. Calling it again, or
// racing another instance that creates the same account, is not an error.
func (a *authService) SeedDemoUser(ctx context.Context) error {
	_, err := a.userRepository.FindUserByEmail(ctx, DemoUserEmail)
	if err == nil {
		a.logger.Debug().Str("email", DemoUserEmail).Msg("demo user already exists")
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("demo user lookup failed: %w", err)
	}

	_, err = a.createUser(ctx, DemoUserEmail, DemoUserPassword)
	if err != nil && !errors.Is(err, store.ErrEmailAlreadyExists) {
		return fmt.Errorf("demo user creation failed: %w", err)
	}

	a.logger.Info().Str("email", DemoUserEmail).Msg("demo user seeded")
	return nil
}

func (a *authService) createUser(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	digest, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: digest,
		IsActive:     true,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}
