package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/internal/utils"
	"github.com/MKhiriev/go-projects-api/models"
)

const msgUserRegistered = "User registered"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.ID).Msg("user registered")
	_, _ = utils.WriteJSON(w, models.RegisterResponse{
		Message: msgUserRegistered,
		Email:   registeredUser.Email,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := decodeLoginRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, models.AccessTokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

// me returns the caller resolved by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, errors.New("no user in request context"))
		return
	}

	_, _ = utils.WriteJSON(w, models.NewCurrentUser(user), http.StatusOK)
}

// decodeLoginRequest accepts a JSON body or the OAuth2 password form
// (username, password).
func decodeLoginRequest(r *http.Request) (models.LoginRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return models.LoginRequest{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}

		email := r.PostForm.Get("username")
		if email == "" {
			email = r.PostForm.Get("email")
		}

		return models.LoginRequest{Email: email, Password: r.PostForm.Get("password")}, nil
	default:
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return models.LoginRequest{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}

		return req, nil
	}
}
