package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/internal/service"
	"github.com/MKhiriev/go-projects-api/internal/utils"
)

// auth is an HTTP middleware that resolves the caller from a bearer token.
//
// It reads the "Authorization: Bearer <token>" header, validates the token
// via [service.AuthService.ParseToken], loads the user named by the token
// subject and stores it in the request context under [utils.UserCtxKey].
//
// A missing or malformed header and an invalid or expired token all produce
// the same 401 response. A valid token whose user no longer exists produces
// 404.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, ErrEmptyAuthorizationHeader))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, err))
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := h.services.AuthService.GetUserByID(ctx, token.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Int64("user_id", user.ID).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
