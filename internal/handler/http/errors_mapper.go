package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-projects-api/internal/logger"
	"github.com/MKhiriev/go-projects-api/internal/service"
	"github.com/MKhiriev/go-projects-api/internal/store"
	"github.com/MKhiriev/go-projects-api/internal/utils"
	"github.com/MKhiriev/go-projects-api/internal/validators"
	"github.com/MKhiriev/go-projects-api/models"
)

const (
	detailValidation       = "validation error"
	detailInvalidBody      = "Invalid request body"
	detailInvalidProjectID = "Invalid project id"
	detailInvalidData      = "Invalid data provided"
	detailEmailTaken       = "Email already registered"
	detailBadCredentials   = "Invalid credentials"
	detailBadToken         = "Invalid or expired token"
	detailUserNotFound     = "User not found"
	detailProjectNotFound  = "Project not found"
	detailNotFound         = "Not Found"
	detailMethodNotAllowed = "Method Not Allowed"
	detailTimeout          = "Request timed out"
)

type errorResponse struct {
	status int
	detail string
}

var errorStatusMap = map[error]errorResponse{
	validators.ErrValidation:       {http.StatusBadRequest, detailValidation},
	ErrInvalidBody:                 {http.StatusBadRequest, detailInvalidBody},
	ErrInvalidProjectID:            {http.StatusBadRequest, detailInvalidProjectID},
	service.ErrInvalidDataProvided: {http.StatusBadRequest, detailInvalidData},
	store.ErrEmailAlreadyExists:    {http.StatusBadRequest, detailEmailTaken},

	service.ErrInvalidCredentials:      {http.StatusUnauthorized, detailBadCredentials},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, detailBadToken},

	store.ErrNoUserWasFound:  {http.StatusNotFound, detailUserNotFound},
	store.ErrProjectNotFound: {http.StatusNotFound, detailProjectNotFound},

	context.DeadlineExceeded: {http.StatusGatewayTimeout, detailTimeout},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)}
}

// writeError writes the {"detail", "fields"} body matching err. Details of
// unexpected errors are logged and never sent to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	if resp.status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	if resp.status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Detail: resp.detail,
		Fields: validators.FieldsOf(err),
	}, resp.status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: detailNotFound}, http.StatusNotFound)
}
