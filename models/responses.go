package models

// ErrorResponse is the JSON body of every non-2xx response.
//
// Detail is a short human-readable message. Fields is present only for
// validation failures and maps a JSON field name to what is wrong with it.
type ErrorResponse struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse is a plain {"message": ...} body.
type MessageResponse struct {
	Message string `json:"message"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
