package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
// It is the client used by the end-to-end tests to drive the API.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000")
//	resp, err := client.R().Get("/auth/me")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose relative request URLs resolve
// against baseURL. JSON is sent and accepted by default.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)

	return &HTTPClient{Client: client}
}

// AuthR starts a request that sends token in the Authorization header
// using the Bearer scheme.
func (c *HTTPClient) AuthR(token string) *resty.Request {
	return c.R().SetAuthToken(token)
}
