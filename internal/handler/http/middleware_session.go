package http

import (
	"net/http"
)

// withSession gives every request its own database connection for the
// whole handler chain and releases it when the handler returns.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.sessions == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx, release, err := h.sessions.Open(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer release()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
