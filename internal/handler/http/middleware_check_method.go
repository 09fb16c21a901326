// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-projects-api/internal/utils"
	"github.com/MKhiriev/go-projects-api/models"
)

// knownMethods are probed when building the Allow header.
var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers 405 with a {"detail": "Method Not Allowed"} body and an Allow
// header listing the methods that router does serve for the requested path.
// Mounted sub-routers are searched as well.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: detailMethodNotAllowed}, http.StatusMethodNotAllowed)
	}
}

func allowedMethods(router chi.Routes, path string) []string {
	var allowed []string
	for _, method := range knownMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}

	return allowed
}
