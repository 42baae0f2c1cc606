package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/todo-api/internal/api/shared"
)

// bindRequest decodes, normalizes and validates the body of r into req.
// It writes the 400 or 422 response and returns false when req is unusable.
func bindRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := shared.Bind(r, req); err != nil {
		HandleAPIError(w, r, err, "bind_request")
		return false
	}
	return true
}

// getPathID extracts a positive integer id from the URL path parameters.
// Returns false when the parameter is missing, not a number or not positive.
func getPathID(r *http.Request, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, paramName), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
