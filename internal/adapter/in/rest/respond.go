package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"pressdeck/internal/adapter/out/cms"
	"pressdeck/internal/service"
	"pressdeck/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondError maps domain errors onto HTTP statuses. The message is
// always non-empty so a failed write surfaces something to show.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, cms.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, cms.ErrRemote), errors.Is(err, cms.ErrDecode):
		status = http.StatusBadGateway
	}
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed", "path", r.URL.Path, "error", err)
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}
