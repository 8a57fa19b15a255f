package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http/dto/response"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrAdminNotFound), errors.Is(err, domain.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownTokenType),
		errors.Is(err, domain.ErrTierUnavailable),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrCurrencyMismatch):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrConfiguration), errors.Is(err, domain.ErrInvalidTransition):
		status = http.StatusConflict
	}
	writeJSON(w, status, response.ErrorResponse{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
