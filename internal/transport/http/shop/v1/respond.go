package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
	"github.com/Vivekjangir90/mobile-repair-shop/internal/platform/logger"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", logger.ErrorF(err))
	}
	respondJSON(w, r, status, errorResponse{Code: status, Message: err.Error()})
}

func mapStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrEmptyUpdate):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrCustomerNotFound),
		errors.Is(err, model.ErrJobNotFound),
		errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrPhotoNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
