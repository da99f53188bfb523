package http

import (
	"encoding/json"
	"net/http"
)

type recordSaleRequest struct {
	TotalAmountCents int64 `json:"total_amount_cents"`
}

func (h *handler) Billing(w http.ResponseWriter, r *http.Request) {
	sales, err := h.billing.Sales(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, SalesToResponse(sales))
}

func (h *handler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req recordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, r, http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "malformed request body",
		})
		return
	}

	id, err := h.billing.RecordSale(r.Context(), req.TotalAmountCents)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, CreatedResponse{ID: id})
}
